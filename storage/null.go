package storage

import "context"

// NullStore is the inert Store: loads always miss, writes and deletes are
// discarded. It keeps the SDK functional on platforms and in tests where no
// file system is available.
type NullStore struct{}

func NewNullStore() *NullStore { return &NullStore{} }

func (*NullStore) Load(context.Context, Target) []byte  { return nil }
func (*NullStore) Save(context.Context, Target, []byte) {}
func (*NullStore) Delete(context.Context, Target)       {}
