package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skyvault/skyvault-go/logging"
)

// FileStore keeps one file per target inside a dedicated directory.
type FileStore struct {
	dir string
	log logging.Logger
}

// NewFileStore creates the directory (and parents) if needed and returns a
// store over it. This is the capability check: if the platform refuses the
// directory, the constructor fails and the caller should fall back to
// NewNullStore.
func NewFileStore(dir string, log logging.Logger) (*FileStore, error) {
	if log == nil {
		log = logging.Nop()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &FileStore{dir: dir, log: log}, nil
}

// Select picks the store for this process: a FileStore over dir when the
// platform allows it, the inert NullStore otherwise.
func Select(dir string, log logging.Logger) Store {
	fs, err := NewFileStore(dir, log)
	if err != nil {
		if log == nil {
			log = logging.Nop()
		}
		log.Warn(context.Background(), "file storage unavailable, falling back to null store", "dir", dir, "err", err)
		return NewNullStore()
	}
	return fs
}

func (s *FileStore) path(target Target) string {
	return filepath.Join(s.dir, string(target))
}

func (s *FileStore) Load(ctx context.Context, target Target) []byte {
	data, err := os.ReadFile(s.path(target))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn(ctx, "cache read failed", "target", target, "err", err)
		}
		return nil
	}
	return data
}

func (s *FileStore) Save(ctx context.Context, target Target, data []byte) {
	if err := os.WriteFile(s.path(target), data, 0o600); err != nil {
		s.log.Warn(ctx, "cache write failed", "target", target, "err", err)
	}
}

func (s *FileStore) Delete(ctx context.Context, target Target) {
	if err := os.Remove(s.path(target)); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn(ctx, "cache delete failed", "target", target, "err", err)
	}
}
