package auth

import (
	"context"
	"sync"

	"github.com/skyvault/skyvault-go/logging"
	"github.com/skyvault/skyvault-go/storage"
)

// SessionManager owns the single process-wide "current user" slot. All
// mutation goes through SetCurrent/Clear, each an atomic critical section, so
// concurrent login attempts can never interleave a partial update; the last
// successful attempt wins. Persistence of the snapshot is best-effort through
// the storage port and never fails the caller.
type SessionManager struct {
	mu      sync.Mutex
	current *User

	store storage.Store
	log   logging.Logger
}

// SessionOption configures a SessionManager.
type SessionOption func(*SessionManager)

// WithSessionLogger sets the manager's logger.
func WithSessionLogger(l logging.Logger) SessionOption {
	return func(m *SessionManager) { m.log = l }
}

// NewSessionManager builds a manager over the given store and immediately
// restores the persisted snapshot, if any, as the current user. A corrupt
// snapshot is logged and treated as a cache miss.
func NewSessionManager(store storage.Store, opts ...SessionOption) *SessionManager {
	m := &SessionManager{store: store, log: logging.Nop()}
	for _, opt := range opts {
		opt(m)
	}
	m.restore(context.Background())
	return m
}

func (m *SessionManager) restore(ctx context.Context) {
	data := m.store.Load(ctx, storage.TargetCurrentUser)
	if data == nil {
		return
	}
	u, err := unmarshalSnapshot(data)
	if err != nil {
		m.log.Warn(ctx, "session snapshot unreadable, ignoring", "err", err)
		return
	}
	m.mu.Lock()
	m.current = u
	m.mu.Unlock()
}

// Current returns a copy of the current user, or nil when logged out. The
// copy keeps the slot mutable only through the manager.
func (m *SessionManager) Current() *User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Clone()
}

// SessionToken returns the current user's session token, or "" when logged
// out.
func (m *SessionManager) SessionToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ""
	}
	return m.current.SessionToken
}

// SetCurrent atomically replaces the current user and persists its snapshot.
// The previous current user, if any, is discarded.
func (m *SessionManager) SetCurrent(ctx context.Context, u *User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = u.Clone()

	data, err := marshalSnapshot(m.current)
	if err != nil {
		m.log.Warn(ctx, "session snapshot not persisted", "err", err)
		return
	}
	m.store.Save(ctx, storage.TargetCurrentUser, data)
}

// Clear drops the current user and deletes the persisted snapshot. Purely
// local; it cannot fail.
func (m *SessionManager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	m.store.Delete(ctx, storage.TargetCurrentUser)
}
