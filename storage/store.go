// Package storage is the local persistence port for session state: byte
// blobs keyed by a small closed set of logical targets. Persistence is a
// best-effort cache, never a source of truth: every implementation is
// non-throwing from the caller's perspective, logging failures internally
// and degrading to a cache miss.
package storage

import "context"

// Target is a logical file identity. How a target resolves to an actual
// location is known only to the implementation.
type Target string

const (
	// TargetCurrentUser is the persisted snapshot of the current session user.
	TargetCurrentUser Target = "currentUser"

	// TargetInstallation is the device installation record.
	TargetInstallation Target = "currentInstallation"
)

// Store loads, saves and deletes blobs per target. All operations are
// synchronous and never fail from the caller's perspective: Load returns nil
// on a miss or on any underlying error, Save and Delete silently drop
// failures after logging them. Implementations must be safe for concurrent
// use.
type Store interface {
	Load(ctx context.Context, target Target) []byte
	Save(ctx context.Context, target Target, data []byte)
	Delete(ctx context.Context, target Target)
}
