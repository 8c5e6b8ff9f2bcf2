package rest

import "errors"

var (
	// ErrNotInitialized is returned locally, before any network activity,
	// when a signed request is attempted with an incomplete Config.
	ErrNotInitialized = errors.New("client not initialized")

	// ErrConnection wraps transport-level failures where no response was
	// received. It carries no server semantics.
	ErrConnection = errors.New("connection failed")
)
