package providers

import "github.com/google/uuid"

// AnonymousParameters marks a device-local identity with no third-party
// backing. The id is the only credential; the backend creates or finds the
// user keyed by it.
type AnonymousParameters struct {
	ID string
}

// NewAnonymousParameters generates a fresh UUID-v4 identity.
func NewAnonymousParameters() AnonymousParameters {
	return AnonymousParameters{ID: uuid.NewString()}
}

func (AnonymousParameters) ProviderTag() string { return TagAnonymous }

func (p AnonymousParameters) ToFieldMap() map[string]any {
	return map[string]any{"id": p.ID}
}
