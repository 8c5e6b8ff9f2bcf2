// Package providers defines the identity-provider parameter builders: one
// immutable value type per supported third-party provider, each normalizing
// caller-supplied credentials into the flat field map the backend expects
// under authData[tag]. Builders are pure data shaping: they never validate
// token freshness and never call the provider's own API.
package providers

// Provider tags, the stable discriminators used as authData keys.
const (
	TagAnonymous = "anonymous"
	TagApple     = "apple"
	TagFacebook  = "facebook"
	TagGoogle    = "google"
	TagTwitter   = "twitter"
)

// Parameters is the closed set of provider credential shapes. Implementations
// are immutable value objects.
type Parameters interface {
	// ProviderTag returns the stable provider discriminator.
	ProviderTag() string

	// ToFieldMap produces exactly the field set this provider's backend
	// integration expects, no extraneous keys.
	ToFieldMap() map[string]any
}

// dateISOLayout is the backend's Date form: ISO-8601 with milliseconds, UTC.
const dateISOLayout = "2006-01-02T15:04:05.000Z"
