package rest

import "fmt"

// Config holds the process-wide credentials and endpoint settings read by
// every signing operation.
//
// Fields:
//   - ApplicationKey: identifies the application; sent as a header and signed.
//   - ClientKey: the HMAC secret; never sent on the wire.
//   - Endpoint: scheme+host of the API, no trailing slash.
//   - APIVersion: path version prefix, e.g. "2024-01-01".
//
// A Config must be fully set before the first signed request is issued;
// HTTPExecutor checks Valid and fails fast with ErrNotInitialized otherwise.
// Replacing a Config mid-flight (tests do this) is the caller's concern.
type Config struct {
	ApplicationKey string
	ClientKey      string
	Endpoint       string
	APIVersion     string
}

// LoadDefaults populates c with the production endpoint and current API
// version. Keys are never defaulted.
func (c *Config) LoadDefaults() {
	c.Endpoint = "https://api.skyvault.dev"
	c.APIVersion = "2024-01-01"
}

// NewConfig constructs a Config with defaults applied and the given keys.
func NewConfig(applicationKey, clientKey string) *Config {
	c := &Config{}
	c.LoadDefaults()
	c.ApplicationKey = applicationKey
	c.ClientKey = clientKey
	return c
}

// Valid reports whether the Config is complete enough to sign requests.
// The returned error wraps ErrNotInitialized and names the missing field.
func (c *Config) Valid() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrNotInitialized)
	}
	switch {
	case c.ApplicationKey == "":
		return fmt.Errorf("%w: application key not set", ErrNotInitialized)
	case c.ClientKey == "":
		return fmt.Errorf("%w: client key not set", ErrNotInitialized)
	case c.Endpoint == "":
		return fmt.Errorf("%w: endpoint not set", ErrNotInitialized)
	case c.APIVersion == "":
		return fmt.Errorf("%w: api version not set", ErrNotInitialized)
	}
	return nil
}
