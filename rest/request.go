package rest

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Request is a fully-specified API request descriptor: method, path relative
// to the versioned API root, query and body parameters, and the session token
// to present, if any. Requests are immutable once built; signing headers are
// computed by the executor at dispatch time, not stored here.
type Request struct {
	method       string
	path         string
	query        url.Values
	body         map[string]any
	sessionToken string
}

// RequestOption configures a Request during construction.
type RequestOption func(*Request)

// WithQuery adds a query parameter.
func WithQuery(key, value string) RequestOption {
	return func(r *Request) { r.query.Add(key, value) }
}

// WithBody sets the JSON body. The map is not copied; callers must not
// mutate it after construction.
func WithBody(body map[string]any) RequestOption {
	return func(r *Request) { r.body = body }
}

// WithSessionToken attaches the session token the executor should present.
func WithSessionToken(token string) RequestOption {
	return func(r *Request) { r.sessionToken = token }
}

// NewRequest builds an immutable Request. The path is relative to the
// versioned API root, e.g. "users" or "users/abc123".
func NewRequest(method, path string, opts ...RequestOption) *Request {
	r := &Request{
		method: method,
		path:   strings.TrimPrefix(path, "/"),
		query:  url.Values{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Request) Method() string       { return r.method }
func (r *Request) Path() string         { return r.path }
func (r *Request) SessionToken() string { return r.sessionToken }

// Body returns the JSON body map, nil when the request has none.
func (r *Request) Body() map[string]any { return r.body }

// URL resolves the absolute request URL against the configured endpoint and
// API version.
func (r *Request) URL(cfg *Config) (*url.URL, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	u.Path = "/" + cfg.APIVersion + "/" + r.path
	u.RawQuery = r.query.Encode()
	return u, nil
}

// BodyBytes serializes the body map to JSON, or returns nil for a bodiless
// request.
func (r *Request) BodyBytes() ([]byte, error) {
	if r.body == nil {
		return nil, nil
	}
	b, err := json.Marshal(r.body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}
	return b, nil
}
