// Package skyvault is the entry point of the Skyvault client SDK. A Client
// wires the process-wide credentials, the signed-request executor, the local
// session cache, and the authentication service together:
//
//	client := skyvault.New("APP_KEY", "CLIENT_KEY")
//	res := client.Users.LogInAnonymous(ctx)
//	if res.IsFailure() {
//	    // inspect res.Err(), e.g. errors.As into *apierrors.Error
//	}
//
// Every collaborator is injectable through options, so applications and tests
// can swap the transport, the persistence layer, and the logger without
// touching global state.
package skyvault

import (
	"os"
	"path/filepath"

	"github.com/skyvault/skyvault-go/auth"
	"github.com/skyvault/skyvault-go/logging"
	"github.com/skyvault/skyvault-go/rest"
	"github.com/skyvault/skyvault-go/storage"
)

// Client is a fully-wired SDK instance. Create one per application key at
// startup and share it; all operations are safe for concurrent use.
type Client struct {
	// Config holds the credentials and endpoint every request is signed with.
	Config *rest.Config

	// Sessions owns the current-user slot and its persisted snapshot.
	Sessions *auth.SessionManager

	// Users exposes the authentication operations.
	Users auth.Service
}

type options struct {
	endpoint string
	cacheDir string
	log      logging.Logger
	store    storage.Store
	exec     rest.Executor
	doer     rest.Doer
}

// Option configures a Client during construction.
type Option func(*options)

// WithEndpoint overrides the API endpoint, e.g. for a regional or test
// deployment.
func WithEndpoint(endpoint string) Option {
	return func(o *options) { o.endpoint = endpoint }
}

// WithCacheDir overrides the directory used for session snapshots.
func WithCacheDir(dir string) Option {
	return func(o *options) { o.cacheDir = dir }
}

// WithLogger sets the logger shared by all SDK components.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithStore substitutes the persistence implementation, bypassing the
// capability-checked default selection.
func WithStore(s storage.Store) Option {
	return func(o *options) { o.store = s }
}

// WithExecutor substitutes the request executor, primarily for tests.
func WithExecutor(e rest.Executor) Option {
	return func(o *options) { o.exec = e }
}

// WithHTTPClient substitutes the HTTP transport under the default executor.
func WithHTTPClient(d rest.Doer) Option {
	return func(o *options) { o.doer = d }
}

// New constructs a Client for the given application and client keys. Without
// options it talks to the production endpoint, caches the session under the
// user cache directory (falling back to an inert store where the platform
// offers none), and logs nothing.
func New(applicationKey, clientKey string, opts ...Option) *Client {
	o := &options{log: logging.Nop()}
	for _, opt := range opts {
		opt(o)
	}

	cfg := rest.NewConfig(applicationKey, clientKey)
	if o.endpoint != "" {
		cfg.Endpoint = o.endpoint
	}

	store := o.store
	if store == nil {
		dir := o.cacheDir
		if dir == "" {
			dir = defaultCacheDir()
		}
		store = storage.Select(dir, o.log)
	}

	exec := o.exec
	if exec == nil {
		execOpts := []rest.ExecutorOption{rest.WithLogger(o.log)}
		if o.doer != nil {
			execOpts = append(execOpts, rest.WithDoer(o.doer))
		}
		exec = rest.NewHTTPExecutor(cfg, execOpts...)
	}

	sessions := auth.NewSessionManager(store, auth.WithSessionLogger(o.log))

	return &Client{
		Config:   cfg,
		Sessions: sessions,
		Users:    auth.NewService(exec, sessions, auth.WithServiceLogger(o.log)),
	}
}

func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".skyvault"
	}
	return filepath.Join(base, "skyvault")
}
