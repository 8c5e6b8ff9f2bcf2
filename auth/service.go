package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/skyvault/skyvault-go/auth/providers"
	"github.com/skyvault/skyvault-go/logging"
	"github.com/skyvault/skyvault-go/rest"
)

// ErrNoCurrentUser is returned by operations that require a logged-in user.
var ErrNoCurrentUser = errors.New("no current user")

// Service defines the authentication operations of the SDK.
//
// Contract:
//   - LogInAnonymous: create-or-login a device-local anonymous identity.
//   - LogInWith: login (or sign up on first contact) via a third-party
//     provider's credentials.
//   - LinkWith: merge a provider's credentials into the current user.
//   - SignUp / LogIn: classic username+password flows.
//   - FetchCurrentUser: refresh the current user from the backend.
//   - LogOut: drop the session locally; never contacts the network.
//
// Every network operation resolves to exactly one Result. On success the
// current user is atomically replaced and persisted; on failure the previous
// session, if any, is left untouched. Methods honor context cancellation
// while waiting for the executor.
type Service interface {
	LogInAnonymous(ctx context.Context) rest.Result[*User]
	LogInWith(ctx context.Context, p providers.Parameters) rest.Result[*User]
	LinkWith(ctx context.Context, p providers.Parameters) rest.Result[*User]
	SignUp(ctx context.Context, userName, password string) rest.Result[*User]
	LogIn(ctx context.Context, userName, password string) rest.Result[*User]
	FetchCurrentUser(ctx context.Context) rest.Result[*User]
	LogOut(ctx context.Context)
}

// service is the concrete Service backed by a request executor and the
// session manager.
type service struct {
	exec     rest.Executor
	sessions *SessionManager
	log      logging.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*service)

// WithServiceLogger sets the service's logger.
func WithServiceLogger(l logging.Logger) ServiceOption {
	return func(s *service) { s.log = l }
}

// NewService constructs a Service bound to the given executor and sessions.
func NewService(exec rest.Executor, sessions *SessionManager, opts ...ServiceOption) Service {
	s := &service{exec: exec, sessions: sessions, log: logging.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// run dispatches one request and waits for its single completion, honoring
// cancellation. The buffered channel keeps the late callback from leaking a
// goroutine after a cancel.
func (s *service) run(ctx context.Context, req *rest.Request) rest.Result[*rest.Response] {
	ch := make(chan rest.Result[*rest.Response], 1)
	s.exec.Do(ctx, req, func(r rest.Result[*rest.Response]) { ch <- r })
	select {
	case r := <-ch:
		return r
	case <-ctx.Done():
		return rest.Failure[*rest.Response](ctx.Err())
	}
}

// authenticate executes req, decodes the outcome, merges the response body
// onto base (a fresh user when nil), and on success publishes the merged
// user as the current session.
func (s *service) authenticate(ctx context.Context, req *rest.Request, base *User) rest.Result[*User] {
	res := s.run(ctx, req)
	if res.IsFailure() {
		return rest.Failure[*User](res.Err())
	}
	resp, _ := res.Value()
	if !resp.IsSuccess() {
		apiErr := resp.APIError()
		s.log.Debug(ctx, "authentication rejected", "status", resp.StatusCode(), "code", apiErr.Code)
		return rest.Failure[*User](apiErr)
	}

	body, err := resp.JSONBody()
	if err != nil {
		return rest.Failure[*User](err)
	}

	u := base
	if u == nil {
		u = NewUser()
	}
	u.applyBody(body)
	s.sessions.SetCurrent(ctx, u)
	return rest.Success(u)
}

func (s *service) LogInAnonymous(ctx context.Context) rest.Result[*User] {
	return s.LogInWith(ctx, providers.NewAnonymousParameters())
}

func (s *service) LogInWith(ctx context.Context, p providers.Parameters) rest.Result[*User] {
	req := rest.NewRequest(http.MethodPost, "users",
		rest.WithBody(map[string]any{
			"authData": map[string]any{p.ProviderTag(): p.ToFieldMap()},
		}),
	)
	return s.authenticate(ctx, req, nil)
}

func (s *service) LinkWith(ctx context.Context, p providers.Parameters) rest.Result[*User] {
	u := s.sessions.Current()
	if u == nil {
		return rest.Failure[*User](ErrNoCurrentUser)
	}

	req := rest.NewRequest(http.MethodPut, "users/"+u.ObjectID,
		rest.WithBody(map[string]any{
			"authData": map[string]any{p.ProviderTag(): p.ToFieldMap()},
		}),
		rest.WithSessionToken(u.SessionToken),
	)

	// The server acknowledges a link without echoing authData; merge the
	// provider's fields locally before applying whatever it did return.
	u.AuthData[p.ProviderTag()] = p.ToFieldMap()
	return s.authenticate(ctx, req, u)
}

func (s *service) SignUp(ctx context.Context, userName, password string) rest.Result[*User] {
	req := rest.NewRequest(http.MethodPost, "users",
		rest.WithBody(map[string]any{
			"userName": userName,
			"password": password,
		}),
	)
	u := NewUser()
	u.UserName = userName
	return s.authenticate(ctx, req, u)
}

func (s *service) LogIn(ctx context.Context, userName, password string) rest.Result[*User] {
	req := rest.NewRequest(http.MethodGet, "login",
		rest.WithQuery("userName", userName),
		rest.WithQuery("password", password),
	)
	return s.authenticate(ctx, req, nil)
}

func (s *service) FetchCurrentUser(ctx context.Context) rest.Result[*User] {
	u := s.sessions.Current()
	if u == nil {
		return rest.Failure[*User](ErrNoCurrentUser)
	}
	req := rest.NewRequest(http.MethodGet, "users/"+u.ObjectID,
		rest.WithSessionToken(u.SessionToken),
	)
	return s.authenticate(ctx, req, u)
}

// LogOut clears the current session and its persisted snapshot. Always
// synchronous, always local, cannot fail.
func (s *service) LogOut(ctx context.Context) {
	s.sessions.Clear(ctx)
}
