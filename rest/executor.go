package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/skyvault/skyvault-go/logging"
)

// Executor executes a fully-specified Request and delivers exactly one
// Result to done, on whatever goroutine the implementation completes on.
// Implementations never retry and never coalesce requests; a received
// response is always a success Result regardless of its status code, and
// only transport-level failures (no response at all) become failures.
type Executor interface {
	Do(ctx context.Context, req *Request, done func(Result[*Response]))
}

// Doer performs a single HTTP round trip. *http.Client satisfies it; tests
// substitute a scripted implementation.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPExecutor is the default Executor: it validates the Config, signs the
// request, and dispatches one round trip per Do call on its own goroutine.
type HTTPExecutor struct {
	cfg  *Config
	doer Doer
	log  logging.Logger
	now  func() time.Time
}

// ExecutorOption configures an HTTPExecutor.
type ExecutorOption func(*HTTPExecutor)

// WithDoer substitutes the underlying transport.
func WithDoer(d Doer) ExecutorOption {
	return func(e *HTTPExecutor) { e.doer = d }
}

// WithLogger sets the executor's logger.
func WithLogger(l logging.Logger) ExecutorOption {
	return func(e *HTTPExecutor) { e.log = l }
}

// WithClock substitutes the timestamp source, for deterministic signatures
// in tests.
func WithClock(now func() time.Time) ExecutorOption {
	return func(e *HTTPExecutor) { e.now = now }
}

// NewHTTPExecutor constructs an executor bound to cfg. Without options it
// uses http.DefaultClient, a no-op logger, and the wall clock.
func NewHTTPExecutor(cfg *Config, opts ...ExecutorOption) *HTTPExecutor {
	e := &HTTPExecutor{
		cfg:  cfg,
		doer: http.DefaultClient,
		log:  logging.Nop(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Do dispatches the request asynchronously and invokes done exactly once.
// The callback runs on the executor's goroutine.
func (e *HTTPExecutor) Do(ctx context.Context, req *Request, done func(Result[*Response])) {
	go func() {
		done(e.roundTrip(ctx, req))
	}()
}

func (e *HTTPExecutor) roundTrip(ctx context.Context, req *Request) Result[*Response] {
	if err := e.cfg.Valid(); err != nil {
		return Failure[*Response](err)
	}

	u, err := req.URL(e.cfg)
	if err != nil {
		return Failure[*Response](err)
	}
	body, err := req.BodyBytes()
	if err != nil {
		return Failure[*Response](err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method(), u.String(), reader)
	if err != nil {
		return Failure[*Response](fmt.Errorf("build request: %w", err))
	}

	ts := e.now().UTC()
	httpReq.Header.Set(HeaderApplicationKey, e.cfg.ApplicationKey)
	httpReq.Header.Set(HeaderTimestamp, ts.Format(TimestampLayout))
	httpReq.Header.Set(HeaderSignature, Sign(e.cfg, req.Method(), u, ts))
	if token := req.SessionToken(); token != "" {
		httpReq.Header.Set(HeaderSessionToken, token)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.doer.Do(httpReq)
	if err != nil {
		e.log.Warn(ctx, "transport failure", "method", req.Method(), "path", req.Path(), "err", err)
		return Failure[*Response](fmt.Errorf("%w: %v", ErrConnection, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		e.log.Warn(ctx, "response read failure", "method", req.Method(), "path", req.Path(), "err", err)
		return Failure[*Response](fmt.Errorf("%w: %v", ErrConnection, err))
	}

	return Success(NewRawResponse(resp.StatusCode, resp.Header, raw))
}
