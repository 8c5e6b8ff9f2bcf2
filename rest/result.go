package rest

// Result is the two-variant outcome of an asynchronous operation: either a
// success payload or a failure error, never both. The zero value is a failure
// with a nil error and should not be constructed directly; use Success or
// Failure.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Success wraps a payload in a success Result.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Failure wraps an error in a failure Result.
func Failure[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsSuccess reports whether the success variant is populated.
func (r Result[T]) IsSuccess() bool { return r.ok }

// IsFailure reports whether the failure variant is populated.
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the success payload. The second return is false for the
// failure variant, in which case the payload is the zero value.
func (r Result[T]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the failure error, or nil for the success variant.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return r.err
}
