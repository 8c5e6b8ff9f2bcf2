package apierrors

import "fmt"

// Error is a server-reported failure: a classified kind plus the message the
// backend sent. Callers match on Code; Message is for humans.
type Error struct {
	Code    Code
	Message string
}

// FromBody builds an Error from a decoded response body. Construction is
// total and lenient: a missing or non-string "code" degrades to Generic, a
// missing or non-string "error" degrades to an empty message. A nil map is
// allowed.
func FromBody(body map[string]any) *Error {
	e := &Error{Code: Generic}
	if s, ok := body["code"].(string); ok {
		e.Code = Classify(s)
	}
	if msg, ok := body["error"].(string); ok {
		e.Message = msg
	}
	return e
}

// Error implements the built-in error interface as "<code>: <message>",
// keeping log lines both human- and machine-scannable.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
