package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/skyvault/skyvault-go/apierrors"
)

// Response normalizes an HTTP response into a status code, headers, and a
// body in exactly one authoritative form: raw bytes (as received from the
// transport) or already-parsed JSON content (as scripted by tests).
type Response struct {
	statusCode int
	header     http.Header
	raw        []byte
	parsed     map[string]any
	hasParsed  bool
}

// NewRawResponse builds a Response whose authoritative body is the raw bytes
// received from the transport.
func NewRawResponse(statusCode int, header http.Header, body []byte) *Response {
	return &Response{statusCode: statusCode, header: header, raw: body}
}

// NewJSONResponse builds a Response whose authoritative body is already
// parsed JSON content. A nil map means an empty body.
func NewJSONResponse(statusCode int, header http.Header, content map[string]any) *Response {
	return &Response{statusCode: statusCode, header: header, parsed: content, hasParsed: true}
}

func (r *Response) StatusCode() int     { return r.statusCode }
func (r *Response) Header() http.Header { return r.header }

// IsSuccess reports whether the status code is in [200,299]. Anything else
// means the body carries an API error payload.
func (r *Response) IsSuccess() bool {
	return r.statusCode >= 200 && r.statusCode <= 299
}

// Raw returns the raw body bytes, nil when the response was constructed from
// parsed content.
func (r *Response) Raw() []byte { return r.raw }

// JSONBody returns the body as a JSON object. For a raw-bytes response the
// bytes are decoded here and a malformed body is a real error, not silently
// swallowed; an empty body decodes to an empty map.
func (r *Response) JSONBody() (map[string]any, error) {
	if r.hasParsed {
		if r.parsed == nil {
			return map[string]any{}, nil
		}
		return r.parsed, nil
	}
	if len(r.raw) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(r.raw, &m); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	return m, nil
}

// APIError interprets the body as a server error payload. It is total: an
// undecodable body yields a Generic error carrying the raw text, so callers
// branching on a non-2xx status always get a classified error.
func (r *Response) APIError() *apierrors.Error {
	body, err := r.JSONBody()
	if err != nil {
		return &apierrors.Error{
			Code:    apierrors.Generic,
			Message: strings.TrimSpace(string(r.raw)),
		}
	}
	return apierrors.FromBody(body)
}
