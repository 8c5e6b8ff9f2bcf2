package apierrors

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify_KnownCodes(t *testing.T) {
	tests := []struct {
		wire string
		want Code
	}{
		{"E400001", InvalidJSON},
		{"E401001", InvalidSignature},
		{"E401002", Unauthorized},
		{"E404001", NotFound},
		{"E404002", NoneService},
		{"E405001", MethodNotAllowed},
		{"E409001", Duplication},
		{"E429001", RateLimited},
		{"E500001", Internal},
		{"E503001", ServiceUnavailable},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Classify(tc.wire), "wire=%s", tc.wire)
	}
}

func TestClassify_UnknownIsGeneric(t *testing.T) {
	for _, wire := range []string{
		"",
		"E999999",
		"E404",
		"404002",
		"e404002",
		"E404002 ", // trailing space
		"banana",
	} {
		require.Equal(t, Generic, Classify(wire), "wire=%q", wire)
	}
}

func TestClassify_TableIsWellFormed(t *testing.T) {
	// Every wire code follows "E" + 6 digits and its leading digits are a
	// status family the server actually uses.
	re := regexp.MustCompile(`^E[0-9]{6}$`)
	families := map[int]bool{
		400: true, 401: true, 403: true, 404: true, 405: true, 409: true,
		413: true, 414: true, 415: true, 429: true, 500: true, 502: true, 503: true,
	}
	for wire, c := range table {
		require.Regexp(t, re, wire)
		require.NotEqual(t, Generic, c, "Generic must not be reachable via the table")
		require.True(t, families[HTTPStatus(c)], "wire=%s status=%d", wire, HTTPStatus(c))
	}
}

func TestHTTPStatus(t *testing.T) {
	require.Equal(t, 404, HTTPStatus(NoneService))
	require.Equal(t, 401, HTTPStatus(Unauthorized))
	require.Equal(t, 429, HTTPStatus(RateLimited))
	require.Equal(t, 0, HTTPStatus(Generic))
	require.Equal(t, 0, HTTPStatus(Code("made-up")))
}
