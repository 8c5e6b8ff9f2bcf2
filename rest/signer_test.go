package rest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func signerConfig() *Config {
	return &Config{
		ApplicationKey: "app-key",
		ClientKey:      "client-key",
		Endpoint:       "https://api.skyvault.dev",
		APIVersion:     "2024-01-01",
	}
}

// The canonical string is a bit-for-bit compatibility surface. This test pins
// it down: method, host, path, and the sorted signature parameters, joined by
// newlines, HMAC-SHA256 with the client key, base64.
func TestSign_CanonicalString(t *testing.T) {
	cfg := signerConfig()
	u := &url.URL{Scheme: "https", Host: "api.skyvault.dev", Path: "/2024-01-01/users"}
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

	canonical := "GET\n" +
		"api.skyvault.dev\n" +
		"/2024-01-01/users\n" +
		"SignatureMethod=HmacSHA256&SignatureVersion=2" +
		"&X-Skyvault-Application-Key=app-key" +
		"&X-Skyvault-Timestamp=2026-03-14T09:26:53.589Z"

	mac := hmac.New(sha256.New, []byte("client-key"))
	mac.Write([]byte(canonical))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	require.Equal(t, want, Sign(cfg, "GET", u, ts))
}

func TestSign_Deterministic(t *testing.T) {
	cfg := signerConfig()
	u := &url.URL{Scheme: "https", Host: "api.skyvault.dev", Path: "/2024-01-01/users"}
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.Equal(t, Sign(cfg, "POST", u, ts), Sign(cfg, "POST", u, ts))
}

func TestSign_SensitiveToInputs(t *testing.T) {
	cfg := signerConfig()
	u := &url.URL{Scheme: "https", Host: "api.skyvault.dev", Path: "/2024-01-01/users"}
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	base := Sign(cfg, "GET", u, ts)

	require.NotEqual(t, base, Sign(cfg, "POST", u, ts), "method must be signed")
	require.NotEqual(t, base, Sign(cfg, "GET", u, ts.Add(time.Second)), "timestamp must be signed")

	other := signerConfig()
	other.ClientKey = "other-key"
	require.NotEqual(t, base, Sign(other, "GET", u, ts), "key must matter")

	u2 := *u
	u2.Path = "/2024-01-01/login"
	require.NotEqual(t, base, Sign(cfg, "GET", &u2, ts), "path must be signed")
}

func TestSign_TimestampNormalizedToUTC(t *testing.T) {
	cfg := signerConfig()
	u := &url.URL{Scheme: "https", Host: "api.skyvault.dev", Path: "/2024-01-01/users"}

	loc := time.FixedZone("UTC+5", 5*3600)
	ts := time.Date(2026, 1, 2, 8, 4, 5, 0, loc)

	require.Equal(t, Sign(cfg, "GET", u, ts.UTC()), Sign(cfg, "GET", u, ts))
}
