package rest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"strings"
	"time"
)

// Header names and signature constants. These are a wire contract: the
// backend recomputes the signature over the exact same canonical string, so
// any deviation here is rejected with E401001.
const (
	HeaderApplicationKey = "X-Skyvault-Application-Key"
	HeaderTimestamp      = "X-Skyvault-Timestamp"
	HeaderSignature      = "X-Skyvault-Signature"
	HeaderSessionToken   = "X-Skyvault-Session-Token"

	signatureMethod  = "HmacSHA256"
	signatureVersion = "2"

	// TimestampLayout is the ISO-8601 form (millisecond precision, UTC)
	// used both in the signature and in the timestamp header.
	TimestampLayout = "2006-01-02T15:04:05.000Z"
)

// Sign computes the request signature: base64 of HMAC-SHA256 over the
// canonical string
//
//	METHOD \n host \n path \n sorted signature parameters
//
// keyed with the client key. The signature parameters are the signing
// metadata plus the application key and timestamp, joined as k=v pairs with
// "&" in lexicographic key order.
func Sign(cfg *Config, method string, u *url.URL, ts time.Time) string {
	// Keys are chosen so lexicographic order is stable: SignatureMethod,
	// SignatureVersion, X-Skyvault-Application-Key, X-Skyvault-Timestamp.
	params := []string{
		"SignatureMethod=" + signatureMethod,
		"SignatureVersion=" + signatureVersion,
		HeaderApplicationKey + "=" + cfg.ApplicationKey,
		HeaderTimestamp + "=" + ts.UTC().Format(TimestampLayout),
	}
	canonical := strings.Join([]string{
		method,
		u.Host,
		u.Path,
		strings.Join(params, "&"),
	}, "\n")

	mac := hmac.New(sha256.New, []byte(cfg.ClientKey))
	mac.Write([]byte(canonical))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
