// Package apierrors maps the backend's wire error codes ("E" + 6 digits) to a
// closed set of semantic error kinds. Classification is a pure lookup: any
// code the table does not know, including malformed input, yields Generic.
// The first three digits of a wire code are the HTTP status family the server
// uses for it; HTTPStatus exposes that family for the classified kind.
package apierrors

import "strconv"

// Code is a semantic error kind. It is defined as a separate type (not just
// string) so callers can switch over a closed set instead of comparing raw
// wire codes.
type Code string

const (
	// Generic is the fallback for every unrecognized or malformed wire code.
	Generic Code = "generic"

	// 400 family: request shape.
	InvalidJSON   Code = "invalid_json"
	InvalidType   Code = "invalid_type"
	Required      Code = "required"
	InvalidFormat Code = "invalid_format"
	InvalidValue  Code = "invalid_value"
	MissingValue  Code = "missing_value"
	InvalidQuery  Code = "invalid_query"

	// 401 family: authentication.
	InvalidSignature    Code = "invalid_signature"
	Unauthorized        Code = "unauthorized"
	OAuthFailed         Code = "oauth_failed"
	InvalidSessionToken Code = "invalid_session_token"

	// 403 family: authorization.
	ACLForbidden          Code = "acl_forbidden"
	CollaboratorForbidden Code = "collaborator_forbidden"
	OperationForbidden    Code = "operation_forbidden"
	ExpiredKey            Code = "expired_key"
	InvalidSetting        Code = "invalid_setting"

	// 404 family: missing resources.
	NotFound      Code = "not_found"
	NoneService   Code = "none_service"
	NoField       Code = "no_field"
	NoDeviceToken Code = "no_device_token"
	NoUser        Code = "no_user"
	NoRole        Code = "no_role"
	NoApplication Code = "no_application"
	NoClass       Code = "no_class"
	NoFile        Code = "no_file"

	// Method / conflict.
	MethodNotAllowed Code = "method_not_allowed"
	Duplication      Code = "duplication"

	// Size limits.
	RequestTooLarge Code = "request_too_large"
	FileTooLarge    Code = "file_too_large"
	QueryTooLarge   Code = "query_too_large"
	URITooLong      Code = "uri_too_long"

	UnsupportedMediaType Code = "unsupported_media_type"

	// Throttling.
	RateLimited   Code = "rate_limited"
	QuotaExceeded Code = "quota_exceeded"

	// 5xx families.
	Internal           Code = "internal"
	MailFailure        Code = "mail_failure"
	ScriptFailure      Code = "script_failure"
	BadGateway         Code = "bad_gateway"
	StorageUnavailable Code = "storage_unavailable"
	ScriptUnavailable  Code = "script_unavailable"
	ServiceUnavailable Code = "service_unavailable"
	Maintenance        Code = "maintenance"
)

// table is the complete wire-code mapping. It is the single source of truth;
// HTTPStatus is derived from the wire code's leading digits.
var table = map[string]Code{
	"E400001": InvalidJSON,
	"E400002": InvalidType,
	"E400003": Required,
	"E400004": InvalidFormat,
	"E400005": InvalidValue,
	"E400006": MissingValue,
	"E400007": InvalidQuery,

	"E401001": InvalidSignature,
	"E401002": Unauthorized,
	"E401003": OAuthFailed,
	"E401004": InvalidSessionToken,

	"E403001": ACLForbidden,
	"E403002": CollaboratorForbidden,
	"E403003": OperationForbidden,
	"E403004": ExpiredKey,
	"E403005": InvalidSetting,

	"E404001": NotFound,
	"E404002": NoneService,
	"E404003": NoField,
	"E404004": NoDeviceToken,
	"E404005": NoUser,
	"E404006": NoRole,
	"E404007": NoApplication,
	"E404008": NoClass,
	"E404009": NoFile,

	"E405001": MethodNotAllowed,
	"E409001": Duplication,

	"E413001": RequestTooLarge,
	"E413002": FileTooLarge,
	"E413003": QueryTooLarge,
	"E414001": URITooLong,
	"E415001": UnsupportedMediaType,

	"E429001": RateLimited,
	"E429002": QuotaExceeded,

	"E500001": Internal,
	"E500002": MailFailure,
	"E500003": ScriptFailure,

	"E502001": BadGateway,
	"E502002": StorageUnavailable,
	"E502003": ScriptUnavailable,

	"E503001": ServiceUnavailable,
	"E503002": Maintenance,
}

// httpStatus maps each semantic kind to the HTTP status family encoded in its
// wire code. Built once from table.
var httpStatus = func() map[Code]int {
	m := make(map[Code]int, len(table))
	for wire, c := range table {
		st, err := strconv.Atoi(wire[1:4])
		if err != nil {
			continue
		}
		m[c] = st
	}
	return m
}()

// Classify maps a wire error code to its semantic kind. The mapping is total:
// anything outside the table, including the empty string, is Generic.
// Classification never fails and has no side effects.
func Classify(wire string) Code {
	if c, ok := table[wire]; ok {
		return c
	}
	return Generic
}

// HTTPStatus returns the HTTP status family the backend uses for c, or 0 for
// Generic and unknown kinds.
func HTTPStatus(c Code) int {
	return httpStatus[c]
}
