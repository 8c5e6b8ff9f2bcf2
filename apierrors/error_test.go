package apierrors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromBody(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]any
		wantC   Code
		wantMsg string
	}{
		{
			name:    "known code and message",
			body:    map[string]any{"code": "E404002", "error": "None service."},
			wantC:   NoneService,
			wantMsg: "None service.",
		},
		{
			name:    "unknown code",
			body:    map[string]any{"code": "E777001", "error": "x"},
			wantC:   Generic,
			wantMsg: "x",
		},
		{
			name:    "non-string code",
			body:    map[string]any{"code": 404002, "error": "x"},
			wantC:   Generic,
			wantMsg: "x",
		},
		{
			name:    "missing code",
			body:    map[string]any{"error": "boom"},
			wantC:   Generic,
			wantMsg: "boom",
		},
		{
			name:    "non-string message",
			body:    map[string]any{"code": "E401002", "error": 42},
			wantC:   Unauthorized,
			wantMsg: "",
		},
		{
			name:  "empty body",
			body:  map[string]any{},
			wantC: Generic,
		},
		{
			name:  "nil body",
			body:  nil,
			wantC: Generic,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := FromBody(tc.body)
			require.Equal(t, tc.wantC, e.Code)
			require.Equal(t, tc.wantMsg, e.Message)
		})
	}
}

func TestError_Error(t *testing.T) {
	require.Equal(t, "none_service: None service.",
		(&Error{Code: NoneService, Message: "None service."}).Error())
	require.Equal(t, "generic", (&Error{Code: Generic}).Error())
	require.Equal(t, "<nil>", (*Error)(nil).Error())
}
