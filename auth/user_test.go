package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsLinked(t *testing.T) {
	anon := NewUser()
	anon.AuthData["anonymous"] = map[string]any{"id": "uuid"}

	require.True(t, IsLinked(anon, "anonymous"))
	require.False(t, IsLinked(anon, "facebook"))

	// A password breaks pure-anonymous linkage.
	withPass := anon.Clone()
	withPass.Password = "secret"
	require.False(t, IsLinked(withPass, "anonymous"))

	// Other providers do not care about the password.
	fb := NewUser()
	fb.Password = "secret"
	fb.AuthData["facebook"] = map[string]any{"id": "fb-1"}
	require.True(t, IsLinked(fb, "facebook"))

	require.False(t, IsLinked(nil, "anonymous"))
	require.False(t, IsLinked(NewUser(), "anonymous"))
}

func TestUser_ApplyBody_Merges(t *testing.T) {
	u := NewUser()
	u.UserName = "local-name"
	u.Fields["color"] = "green"

	u.applyBody(map[string]any{
		"objectId":     "X",
		"sessionToken": "T",
		"createDate":   "2026-01-01T00:00:00.000Z",
		"authData": map[string]any{
			"anonymous": map[string]any{"id": "uuid"},
		},
	})

	require.Equal(t, "X", u.ObjectID)
	require.Equal(t, "T", u.SessionToken)
	require.Equal(t, "local-name", u.UserName, "absent fields must survive the merge")
	require.Equal(t, "green", u.Fields["color"])
	require.Equal(t, "2026-01-01T00:00:00.000Z", u.Fields["createDate"])
	require.Equal(t, map[string]any{"id": "uuid"}, u.AuthData["anonymous"])
}

func TestUser_ApplyBody_AuthDataMergesPerTag(t *testing.T) {
	u := NewUser()
	u.AuthData["google"] = map[string]any{"id": "g-1"}

	u.applyBody(map[string]any{
		"authData": map[string]any{
			"facebook": map[string]any{"id": "fb-1"},
		},
	})

	require.Equal(t, map[string]any{"id": "g-1"}, u.AuthData["google"])
	require.Equal(t, map[string]any{"id": "fb-1"}, u.AuthData["facebook"])
}

func TestUser_ApplyBody_Lenient(t *testing.T) {
	u := NewUser()
	// Wrong types are ignored; a password from the wire is ignored by policy.
	u.applyBody(map[string]any{
		"objectId": 42,
		"authData": "not-a-map",
		"password": "never-from-server",
	})

	require.Empty(t, u.ObjectID)
	require.Empty(t, u.AuthData)
	require.Empty(t, u.Password)
}

func TestUser_SnapshotRoundTrip(t *testing.T) {
	u := NewUser()
	u.ObjectID = "X"
	u.UserName = "alice"
	u.SessionToken = "T"
	u.AuthData["anonymous"] = map[string]any{"id": "uuid"}
	u.Fields["createDate"] = "2026-01-01T00:00:00.000Z"

	data, err := marshalSnapshot(u)
	require.NoError(t, err)

	got, err := unmarshalSnapshot(data)
	require.NoError(t, err)
	require.Equal(t, u.ObjectID, got.ObjectID)
	require.Equal(t, u.UserName, got.UserName)
	require.Equal(t, u.SessionToken, got.SessionToken)
	require.Equal(t, u.AuthData, got.AuthData)
	require.Equal(t, u.Fields, got.Fields)
}

func TestUser_CloneIsIndependent(t *testing.T) {
	u := NewUser()
	u.AuthData["anonymous"] = map[string]any{"id": "uuid"}

	c := u.Clone()
	c.AuthData["anonymous"]["id"] = "other"
	c.Fields["k"] = "v"

	require.Equal(t, "uuid", u.AuthData["anonymous"]["id"])
	require.Empty(t, u.Fields)
	require.Nil(t, (*User)(nil).Clone())
}
