package auth

import (
	"encoding/json"
	"fmt"

	"github.com/skyvault/skyvault-go/auth/providers"
)

// User is the session-bearing user record. Besides the well-known fields the
// backend may attach arbitrary extras; those land in Fields so a later save
// round-trips them.
type User struct {
	ObjectID     string                    `json:"objectId,omitempty"`
	UserName     string                    `json:"userName,omitempty"`
	Password     string                    `json:"password,omitempty"`
	SessionToken string                    `json:"sessionToken,omitempty"`
	AuthData     map[string]map[string]any `json:"authData,omitempty"`
	Fields       map[string]any            `json:"fields,omitempty"`
}

// NewUser returns an empty user with initialized maps.
func NewUser() *User {
	return &User{
		AuthData: map[string]map[string]any{},
		Fields:   map[string]any{},
	}
}

// Clone returns an independent copy. AuthData and Fields are copied one
// level deep, which covers every mutation the SDK itself performs.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.AuthData = make(map[string]map[string]any, len(u.AuthData))
	for tag, fields := range u.AuthData {
		inner := make(map[string]any, len(fields))
		for k, v := range fields {
			inner[k] = v
		}
		c.AuthData[tag] = inner
	}
	c.Fields = make(map[string]any, len(u.Fields))
	for k, v := range u.Fields {
		c.Fields[k] = v
	}
	return &c
}

// applyBody merges a server response body onto the user. Existing local
// fields survive unless the server sent a replacement; authData merges per
// provider tag.
func (u *User) applyBody(body map[string]any) {
	if u.AuthData == nil {
		u.AuthData = map[string]map[string]any{}
	}
	if u.Fields == nil {
		u.Fields = map[string]any{}
	}
	for k, v := range body {
		switch k {
		case "objectId":
			if s, ok := v.(string); ok {
				u.ObjectID = s
			}
		case "userName":
			if s, ok := v.(string); ok {
				u.UserName = s
			}
		case "sessionToken":
			if s, ok := v.(string); ok {
				u.SessionToken = s
			}
		case "authData":
			m, ok := v.(map[string]any)
			if !ok {
				continue
			}
			for tag, fields := range m {
				fm, ok := fields.(map[string]any)
				if !ok {
					continue
				}
				u.AuthData[tag] = fm
			}
		case "password":
			// The server never returns a password; ignore defensively.
		default:
			u.Fields[k] = v
		}
	}
}

// IsLinked reports whether the user is linked to the given provider: its tag
// is present in authData. For the anonymous provider a set password also
// breaks linkage, since such a user is no longer purely anonymous.
func IsLinked(u *User, providerTag string) bool {
	if u == nil {
		return false
	}
	if _, ok := u.AuthData[providerTag]; !ok {
		return false
	}
	if providerTag == providers.TagAnonymous && u.Password != "" {
		return false
	}
	return true
}

// marshalSnapshot serializes the user for the local cache. The format is
// internal: the same SDK version reads back what it wrote, nothing more is
// promised.
func marshalSnapshot(u *User) ([]byte, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("marshal user snapshot: %w", err)
	}
	return b, nil
}

func unmarshalSnapshot(data []byte) (*User, error) {
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("unmarshal user snapshot: %w", err)
	}
	return &u, nil
}
