// Package models defines the canonical records the client works with.
// The backend is Mongo-backed and historically inconsistent about field
// names, so both record types coalesce "_id" into ID and keep unrecognized
// server fields in an Extra map that survives serialization round trips.
package models

import "encoding/json"

// User is the canonical authenticated-user record.
type User struct {
	ID       string
	Username string
	Email    string
	Phone    string

	// Extra carries server fields the client does not interpret.
	Extra map[string]any
}

// knownUserKeys are the payload keys lifted into typed fields.
var knownUserKeys = map[string]struct{}{
	"id": {}, "_id": {}, "username": {}, "email": {}, "phone": {},
}

// UserFromMap builds a User from a decoded JSON object. Returns nil when
// m is nil.
func UserFromMap(m map[string]any) *User {
	if m == nil {
		return nil
	}
	u := &User{
		ID:       stringField(m, "id", "_id"),
		Username: stringField(m, "username"),
		Email:    stringField(m, "email"),
		Phone:    stringField(m, "phone"),
	}
	for k, v := range m {
		if _, ok := knownUserKeys[k]; ok {
			continue
		}
		if u.Extra == nil {
			u.Extra = make(map[string]any)
		}
		u.Extra[k] = v
	}
	return u
}

func (u *User) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if parsed := UserFromMap(m); parsed != nil {
		*u = *parsed
	}
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(u.Extra)+4)
	for k, v := range u.Extra {
		m[k] = v
	}
	if u.ID != "" {
		m["id"] = u.ID
	}
	if u.Username != "" {
		m["username"] = u.Username
	}
	if u.Email != "" {
		m["email"] = u.Email
	}
	if u.Phone != "" {
		m["phone"] = u.Phone
	}
	return json.Marshal(m)
}

// stringField returns the first of the given keys holding a string value.
func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
