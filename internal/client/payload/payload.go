// Package payload normalizes the backend's historically inconsistent
// response envelopes into canonical records.
//
// The backend has shipped several response shapes over time: bare arrays,
// {prompts: [...]}, {data: [...]}, user records wrapped in one or two
// levels of {user: ...}/{data: ...}, and tokens under three different
// keys. All functions here are pure and never fail: an unknown shape
// degrades to an empty list, a nil user, or an empty credential, so
// backend format drift cannot crash the client. The cost is that callers
// cannot distinguish "empty" from "unparseable".
package payload

import (
	"encoding/json"

	"github.com/yashwakde/promptvault/internal/client/models"
)

// FromJSON decodes a raw response body for the normalizer family.
// Undecodable bodies yield nil, which every normalizer treats as absent.
func FromJSON(b []byte) any {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	return v
}

// List extracts a prompt list from v: v itself if it is an array, else
// v.prompts, else v.data. Anything else yields an empty list. Non-object
// array elements are dropped.
func List(v any) []models.Prompt {
	seq := asArray(v)
	if seq == nil {
		if obj, ok := v.(map[string]any); ok {
			if s := asArray(obj["prompts"]); s != nil {
				seq = s
			} else if s := asArray(obj["data"]); s != nil {
				seq = s
			}
		}
	}

	prompts := make([]models.Prompt, 0, len(seq))
	for _, item := range seq {
		if m, ok := item.(map[string]any); ok {
			prompts = append(prompts, *models.PromptFromMap(m))
		}
	}
	return prompts
}

// User extracts a canonical user record from v. The record may sit at the
// top level, under "user" or "data", and may carry one further nested
// "user" wrapper; the first plain object wins. Returns nil when no record
// is found.
func User(v any) *models.User {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	candidate := any(obj)
	if u, ok := obj["user"]; ok && u != nil {
		candidate = u
	} else if d, ok := obj["data"]; ok && d != nil {
		candidate = d
	}

	m, ok := candidate.(map[string]any)
	if !ok {
		return nil
	}
	if inner, ok := m["user"].(map[string]any); ok {
		m = inner
	}
	return models.UserFromMap(m)
}

// Credential extracts a bearer token from v, checking "token", then
// "accessToken", then "data.token"; the first non-empty match wins.
// Returns "" when none is present.
func Credential(v any) string {
	obj, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	if s, ok := obj["token"].(string); ok && s != "" {
		return s
	}
	if s, ok := obj["accessToken"].(string); ok && s != "" {
		return s
	}
	if data, ok := obj["data"].(map[string]any); ok {
		if s, ok := data["token"].(string); ok {
			return s
		}
	}
	return ""
}

func asArray(v any) []any {
	seq, ok := v.([]any)
	if !ok {
		return nil
	}
	return seq
}
