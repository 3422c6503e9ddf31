package payload

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestList_KnownEnvelopes(t *testing.T) {
	item := map[string]any{"title": "t", "description": "d"}

	tests := []struct {
		name string
		in   any
		want int
	}{
		{"bare array", []any{item}, 1},
		{"prompts envelope", map[string]any{"prompts": []any{item, item}}, 2},
		{"data envelope", map[string]any{"data": []any{item}}, 1},
		{"nil", nil, 0},
		{"plain object", map[string]any{"title": "t"}, 0},
		{"string", "oops", 0},
		{"number", 42.0, 0},
		{"prompts not array", map[string]any{"prompts": "x"}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := List(tc.in)
			require.NotNil(t, got)
			require.Len(t, got, tc.want)
		})
	}
}

func TestList_PromptsWinsOverData(t *testing.T) {
	in := map[string]any{
		"prompts": []any{map[string]any{"title": "from-prompts"}},
		"data":    []any{map[string]any{"title": "from-data"}, map[string]any{"title": "x"}},
	}
	got := List(in)
	require.Len(t, got, 1)
	require.Equal(t, "from-prompts", got[0].Title)
}

func TestList_DropsNonObjectElements(t *testing.T) {
	got := List([]any{"junk", map[string]any{"title": "t"}, 7.0})
	require.Len(t, got, 1)
	require.Equal(t, "t", got[0].Title)
}

func TestUser_UnwrapLevels(t *testing.T) {
	record := map[string]any{"id": "u1", "email": "a@x.com"}

	tests := []struct {
		name string
		in   any
	}{
		{"unwrapped", record},
		{"user wrapper", map[string]any{"user": record}},
		{"data wrapper", map[string]any{"data": record}},
		{"user.user", map[string]any{"user": map[string]any{"user": record}}},
		{"data.user", map[string]any{"data": map[string]any{"user": record}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := User(tc.in)
			require.NotNil(t, u)
			require.Equal(t, "u1", u.ID)
			require.Equal(t, "a@x.com", u.Email)
		})
	}
}

func TestUser_UserWinsOverData(t *testing.T) {
	in := map[string]any{
		"user": map[string]any{"id": "from-user"},
		"data": map[string]any{"id": "from-data"},
	}
	require.Equal(t, "from-user", User(in).ID)
}

func TestUser_NoRecord(t *testing.T) {
	require.Nil(t, User(nil))
	require.Nil(t, User("str"))
	require.Nil(t, User([]any{map[string]any{"id": "u1"}}))
	require.Nil(t, User(map[string]any{"user": "not-an-object"}))
}

func TestCredential_Priority(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"token wins", map[string]any{"token": "a", "accessToken": "b"}, "a"},
		{"accessToken beats data.token", map[string]any{"accessToken": "b", "data": map[string]any{"token": "c"}}, "b"},
		{"data.token fallback", map[string]any{"data": map[string]any{"token": "c"}}, "c"},
		{"absent", map[string]any{"user": map[string]any{"id": "u1"}}, ""},
		{"not an object", "tok", ""},
		{"nil", nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Credential(tc.in))
		})
	}
}

func TestFromJSON(t *testing.T) {
	require.Equal(t, map[string]any{"a": 1.0}, FromJSON([]byte(`{"a":1}`)))
	require.Nil(t, FromJSON([]byte(`{broken`)))
	require.Nil(t, FromJSON(nil))
}
