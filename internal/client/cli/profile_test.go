package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yashwakde/promptvault/internal/common"
)

func TestProfile_NotLoggedIn(t *testing.T) {
	f := &fakeClient{profileResp: map[string]any{"message": "unauthorized"}}
	a, _ := newTestApp(t, f, "")

	err := a.Profile(context.Background())
	require.ErrorIs(t, err, common.ErrNotLoggedIn)
}

func TestProfile_RendersFreshUser(t *testing.T) {
	f := &fakeClient{
		profileResp: map[string]any{"user": map[string]any{
			"_id": "u1", "username": "alice", "email": "a@x.com", "phone": "555",
		}},
	}
	a, out := newTestApp(t, f, "")

	require.NoError(t, a.Profile(context.Background()))

	s := out.String()
	require.Contains(t, s, "alice")
	require.Contains(t, s, "a@x.com")
	require.Contains(t, s, "555")
}

func TestProfile_KeepsCacheOnRefreshFailure(t *testing.T) {
	f := &fakeClient{
		loginResp: map[string]any{"token": "tok", "user": map[string]any{
			"_id": "u1", "username": "alice", "email": "a@x.com",
		}},
		profileErr: errors.New("server down"),
	}
	a, out := newTestApp(t, f, "")

	ctx := context.Background()
	stubText(t, "a@x.com")
	stubPasswordInput(t, []byte("secret"))
	require.NoError(t, a.Login(ctx))

	require.NoError(t, a.Profile(ctx))
	// the cached record was rendered before the refresh failed
	require.Contains(t, out.String(), "a@x.com")
	require.Contains(t, out.String(), "showing cached data")
}
