package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yashwakde/promptvault/internal/common"
)

// stubText replaces getSimpleText with a queue of answers, one per call.
func stubText(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected text prompt #%d", i+1)
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func stubPasswordInput(t *testing.T, pw []byte) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), pw...), nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func TestRegister_Success(t *testing.T) {
	f := &fakeClient{registerResp: map[string]any{"message": "ok"}}
	a, out := newTestApp(t, f, "")

	stubText(t, "alice", "alice@example.org", "12345")
	stubPasswordInput(t, []byte("secret"))

	require.NoError(t, a.Register(context.Background()))
	require.Equal(t, "alice", f.lastRegister.Username)
	require.Equal(t, "alice@example.org", f.lastRegister.Email)
	require.Equal(t, "secret", f.lastRegister.Password)
	require.Equal(t, "12345", f.lastRegister.Phone)
	require.Contains(t, out.String(), "verify")
}

func TestRegister_MissingFields(t *testing.T) {
	f := &fakeClient{}
	a, _ := newTestApp(t, f, "")

	stubText(t, "", "alice@example.org", "")
	stubPasswordInput(t, []byte("secret"))

	err := a.Register(context.Background())
	require.ErrorIs(t, err, common.ErrValidation)
	// no request must have been issued
	require.Empty(t, f.lastRegister.Email)
}

func TestVerify_NoPending(t *testing.T) {
	a, _ := newTestApp(t, &fakeClient{}, "")

	err := a.Verify(context.Background())
	require.ErrorIs(t, err, common.ErrNoPendingRegistration)
}

func TestVerify_PrefillsPendingEmail(t *testing.T) {
	f := &fakeClient{
		registerResp: map[string]any{"user": map[string]any{"username": "alice"}},
		verifyResp:   map[string]any{"token": "tok", "user": map[string]any{"_id": "u1", "username": "alice"}},
	}
	a, out := newTestApp(t, f, "\n")

	ctx := context.Background()
	stubText(t, "alice", "alice@example.org", "")
	stubPasswordInput(t, []byte("secret"))
	require.NoError(t, a.Register(ctx))

	// verify page: empty email keeps the prefill, then the code
	stubText(t, "123456")
	require.NoError(t, a.Verify(ctx))

	require.True(t, a.session.IsAuthenticated())
	require.Contains(t, out.String(), "Verified and logged in.")
}

func TestLogin_Success(t *testing.T) {
	f := &fakeClient{
		loginResp: map[string]any{"token": "tok", "user": map[string]any{"_id": "u1", "username": "alice"}},
	}
	a, out := newTestApp(t, f, "")

	stubText(t, "alice@example.org")
	stubPasswordInput(t, []byte("secret"))

	require.NoError(t, a.Login(context.Background()))
	require.Contains(t, out.String(), "Welcome back, alice!")
	require.NotNil(t, a.currentUser())
}

func TestLogin_Failure(t *testing.T) {
	wantErr := errors.New("invalid credentials")
	a, _ := newTestApp(t, &fakeClient{loginErr: wantErr}, "")

	stubText(t, "alice@example.org")
	stubPasswordInput(t, []byte("wrong"))

	require.ErrorIs(t, a.Login(context.Background()), wantErr)
	require.False(t, a.session.IsAuthenticated())
}

func TestLogout(t *testing.T) {
	f := &fakeClient{
		loginResp: map[string]any{"token": "tok", "user": map[string]any{"_id": "u1", "username": "alice"}},
	}
	a, out := newTestApp(t, f, "")

	stubText(t, "alice@example.org")
	stubPasswordInput(t, []byte("secret"))
	require.NoError(t, a.Login(context.Background()))

	require.NoError(t, a.Logout(context.Background()))
	require.Contains(t, out.String(), "Logged out.")
	require.Nil(t, a.currentUser())
	require.False(t, a.session.IsAuthenticated())
}
