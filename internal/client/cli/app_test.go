package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yashwakde/promptvault/internal/client/api"
	"github.com/yashwakde/promptvault/internal/client/mirror"
	"github.com/yashwakde/promptvault/internal/client/models"
	"github.com/yashwakde/promptvault/internal/client/session"
	"github.com/yashwakde/promptvault/internal/logging"
)

// ---- fakes ----

type fakeClient struct {
	registerResp any
	registerErr  error
	lastRegister api.RegisterRequest

	verifyResp any
	verifyErr  error

	loginResp any
	loginErr  error

	logoutErr error

	profileResp any
	profileErr  error

	createResp any
	createErr  error
	lastCreate api.CreatePromptRequest

	allPrompts []models.Prompt
	allErr     error

	myPrompts  []models.Prompt
	myErr      error
	lastUserID string
}

func (f *fakeClient) Register(_ context.Context, req api.RegisterRequest) (any, error) {
	f.lastRegister = req
	return f.registerResp, f.registerErr
}

func (f *fakeClient) VerifyEmail(_ context.Context, _ api.VerifyRequest) (any, error) {
	return f.verifyResp, f.verifyErr
}

func (f *fakeClient) Login(_ context.Context, _ api.LoginRequest) (any, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeClient) Logout(context.Context) error { return f.logoutErr }

func (f *fakeClient) FetchProfile(context.Context) (any, error) {
	return f.profileResp, f.profileErr
}

func (f *fakeClient) CreatePrompt(_ context.Context, req api.CreatePromptRequest) (any, error) {
	f.lastCreate = req
	return f.createResp, f.createErr
}

func (f *fakeClient) AllPrompts(context.Context) ([]models.Prompt, error) {
	return f.allPrompts, f.allErr
}

func (f *fakeClient) MyPrompts(_ context.Context, userID string) ([]models.Prompt, error) {
	f.lastUserID = userID
	return f.myPrompts, f.myErr
}

func (f *fakeClient) Close() error { return nil }

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newTestApp wires an App around a fake client, an in-memory mirror,
// scripted stdin and a captured output buffer.
func newTestApp(t *testing.T, f *fakeClient, input string) (*App, *bytes.Buffer) {
	t.Helper()

	m, err := mirror.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	store := session.New(f, m, discardLogger())

	out := &bytes.Buffer{}
	a := &App{
		client:  f,
		mirror:  m,
		session: store,
		log:     discardLogger(),
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     out,
	}
	store.Subscribe(a.setStatusUser)
	return a, out
}

func TestGetStatus(t *testing.T) {
	a, _ := newTestApp(t, &fakeClient{}, "")

	require.Equal(t, "", a.getStatus())

	a.setStatusUser(&models.User{Username: "alice"})
	require.Equal(t, "(alice)", a.getStatus())

	a.setStatusUser(&models.User{Email: "a@x.com"})
	require.Equal(t, "(a@x.com)", a.getStatus())

	a.setStatusUser(nil)
	require.Equal(t, "", a.getStatus())
}

func TestLastList(t *testing.T) {
	a, _ := newTestApp(t, &fakeClient{}, "")

	require.Empty(t, a.lastListSnapshot())

	prompts := []models.Prompt{{ID: "p1", Title: "one"}}
	a.setLastList(prompts)
	require.Equal(t, prompts, a.lastListSnapshot())
}
