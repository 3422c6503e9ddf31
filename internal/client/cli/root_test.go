package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yashwakde/promptvault/internal/client/models"
)

func TestRoot_ExitsOnQuit(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, "")
	a.reader = bufio.NewReader(strings.NewReader("exit\n"))

	a.Root(context.Background())
	require.Contains(t, out.String(), "Bye!")
}

func TestRoot_UnknownCommand(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, "")
	a.reader = bufio.NewReader(strings.NewReader("frobnicate\nexit\n"))

	a.Root(context.Background())
	require.Contains(t, out.String(), "Unknown command: frobnicate")
}

func TestRoot_HelpChangesWithSession(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, "")
	a.reader = bufio.NewReader(strings.NewReader("help\nexit\n"))

	a.Root(context.Background())
	require.Contains(t, out.String(), "register, verify, login")
	require.NotContains(t, out.String(), "myprompts")
}

func TestRoot_DispatchesCommands(t *testing.T) {
	f := &fakeClient{allPrompts: []models.Prompt{{Title: "First", Description: "d"}}}
	a, out := newTestApp(t, f, "")
	a.reader = bufio.NewReader(strings.NewReader("allprompts\nexit\n"))

	a.Root(context.Background())
	require.Contains(t, out.String(), "First")
}

func TestRoot_ExportUsage(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, "")
	a.reader = bufio.NewReader(strings.NewReader("export\nexit\n"))

	a.Root(context.Background())
	require.Contains(t, out.String(), "Usage: export <n>")
}

func TestRoot_PrintsPageErrors(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, "")
	a.reader = bufio.NewReader(strings.NewReader("myprompts\nexit\n"))

	a.Root(context.Background())
	require.Contains(t, out.String(), "not logged in")
}

func TestRoot_EmptyLineIgnored(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, "")
	a.reader = bufio.NewReader(strings.NewReader("\n   \nexit\n"))

	a.Root(context.Background())
	require.NotContains(t, out.String(), "Unknown command")
}
