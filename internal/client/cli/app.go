package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/yashwakde/promptvault/internal/client/api"
	"github.com/yashwakde/promptvault/internal/client/config"
	"github.com/yashwakde/promptvault/internal/client/mirror"
	"github.com/yashwakde/promptvault/internal/client/models"
	"github.com/yashwakde/promptvault/internal/client/session"
	"github.com/yashwakde/promptvault/internal/logging"
)

// App wires the shared HTTP client, the session store, and the mirror
// together and drives the REPL. One App exists per process; the client
// and session store instances are shared, never reconstructed per call.
type App struct {
	config  *config.Config
	client  api.Client
	mirror  *mirror.Mirror
	session *session.Store
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu         sync.Mutex
	statusUser *models.User
	// lastList is the most recently rendered prompt list; export indexes
	// into it.
	lastList []models.Prompt
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	m, err := mirror.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "opening session mirror failed", "error", err, "path", cfg.DatabasePath)
		return nil, err
	}

	// The credential is read from the mirror on every request, so a
	// token rotated by login/verify is used by the very next call.
	client := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, func() string {
		return m.Credential(context.Background())
	})

	store := session.New(client, m, log)

	a := &App{
		config:  cfg,
		client:  client,
		mirror:  m,
		session: store,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	// Status-line equivalent of the web client's navbar: follow every
	// session broadcast.
	store.Subscribe(a.setStatusUser)

	return a, nil
}

func (a *App) setStatusUser(u *models.User) {
	a.mu.Lock()
	a.statusUser = u
	a.mu.Unlock()
}

func (a *App) currentUser() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.statusUser
}

func (a *App) setLastList(prompts []models.Prompt) {
	a.mu.Lock()
	a.lastList = prompts
	a.mu.Unlock()
}

func (a *App) lastListSnapshot() []models.Prompt {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastList
}

// Run restores the session in the background, exactly like the web
// client's profile fetch on mount, and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	go a.session.Restore(ctx)

	a.Root(ctx)
}

func (a *App) Close() {
	if err := a.client.Close(); err != nil {
		a.log.Warn(context.Background(), "closing api client failed", "error", err)
	}
	if err := a.mirror.Close(); err != nil {
		a.log.Warn(context.Background(), "closing mirror failed", "error", err)
	}
}
