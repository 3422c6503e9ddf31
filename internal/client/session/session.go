// Package session holds the authoritative in-process answer to "who is
// logged in". It reconciles three overlapping sources of that answer: its
// own in-memory state, the durable mirror, and the backend's profile
// endpoint. The mirror is read once at startup to render an optimistic
// logged-in state; the backend's answer, once it arrives, always wins.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yashwakde/promptvault/internal/client/api"
	"github.com/yashwakde/promptvault/internal/client/mirror"
	"github.com/yashwakde/promptvault/internal/client/models"
	"github.com/yashwakde/promptvault/internal/client/payload"
	"github.com/yashwakde/promptvault/internal/logging"
)

// State is the session lifecycle phase.
type State string

const (
	// StateUnauthenticated: no credential, no trusted user.
	StateUnauthenticated State = "unauthenticated"
	// StateRestoring: a stored credential exists and its revalidation
	// against the backend is in flight.
	StateRestoring State = "restoring"
	// StateAuthenticated: the backend has vouched for the current user.
	StateAuthenticated State = "authenticated"
	// StateAuthFailed: restore-time revalidation failed. Behaves as
	// StateUnauthenticated everywhere; kept distinct for logging.
	StateAuthFailed State = "auth_failed"
)

// Subscriber receives the current user after every change; nil means
// logged out.
type Subscriber func(*models.User)

// Store is the session store. All methods are safe for concurrent use,
// but whole operations are not serialized against each other: a Logout
// issued while a FetchProfile is in flight races, and the later
// completion wins. Callers must not rely on any particular winner.
type Store struct {
	client api.Client
	mirror *mirror.Mirror
	log    logging.Logger

	mu          sync.Mutex
	state       State
	user        *models.User
	credential  string
	loading     bool
	subscribers []Subscriber
}

func New(client api.Client, m *mirror.Mirror, log logging.Logger) *Store {
	return &Store{
		client: client,
		mirror: m,
		log:    log,
		state:  StateUnauthenticated,
		// loading stays up until the first restore attempt resolves.
		loading: true,
	}
}

// ---- snapshot accessors ----

func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateAuthenticated && s.user != nil
}

// Subscribe registers fn to be invoked with the current user after every
// change. The navigation/status line uses this to stay in sync.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// setUser updates user and state together and broadcasts. Callers must
// not hold mu.
func (s *Store) setUser(user *models.User, state State) {
	s.mu.Lock()
	s.user = user
	s.state = state
	subs := append([]Subscriber(nil), s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(user)
	}
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// ---- operations ----

// Restore initializes session state from the mirror, then revalidates
// a stored credential against the backend. With no stored credential it
// settles immediately. With one, the cached user (if any) is shown
// optimistically while the profile fetch runs; on fetch failure both
// credential and cached user are purged from the mirror so a stale
// credential cannot linger.
func (s *Store) Restore(ctx context.Context) {
	cred, cached, err := s.mirror.LoadSession(ctx)
	if err != nil {
		s.log.Warn(ctx, "reading mirrored session failed", "error", err)
	}

	if cred == "" {
		s.setUser(nil, StateUnauthenticated)
		s.setLoading(false)
		return
	}

	s.mu.Lock()
	s.credential = cred
	s.mu.Unlock()
	s.setUser(cached, StateRestoring)

	if expiredCredential(cred) {
		s.log.Debug(ctx, "stored credential already expired, revalidating anyway")
	}

	if _, err := s.FetchProfile(ctx); err != nil {
		s.log.Warn(ctx, "session restore failed", "error", err)
		if err := s.mirror.ClearSession(ctx); err != nil {
			s.log.Error(ctx, "purging stale session from mirror failed", "error", err)
		}
		s.mu.Lock()
		s.credential = ""
		s.mu.Unlock()
		s.setUser(nil, StateAuthFailed)
		return
	}

	s.log.Info(ctx, "session restored", "user_id", s.userID())
}

// Login authenticates against the backend. On success the extracted
// credential and canonical user are written through to the mirror in one
// transaction and the store becomes authenticated. On failure state is
// left untouched and the normalized error is returned; there is no retry.
func (s *Store) Login(ctx context.Context, email, password string) error {
	raw, err := s.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	cred := payload.Credential(raw)
	user := payload.User(raw)

	if err := s.mirror.SaveSession(ctx, cred, user); err != nil {
		s.log.Error(ctx, "mirroring session after login failed", "error", err)
	}

	s.mu.Lock()
	s.credential = cred
	s.mu.Unlock()
	s.setUser(user, StateAuthenticated)
	s.setLoading(false)

	s.log.Info(ctx, "login succeeded", "user_id", s.userID())
	return nil
}

// Register creates an account. Session state is untouched; the register
// echo and email are parked in the mirror for the verify flow.
func (s *Store) Register(ctx context.Context, req api.RegisterRequest) error {
	raw, err := s.client.Register(ctx, req)
	if err != nil {
		return err
	}
	if err := s.mirror.SavePendingRegistration(ctx, req.Email, raw); err != nil {
		s.log.Error(ctx, "saving pending registration failed", "error", err)
	}
	return nil
}

// PendingRegistration exposes the parked register state for the verify
// page (email prefill and echo rendering).
func (s *Store) PendingRegistration(ctx context.Context) (string, any, error) {
	return s.mirror.PendingRegistration(ctx)
}

// VerifyEmail completes registration. When the backend's response carries
// a credential it is applied exactly as a login success would be; the
// pending registration keys are cleared either way on success.
func (s *Store) VerifyEmail(ctx context.Context, email, code string) error {
	raw, err := s.client.VerifyEmail(ctx, api.VerifyRequest{Email: email, Code: code})
	if err != nil {
		return err
	}

	if cred := payload.Credential(raw); cred != "" {
		user := payload.User(raw)
		if err := s.mirror.SaveSession(ctx, cred, user); err != nil {
			s.log.Error(ctx, "mirroring session after verification failed", "error", err)
		}
		s.mu.Lock()
		s.credential = cred
		s.mu.Unlock()
		s.setUser(user, StateAuthenticated)
		s.setLoading(false)
	}

	if err := s.mirror.ClearPendingRegistration(ctx); err != nil {
		s.log.Warn(ctx, "clearing pending registration failed", "error", err)
	}

	s.log.Info(ctx, "email verified", "email", email)
	return nil
}

// FetchProfile revalidates the current user against the backend. Success
// updates the user and the mirrored copy; failure clears the in-memory
// user. The loading flag is cleared on every completion path.
func (s *Store) FetchProfile(ctx context.Context) (*models.User, error) {
	defer s.setLoading(false)

	raw, err := s.client.FetchProfile(ctx)
	if err != nil {
		s.setUser(nil, StateUnauthenticated)
		return nil, err
	}

	user := payload.User(raw)
	if user == nil {
		s.setUser(nil, StateUnauthenticated)
		return nil, nil
	}

	if err := s.mirror.SaveUser(ctx, user); err != nil {
		s.log.Warn(ctx, "mirroring profile failed", "error", err)
	}
	s.setUser(user, StateAuthenticated)
	return user, nil
}

// Logout notifies the backend best-effort, then unconditionally clears
// the credential and user from both the mirror and memory. The backend
// call failing is logged and swallowed; local cleanup must proceed
// regardless of server reachability.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.client.Logout(ctx); err != nil {
		s.log.Warn(ctx, "logout: backend notification failed", "error", err)
	}

	err := s.mirror.ClearSession(ctx)

	s.mu.Lock()
	s.credential = ""
	s.mu.Unlock()
	s.setUser(nil, StateUnauthenticated)
	s.setLoading(false)

	s.log.Info(ctx, "logged out")
	return err
}

func (s *Store) userID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

// expiredCredential peeks at the credential's exp claim without verifying
// the signature; verification is the backend's job. Non-JWT credentials
// and claims we cannot read count as not-expired.
func expiredCredential(cred string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(cred, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
