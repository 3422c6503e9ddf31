// Package mirror is the durable local copy of session state: the bearer
// credential, the last-known user record, and the pending-registration
// echo held between register and verify. It exists so a restart can render
// a logged-in state before the backend revalidates; it is never the
// source of truth once a revalidation has succeeded.
//
// Reads are best-effort: a missing row or an unparseable stored value is
// reported as absent, never as a failure. Writes that change related keys
// together (credential + cached user) run in one transaction.
package mirror

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/yashwakde/promptvault/internal/client/models"
)

// Key names are preserved from the original web client's local storage so
// the stored state stays recognizable across versions.
const (
	keyCredential   = "pv_token"
	keyCurrentUser  = "currentUser"
	keyPendingEcho  = "pendingRegistration"
	keyPendingEmail = "pendingEmail"
)

type Mirror struct {
	db *sql.DB
}

// Open opens (creating if needed) the mirror database at path.
// Use ":memory:" for tests.
func Open(ctx context.Context, path string) (*Mirror, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening mirror db: %w", err)
	}
	m := &Mirror{db: db}
	if err := m.init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return m, nil
}

// New wraps an already-open database. The caller owns the handle.
func New(ctx context.Context, db *sql.DB) (*Mirror, error) {
	m := &Mirror{db: db}
	if err := m.init(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mirror) init(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session_state (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("initializing mirror schema: %w", err)
	}
	return nil
}

func (m *Mirror) Close() error {
	return m.db.Close()
}

// dbtx is the subset of database/sql shared by *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func get(ctx context.Context, db dbtx, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM session_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbtx, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func del(ctx context.Context, db dbtx, keys ...string) error {
	for _, key := range keys {
		if _, err := db.ExecContext(ctx, `DELETE FROM session_state WHERE key = ?`, key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}
	return nil
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on error or panic.
func (m *Mirror) withTx(ctx context.Context, fn func(tx dbtx) error) (err error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()
	return fn(tx)
}

// SaveSession writes the credential and cached user together. A nil user
// removes the cached record.
func (m *Mirror) SaveSession(ctx context.Context, credential string, user *models.User) error {
	return m.withTx(ctx, func(tx dbtx) error {
		if err := set(ctx, tx, keyCredential, []byte(credential)); err != nil {
			return err
		}
		if user == nil {
			return del(ctx, tx, keyCurrentUser)
		}
		b, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("serializing cached user: %w", err)
		}
		return set(ctx, tx, keyCurrentUser, b)
	})
}

// SaveUser updates only the cached user record, keeping the credential.
func (m *Mirror) SaveUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return del(ctx, m.db, keyCurrentUser)
	}
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serializing cached user: %w", err)
	}
	return set(ctx, m.db, keyCurrentUser, b)
}

// LoadSession reads the stored credential and cached user. Absent values
// come back as "" and nil; a cached user that fails to parse is treated
// as absent.
func (m *Mirror) LoadSession(ctx context.Context) (string, *models.User, error) {
	cred, err := get(ctx, m.db, keyCredential)
	if err != nil {
		return "", nil, err
	}

	raw, err := get(ctx, m.db, keyCurrentUser)
	if err != nil {
		return string(cred), nil, err
	}
	var user *models.User
	if len(raw) > 0 {
		var u models.User
		if err := json.Unmarshal(raw, &u); err == nil {
			user = &u
		}
	}
	return string(cred), user, nil
}

// Credential reads only the stored bearer credential, best-effort: any
// failure reads as absent. The HTTP adapter consults this on every
// request so a rotated credential is picked up immediately.
func (m *Mirror) Credential(ctx context.Context) string {
	cred, err := get(ctx, m.db, keyCredential)
	if err != nil {
		return ""
	}
	return string(cred)
}

// ClearSession removes the credential and cached user together. Pending
// registration keys are left alone.
func (m *Mirror) ClearSession(ctx context.Context) error {
	return m.withTx(ctx, func(tx dbtx) error {
		return del(ctx, tx, keyCredential, keyCurrentUser)
	})
}

// SavePendingRegistration stores the registrant's email and the raw
// register response between register and verify. It overwrites any
// previous pending state; there is no expiry.
func (m *Mirror) SavePendingRegistration(ctx context.Context, email string, echo any) error {
	return m.withTx(ctx, func(tx dbtx) error {
		if err := set(ctx, tx, keyPendingEmail, []byte(email)); err != nil {
			return err
		}
		b, err := json.Marshal(echo)
		if err != nil {
			return fmt.Errorf("serializing pending registration: %w", err)
		}
		return set(ctx, tx, keyPendingEcho, b)
	})
}

// PendingRegistration returns the stored email and decoded register echo.
// Both are zero when absent; a corrupt echo is treated as absent.
func (m *Mirror) PendingRegistration(ctx context.Context) (string, any, error) {
	email, err := get(ctx, m.db, keyPendingEmail)
	if err != nil {
		return "", nil, err
	}
	raw, err := get(ctx, m.db, keyPendingEcho)
	if err != nil {
		return string(email), nil, err
	}
	var echo any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &echo)
	}
	return string(email), echo, nil
}

// ClearPendingRegistration removes the pending keys, used on verify
// success.
func (m *Mirror) ClearPendingRegistration(ctx context.Context) error {
	return m.withTx(ctx, func(tx dbtx) error {
		return del(ctx, tx, keyPendingEcho, keyPendingEmail)
	})
}
