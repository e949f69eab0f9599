package store

import (
	"context"
	"errors"

	"github.com/tuskhq/gatehouse/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Accounts() Accounts
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn
	// returns an error and committing otherwise. Prefer this over Tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// CreateAccount inserts a new account (id is provided by the app via
	// ULID). Returns ErrAlreadyExists when the email is already taken;
	// the unique index is the authoritative conflict check.
	CreateAccount(ctx context.Context, a domain.Account) error

	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail looks up by normalized email.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// UpdateName mutates first and/or last name and bumps updated_at.
	// Empty strings leave the corresponding column untouched.
	UpdateName(ctx context.Context, accountID, firstName, lastName string) error

	// UpdateVerifier replaces the password hash and salt together and
	// bumps updated_at.
	UpdateVerifier(ctx context.Context, accountID, hash, salt string) error
}

type Sessions interface {
	// CreateSession persists a new session keyed by its opaque token.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSession returns a live session joined with its account
	// projection. Absent and expired rows both yield ErrNotFound.
	GetSession(ctx context.Context, token string) (domain.Session, error)

	// DeleteSession removes a session, reporting whether a row was
	// actually deleted. Idempotent.
	DeleteSession(ctx context.Context, token string) (bool, error)

	// DeleteExpiredSessions is housekeeping; expiry correctness never
	// depends on it.
	DeleteExpiredSessions(ctx context.Context) error
}
