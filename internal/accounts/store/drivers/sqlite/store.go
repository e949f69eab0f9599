package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/tuskhq/gatehouse/internal/accounts/store"

	sqlite3 "modernc.org/sqlite"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so the repos can run
// against either.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Every pooled connection to :memory: would otherwise get its own
	// empty database.
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling
// commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Rollback is safe to call after commit, so defer it unconditionally
	// to cover panics and early error returns.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Accounts() store.Accounts { return &accountsRepo{db: s.db} }
func (s *Store) Sessions() store.Sessions { return &sessionsRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// SQLite extended result codes for uniqueness violations.
const (
	sqliteConstraint           = 19
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// mapConflict translates a unique-constraint violation into
// store.ErrAlreadyExists. The constraint is the authoritative duplicate
// check; concurrent inserts race to it rather than to a prior read.
func mapConflict(err error) error {
	if err == nil {
		return nil
	}

	var se *sqlite3.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqliteConstraint, sqliteConstraintPrimaryKey, sqliteConstraintUnique:
			return store.ErrAlreadyExists
		}
	}
	return err
}
