package sqlite

import (
	"context"
	"time"

	"github.com/tuskhq/gatehouse/internal/accounts/domain"
)

type accountsRepo struct {
	db dbtx
}

const accountColumns = `id, email, first_name, last_name, password_hash, password_salt, created_at, updated_at`

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.FirstName, a.LastName,
		a.PasswordHash, a.PasswordSalt, a.CreatedAt, a.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE email = ?`, email)
	return scanAccount(row)
}

func (r *accountsRepo) UpdateName(ctx context.Context, accountID, firstName, lastName string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET first_name = COALESCE(NULLIF(?, ''), first_name),
		    last_name  = COALESCE(NULLIF(?, ''), last_name),
		    updated_at = ?
		WHERE id = ?`,
		firstName, lastName, time.Now().UTC(), accountID,
	)
	return err
}

func (r *accountsRepo) UpdateVerifier(ctx context.Context, accountID, hash, salt string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET password_hash = ?, password_salt = ?, updated_at = ?
		WHERE id = ?`,
		hash, salt, time.Now().UTC(), accountID,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID, &a.Email, &a.FirstName, &a.LastName,
		&a.PasswordHash, &a.PasswordSalt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}
