package sqlite

import (
	"context"
	"time"

	"github.com/tuskhq/gatehouse/internal/accounts/domain"
)

type sessionsRepo struct {
	db dbtx
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, account_id, created_at, expires_at)
		VALUES (?, ?, ?, ?)`,
		s.Token, s.AccountID, s.CreatedAt, s.ExpiresAt,
	)
	return mapConflict(err)
}

// GetSession returns the session joined with its owning account. Expired
// rows are filtered out here so callers never see them, even before
// housekeeping removes them.
func (r *sessionsRepo) GetSession(ctx context.Context, token string) (domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT s.id, s.account_id, s.created_at, s.expires_at,
		       a.email, a.first_name, a.last_name, a.created_at
		FROM sessions s
		JOIN accounts a ON a.id = s.account_id
		WHERE s.id = ? AND s.expires_at > ?`,
		token, time.Now().UTC(),
	)

	var s domain.Session
	err := row.Scan(
		&s.Token, &s.AccountID, &s.CreatedAt, &s.ExpiresAt,
		&s.Account.Email, &s.Account.FirstName, &s.Account.LastName, &s.Account.CreatedAt,
	)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	s.Account.ID = s.AccountID
	return s, nil
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, token string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, token)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, time.Now().UTC())
	return err
}
