package service

import (
	"context"
	"errors"
	"time"

	"github.com/tuskhq/gatehouse/internal/accounts/domain"
	"github.com/tuskhq/gatehouse/internal/accounts/store"
	"github.com/tuskhq/gatehouse/pkg/cryptox"
)

// DefaultSessionTTL is the fixed lifetime of a session unless overridden
// via configuration.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionService issues, resolves and revokes opaque session tokens.
// Tokens carry 256 bits of entropy and are stored verbatim as the row key;
// expiry is checked lazily on every read, so a stale row is inert even
// before housekeeping removes it.
type SessionService struct {
	Store store.Store
	TTL   time.Duration
}

// ttl returns the configured lifetime, defaulting when unset. A negative
// TTL is honored and mints already-expired sessions; tests use this to
// exercise lazy expiry.
func (s *SessionService) ttl() time.Duration {
	if s.TTL == 0 {
		return DefaultSessionTTL
	}
	return s.TTL
}

// Create issues a fresh session for the account and persists it.
func (s *SessionService) Create(ctx context.Context, accountID string) (domain.Session, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.Session{}, err
	}

	now := time.Now().UTC()
	sess := domain.Session{
		Token:     token,
		AccountID: accountID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl()),
	}

	if err := s.Store.Sessions().CreateSession(ctx, sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// Get resolves a token to a live session with the owning account joined
// in. Absent and expired tokens are both reported as ok=false; callers
// cannot tell them apart.
func (s *SessionService) Get(ctx context.Context, token string) (domain.Session, bool, error) {
	sess, err := s.Store.Sessions().GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, false, nil
		}
		return domain.Session{}, false, err
	}

	// The driver already filters expired rows; double-check here so a
	// driver that doesn't cannot hand out a stale session.
	if sess.Expired(time.Now().UTC()) {
		return domain.Session{}, false, nil
	}

	return sess, true, nil
}

// Delete revokes a session, reporting whether anything was removed.
// Deleting an already-absent token is not an error.
func (s *SessionService) Delete(ctx context.Context, token string) (bool, error) {
	return s.Store.Sessions().DeleteSession(ctx, token)
}
