package service

import (
	"context"

	"github.com/tuskhq/gatehouse/internal/accounts/domain"
	"github.com/tuskhq/gatehouse/pkg/slogx"
)

// AuthService composes the account and session services into the
// operations the router consumes: login, logout and whoami.
type AuthService struct {
	Accounts *AccountService
	Sessions *SessionService
}

// Login authenticates the credential pair and issues a session. A failed
// authentication is always ErrInvalidCredentials, never anything more
// specific.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Profile, domain.Session, error) {
	l := slogx.FromContext(ctx)

	profile, ok, err := s.Accounts.Authenticate(ctx, email, password)
	if err != nil {
		return domain.Profile{}, domain.Session{}, err
	}
	if !ok {
		l.Info("login rejected")
		return domain.Profile{}, domain.Session{}, ErrInvalidCredentials
	}

	sess, err := s.Sessions.Create(ctx, profile.ID)
	if err != nil {
		return domain.Profile{}, domain.Session{}, err
	}

	l.Info("login succeeded", "account_id", profile.ID)
	return profile, sess, nil
}

// Logout revokes the session. A missing token is a validation failure; an
// unknown token is ErrSessionNotFound so a client can tell a no-op logout
// apart from a successful one.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return &ValidationError{Reason: "missing session token"}
	}

	deleted, err := s.Sessions.Delete(ctx, token)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSessionNotFound
	}

	slogx.FromContext(ctx).Info("logout succeeded")
	return nil
}

// WhoAmI resolves a session token to the owning account's public
// projection. Any token that does not resolve to a live session yields
// ErrInvalidSession.
func (s *AuthService) WhoAmI(ctx context.Context, token string) (domain.Profile, error) {
	if token == "" {
		return domain.Profile{}, ErrInvalidSession
	}

	sess, ok, err := s.Sessions.Get(ctx, token)
	if err != nil {
		return domain.Profile{}, err
	}
	if !ok {
		return domain.Profile{}, ErrInvalidSession
	}

	return sess.Account, nil
}
