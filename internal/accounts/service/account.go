package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tuskhq/gatehouse/internal/accounts/domain"
	"github.com/tuskhq/gatehouse/internal/accounts/store"
	"github.com/tuskhq/gatehouse/pkg/cryptox"
	"github.com/tuskhq/gatehouse/pkg/idx"
	"github.com/tuskhq/gatehouse/pkg/slogx"
	"github.com/tuskhq/gatehouse/pkg/validate"
)

// AccountService owns the account lifecycle: registration, credential
// checks and profile updates. It never returns or logs verifier material.
type AccountService struct {
	Store store.Store
}

type RegisterParams struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// Register validates all fields, hashes the password and inserts the new
// account. Validation failures are aggregated into a single
// *ValidationError naming every offending field. A duplicate email yields
// ErrEmailTaken; the storage unique index is the authoritative check, the
// preceding lookup only exists to answer the common case cheaply.
func (s *AccountService) Register(ctx context.Context, p RegisterParams) (domain.Profile, error) {
	l := slogx.FromContext(ctx)

	var bad []string
	if !validate.Email(p.Email) {
		bad = append(bad, "email")
	}
	if !validate.Name(p.FirstName) {
		bad = append(bad, "first_name")
	}
	if !validate.Name(p.LastName) {
		bad = append(bad, "last_name")
	}
	if !validate.Password(p.Password) {
		bad = append(bad, "password")
	}
	if len(bad) > 0 {
		return domain.Profile{}, &ValidationError{Fields: bad}
	}

	email := validate.NormalizeEmail(p.Email)

	_, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.Profile{}, ErrEmailTaken
	case !errors.Is(err, store.ErrNotFound):
		return domain.Profile{}, err
	}

	hash, salt, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.Profile{}, err
	}

	now := time.Now().UTC()
	a := domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		FirstName:    strings.TrimSpace(p.FirstName),
		LastName:     strings.TrimSpace(p.LastName),
		PasswordHash: hash,
		PasswordSalt: salt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Accounts().CreateAccount(ctx, a); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost the check-then-insert race; same answer as the lookup.
			return domain.Profile{}, ErrEmailTaken
		}
		return domain.Profile{}, err
	}

	l.Info("account registered", "account_id", a.ID)
	return a.Profile(), nil
}

// Authenticate checks a credential pair. An unknown email and a wrong
// password are both reported as ok=false with no error, so callers cannot
// enumerate accounts from the response. The skipped hash derivation for
// unknown emails leaves a timing difference; accepted as a residual risk.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (domain.Profile, bool, error) {
	a, err := s.Store.Accounts().GetAccountByEmail(ctx, validate.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, false, nil
		}
		return domain.Profile{}, false, err
	}

	ok, err := cryptox.VerifyPassword(password, a.PasswordHash, a.PasswordSalt)
	if err != nil {
		return domain.Profile{}, false, err
	}
	if !ok {
		return domain.Profile{}, false, nil
	}

	return a.Profile(), true, nil
}

// UpdateProfile resolves the session, validates every provided field, then
// applies all staged changes in one transaction. Returns ErrInvalidSession
// when the token does not resolve, ErrNoUpdateFields when the update is
// empty, and an aggregate *ValidationError when any provided field fails
// validation.
func (s *AccountService) UpdateProfile(ctx context.Context, token string, upd domain.ProfileUpdate) (domain.Profile, error) {
	l := slogx.FromContext(ctx)

	sess, err := s.Store.Sessions().GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrInvalidSession
		}
		return domain.Profile{}, err
	}

	if upd.IsEmpty() {
		return domain.Profile{}, ErrNoUpdateFields
	}

	var bad []string
	if upd.FirstName != "" && !validate.Name(upd.FirstName) {
		bad = append(bad, "first_name")
	}
	if upd.LastName != "" && !validate.Name(upd.LastName) {
		bad = append(bad, "last_name")
	}
	if upd.Password != "" && !validate.Password(upd.Password) {
		bad = append(bad, "password")
	}
	if len(bad) > 0 {
		return domain.Profile{}, &ValidationError{Fields: bad}
	}

	var hash, salt string
	if upd.Password != "" {
		if hash, salt, err = cryptox.HashPassword(upd.Password); err != nil {
			return domain.Profile{}, err
		}
	}

	var updated domain.Account
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if upd.FirstName != "" || upd.LastName != "" {
			first := strings.TrimSpace(upd.FirstName)
			last := strings.TrimSpace(upd.LastName)
			if err := tx.Accounts().UpdateName(ctx, sess.AccountID, first, last); err != nil {
				return err
			}
		}
		if upd.Password != "" {
			if err := tx.Accounts().UpdateVerifier(ctx, sess.AccountID, hash, salt); err != nil {
				return err
			}
		}

		var err error
		updated, err = tx.Accounts().GetAccountByID(ctx, sess.AccountID)
		return err
	})
	if err != nil {
		return domain.Profile{}, err
	}

	l.Info("profile updated", "account_id", sess.AccountID,
		"name_changed", upd.FirstName != "" || upd.LastName != "",
		"password_changed", upd.Password != "",
	)
	return updated.Profile(), nil
}
