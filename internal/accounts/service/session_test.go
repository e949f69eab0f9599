package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	accounts, sessions, _ := newTestServices(t)

	profile, err := accounts.Register(ctx, validRegistration())
	require.NoError(t, err)

	sess, err := sessions.Create(ctx, profile.ID)
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	require.GreaterOrEqual(t, len(sess.Token), 43, "token must carry at least 256 bits of entropy")
	require.Equal(t, profile.ID, sess.AccountID)
	require.Equal(t, DefaultSessionTTL, sess.ExpiresAt.Sub(sess.CreatedAt))

	// Immediately resolvable with the account joined in.
	got, ok, err := sessions.Get(ctx, sess.Token)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, profile.Email, got.Account.Email)
	require.Equal(t, profile.ID, got.Account.ID)

	// Delete revokes; a second delete reports nothing removed.
	deleted, err := sessions.Delete(ctx, sess.Token)
	require.NoError(t, err)
	require.True(t, deleted)

	_, ok, err = sessions.Get(ctx, sess.Token)
	require.NoError(t, err)
	require.False(t, ok)

	deleted, err = sessions.Delete(ctx, sess.Token)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestSessionTokensAreUnique(t *testing.T) {
	ctx := context.Background()
	accounts, sessions, _ := newTestServices(t)

	profile, err := accounts.Register(ctx, validRegistration())
	require.NoError(t, err)

	// An account may hold multiple concurrent sessions, each with its
	// own token.
	seen := make(map[string]struct{})
	for range 5 {
		sess, err := sessions.Create(ctx, profile.ID)
		require.NoError(t, err)
		_, dup := seen[sess.Token]
		require.False(t, dup, "token reuse")
		seen[sess.Token] = struct{}{}
	}
}

func TestSessionExpiry(t *testing.T) {
	ctx := context.Background()
	accounts, sessionSvc, _ := newTestServices(t)

	profile, err := accounts.Register(ctx, validRegistration())
	require.NoError(t, err)

	// A TTL in the past makes the session expired the moment it exists.
	expired := &SessionService{Store: sessionSvc.Store, TTL: -time.Minute}
	sess, err := expired.Create(ctx, profile.ID)
	require.NoError(t, err)
	require.True(t, sess.Expired(time.Now().UTC()))

	_, ok, err := sessionSvc.Get(ctx, sess.Token)
	require.NoError(t, err)
	require.False(t, ok, "expired session must be treated as absent")

	// The row is still physically present until housekeeping runs.
	deleted, err := sessionSvc.Delete(ctx, sess.Token)
	require.NoError(t, err)
	require.True(t, deleted)
}

func TestSessionTTLOverride(t *testing.T) {
	ctx := context.Background()
	accounts, sessionSvc, _ := newTestServices(t)

	profile, err := accounts.Register(ctx, validRegistration())
	require.NoError(t, err)

	short := &SessionService{Store: sessionSvc.Store, TTL: time.Minute}
	sess, err := short.Create(ctx, profile.ID)
	require.NoError(t, err)
	require.Equal(t, time.Minute, sess.ExpiresAt.Sub(sess.CreatedAt))
}
