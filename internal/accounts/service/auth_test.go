package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	accounts, _, auth := newTestServices(t)

	_, err := accounts.Register(ctx, validRegistration())
	require.NoError(t, err)

	t.Run("valid credentials issue a session", func(t *testing.T) {
		profile, sess, err := auth.Login(ctx, "ann@example.com", "Abcdef1!")
		require.NoError(t, err)
		require.Equal(t, "ann@example.com", profile.Email)
		require.NotEmpty(t, sess.Token)
		require.Equal(t, profile.ID, sess.AccountID)
	})

	t.Run("unknown email and wrong password fail identically", func(t *testing.T) {
		_, _, err := auth.Login(ctx, "ghost@example.com", "Abcdef1!")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = auth.Login(ctx, "ann@example.com", "Wrongpw1!")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	accounts, _, auth := newTestServices(t)

	_, err := accounts.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, sess, err := auth.Login(ctx, "ann@example.com", "Abcdef1!")
	require.NoError(t, err)

	t.Run("missing token is a validation failure", func(t *testing.T) {
		err := auth.Logout(ctx, "")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("logout revokes the session", func(t *testing.T) {
		require.NoError(t, auth.Logout(ctx, sess.Token))

		_, err := auth.WhoAmI(ctx, sess.Token)
		require.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("second logout reports not found", func(t *testing.T) {
		err := auth.Logout(ctx, sess.Token)
		require.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestWhoAmI(t *testing.T) {
	ctx := context.Background()
	accounts, _, auth := newTestServices(t)

	registered, err := accounts.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, sess, err := auth.Login(ctx, "ann@example.com", "Abcdef1!")
	require.NoError(t, err)

	t.Run("live session resolves to the account", func(t *testing.T) {
		profile, err := auth.WhoAmI(ctx, sess.Token)
		require.NoError(t, err)
		require.Equal(t, registered.ID, profile.ID)
		require.Equal(t, "ann@example.com", profile.Email)
	})

	t.Run("unknown token rejected", func(t *testing.T) {
		_, err := auth.WhoAmI(ctx, "bogus")
		require.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("empty token rejected", func(t *testing.T) {
		_, err := auth.WhoAmI(ctx, "")
		require.ErrorIs(t, err, ErrInvalidSession)
	})
}

// Full end-to-end scenario from the service layer's point of view:
// register, duplicate register, login, whoami, logout, whoami again.
func TestAccountSessionScenario(t *testing.T) {
	ctx := context.Background()
	accounts, _, auth := newTestServices(t)

	registered, err := accounts.Register(ctx, RegisterParams{
		Email: "a@b.com", FirstName: "Ann", LastName: "Lee", Password: "Abcdef1!",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.ID)

	_, err = accounts.Register(ctx, RegisterParams{
		Email: "a@b.com", FirstName: "Ann", LastName: "Lee", Password: "Abcdef1!",
	})
	require.ErrorIs(t, err, ErrEmailTaken)

	_, sess, err := auth.Login(ctx, "a@b.com", "Abcdef1!")
	require.NoError(t, err)

	profile, err := auth.WhoAmI(ctx, sess.Token)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", profile.Email)

	require.NoError(t, auth.Logout(ctx, sess.Token))

	_, err = auth.WhoAmI(ctx, sess.Token)
	require.ErrorIs(t, err, ErrInvalidSession)
}
