package accounts_test

import (
	"testing"

	"github.com/tuskhq/gatehouse/pkg/accountsdk"

	"github.com/stretchr/testify/require"
)

// TestAccountLifecycle drives the full register, login, whoami, update,
// logout flow against a real container.
func TestAccountLifecycle(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := accountsdk.NewClient(baseURL)

	profile, err := client.Register(ctx, annRegistration())
	require.NoError(t, err)
	require.NotEmpty(t, profile.ID)
	require.Equal(t, "ann@example.com", profile.Email)

	login, err := client.Login(ctx, "ann@example.com", "Abcdef1!")
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)
	require.Equal(t, profile.ID, login.Account.ID)

	me, err := client.Me(ctx, login.Token)
	require.NoError(t, err)
	require.Equal(t, profile.ID, me.ID)

	updated, err := client.UpdateProfile(ctx, login.Token, accountsdk.UpdateProfileRequest{
		FirstName: "Anna",
	})
	require.NoError(t, err)
	require.Equal(t, "Anna", updated.FirstName)
	require.Equal(t, "Lee", updated.LastName)

	require.NoError(t, client.Logout(ctx, login.Token))

	_, err = client.Me(ctx, login.Token)
	var apiErr *accountsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.True(t, apiErr.IsAuth())
}

// TestDuplicateRegistration verifies the email uniqueness guarantee across
// a real database.
func TestDuplicateRegistration(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := accountsdk.NewClient(baseURL)

	_, err := client.Register(ctx, annRegistration())
	require.NoError(t, err)

	reg := annRegistration()
	reg.Email = "  ANN@Example.com "
	_, err = client.Register(ctx, reg)

	var apiErr *accountsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.True(t, apiErr.IsConflict())
}

// TestPasswordRotation verifies a password change invalidates the old
// credential but keeps existing sessions working.
func TestPasswordRotation(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := accountsdk.NewClient(baseURL)

	_, err := client.Register(ctx, annRegistration())
	require.NoError(t, err)

	login, err := client.Login(ctx, "ann@example.com", "Abcdef1!")
	require.NoError(t, err)

	_, err = client.UpdateProfile(ctx, login.Token, accountsdk.UpdateProfileRequest{
		Password: "Newpass1!",
	})
	require.NoError(t, err)

	// Old password is dead, new one works.
	_, err = client.Login(ctx, "ann@example.com", "Abcdef1!")
	var apiErr *accountsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.True(t, apiErr.IsAuth())

	_, err = client.Login(ctx, "ann@example.com", "Newpass1!")
	require.NoError(t, err)

	// The session issued before the rotation is still valid.
	_, err = client.Me(ctx, login.Token)
	require.NoError(t, err)
}

// TestSessionsAreIndependent verifies concurrent sessions for one account
// revoke independently.
func TestSessionsAreIndependent(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := accountsdk.NewClient(baseURL)

	_, err := client.Register(ctx, annRegistration())
	require.NoError(t, err)

	first, err := client.Login(ctx, "ann@example.com", "Abcdef1!")
	require.NoError(t, err)
	second, err := client.Login(ctx, "ann@example.com", "Abcdef1!")
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)

	require.NoError(t, client.Logout(ctx, first.Token))

	_, err = client.Me(ctx, first.Token)
	require.Error(t, err)

	_, err = client.Me(ctx, second.Token)
	require.NoError(t, err)
}
