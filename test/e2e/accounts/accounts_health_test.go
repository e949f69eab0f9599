package accounts_test

import (
	"testing"

	"github.com/tuskhq/gatehouse/pkg/accountsdk"

	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)

	health, err := client.Livez(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)
}

// TestReadyzEndpoint verifies the readiness check endpoint, including the
// database check.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)

	health, err := client.Readyz(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}
