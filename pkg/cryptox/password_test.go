package cryptox

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 64)},
		{"empty password", ""},
		{"unicode password", "пароль密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, salt, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)
			require.NotEmpty(t, salt)

			rawSalt, err := base64.StdEncoding.DecodeString(salt)
			require.NoError(t, err)
			require.Len(t, rawSalt, saltLength)

			rawKey, err := base64.StdEncoding.DecodeString(hash)
			require.NoError(t, err)
			require.Len(t, rawKey, keyLength)
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	password := "samepassword"

	hash1, salt1, err := HashPassword(password)
	require.NoError(t, err)

	hash2, salt2, err := HashPassword(password)
	require.NoError(t, err)

	// Fresh salt every call, so identical passwords never produce
	// identical stored values.
	require.NotEqual(t, salt1, salt2, "salts should be unique per call")
	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
}

func TestVerifyPassword(t *testing.T) {
	password := "Correct-Horse-Battery-1"
	hash, salt, err := HashPassword(password)
	require.NoError(t, err)

	t.Run("correct password matches", func(t *testing.T) {
		ok, err := VerifyPassword(password, hash, salt)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("wrong password is false, not an error", func(t *testing.T) {
		ok, err := VerifyPassword("Wrong-Horse-Battery-1", hash, salt)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("wrong salt fails verification", func(t *testing.T) {
		_, otherSalt, err := HashPassword(password)
		require.NoError(t, err)

		ok, err := VerifyPassword(password, hash, otherSalt)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("malformed stored salt is an error", func(t *testing.T) {
		_, err := VerifyPassword(password, hash, "not-base64!!!")
		require.Error(t, err)
	})

	t.Run("malformed stored hash is an error", func(t *testing.T) {
		_, err := VerifyPassword(password, "not-base64!!!", salt)
		require.Error(t, err)
	})
}
