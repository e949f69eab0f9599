package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. N/r/p follow the interactive-login recommendation;
// the derived key length matches what the schema stores.
const (
	saltLength = 16
	keyLength  = 64

	scryptN = 32768
	scryptR = 8
	scryptP = 1
)

// HashPassword derives a verifier from a plaintext password using scrypt
// with a freshly generated random salt. Hash and salt are returned
// base64-encoded, ready for storage. The plaintext is never persisted.
func HashPassword(password string) (hash, salt string, err error) {
	rawSalt := make([]byte, saltLength)
	if _, err := rand.Read(rawSalt); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), rawSalt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", "", fmt.Errorf("failed to derive key: %w", err)
	}

	return base64.StdEncoding.EncodeToString(key),
		base64.StdEncoding.EncodeToString(rawSalt),
		nil
}

// VerifyPassword re-derives a key from the plaintext and the stored salt and
// compares it against the stored hash in constant time. A wrong password is
// reported as (false, nil); an error is returned only when the stored values
// are malformed or the primitive itself fails.
func VerifyPassword(password, storedHash, storedSalt string) (bool, error) {
	rawSalt, err := base64.StdEncoding.DecodeString(storedSalt)
	if err != nil {
		return false, fmt.Errorf("failed to decode salt: %w", err)
	}
	expected, err := base64.StdEncoding.DecodeString(storedHash)
	if err != nil {
		return false, fmt.Errorf("failed to decode hash: %w", err)
	}

	key, err := scrypt.Key([]byte(password), rawSalt, scryptN, scryptR, scryptP, len(expected))
	if err != nil {
		return false, fmt.Errorf("failed to derive key: %w", err)
	}

	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}
