package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateSessionToken returns the opaque bearer value stored in the session
// cookie. Tokens must be unguessable: 32 bytes from crypto/rand, hex encoded.
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
