package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// newOpaqueToken returns a hex-encoded 256-bit random value, safe to embed in
// an emailed link. Collisions are left to the unique constraint on the token
// column.
func newOpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
