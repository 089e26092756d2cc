package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpaqueToken(t *testing.T) {
	t.Parallel()

	token, err := newOpaqueToken()
	require.NoError(t, err)

	// 32 random bytes, hex-encoded.
	assert.Len(t, token, 64)
	_, err = hex.DecodeString(token)
	assert.NoError(t, err)
}

func TestNewOpaqueToken_NoRepeats(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		token, err := newOpaqueToken()
		require.NoError(t, err)
		_, dup := seen[token]
		require.False(t, dup, "token repeated after %d draws", i)
		seen[token] = struct{}{}
	}
}
