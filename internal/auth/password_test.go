package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, hasher.Compare(hash, "password123"))
	assert.False(t, hasher.Compare(hash, "password124"))
	assert.False(t, hasher.Compare("", "password123"))
}
