package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSigner_IssueAndVerify(t *testing.T) {
	t.Parallel()

	signer := NewTokenSigner([]byte("super-secret"))

	token, err := signer.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, ok := signer.Verify(token)
	require.True(t, ok)
	assert.Equal(t, "user-123", userID)
}

func TestTokenSigner_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewTokenSigner([]byte("right-secret")).Issue("u1")
	require.NoError(t, err)

	userID, ok := NewTokenSigner([]byte("wrong-secret")).Verify(token)
	assert.False(t, ok)
	assert.Empty(t, userID)
}

func TestTokenSigner_Malformed(t *testing.T) {
	t.Parallel()

	signer := NewTokenSigner([]byte("k"))

	for _, input := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		userID, ok := signer.Verify(input)
		assert.False(t, ok, "input %q should not verify", input)
		assert.Empty(t, userID)
	}
}

func TestTokenSigner_VerifyFailuresLookIdentical(t *testing.T) {
	t.Parallel()

	signer := NewTokenSigner([]byte("k"))
	foreign, err := NewTokenSigner([]byte("other")).Issue("u1")
	require.NoError(t, err)

	badSigID, badSigOK := signer.Verify(foreign)
	garbageID, garbageOK := signer.Verify("garbage")

	assert.Equal(t, badSigOK, garbageOK)
	assert.Equal(t, badSigID, garbageID)
}
