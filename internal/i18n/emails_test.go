package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationEmail(t *testing.T) {
	t.Parallel()

	content := VerificationEmail("en", "Alice", "http://localhost:3000/verify-email?token=abc", 24)

	assert.Equal(t, "Verify Your Email Address", content.Subject)
	assert.Contains(t, content.Text, "Hello Alice,")
	assert.Contains(t, content.Text, "http://localhost:3000/verify-email?token=abc")
	assert.Contains(t, content.Text, "expire in 24 hours")
	assert.Contains(t, content.HTML, `<a href="http://localhost:3000/verify-email?token=abc">`)
	assert.NotContains(t, content.Text, "{name}")
	assert.NotContains(t, content.HTML, "{link}")
}

func TestVerificationEmail_NameFallback(t *testing.T) {
	t.Parallel()

	content := VerificationEmail("en", "", "http://example.com/v", 24)
	assert.Contains(t, content.Text, "Hello there,")

	content = VerificationEmail("en", "   ", "http://example.com/v", 24)
	assert.Contains(t, content.Text, "Hello there,")
}

func TestVerificationEmail_German(t *testing.T) {
	t.Parallel()

	content := VerificationEmail("de", "Alice", "http://example.com/v", 24)
	assert.Equal(t, "E-Mail-Adresse verifizieren", content.Subject)
	assert.Contains(t, content.Text, "Hallo Alice,")
	assert.Contains(t, content.Text, "24 Stunden")
}

func TestPasswordResetEmail(t *testing.T) {
	t.Parallel()

	content := PasswordResetEmail("en", "Bob", "http://localhost:3000/reset-password?token=xyz", 1)

	assert.Equal(t, "Reset Your Password", content.Subject)
	assert.Contains(t, content.Text, "Hello Bob,")
	assert.Contains(t, content.Text, "http://localhost:3000/reset-password?token=xyz")
	assert.Contains(t, content.Text, "expire in 1 hour(s)")
}

func TestEmailsFallBackToEnglishForUnknownLocale(t *testing.T) {
	t.Parallel()

	unknown := VerificationEmail("fr", "Alice", "http://example.com/v", 24)
	english := VerificationEmail("en", "Alice", "http://example.com/v", 24)
	assert.Equal(t, english, unknown)
}
