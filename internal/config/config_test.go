package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/app")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.Equal(t, "logs/server.log", cfg.LogFile)
	assert.Equal(t, 587, cfg.Email.Port)
	assert.Equal(t, "BacChat", cfg.Email.SenderName)
	assert.False(t, cfg.Email.Enabled())
}

func TestLoad_RequiredVars(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")
	_, err := Load()
	assert.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/app")
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoad_StripsQuotes(t *testing.T) {
	setRequired(t)
	// Values pasted into .env files often keep their quotes.
	t.Setenv("JWT_SECRET", `"secret"`)
	t.Setenv("SMTP_HOST", "'smtp.example.com'")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.JWTSecret)
	assert.Equal(t, "smtp.example.com", cfg.Email.Host)
}

func TestLoad_EmailEnabled(t *testing.T) {
	setRequired(t)
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SENDER_EMAIL", "noreply@example.com")
	t.Setenv("SMTP_SECURE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Email.Enabled())
	assert.Equal(t, 465, cfg.Email.Port)
	assert.True(t, cfg.Email.Secure)
}

func TestLoad_BadSMTPPortFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 587, cfg.Email.Port)
}
