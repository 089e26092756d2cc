package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port        string
	BaseURL     string
	DatabaseURL string
	JWTSecret   string
	LogFile     string
	Email       EmailConfig
}

type EmailConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	SenderName string
	Secure     bool
}

func (e EmailConfig) Enabled() bool {
	return e.Host != "" && e.Port != 0 && e.From != ""
}

func Load() (Config, error) {
	clean := func(val string) string {
		return strings.Trim(val, "\"' \t\r\n")
	}

	rawPort := strings.Trim(getenvDefault("SMTP_PORT", "587"), "\"' ")
	smtpPort, err := strconv.Atoi(rawPort)
	if err != nil {
		smtpPort = 587
	}

	cfg := Config{
		Port:        getenvDefault("PORT", "8080"),
		BaseURL:     getenvDefault("FRONTEND_URL", "http://localhost:3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   clean(os.Getenv("JWT_SECRET")),
		LogFile:     getenvDefault("LOG_FILE", "logs/server.log"),
	}

	cfg.Email = EmailConfig{
		Host:       clean(os.Getenv("SMTP_HOST")),
		Port:       smtpPort,
		Username:   clean(os.Getenv("SMTP_USER")),
		Password:   clean(os.Getenv("SMTP_PASS")),
		From:       clean(os.Getenv("SENDER_EMAIL")),
		SenderName: getenvDefault("SENDER_NAME", "BacChat"),
		Secure:     parseBool(os.Getenv("SMTP_SECURE")),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func parseBool(val string) bool {
	if val == "" {
		return false
	}
	val = strings.ToLower(strings.Trim(val, "\"' "))
	return val == "1" || val == "true" || val == "yes"
}
