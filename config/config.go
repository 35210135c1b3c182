package config

import (
	"errors"
	"os"
	"time"
)

// Config is loaded once at startup and passed explicitly into every service.
type Config struct {
	Port   string
	DBPath string

	// JWT
	JWTSecret string
	TokenTTL  time.Duration

	// Base URL embedded in verification mails
	PublicBaseURL string

	// SMTP relay; when Host is empty, mail falls back to log-only delivery
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
}

// Load reads configuration from the environment. The signing secret and the
// database path have no fallback: missing values fail startup rather than the
// first request that needs them.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBPath:        os.Getenv("DB_PATH"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      parseDuration(getEnv("TOKEN_TTL", "168h")),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		MailFrom:      getEnv("MAIL_FROM", "no-reply@localhost"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}
	if cfg.DBPath == "" {
		return nil, errors.New("DB_PATH environment variable is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 7 * 24 * time.Hour
	}
	return d
}
