package infra

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv                string
	Port                  string
	DatabaseURL           string
	GeoIPDBPath           string
	MailAPIKey            string
	MailBaseURL           string
	MailFromAddress       string
	MailFromName          string
	MailSendInterval      time.Duration
	HTTPReadTimeout       time.Duration
	HTTPReadHeaderTimeout time.Duration
	HTTPWriteTimeout      time.Duration
	HTTPIdleTimeout       time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		Port:                  getEnv("PORT", "8080"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		GeoIPDBPath:           os.Getenv("GEOIP_DB_PATH"),
		MailAPIKey:            os.Getenv("MAIL_API_KEY"),
		MailBaseURL:           getEnv("MAIL_BASE_URL", "https://api.resend.com"),
		MailFromAddress:       getEnv("MAIL_FROM_ADDRESS", "noreply@localhost"),
		MailFromName:          getEnv("MAIL_FROM_NAME", "Donation Drives"),
		MailSendInterval:      time.Millisecond * time.Duration(getEnvInt("MAIL_SEND_INTERVAL_MS", 500)),
		HTTPReadTimeout:       time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPReadHeaderTimeout: time.Second * time.Duration(getEnvInt("HTTP_READ_HEADER_TIMEOUT_SECONDS", 5)),
		HTTPWriteTimeout:      time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:       time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

// MailConfigured reports whether an outbound mail provider key is present.
// Ledger and comment-gate behavior never depends on this.
func (c *Config) MailConfigured() bool {
	return c.MailAPIKey != ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
