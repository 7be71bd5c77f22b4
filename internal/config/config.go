// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables. It is built once
// in main and passed explicitly into the components that need it — no package
// holds ambient global configuration.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// WebBaseURL is the public base URL of the frontend. Required.
	// Confirmation redirects point at "{WebBaseURL}/trips/{tripId}".
	WebBaseURL string

	// APIBaseURL is the public base URL of this API. Required.
	// Confirmation links in emails point at
	// "{APIBaseURL}/participants/{participantId}/confirm".
	APIBaseURL string

	// MailFromName and MailFromAddress form the fixed sender identity on
	// every outgoing email.
	MailFromName    string
	MailFromAddress string

	// AWSRegion, AWSAccessKeyID and AWSSecretAccessKey configure the SES
	// mail transport. When the key pair is empty the server falls back to a
	// log-only mailer, so local development needs no AWS account.
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSOrigins:        splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		MailFromName:       getEnv("MAIL_FROM_NAME", "equipe plann.er"),
		MailFromAddress:    getEnv("MAIL_FROM_ADDRESS", "oi@plann.er"),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}

	var missing []string

	for _, v := range []struct {
		name string
		dst  *string
	}{
		{"DATABASE_URL", &cfg.DatabaseURL},
		{"WEB_BASE_URL", &cfg.WebBaseURL},
		{"API_BASE_URL", &cfg.APIBaseURL},
	} {
		*v.dst = strings.TrimSuffix(os.Getenv(v.name), "/")
		if *v.dst == "" {
			missing = append(missing, v.name)
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
