package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string
	JWTSecret    string
	TokenTTL     time.Duration
	CORSOrigins  []string
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	ttl := 30 * time.Minute
	if minutes, err := strconv.Atoi(getEnv("TOKEN_TTL_MINUTES", "30")); err == nil && minutes > 0 {
		ttl = time.Duration(minutes) * time.Minute
	}

	return &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./banco.db"),
		JWTSecret:    secret,
		TokenTTL:     ttl,
		CORSOrigins:  parseCSV(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
