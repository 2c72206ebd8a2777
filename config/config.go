package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"contact-relay-backend/pkg/sheets"

	"github.com/joho/godotenv"
)

// RelayPath is the same-origin route the relay listens on.
const RelayPath = "/api/sheets"

type Config struct {
	Port string
	// Deployed Apps Script web app URL (https://script.google.com/macros/s/<id>/exec)
	SheetsAPIURL string
	// Relay Configuration
	RelayMaxBodyBytes int64
	UpstreamTimeout   time.Duration
	// CORS Configuration
	CORSAllowedOrigins []string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds  int
	RateLimitRelayThreshold int
	// Security Configuration
	SecurityLogFile string // Optional rotating file sink for security events
	Production      bool
}

func LoadConfig() (*Config, error) {
	// Load .env file (only useful locally, ignored in production when the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "3000"),
		SheetsAPIURL: SheetsAPIURLFromEnv(),
		// Relay Configuration
		RelayMaxBodyBytes: int64(getEnvInt("RELAY_MAX_BODY_BYTES", 64<<10)), // 64 KiB is far above any form payload
		UpstreamTimeout:   time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 0)) * time.Second,
		// CORS Configuration
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),  // 1 minute window
		RateLimitRelayThreshold: getEnvInt("RATE_LIMIT_RELAY_THRESHOLD", 20), // 20 submissions per window
		// Security Configuration
		SecurityLogFile: getEnv("SECURITY_LOG_FILE", ""),
		Production:      getEnv("GIN_MODE", "") == "release",
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// SheetsAPIURLFromEnv reads the spreadsheet URL. The frontend build shares
// its .env with the relay, so the Vite-prefixed name is accepted too.
func SheetsAPIURLFromEnv() string {
	if url := strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_API_URL")); url != "" {
		return url
	}
	return strings.TrimSpace(os.Getenv("VITE_GOOGLE_SHEETS_API_URL"))
}

// SheetsEndpoint parses the configured spreadsheet URL. The relay refuses to
// start when this fails.
func (c *Config) SheetsEndpoint() (*sheets.Endpoint, error) {
	endpoint, err := sheets.ParseEndpoint(c.SheetsAPIURL)
	if err != nil {
		return nil, fmt.Errorf("GOOGLE_SHEETS_API_URL: %w", err)
	}
	return endpoint, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated environment variable, dropping empty items
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
