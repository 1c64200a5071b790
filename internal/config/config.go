// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends accepted by STORE_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

// Error policies accepted by ERROR_POLICY.
const (
	// PolicyStrict surfaces every store failure to the caller.
	PolicyStrict = "strict"
	// PolicyLenient logs and swallows list/create/delete failures, returning
	// an empty list or a silent no-op; update failures still propagate.
	PolicyLenient = "lenient"
)

// Config holds all configuration values for the API server and the CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (the dashboard dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StoreBackend selects the document store: postgres, sqlite or memory.
	// Defaults to "postgres".
	StoreBackend string

	// DatabaseURL is the Postgres connection string. Required for the postgres backend.
	DatabaseURL string

	// SQLitePath is the database file for the sqlite backend.
	// Defaults to "./data/hoteladmin.db".
	SQLitePath string

	// AutoMigrate applies pending migrations when the store is opened.
	// Defaults to true.
	AutoMigrate bool

	// Collections is the allow-list of collection names reachable over HTTP.
	Collections []string

	// ErrorPolicy is "strict" (default) or "lenient".
	ErrorPolicy string

	// AdminEmail is the only identity allowed to sign in. Empty disables the
	// session gate entirely.
	AdminEmail string

	// AdminPasswordHash is the bcrypt hash of the admin password.
	// Required when AdminEmail is set.
	AdminPasswordHash string

	// SessionTTL is how long a signed-in session stays active. Defaults to 12h.
	SessionTTL time.Duration

	// MaxBodyBytes caps request body sizes. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// AuthEnabled reports whether requests must carry an active session.
func (c Config) AuthEnabled() bool {
	return c.AdminEmail != ""
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or the
// first value that fails to parse.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigins:       splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StoreBackend:      strings.ToLower(getEnv("STORE_BACKEND", BackendPostgres)),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		SQLitePath:        getEnv("SQLITE_PATH", "./data/hoteladmin.db"),
		Collections:       splitCSV(getEnv("COLLECTIONS", "accommodations,bookings,reservations,users")),
		ErrorPolicy:       strings.ToLower(getEnv("ERROR_POLICY", PolicyStrict)),
		AdminEmail:        strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	var err error
	if cfg.AutoMigrate, err = strconv.ParseBool(getEnv("AUTO_MIGRATE", "true")); err != nil {
		return Config{}, fmt.Errorf("invalid AUTO_MIGRATE: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "12h")); err != nil {
		return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil {
		return Config{}, fmt.Errorf("invalid MAX_BODY_BYTES: %w", err)
	}

	switch cfg.StoreBackend {
	case BackendPostgres, BackendSQLite, BackendMemory:
	default:
		return Config{}, fmt.Errorf("invalid STORE_BACKEND %q (supported: postgres, sqlite, memory)", cfg.StoreBackend)
	}
	switch cfg.ErrorPolicy {
	case PolicyStrict, PolicyLenient:
	default:
		return Config{}, fmt.Errorf("invalid ERROR_POLICY %q (supported: strict, lenient)", cfg.ErrorPolicy)
	}

	var missing []string

	if cfg.StoreBackend == BackendPostgres && cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.AuthEnabled() && cfg.AdminPasswordHash == "" {
		missing = append(missing, "ADMIN_PASSWORD_HASH")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LoadDotEnv populates the environment from the given .env files (".env" when
// none are given). Variables already set in the environment win. Missing
// files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", p, err)
		}
	}
	return nil
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
