package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Dialect names a supported SQL backend.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// NewProvider returns a goose provider for the given dialect, reading the
// matching embedded migration set.
func NewProvider(d Dialect, db *sql.DB) (*goose.Provider, error) {
	var (
		gd     goose.Dialect
		source fs.FS
	)
	switch d {
	case DialectPostgres:
		gd, source = goose.DialectPostgres, Postgres
	case DialectSQLite:
		gd, source = goose.DialectSQLite3, SQLite
	default:
		return nil, fmt.Errorf("migrations: unsupported dialect %q", d)
	}
	provider, err := goose.NewProvider(gd, db, source)
	if err != nil {
		return nil, fmt.Errorf("migrations: create goose provider: %w", err)
	}
	return provider, nil
}

// Up applies every pending migration and returns how many were applied.
func Up(ctx context.Context, d Dialect, db *sql.DB) (int, error) {
	provider, err := NewProvider(d, db)
	if err != nil {
		return 0, err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migrations: up: %w", err)
	}
	return len(results), nil
}
