package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib" // also registers "pgx" for database/sql
	_ "github.com/mattn/go-sqlite3"  // registers "sqlite3" for database/sql

	"github.com/pkordes/hotel-admin/backend/internal/config"
	"github.com/pkordes/hotel-admin/backend/migrations"
)

// Store is the process-wide document store handle: a DocumentRepo plus the
// connection resources behind it. Build it once at startup, share it, and
// Close it on shutdown.
type Store struct {
	Documents DocumentRepo
	Backend   string
	closeFn   func() error
}

// Close releases the connections held by the store.
func (s *Store) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// Open creates the Store selected by cfg.StoreBackend:
//
//	"postgres" - pgx pool on cfg.DatabaseURL
//	"sqlite"   - SQLite database at cfg.SQLitePath
//	"memory"   - in-memory (ephemeral, for demos and tests)
//
// SQL backends are migrated first when cfg.AutoMigrate is set.
func Open(ctx context.Context, cfg config.Config) (*Store, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		return openPostgres(ctx, cfg)
	case config.BackendSQLite:
		return openSQLite(ctx, cfg)
	case config.BackendMemory:
		return &Store{Documents: NewMemoryDocumentRepo(), Backend: config.BackendMemory}, nil
	default:
		return nil, fmt.Errorf("repo.Open: unknown store backend %q", cfg.StoreBackend)
	}
}

func openPostgres(ctx context.Context, cfg config.Config) (*Store, error) {
	// New() does not open connections immediately; Ping verifies reachability.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("repo.Open: create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("repo.Open: ping postgres: %w", err)
	}

	if cfg.AutoMigrate {
		sqlDB := stdlib.OpenDBFromPool(pool)
		_, err := migrations.Up(ctx, migrations.DialectPostgres, sqlDB)
		sqlDB.Close()
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("repo.Open: %w", err)
		}
	}

	return &Store{
		Documents: NewDocumentRepo(pool),
		Backend:   config.BackendPostgres,
		closeFn: func() error {
			pool.Close()
			return nil
		},
	}, nil
}

func openSQLite(ctx context.Context, cfg config.Config) (*Store, error) {
	sqlDB, err := OpenSQLite(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if _, err := migrations.Up(ctx, migrations.DialectSQLite, sqlDB); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("repo.Open: %w", err)
		}
	}
	return &Store{
		Documents: NewSQLiteDocumentRepo(sqlDB),
		Backend:   config.BackendSQLite,
		closeFn:   sqlDB.Close,
	}, nil
}

// OpenSQLite opens (creating if needed) the SQLite database at path with WAL
// journaling and a busy timeout. ":memory:" opens a private in-memory database
// pinned to a single connection.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("repo.OpenSQLite: create data dir: %w", err)
		}
	}
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("repo.OpenSQLite: open: %w", err)
	}
	if path == ":memory:" {
		// Every new connection would get its own empty database.
		sqlDB.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 30000;",
		"PRAGMA journal_mode = WAL;",
	}
	for _, pragma := range pragmas {
		if _, err := sqlDB.ExecContext(ctx, pragma); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("repo.OpenSQLite: setting pragma %q: %w", pragma, err)
		}
	}
	return sqlDB, nil
}

// OpenMigrationDB returns a database/sql handle and goose dialect for the SQL
// backend in cfg, for running migrations outside of Open (the CLI's migrate
// command). The memory backend has nothing to migrate.
func OpenMigrationDB(ctx context.Context, cfg config.Config) (*sql.DB, migrations.Dialect, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		sqlDB, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return nil, "", fmt.Errorf("repo.OpenMigrationDB: open: %w", err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			sqlDB.Close()
			return nil, "", fmt.Errorf("repo.OpenMigrationDB: ping: %w", err)
		}
		return sqlDB, migrations.DialectPostgres, nil
	case config.BackendSQLite:
		sqlDB, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, "", err
		}
		return sqlDB, migrations.DialectSQLite, nil
	default:
		return nil, "", errors.New("repo.OpenMigrationDB: the memory backend has no schema to migrate")
	}
}
