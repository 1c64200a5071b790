// Package migrations embeds the SQL migration files so they can be applied
// by the goose programmatic API at startup, from the CLI, and in tests.
// Each supported SQL backend has its own directory because the column types
// differ (JSONB on Postgres, JSON text on SQLite).
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Postgres holds the migrations for the postgres document store.
var Postgres = mustSub("postgres")

// SQLite holds the migrations for the sqlite document store.
var SQLite = mustSub("sqlite")

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		panic("migrations: " + err.Error())
	}
	return sub
}
