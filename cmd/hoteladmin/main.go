// Command hoteladmin is the operator CLI for the hotel admin backend: schema
// migrations, fixture seeding, direct record access and password hashing.
// It reads the same environment (and .env file) as the API server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkordes/hotel-admin/backend/internal/config"
	"github.com/pkordes/hotel-admin/backend/internal/repo"
	"github.com/pkordes/hotel-admin/backend/internal/service"
)

func main() {
	root := &cobra.Command{
		Use:          "hoteladmin",
		Short:        "Operate the hotel admin document store",
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.AddCommand(migrateCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(recordsCmd())
	root.AddCommand(hashPasswordCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads .env (if present) and the environment, and installs a
// text logger on stderr so stdout stays clean for command output.
func loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return cfg, nil
}

// openCollections opens the configured store and returns the strict access
// layer over it. The caller must Close the store.
func openCollections(ctx context.Context) (*service.CollectionService, *repo.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	store, err := repo.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return service.NewCollectionService(store.Documents, slog.Default()), store, nil
}
