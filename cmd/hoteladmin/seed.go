package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/pkordes/hotel-admin/backend/internal/seed"
)

func seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create records from a YAML fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Fixture file (YAML)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runSeed(cmd *cobra.Command, file string) (err error) {
	ctx := context.Background()

	fixture, err := seed.Load(file)
	if err != nil {
		return err
	}
	collections, store, err := openCollections(ctx)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, store.Close()) }()

	counts, err := seed.Apply(ctx, collections, fixture)
	for _, name := range slices.Sorted(maps.Keys(counts)) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records\n", name, counts[name])
	}
	return err
}
