package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkordes/hotel-admin/backend/internal/domain"
)

func recordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "List, create, update or delete records directly in the store",
	}
	cmd.AddCommand(recordsListCmd())
	cmd.AddCommand(recordsCreateCmd())
	cmd.AddCommand(recordsUpdateCmd())
	cmd.AddCommand(recordsDeleteCmd())
	return cmd
}

func recordsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <collection>",
		Short: "Print every record of a collection as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx := context.Background()
			collections, store, err := openCollections(ctx)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, store.Close()) }()

			records, err := collections.List(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, records)
		},
	}
}

func recordsCreateCmd() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "create <collection>",
		Short: "Create a record from a JSON object and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			fields, err := parseFields(data)
			if err != nil {
				return err
			}
			ctx := context.Background()
			collections, store, err := openCollections(ctx)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, store.Close()) }()

			created, err := collections.Create(ctx, args[0], fields)
			if err != nil {
				return err
			}
			return printJSON(cmd, created)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", `Fields as a JSON object, e.g. '{"name":"Alice"}'`)
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func recordsUpdateCmd() *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "update <collection> <id>",
		Short: "Merge-overwrite fields of a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			fields, err := parseFields(data)
			if err != nil {
				return err
			}
			ctx := context.Background()
			collections, store, err := openCollections(ctx)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, store.Close()) }()

			if err := collections.Update(ctx, args[0], args[1], fields); err != nil {
				return err
			}
			cmd.Printf("updated %s/%s\n", args[0], args[1])
			return nil
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "Fields to overwrite as a JSON object")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func recordsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <collection> <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx := context.Background()
			collections, store, err := openCollections(ctx)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, store.Close()) }()

			if err := collections.Delete(ctx, args[0], args[1]); err != nil {
				return err
			}
			cmd.Printf("deleted %s/%s\n", args[0], args[1])
			return nil
		},
	}
}

func parseFields(data string) (domain.Fields, error) {
	var fields domain.Fields
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return nil, fmt.Errorf("--data must be a JSON object: %w", err)
	}
	if fields == nil {
		return nil, errors.New("--data must be a JSON object")
	}
	return fields, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
