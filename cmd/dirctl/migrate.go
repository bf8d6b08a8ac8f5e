package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resource-directory/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create directory tables and indexes",
	Long:  "Creates every directory table and index that does not exist yet. Safe to run repeatedly.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.CreateSchema(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		logr.Info("directory schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
