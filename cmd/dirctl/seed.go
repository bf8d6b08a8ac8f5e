package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"resource-directory/internal/database"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a YAML fixture",
	Long:  "Inserts the categories and resources of a YAML fixture in one transaction. Nothing is written if any row fails.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		fixture, err := database.LoadFixture(seedFile)
		if err != nil {
			return err
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := database.Seed(ctx, db, fixture)
		if err != nil {
			return fmt.Errorf("seed %s: %w", seedFile, err)
		}

		logr.Info("fixture loaded",
			zap.String("file", seedFile),
			zap.Int("categories", stats.Categories),
			zap.Int("resources", stats.Resources),
			zap.Int("services", stats.Services))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "data/fixtures.yaml", "path to the YAML fixture")
	rootCmd.AddCommand(seedCmd)
}
