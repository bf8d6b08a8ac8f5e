package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"resource-directory/internal/config"
	"resource-directory/internal/database"
	"resource-directory/internal/logger"
)

var (
	cfg  *config.Config
	logr *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dirctl",
	Short: "Resource directory maintenance",
	Long:  "Creates the directory schema and loads category and resource fixtures into the configured database.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		logr = logger.New(cfg)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logr != nil {
			logr.Sync()
		}
	},
	SilenceUsage: true,
}

// openDB connects with the loaded config and logs which backend is in use.
func openDB() (*bun.DB, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}
	logr.Debug("database connected", zap.String("dialect", db.Dialect().Name().String()))
	return db, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
