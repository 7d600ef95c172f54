package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/repo"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	Long:  `Runs the goose migrations for PostgreSQL or gorm auto-migration for SQLite. The memory store has no schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setUp()
		if err != nil {
			return err
		}
		defer logger.Sync()

		logger.Info("Running migrations...", zap.String("driver", cfg.Store.Driver))
		store, err := repo.Open(cmd.Context(), cfg.Store, true, logger)
		if err != nil {
			return err
		}
		store.Close()

		logger.Info("Migrations complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
