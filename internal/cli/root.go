// Package cli holds the todoapi command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/config"
	"github.com/BuzzLyutic/todo-api/internal/logging"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "todoapi",
	Short:         "ToDo and User CRUD API",
	Long:          `todoapi serves a JSON API for ToDo items and Users backed by memory, PostgreSQL or SQLite.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"overrides log.level from the config")
}

// setUp loads the config and builds the logger shared by every command.
func setUp() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
