package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/adamanr/budget_planner/internal/config"
	logging "github.com/adamanr/budget_planner/internal/utils"
	"github.com/spf13/cobra"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:           "budget_planner",
	Short:         "Organization budget planning service",
	Long:          "Plan and track budgets across organizations, departments, managers and teams.",
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", config.DefaultPath, "Path to the TOML config file")
	rootCmd.AddCommand(serveCmd, reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the config with a bootstrap logger and then switches to
// the configured one.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.GetConfig(flagConfig, slog.Default())
	if err != nil {
		return nil, nil, err
	}

	level, err := config.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.SetupLogger(cfg.Server.LogFile, level)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}
	slog.SetDefault(logger)

	return cfg, logger, nil
}
