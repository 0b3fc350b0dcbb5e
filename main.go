package main

import (
	"fmt"
	"os"

	"research-graph/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "research-graph",
	Short: "Paper search, related-paper discovery and grounded chat over a research corpus",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger with default level to load config
		tempLogger, err := config.InitLogger("info", false)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cfg = config.Load(tempLogger)

		// Re-initialize logger with configured level
		logger, err = config.InitLogger(cfg.LogLevel, cfg.LogJSON)
		if err != nil {
			return fmt.Errorf("failed to re-initialize logger with configured level: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		config.Cleanup()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ingestCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
