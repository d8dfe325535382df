// Package main implements the passboard CLI: it loads the teacher performance
// dataset once, narrows it with the given filters and prints the result.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yigit/passboard/internal/config"
	"github.com/yigit/passboard/internal/normalize"
	"github.com/yigit/passboard/internal/pkg/logger"
	"github.com/yigit/passboard/internal/records"
	"github.com/yigit/passboard/internal/source"
)

var (
	configPath string
	verbose    bool

	cfg *config.Config
	lgr zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "passboard",
	Short: "Filter teacher pass-percentage records",
	Long: `passboard loads the teacher performance dataset from the configured
source (JSON file, HTTP URL or Postgres), applies the requested filters
in-process and prints the matching records as a table.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded

		level := cfg.Logging.Level
		if verbose {
			level = string(logger.DebugLevel)
		}
		// stdout carries the rendered result only
		lgr = logger.Configure(logger.ConfigFrom(level, cfg.Logging.Format, os.Stderr))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(optionsCmd)
}

// loadSnapshot performs the single startup fetch. Failures leave the snapshot
// empty and are reported on the log only.
func loadSnapshot(ctx context.Context) (*records.Snapshot, *normalize.Normalizer) {
	normalizer := normalize.New(cfg.Normalization)

	src, err := source.New(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize data source")
		return records.NewSnapshot(nil, normalizer), normalizer
	}

	ctx, cancel := withSourceTimeout(ctx, cfg.Source.Timeout)
	defer cancel()

	return records.Load(ctx, src, normalizer, lgr), normalizer
}

// withSourceTimeout bounds the startup fetch by the configured source
// timeout. Zero means no deadline.
func withSourceTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
