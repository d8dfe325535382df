package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/passboard/internal/config"
	"github.com/yigit/passboard/internal/pkg/logger"
	"github.com/yigit/passboard/internal/server"
)

// @title Passboard Dataset API
// @version 1.0
// @description Publishes teacher pass-percentage records for filtering clients
// @BasePath /api/v1

var configPath string

var rootCmd = &cobra.Command{
	Use:           "api",
	Short:         "Serve the teacher performance dataset",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := server.NewServer(configPath)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize server")
			return err
		}

		if err := srv.Run(); err != nil {
			logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
			return err
		}

		logger.Info().Msg("Application finished gracefully.")
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "path to the YAML configuration file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
