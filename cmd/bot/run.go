package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/diegoclair/meeting-alarm-bot/internal/app"
	"github.com/diegoclair/meeting-alarm-bot/internal/config"
	"github.com/diegoclair/meeting-alarm-bot/internal/logger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the bot and the alarm scheduler",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, err := logger.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		a, err := app.New(cmd.Context(), cfg, log)
		if err != nil {
			log.Error("init failed", zap.Error(err))
			return err
		}
		return a.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
