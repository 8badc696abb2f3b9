package main

import (
	"github.com/spf13/cobra"

	"github.com/nvollmer/lanbridge/internal/config"
	"github.com/nvollmer/lanbridge/internal/logger"
)

var (
	cfgPath   string
	blockSize int

	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:           "lanbridge",
	Short:         "Copy file trees while preserving permission flags and timestamps",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("block-size") {
			cfg.BlockSize = blockSize
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, err = logger.New(logger.Config{
			Level:  logger.ParseLevel(cfg.Log.Level),
			Format: logger.ParseFormat(cfg.Log.Format),
			File: logger.FileConfig{
				Enabled:    cfg.Log.File.Enabled,
				Path:       config.ExpandPath(cfg.Log.File.Path),
				MaxSizeMB:  cfg.Log.File.MaxSizeMB,
				MaxAgeDays: cfg.Log.File.MaxAgeDays,
				MaxBackups: cfg.Log.File.MaxBackups,
				Compress:   cfg.Log.File.Compress,
			},
		})
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Shutdown()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path")
	rootCmd.PersistentFlags().IntVar(&blockSize, "block-size", config.DefaultBlockSize,
		"read granularity in bytes")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
