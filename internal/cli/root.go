// Package cli implements the violet command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/violetkit/violet/internal/config"
	"github.com/violetkit/violet/internal/logging"
)

var (
	configPath string
	logLevel   string

	loadedConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "violet",
	Short:         "Violet terminal UI component kit",
	Long:          "Violet is a themeable terminal UI component kit. The demo commands showcase its components, themes, and defaults.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		loadedConfig = cfg

		level := logLevel
		if level == "" {
			level = cfg.LogLevel
		}
		logging.Setup(os.Stderr, level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// GetConfig returns the config loaded during command preflight.
func GetConfig() *config.Config {
	return loadedConfig
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
