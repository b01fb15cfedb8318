package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/violetkit/violet/internal/app"
	"github.com/violetkit/violet/internal/kit"
)

func init() {
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(defaultsCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List registered themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := configuredKit()
		if err != nil {
			return err
		}
		return writeThemesTable(cmd.OutOrStdout(), k)
	},
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Show global component defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := configuredKit()
		if err != nil {
			return err
		}
		return writeDefaultsTable(cmd.OutOrStdout(), k)
	},
}

func configuredKit() (*kit.Kit, error) {
	opts := app.Options()
	if cfg := GetConfig(); cfg != nil {
		opts = cfg.Apply(opts)
	}

	k, err := kit.New(opts)
	if err != nil {
		return nil, fmt.Errorf("configure kit: %w", err)
	}
	return k, nil
}
