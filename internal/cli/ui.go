package cli

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/violetkit/violet/internal/app"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the component gallery",
	Long:  "Launch the violet component gallery, a terminal UI showcasing every registered component under the active theme.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGallery()
	},
}

func runGallery() error {
	if !hasTTY() {
		return errors.New("the gallery requires an interactive terminal")
	}

	k, err := configuredKit()
	if err != nil {
		return err
	}

	program := tea.NewProgram(app.NewGallery(k), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
