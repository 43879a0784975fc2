package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	var mode modeFlags

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive checklist",
		Long: "Open the full-screen checklist. Move with the arrow keys, toggle a factor\n" +
			"with space, switch pilot type with p and experience with e.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mode.apply(context.Background(), cmd.Flags(), app.Assessment); err != nil {
				return err
			}
			return runChecklistTUI(cmd, app)
		},
	}

	mode.register(cmd.Flags())

	return cmd
}

// runChecklistTUI runs the checklist until the user quits, then prints the
// summary of the final state.
func runChecklistTUI(cmd *cobra.Command, app *App) error {
	run := app.RunTUI
	if run == nil {
		run = func(m tea.Model) (tea.Model, error) {
			return tea.NewProgram(m, tea.WithAltScreen()).Run()
		}
	}

	if _, err := run(newChecklistModel(app.Assessment)); err != nil {
		return fmt.Errorf("checklist: %w", err)
	}
	return writeReport(cmd.OutOrStdout(), app.Assessment.Report(), formatText)
}
