package cli

import (
	"github.com/alexanderramin/frat/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds the assessment and terminal hooks used by CLI commands.
type App struct {
	Assessment service.AssessmentService

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool

	// RunTUI runs a bubbletea model to completion and returns the final
	// model. Nil uses a full-screen tea.Program.
	RunTUI func(m tea.Model) (tea.Model, error)

	// RunForm runs a huh form. Nil uses form.Run.
	RunForm func(f *huh.Form) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "frat" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "frat",
		Short: "Flight risk assessment checklist",
		Long: "Check the applicable factors to assess your flight risk level.\n" +
			"Without a subcommand frat opens the interactive checklist when run in a terminal.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runChecklistTUI(cmd, app)
			}
			return writeReport(cmd.OutOrStdout(), app.Assessment.Report(), formatText)
		},
	}

	root.AddCommand(
		newTUICmd(app),
		newFormCmd(app),
		newAssessCmd(app),
		newFactorsCmd(app),
		newThresholdsCmd(app),
	)

	return root
}
