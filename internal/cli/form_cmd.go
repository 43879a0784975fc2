package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/frat/internal/cli/formatter"
	"github.com/alexanderramin/frat/internal/domain"
	"github.com/alexanderramin/frat/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// fratHuhTheme returns a huh theme using the Gruvbox palette.
func fratHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// formSelection receives the answers of the guided form.
type formSelection struct {
	pilot      domain.PilotType
	experience domain.ExperienceBand
	checked    map[domain.Category]*[]string
}

// newFormSelection seeds the answers from the current assessment so the
// form opens on the existing state.
func newFormSelection(svc service.AssessmentService) *formSelection {
	mode := svc.Mode()
	sel := &formSelection{
		pilot:      mode.PilotType,
		experience: mode.ExperienceBand,
		checked:    make(map[domain.Category]*[]string, len(domain.Categories)),
	}
	for _, g := range svc.Groups() {
		ids := []string{}
		for _, f := range g.Factors {
			if f.Active {
				ids = append(ids, f.ID)
			}
		}
		sel.checked[g.Category] = &ids
	}
	return sel
}

// buildAssessmentForm creates the guided form: mode selection followed by
// one multi-select page per category.
func buildAssessmentForm(svc service.AssessmentService, sel *formSelection) *huh.Form {
	pilotOpts := make([]huh.Option[domain.PilotType], 0, len(domain.PilotTypes))
	for _, p := range domain.PilotTypes {
		pilotOpts = append(pilotOpts, huh.NewOption(p.Label(), p))
	}
	expOpts := make([]huh.Option[domain.ExperienceBand], 0, len(domain.ExperienceBands))
	for _, e := range domain.ExperienceBands {
		expOpts = append(expOpts, huh.NewOption(e.Label(), e))
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[domain.PilotType]().
				Title("Pilot Type").
				Options(pilotOpts...).
				Value(&sel.pilot),
			huh.NewSelect[domain.ExperienceBand]().
				Title("Experience").
				Options(expOpts...).
				Value(&sel.experience),
		),
	}

	for _, g := range svc.Groups() {
		opts := make([]huh.Option[string], 0, len(g.Factors))
		for _, f := range g.Factors {
			label := fmt.Sprintf("%s (%s)", f.Label, formatter.WeightBadge(f.Weight))
			opts = append(opts, huh.NewOption(label, f.ID))
		}
		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(formatter.CategoryIcon(g.Category)+" "+g.Category.Title()).
				Description("Check every factor that applies to this flight").
				Options(opts...).
				Value(sel.checked[g.Category]),
		))
	}

	return huh.NewForm(groups...).WithTheme(fratHuhTheme()).WithShowHelp(true)
}

// applyFormSelection writes the answers back to the assessment. Factors
// not selected in the form are unchecked.
func applyFormSelection(ctx context.Context, svc service.AssessmentService, sel *formSelection) error {
	svc.SetPilotType(ctx, sel.pilot)
	svc.SetExperienceBand(ctx, sel.experience)

	selected := make(map[string]bool)
	for _, ids := range sel.checked {
		if ids == nil {
			continue
		}
		for _, id := range *ids {
			selected[id] = true
		}
	}

	for _, f := range svc.Factors() {
		if f.Active == selected[f.ID] {
			continue
		}
		if err := svc.SetFactor(ctx, f.ID, selected[f.ID]); err != nil {
			return err
		}
	}
	return nil
}

func newFormCmd(app *App) *cobra.Command {
	var mode modeFlags
	var format string

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Answer the checklist as a guided form, one section per page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			outFmt, err := parseFormat(format)
			if err != nil {
				return err
			}
			if err := mode.apply(ctx, cmd.Flags(), app.Assessment); err != nil {
				return err
			}

			sel := newFormSelection(app.Assessment)
			form := buildAssessmentForm(app.Assessment, sel)

			run := app.RunForm
			if run == nil {
				run = (*huh.Form).Run
			}
			if err := run(form); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Assessment cancelled."))
					return nil
				}
				return err
			}

			if err := applyFormSelection(ctx, app.Assessment, sel); err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), app.Assessment.Report(), outFmt)
		},
	}

	mode.register(cmd.Flags())
	registerFormatFlag(cmd.Flags(), &format)

	return cmd
}
