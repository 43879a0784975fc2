package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newAssessCmd(app *App) *cobra.Command {
	var mode modeFlags
	var factorIDs []string
	var format string

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score a set of factors without the interactive form",
		Example: "  frat assess --pilot VFR --experience under100 \\\n" +
			"    --factor pilot-hours-aircraft --factor conditions-twilight --factor approach-circling",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			outFmt, err := parseFormat(format)
			if err != nil {
				return err
			}
			if err := mode.apply(ctx, cmd.Flags(), app.Assessment); err != nil {
				return err
			}

			app.Assessment.ResetAll(ctx)
			for _, id := range factorIDs {
				if err := app.Assessment.SetFactor(ctx, id, true); err != nil {
					return fmt.Errorf("--factor: %w", err)
				}
			}

			return writeReport(cmd.OutOrStdout(), app.Assessment.Report(), outFmt)
		},
	}

	mode.register(cmd.Flags())
	cmd.Flags().StringSliceVarP(&factorIDs, "factor", "f", nil, "Factor id to check (repeatable or comma-separated); see 'frat factors'")
	registerFormatFlag(cmd.Flags(), &format)

	return cmd
}
