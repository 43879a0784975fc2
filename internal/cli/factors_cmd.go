package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/frat/internal/checklist"
	"github.com/alexanderramin/frat/internal/cli/formatter"
	"github.com/alexanderramin/frat/internal/domain"
	"github.com/spf13/cobra"
)

func newFactorsCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "List the risk factors by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups := app.Assessment.Groups()

			if cmd.Flags().Changed("category") {
				c, err := domain.ParseCategory(category)
				if err != nil {
					return err
				}
				filtered := make([]checklist.Group, 0, 1)
				for _, g := range groups {
					if g.Category == c {
						filtered = append(filtered, g)
					}
				}
				groups = filtered
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog(groups, app.Assessment.MaxScore()))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list one category (pilot, conditions, airport, vfr, ifr, approach)")

	return cmd
}

func newThresholdsCmd(app *App) *cobra.Command {
	var mode modeFlags

	cmd := &cobra.Command{
		Use:   "thresholds",
		Short: "Show the Low / Moderate / High score ranges for each pilot type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mode.apply(context.Background(), cmd.Flags(), app.Assessment); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatThresholds(app.Assessment.Mode()))
			return nil
		},
	}

	mode.register(cmd.Flags())

	return cmd
}
