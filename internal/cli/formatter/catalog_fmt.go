package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/frat/internal/checklist"
	"github.com/alexanderramin/frat/internal/domain"
	"github.com/alexanderramin/frat/internal/scoring"
)

// FormatCatalog renders the factor catalog grouped by category.
func FormatCatalog(groups []checklist.Group, maxScore int) string {
	var b strings.Builder

	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(CategoryHeading(g.Category))
		b.WriteString("\n")

		rows := make([][]string, 0, len(g.Factors))
		for _, f := range g.Factors {
			rows = append(rows, []string{f.ID, f.Label, WeightBadge(f.Weight)})
		}
		b.WriteString(Table{
			Headers:    []string{"ID", "Factor", "Weight"},
			Rows:       rows,
			RightAlign: map[int]bool{2: true},
			Indent:     "  ",
		}.Render())
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Maximum attainable score: %d", maxScore)))
	b.WriteString("\n")
	return b.String()
}

// FormatThresholds renders the tier ranges for every mode.
func FormatThresholds(current domain.AssessmentMode) string {
	var b strings.Builder
	b.WriteString(Header("Risk Thresholds"))
	b.WriteString("\n")

	var rows [][]string
	for _, pt := range domain.PilotTypes {
		for _, eb := range domain.ExperienceBands {
			mode := domain.AssessmentMode{PilotType: pt, ExperienceBand: eb}
			bands := scoring.ThresholdsFor(mode).Bands()
			marker := "  "
			if mode == current {
				marker = StyleGreen.Render("▸ ")
			}
			rows = append(rows, []string{
				marker + string(pt),
				eb.Label(),
				TierColor(domain.TierLow).Render(bands[0].Range),
				TierColor(domain.TierModerate).Render(bands[1].Range),
				TierColor(domain.TierHigh).Render(bands[2].Range),
			})
		}
	}
	b.WriteString(Table{
		Headers:    []string{"  Pilot", "Experience", "Low", "Moderate", "High"},
		Rows:       rows,
		RightAlign: map[int]bool{2: true, 3: true, 4: true},
	}.Render())
	b.WriteString("\n")
	b.WriteString(TierLegend())
	b.WriteString("\n")
	return b.String()
}
