package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/frat/internal/contract"
	"github.com/alexanderramin/frat/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const summaryBarWidth = 20

// FormatSummary renders the score panel: the score, tier badge, score bar,
// mode caption and the tier ranges for the mode.
func FormatSummary(r contract.Report) string {
	var b strings.Builder

	score := TierColor(r.Tier).Bold(true).Render(strconv.Itoa(r.DisplayScore))
	b.WriteString(score + "\n")
	b.WriteString(TierBadge(r.Tier) + "\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n", StyleFg.Render("Risk Score"), Bold(strconv.Itoa(r.DisplayScore))))
	b.WriteString(RenderRiskBar(r.Progress, summaryBarWidth, r.Tier) + "\n\n")

	b.WriteString(Bold(r.Mode().Caption()) + "\n")
	rows := make([][]string, 0, len(r.Bands))
	for _, band := range r.Bands {
		rows = append(rows, []string{band.Tier.Label() + ":", band.Range})
	}
	b.WriteString(bandLines(rows))

	return b.String()
}

func bandLines(rows [][]string) string {
	labelW, rangeW := 0, 0
	for _, r := range rows {
		labelW = max(labelW, lipgloss.Width(r[0]))
		rangeW = max(rangeW, lipgloss.Width(r[1]))
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(Dim(fmt.Sprintf("%-*s  %*s", labelW, r[0], rangeW, r[1])))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatReport renders a full text report: the summary box followed by the
// checked factors.
func FormatReport(r contract.Report) string {
	var b strings.Builder

	b.WriteString(RenderBox("Risk Assessment", strings.TrimRight(FormatSummary(r), "\n")))
	b.WriteString("\n\n")

	b.WriteString(Header("Checked Factors"))
	b.WriteString("\n")
	if len(r.Factors) == 0 {
		b.WriteString(Dim("No factors checked."))
		b.WriteString("\n")
	} else {
		rows := make([][]string, 0, len(r.Factors))
		for _, f := range r.Factors {
			rows = append(rows, []string{
				CategoryIcon(f.Category) + " " + f.Category.Title(),
				f.Label,
				WeightBadge(f.Weight),
			})
		}
		b.WriteString(Table{
			Headers:    []string{"Category", "Factor", "Weight"},
			Rows:       rows,
			RightAlign: map[int]bool{2: true},
		}.Render())
	}

	if r.RawScore < 0 {
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("Raw total %d is floored to 0.", r.RawScore)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Assessment %s", TruncID(r.AssessmentID))))
	b.WriteString("\n")
	return b.String()
}

// TruncID returns the first 8 characters of an ID.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// TierLegend renders the three tiers in their colors on one line.
func TierLegend() string {
	parts := []string{
		TierColor(domain.TierLow).Render("Low"),
		TierColor(domain.TierModerate).Render("Moderate"),
		TierColor(domain.TierHigh).Render("High"),
	}
	return strings.Join(parts, Dim(" · "))
}
