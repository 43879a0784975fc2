package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table is a simple aligned table with a header separator line.
// Widths are measured on visible text so styled cells line up.
type Table struct {
	Headers []string
	Rows    [][]string
	// RightAlign marks columns (by index) whose cells are right-aligned,
	// typically numeric ones.
	RightAlign map[int]bool
	// Indent is prepended to every line.
	Indent string
}

const colGap = 2

func (t Table) widths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (t Table) writeRow(b *strings.Builder, cells []string, widths []int, style func(string) string) {
	b.WriteString(t.Indent)
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := max(w-lipgloss.Width(cell), 0)
		rendered := style(cell)
		last := i == len(widths)-1
		switch {
		case t.RightAlign[i]:
			b.WriteString(strings.Repeat(" ", pad) + rendered)
		case last:
			b.WriteString(rendered)
		default:
			b.WriteString(rendered + strings.Repeat(" ", pad))
		}
		if !last {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}

// Render draws the table. An empty header list renders nothing.
func (t Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}
	widths := t.widths()

	var b strings.Builder
	t.writeRow(&b, t.Headers, widths, func(s string) string { return StyleHeader.Render(s) })

	b.WriteString(t.Indent)
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range t.Rows {
		t.writeRow(&b, row, widths, func(s string) string { return s })
	}
	return b.String()
}
