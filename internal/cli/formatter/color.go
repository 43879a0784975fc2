package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/frat/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DisableColor forces plain output for every style.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// TierColor returns the style for a risk tier.
func TierColor(tier domain.RiskTier) lipgloss.Style {
	switch tier {
	case domain.TierHigh:
		return StyleRed
	case domain.TierModerate:
		return StyleYellow
	case domain.TierLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// TierBadge returns a colored tier indicator such as "● MODERATE RISK".
func TierBadge(tier domain.RiskTier) string {
	return TierColor(tier).Bold(true).Render("● " + strings.ToUpper(tier.Label()))
}

// WeightBadge renders a signed weight: red for risk, green for mitigation.
func WeightBadge(weight int) string {
	if weight > 0 {
		return StyleRed.Render(fmt.Sprintf("+%d", weight))
	}
	return StyleGreen.Render(fmt.Sprintf("%d", weight))
}

// CategoryIcon returns the glyph shown beside a category heading.
func CategoryIcon(c domain.Category) string {
	switch c {
	case domain.CategoryPilot:
		return "◉"
	case domain.CategoryConditions:
		return "☁"
	case domain.CategoryAirport:
		return "⌖"
	case domain.CategoryVFR, domain.CategoryIFR:
		return "✈"
	case domain.CategoryApproach:
		return "⚙"
	default:
		return "⚠"
	}
}

// CategoryHeading renders "<icon> <TITLE>" with an underline.
func CategoryHeading(c domain.Category) string {
	return Header(CategoryIcon(c) + " " + c.Title())
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
