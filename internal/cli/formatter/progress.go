package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/frat/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderRiskBar renders a score bar like [████░░░░]  45% in the tier color.
// Values outside [0,1] are clamped for drawing only.
func RenderRiskBar(pct float64, width int, tier domain.RiskTier) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := TierColor(tier).Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, empty))

	return fmt.Sprintf("[%s] %3.0f%%", bar, pct*100)
}
