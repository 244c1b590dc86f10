package render

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/robmorgan/kbtune/engine/scale"
	"github.com/robmorgan/kbtune/temperament"
)

var (
	pureColor = colorful.Color{R: 0.18, G: 0.8, B: 0.44}
	wolfColor = colorful.Color{R: 0.91, G: 0.3, B: 0.24}
)

// DeviationColor returns the colour for a deviation in cents, going from green for a pure interval
// to red at maxCents or beyond. The sign of the deviation is ignored.
func DeviationColor(cents, maxCents float64) colorful.Color {
	t := scale.ToUnitClamp(0, maxCents)(math.Abs(cents))

	// small deviations should already be visible
	t = ease.OutQuad(t)

	return pureColor.BlendLab(wolfColor, t).Clamped()
}

// Highlighter colours the deviation column of a temperament report. Colours are only emitted when
// the output supports them.
func Highlighter(maxCents float64) temperament.Highlighter {
	return func(deviationCents float64, cell string) string {
		c := DeviationColor(deviationCents, maxCents)
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(cell)
	}
}
