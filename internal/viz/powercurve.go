package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rotorlab/internal/analysis"
)

// PowerCurve renders a Cp-lambda sweep as a terminal graph.
func PowerCurve(points []analysis.SweepPoint, height int) (string, error) {
	if len(points) < 2 {
		return "", fmt.Errorf("viz: need at least 2 sweep points, have %d", len(points))
	}
	vals := make([]float64, len(points))
	for i, p := range points {
		vals[i] = p.PowerCoef
	}
	caption := fmt.Sprintf("total Cp vs tip-speed ratio [%.2f, %.2f]",
		points[0].TSR, points[len(points)-1].TSR)
	return asciigraph.Plot(vals,
		asciigraph.Height(height),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	), nil
}
