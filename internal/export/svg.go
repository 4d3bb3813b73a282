// Package export renders analysis results to external formats.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/rotorlab/internal/aero"
	"github.com/san-kum/rotorlab/internal/viz"
)

// SpanwiseSVG draws one spanwise field as an SVG polyline, local
// radius on the x axis.
func SpanwiseSVG(res *aero.RotorResult, field string, width, height int) (string, error) {
	vals, err := viz.FieldValues(res, field)
	if err != nil {
		return "", err
	}
	if len(vals) < 2 {
		return "", fmt.Errorf("export: need at least 2 stations to draw, have %d", len(vals))
	}

	minX, maxX := res.Stations[0].LocalRadius, res.Stations[0].LocalRadius
	minY, maxY := vals[0], vals[0]
	for i, sr := range res.Stations {
		if sr.LocalRadius < minX {
			minX = sr.LocalRadius
		}
		if sr.LocalRadius > maxX {
			maxX = sr.LocalRadius
		}
		if vals[i] < minY {
			minY = vals[i]
		}
		if vals[i] > maxY {
			maxY = vals[i]
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	rangeX *= 1.1
	minY -= rangeY * 0.1
	rangeY *= 1.2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<path fill="none" stroke="#1f6feb" stroke-width="1.5" d="M`,
		width, height, width, height))

	for i, sr := range res.Stations {
		x := (sr.LocalRadius - minX) / rangeX * float64(width)
		y := float64(height) - (vals[i]-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(fmt.Sprintf(`"/>
<text x="10" y="20" font-family="monospace" font-size="14">%s vs local radius</text>
</svg>`, field))
	return sb.String(), nil
}

// WriteSpanwiseSVG renders the field and writes it to path.
func WriteSpanwiseSVG(path string, res *aero.RotorResult, field string, width, height int) error {
	svg, err := SpanwiseSVG(res, field, width, height)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
