// Package analysis provides parameter studies built on top of the
// rotor analyzer.
package analysis

import (
	"context"
	"fmt"

	"github.com/san-kum/rotorlab/internal/aero"
	"github.com/san-kum/rotorlab/internal/rotor"
)

// SweepPoint is one sample of a tip-speed-ratio sweep.
type SweepPoint struct {
	TSR       float64
	PowerCoef float64
	Degraded  bool
}

// TSRSweep evaluates the rotor over a range of tip-speed ratios and
// records the total power coefficient at each, producing the Cp-lambda
// curve. The geometry table is held fixed; only the operating point
// moves. A degraded analysis at one point is recorded and the sweep
// continues; a validation error aborts the whole sweep.
func TSRSweep(ctx context.Context, a rotor.Analyzer, geom []aero.Station, cfg aero.RotorConfig, minTSR, maxTSR float64, steps int) ([]SweepPoint, error) {
	if steps < 2 {
		return nil, fmt.Errorf("analysis: sweep needs at least 2 steps, got %d", steps)
	}
	if minTSR <= 0 || maxTSR <= minTSR {
		return nil, fmt.Errorf("analysis: invalid sweep range [%g, %g]", minTSR, maxTSR)
	}

	points := make([]SweepPoint, 0, steps)
	step := (maxTSR - minTSR) / float64(steps-1)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return points, ctx.Err()
		default:
		}

		cfg.TipSpeedRatio = minTSR + float64(i)*step
		res, err := a.Analyze(ctx, geom, cfg)
		if err != nil {
			return points, fmt.Errorf("analysis: tsr %g: %w", cfg.TipSpeedRatio, err)
		}
		points = append(points, SweepPoint{
			TSR:       cfg.TipSpeedRatio,
			PowerCoef: res.PowerCoef,
			Degraded:  res.Degraded,
		})
	}
	return points, nil
}

// PeakPower returns the sweep point with the highest power coefficient.
func PeakPower(points []SweepPoint) (SweepPoint, bool) {
	if len(points) == 0 {
		return SweepPoint{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.PowerCoef > best.PowerCoef {
			best = p
		}
	}
	return best, true
}
