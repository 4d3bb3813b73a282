package rotor

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/rotorlab/internal/aero"
	"github.com/san-kum/rotorlab/internal/solver"
)

// Analyzer is the contract shared by every rotor analysis strategy:
// geometry table plus rotor configuration in, per-station results and a
// total power coefficient out.
type Analyzer interface {
	Analyze(ctx context.Context, geom []aero.Station, cfg aero.RotorConfig) (*aero.RotorResult, error)
}

// LinearAnalyzer runs the linearized lift/drag BEM sweep.
type LinearAnalyzer struct {
	Settings solver.Settings

	// Parallel dispatches one goroutine per station. Stations share no
	// mutable state, so the only coordination is collecting results
	// back into table order.
	Parallel bool
}

func NewLinearAnalyzer() *LinearAnalyzer {
	return &LinearAnalyzer{Settings: solver.DefaultSettings()}
}

// Analyze validates the inputs, solves every station in geometry-table
// order, and aggregates the total power coefficient. A station that
// faults numerically is recorded in its result slot and skipped in the
// total; the sweep continues and the rotor result is marked degraded.
// Invalid geometry or configuration fails fast before any station runs.
func (a *LinearAnalyzer) Analyze(ctx context.Context, geom []aero.Station, cfg aero.RotorConfig) (*aero.RotorResult, error) {
	if err := validate(geom, cfg); err != nil {
		return nil, err
	}

	results := make([]aero.StationResult, len(geom))

	if a.Parallel {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var wg sync.WaitGroup
		for j := range geom {
			wg.Add(1)
			go func(j int) {
				defer wg.Done()
				results[j] = a.solveStation(j, geom, cfg)
			}(j)
		}
		wg.Wait()
	} else {
		for j := range geom {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			results[j] = a.solveStation(j, geom, cfg)
		}
	}

	res := &aero.RotorResult{Stations: results}
	for _, sr := range results {
		if sr.Err != nil {
			res.Degraded = true
			continue
		}
		res.PowerCoef += sr.PowerCoef
	}
	return res, nil
}

func (a *LinearAnalyzer) solveStation(j int, geom []aero.Station, cfg aero.RotorConfig) aero.StationResult {
	st := geom[j]
	localRadius := st.FracRadius * cfg.BladeRadius

	in := solver.Input{
		Index:       j,
		FracRadius:  st.FracRadius,
		LocalRadius: localRadius,
		LocalTSR:    cfg.TipSpeedRatio * st.FracRadius,
		Solidity:    float64(cfg.Blades) * st.Chord / (2 * math.Pi * localRadius),
		Pitch:       st.Twist + cfg.RootPitch,
		Stations:    len(geom),
		Rotor:       cfg,
	}

	sr, err := solver.Solve(in, a.Settings)
	if err != nil {
		return aero.StationResult{LocalRadius: localRadius, Err: err}
	}
	return sr
}

func validate(geom []aero.Station, cfg aero.RotorConfig) error {
	if len(geom) == 0 {
		return fmt.Errorf("empty geometry table: %w", aero.ErrInvalidGeometry)
	}
	for j, st := range geom {
		switch {
		case st.FracRadius <= 0 || st.FracRadius > 1:
			return &aero.GeometryError{Station: j, Field: "frac_radius", Value: st.FracRadius}
		case st.Chord <= 0:
			return &aero.GeometryError{Station: j, Field: "chord", Value: st.Chord}
		}
	}
	switch {
	case cfg.TipSpeedRatio <= 0:
		return fmt.Errorf("tip-speed ratio %g must be positive: %w", cfg.TipSpeedRatio, aero.ErrInvalidGeometry)
	case cfg.Blades < 1:
		return fmt.Errorf("blade count %d must be at least 1: %w", cfg.Blades, aero.ErrInvalidGeometry)
	case cfg.BladeRadius <= 0:
		return fmt.Errorf("blade radius %g must be positive: %w", cfg.BladeRadius, aero.ErrInvalidGeometry)
	case cfg.HubRadius < 0:
		return fmt.Errorf("hub radius %g must not be negative: %w", cfg.HubRadius, aero.ErrInvalidGeometry)
	}
	return nil
}
