package rotor

import (
	"context"
	"fmt"

	"github.com/san-kum/rotorlab/internal/aero"
)

// NonlinearAnalyzer is the planned analysis variant that walks the full
// non-linear lift/drag polars instead of a linearization. It satisfies
// the Analyzer contract so callers can select it, but every call fails
// with aero.ErrUnimplemented until the polar interpolation lands.
type NonlinearAnalyzer struct{}

func NewNonlinearAnalyzer() *NonlinearAnalyzer {
	return &NonlinearAnalyzer{}
}

func (a *NonlinearAnalyzer) Analyze(ctx context.Context, geom []aero.Station, cfg aero.RotorConfig) (*aero.RotorResult, error) {
	return nil, fmt.Errorf("nonlinear lift/drag analysis: %w", aero.ErrUnimplemented)
}
