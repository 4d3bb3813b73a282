package aero

import (
	"errors"
	"fmt"
)

// Domain errors for BEM analysis.
var (
	// ErrSingular indicates a zero denominator in a kernel formula.
	ErrSingular = errors.New("aero: numerical singularity (zero denominator)")

	// ErrDiscriminant indicates a negative discriminant in the
	// attack-angle quadratic; the linearized lift curve has no real
	// operating point there.
	ErrDiscriminant = errors.New("aero: negative discriminant in attack-angle solve")

	// ErrNoConvergence indicates the tip-loss fixed-point iteration
	// exhausted its iteration budget.
	ErrNoConvergence = errors.New("aero: tip-loss iteration did not converge")

	// ErrInvalidGeometry indicates a geometry table entry outside its
	// physical bounds.
	ErrInvalidGeometry = errors.New("aero: invalid blade geometry")

	// ErrUnimplemented indicates an analysis variant that is declared
	// but not yet available.
	ErrUnimplemented = errors.New("aero: analysis variant not implemented")
)

// StationError attaches a station index to a kernel or solver failure.
type StationError struct {
	Station int
	Wrapped error
}

func (e *StationError) Error() string {
	return fmt.Sprintf("station %d: %v", e.Station, e.Wrapped)
}

func (e *StationError) Unwrap() error {
	return e.Wrapped
}

// ConvergenceError reports an exhausted fixed-point loop along with the
// last observed tip-loss delta.
type ConvergenceError struct {
	Station    int
	Iterations int
	LastDelta  float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("station %d: no convergence after %d iterations (last delta %.3g)",
		e.Station, e.Iterations, e.LastDelta)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrNoConvergence
}

// GeometryError identifies the offending geometry table entry.
type GeometryError struct {
	Station int
	Field   string
	Value   float64
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("station %d: %s = %g out of range", e.Station, e.Field, e.Value)
}

func (e *GeometryError) Unwrap() error {
	return ErrInvalidGeometry
}
