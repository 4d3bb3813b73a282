// Package solver resolves a single blade station to a self-consistent
// aerodynamic state by fixed-point iteration on the Prandtl tip-loss
// factor.
package solver

import (
	"math"

	"github.com/san-kum/rotorlab/internal/aero"
)

const (
	// DefaultTolerance is the tip-loss convergence tolerance.
	DefaultTolerance = 0.01

	// DefaultMaxIterations caps the fixed-point loop so pathological
	// inputs fail with a ConvergenceError instead of spinning forever.
	DefaultMaxIterations = 100
)

// Settings control the fixed-point loop.
type Settings struct {
	Tolerance     float64
	MaxIterations int
}

func DefaultSettings() Settings {
	return Settings{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Input is the per-station geometry, pre-derived by the rotor sweep,
// together with the run-wide rotor configuration.
type Input struct {
	Index       int // station index, used in error reports
	FracRadius  float64
	LocalRadius float64
	LocalTSR    float64
	Solidity    float64
	Pitch       float64 // station twist + root pitch, radians
	Stations    int     // geometry table length
	Rotor       aero.RotorConfig
}

// Solve iterates the coupled BEM relations at one station until the
// tip-loss factor stops moving by more than the tolerance, then
// evaluates the local force coefficients. The tip-loss estimate starts
// at 1 (no correction). Kernel faults and iteration exhaustion are
// returned as classified errors carrying the station index.
func Solve(in Input, s Settings) (aero.StationResult, error) {
	res := aero.StationResult{LocalRadius: in.LocalRadius}

	var (
		tipLoss = 1.0
		delta   = math.Inf(1)

		alpha, relWind     float64
		liftCoef, dragCoef float64
		axial, angular     float64
		iter               int
	)

	for iter = 1; ; iter++ {
		if iter > s.MaxIterations {
			return res, &aero.ConvergenceError{
				Station:    in.Index,
				Iterations: s.MaxIterations,
				LastDelta:  delta,
			}
		}

		q1, q2, q3, err := aero.QTerms(in.Pitch, in.LocalTSR,
			in.Rotor.LiftSlope, in.Rotor.LiftIntercept, in.Solidity)
		if err != nil {
			return res, &aero.StationError{Station: in.Index, Wrapped: err}
		}

		alpha, err = aero.AttackAngle(q1, q2, q3)
		if err != nil {
			return res, &aero.StationError{Station: in.Index, Wrapped: err}
		}
		relWind = in.Pitch + alpha

		liftCoef = in.Rotor.LiftSlope*alpha + in.Rotor.LiftIntercept
		dragCoef = in.Rotor.DragSlope*alpha + in.Rotor.DragIntercept

		axial, err = aero.AxialInduction(tipLoss, liftCoef, relWind, in.Solidity)
		if err != nil {
			return res, &aero.StationError{Station: in.Index, Wrapped: err}
		}
		angular, err = aero.AngularInduction(axial, relWind, in.LocalTSR)
		if err != nil {
			return res, &aero.StationError{Station: in.Index, Wrapped: err}
		}

		next := aero.TipLoss(in.Rotor.Blades, in.FracRadius, relWind)
		delta = math.Abs(next - tipLoss)
		tipLoss = next
		if delta <= s.Tolerance {
			break
		}
	}

	thrust, torque, power, err := aero.LocalCoefficients(aero.LocalState{
		Axial:    axial,
		Angular:  angular,
		RelWind:  relWind,
		TSR:      in.Rotor.TipSpeedRatio,
		LocalTSR: in.LocalTSR,
		Stations: in.Stations,
		Solidity: in.Solidity,
		LiftCoef: liftCoef,
		DragCoef: dragCoef,
		TipLoss:  tipLoss,
	})
	if err != nil {
		return res, &aero.StationError{Station: in.Index, Wrapped: err}
	}

	res.TipLoss = tipLoss
	res.AttackAngle = alpha
	res.RelWindAngle = relWind
	res.LiftCoef = liftCoef
	res.DragCoef = dragCoef
	res.AxialInduction = axial
	res.AngularInduction = angular
	res.ThrustCoef = thrust
	res.TorqueCoef = torque
	res.PowerCoef = power
	res.Iterations = iter
	return res, nil
}
