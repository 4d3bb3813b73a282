package aero

import "math"

// Station is one entry of the blade geometry table. FracRadius is the
// local radius divided by the blade radius, in (0, 1]. Twist is in
// radians, chord in meters.
type Station struct {
	FracRadius float64 `yaml:"frac_radius"`
	Chord      float64 `yaml:"chord"`
	Twist      float64 `yaml:"twist"`
}

// RotorConfig holds the scalar inputs shared by every station of one
// analysis run. The lift and drag curves are linearized around the
// operating point: C = slope*alpha + intercept.
type RotorConfig struct {
	TipSpeedRatio float64
	Blades        int
	RootPitch     float64
	BladeRadius   float64
	HubRadius     float64
	LiftSlope     float64
	LiftIntercept float64
	DragSlope     float64
	DragIntercept float64
}

// StationResult is the converged aerodynamic state at one station.
// Angles are in radians. If the station faulted, Err records the
// classified failure and the numeric fields are unreliable.
type StationResult struct {
	LocalRadius      float64
	TipLoss          float64
	AttackAngle      float64
	RelWindAngle     float64
	LiftCoef         float64
	DragCoef         float64
	AxialInduction   float64
	AngularInduction float64
	ThrustCoef       float64
	TorqueCoef       float64
	PowerCoef        float64
	Iterations       int
	Err              error
}

// Finite reports whether every numeric field of the result is a real
// number.
func (r StationResult) Finite() bool {
	for _, v := range []float64{
		r.LocalRadius, r.TipLoss, r.AttackAngle, r.RelWindAngle,
		r.LiftCoef, r.DragCoef, r.AxialInduction, r.AngularInduction,
		r.ThrustCoef, r.TorqueCoef, r.PowerCoef,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// RotorResult is the full blade sweep: one StationResult per geometry
// entry, in table order, plus the summed total power coefficient.
// Degraded is set when at least one station faulted; faulted stations
// contribute nothing to PowerCoef.
type RotorResult struct {
	Stations  []StationResult
	PowerCoef float64
	Degraded  bool
}

// Faults returns the indices of stations that failed to solve.
func (r *RotorResult) Faults() []int {
	var idx []int
	for i, s := range r.Stations {
		if s.Err != nil {
			idx = append(idx, i)
		}
	}
	return idx
}
