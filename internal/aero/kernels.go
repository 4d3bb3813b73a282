package aero

import "math"

// QTerms linearizes the combined blade-element/momentum balance around
// the local operating point, producing the coefficients of a quadratic
// in angle of attack: q1*a^2 + q2*a + q3 = 0. pitch is the local section
// pitch, localTSR the radius-scaled tip-speed ratio, and solidity the
// local rotor solidity.
func QTerms(pitch, localTSR, liftSlope, liftIntercept, solidity float64) (q1, q2, q3 float64, err error) {
	if solidity == 0 {
		return 0, 0, 0, ErrSingular
	}

	sinP, cosP := math.Sincos(pitch)
	d1 := cosP - localTSR*sinP
	d2 := sinP + localTSR*cosP
	m := 4 * localTSR / solidity

	q1 = d1*liftSlope + m*cosP*d2
	q2 = m*(d1*cosP-d2*sinP) - d2*liftSlope - d1*liftIntercept
	q3 = d2*liftIntercept - m*d1*sinP
	return q1, q2, q3, nil
}

// AttackAngle solves the q-term quadratic for the physically relevant
// root, -(q2 + sqrt(q2^2-4*q1*q3)) / (2*q1), in radians.
func AttackAngle(q1, q2, q3 float64) (float64, error) {
	if q1 == 0 {
		return 0, ErrSingular
	}
	disc := q2*q2 - 4*q1*q3
	if disc < 0 {
		return 0, ErrDiscriminant
	}
	return -(q2 + math.Sqrt(disc)) / (2 * q1), nil
}

// AxialInduction returns the axial induction factor from the local
// momentum/blade-element balance. relWind is the angle of relative wind.
func AxialInduction(tipLoss, liftCoef, relWind, solidity float64) (float64, error) {
	cosW := math.Cos(relWind)
	if cosW == 0 || solidity == 0 || liftCoef == 0 {
		return 0, ErrSingular
	}
	sinW := math.Sin(relWind)
	return 1 / (1 + 4*tipLoss*sinW*sinW/(solidity*liftCoef*cosW)), nil
}

// AngularInduction derives the angular induction factor from the axial
// factor and the local tip-speed ratio.
func AngularInduction(axial, relWind, localTSR float64) (float64, error) {
	if localTSR == 0 {
		return 0, ErrSingular
	}
	return axial * math.Tan(relWind) / localTSR, nil
}

// TipLoss computes the Prandtl tip-loss factor for a finite blade
// count: F = atan(sqrt(1-t^2)/t) / (pi/2) with
// t = exp(-(B/2)(1-r)/(r*sin(relWind))). When the exponent degenerates
// (t <= 0 or 1-t^2 <= 0, which happens near the hub and at vanishing
// relative wind angles) the correction is meaningless and the factor is
// exactly 1.
func TipLoss(blades int, fracRadius, relWind float64) float64 {
	sinW := math.Sin(relWind)
	if fracRadius*sinW == 0 {
		return 1.0
	}
	t := math.Exp(-(float64(blades) / 2) * (1 - fracRadius) / (fracRadius * sinW))
	if t <= 0 || 1-t*t <= 0 {
		return 1.0
	}
	f := math.Atan(math.Sqrt(1-t*t)/t) / (math.Pi / 2)
	return math.Min(math.Max(f, 0), 1)
}

// LocalState gathers the converged per-station quantities needed for
// the local force coefficients.
type LocalState struct {
	Axial    float64 // axial induction factor
	Angular  float64 // angular induction factor
	RelWind  float64 // angle of relative wind, radians
	TSR      float64 // rotor tip-speed ratio
	LocalTSR float64 // radius-scaled tip-speed ratio
	Stations int     // number of stations in the geometry table
	Solidity float64
	LiftCoef float64
	DragCoef float64
	TipLoss  float64
}

// LocalCoefficients computes the local thrust, torque, and power
// coefficients at one station. Thrust follows the blade-element force
// balance; power is the momentum-theory integral contribution weighted
// by 1/Stations; torque is power divided by the local tip-speed ratio.
func LocalCoefficients(s LocalState) (thrust, torque, power float64, err error) {
	sinW, cosW := math.Sincos(s.RelWind)
	if sinW == 0 || cosW == 0 || s.LiftCoef == 0 || s.TSR == 0 || s.LocalTSR == 0 || s.Stations == 0 {
		return 0, 0, 0, ErrSingular
	}
	tanW := sinW / cosW

	thrust = s.Solidity * (1 - s.Axial) * (1 - s.Axial) *
		(s.LiftCoef*cosW + s.DragCoef*sinW) / (sinW * sinW)

	power = (8 / (s.TSR * float64(s.Stations))) * s.TipLoss * sinW * sinW *
		(cosW - s.LocalTSR*sinW) * (sinW + s.LocalTSR*cosW) *
		(1 - (s.DragCoef/s.LiftCoef)/tanW) * s.LocalTSR * s.LocalTSR

	torque = power / s.LocalTSR
	return thrust, torque, power, nil
}
