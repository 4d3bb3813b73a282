package rotor

import (
	"fmt"
	"math"

	"github.com/san-kum/rotorlab/internal/aero"
)

// OptimumRotor generates a geometry table for a Betz-optimum blade
// without wake rotation: at each section the relative wind angle is
// atan(2/(3*localTSR)), the section twist is that angle minus the
// design angle of attack, and the chord follows
// 8*pi*r*sin(phi) / (3*B*Cl*localTSR). Sections are placed at the
// midpoints of equal radial segments between hub and tip, so every
// fractional radius lands strictly inside (0, 1).
//
// liftCoef and attackAngle are the airfoil's design operating point;
// attackAngle is in radians.
func OptimumRotor(liftCoef, attackAngle, tsr, bladeRadius, hubRadius float64, blades, sections int) ([]aero.Station, error) {
	switch {
	case sections < 1:
		return nil, fmt.Errorf("sections %d must be at least 1: %w", sections, aero.ErrInvalidGeometry)
	case blades < 1:
		return nil, fmt.Errorf("blade count %d must be at least 1: %w", blades, aero.ErrInvalidGeometry)
	case liftCoef <= 0:
		return nil, fmt.Errorf("design lift coefficient %g must be positive: %w", liftCoef, aero.ErrInvalidGeometry)
	case tsr <= 0:
		return nil, fmt.Errorf("tip-speed ratio %g must be positive: %w", tsr, aero.ErrInvalidGeometry)
	case bladeRadius <= 0:
		return nil, fmt.Errorf("blade radius %g must be positive: %w", bladeRadius, aero.ErrInvalidGeometry)
	case hubRadius < 0 || hubRadius >= bladeRadius:
		return nil, fmt.Errorf("hub radius %g must be in [0, blade radius): %w", hubRadius, aero.ErrInvalidGeometry)
	}

	geom := make([]aero.Station, sections)
	span := bladeRadius - hubRadius
	for i := range geom {
		r := hubRadius + (float64(i)+0.5)*span/float64(sections)
		frac := r / bladeRadius
		localTSR := tsr * frac

		relWind := math.Atan(2 / (3 * localTSR))
		chord := 8 * math.Pi * r * math.Sin(relWind) / (3 * float64(blades) * liftCoef * localTSR)

		geom[i] = aero.Station{
			FracRadius: frac,
			Chord:      chord,
			Twist:      relWind - attackAngle,
		}
	}
	return geom, nil
}
