// Package metrics computes rotor-level summary statistics from a
// completed analysis.
package metrics

import "github.com/san-kum/rotorlab/internal/aero"

// Summary condenses a blade sweep into headline numbers.
type Summary struct {
	TotalPower  float64
	PeakStation int // index of the station with the highest local Cp
	PeakPower   float64
	MeanTipLoss float64
	MeanAxial   float64
	Faults      int
	Solved      int
}

// Summarize walks the per-station results once. Faulted stations count
// toward Faults and are excluded from the means and the peak.
func Summarize(res *aero.RotorResult) Summary {
	s := Summary{TotalPower: res.PowerCoef, PeakStation: -1}

	for i, sr := range res.Stations {
		if sr.Err != nil {
			s.Faults++
			continue
		}
		s.Solved++
		s.MeanTipLoss += sr.TipLoss
		s.MeanAxial += sr.AxialInduction
		if s.PeakStation < 0 || sr.PowerCoef > s.PeakPower {
			s.PeakStation = i
			s.PeakPower = sr.PowerCoef
		}
	}
	if s.Solved > 0 {
		s.MeanTipLoss /= float64(s.Solved)
		s.MeanAxial /= float64(s.Solved)
	}
	return s
}
