package rotor_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rotorlab/internal/aero"
	"github.com/san-kum/rotorlab/internal/rotor"
	"github.com/san-kum/rotorlab/internal/solver"
)

func testConfig() aero.RotorConfig {
	return aero.RotorConfig{
		TipSpeedRatio: 7,
		Blades:        3,
		RootPitch:     0,
		BladeRadius:   20,
		HubRadius:     0,
		LiftSlope:     5.73,
		LiftIntercept: 0.3,
		DragSlope:     0.01,
		DragIntercept: 0.01,
	}
}

var _ = Describe("LinearAnalyzer", func() {
	var (
		a   *rotor.LinearAnalyzer
		cfg aero.RotorConfig
		ctx context.Context
	)

	BeforeEach(func() {
		a = rotor.NewLinearAnalyzer()
		cfg = testConfig()
		ctx = context.Background()
	})

	Describe("input validation", func() {
		It("rejects a zero fractional radius before solving anything", func() {
			geom := []aero.Station{{FracRadius: 0, Chord: 0.3, Twist: 0.1}}
			_, err := a.Analyze(ctx, geom, cfg)
			Expect(err).To(MatchError(aero.ErrInvalidGeometry))

			var ge *aero.GeometryError
			Expect(errors.As(err, &ge)).To(BeTrue())
			Expect(ge.Station).To(Equal(0))
		})

		It("identifies the offending station index", func() {
			geom := []aero.Station{
				{FracRadius: 0.3, Chord: 0.5, Twist: 0.2},
				{FracRadius: 0.6, Chord: -1, Twist: 0.1},
			}
			_, err := a.Analyze(ctx, geom, cfg)

			var ge *aero.GeometryError
			Expect(errors.As(err, &ge)).To(BeTrue())
			Expect(ge.Station).To(Equal(1))
			Expect(ge.Field).To(Equal("chord"))
		})

		It("rejects an empty geometry table", func() {
			_, err := a.Analyze(ctx, nil, cfg)
			Expect(err).To(MatchError(aero.ErrInvalidGeometry))
		})

		It("rejects a non-positive tip-speed ratio", func() {
			cfg.TipSpeedRatio = 0
			geom := []aero.Station{{FracRadius: 0.5, Chord: 0.3, Twist: 0.1}}
			_, err := a.Analyze(ctx, geom, cfg)
			Expect(err).To(MatchError(aero.ErrInvalidGeometry))
		})
	})

	Describe("sweeping a blade", func() {
		var geom []aero.Station

		BeforeEach(func() {
			geom = []aero.Station{
				{FracRadius: 0.3, Chord: 0.8, Twist: 0.25},
				{FracRadius: 0.5, Chord: 0.5, Twist: 0.15},
				{FracRadius: 0.7, Chord: 0.4, Twist: 0.1},
				{FracRadius: 0.9, Chord: 0.3, Twist: 0.05},
			}
		})

		It("preserves geometry-table order", func() {
			res, err := a.Analyze(ctx, geom, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Stations).To(HaveLen(len(geom)))
			for j, sr := range res.Stations {
				Expect(sr.LocalRadius).To(Equal(geom[j].FracRadius * cfg.BladeRadius))
			}
		})

		It("sums per-station power coefficients exactly", func() {
			res, err := a.Analyze(ctx, geom, cfg)
			Expect(err).NotTo(HaveOccurred())

			sum := 0.0
			for _, sr := range res.Stations {
				sum += sr.PowerCoef
			}
			Expect(res.PowerCoef).To(Equal(sum))
		})

		It("solves identical stations identically", func() {
			twin := []aero.Station{
				{FracRadius: 0.5, Chord: 0.3, Twist: 0.1},
				{FracRadius: 0.5, Chord: 0.3, Twist: 0.1},
			}
			res, err := a.Analyze(ctx, twin, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Stations[0]).To(Equal(res.Stations[1]))
		})

		It("produces identical results in parallel and serial mode", func() {
			serial, err := a.Analyze(ctx, geom, cfg)
			Expect(err).NotTo(HaveOccurred())

			a.Parallel = true
			parallel, err := a.Analyze(ctx, geom, cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(parallel.PowerCoef).To(Equal(serial.PowerCoef))
			Expect(parallel.Stations).To(Equal(serial.Stations))
		})

		It("stops between stations when the context is canceled", func() {
			canceled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := a.Analyze(canceled, geom, cfg)
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Describe("degraded sweeps", func() {
		It("records a station fault and continues", func() {
			// With a one-iteration budget and an impossible tolerance,
			// the outboard high-pitch station exhausts its loop while
			// the inboard station (tip-loss fallback, zero first delta)
			// still converges.
			a.Settings = solver.Settings{Tolerance: 1e-12, MaxIterations: 1}
			geom := []aero.Station{
				{FracRadius: 0.5, Chord: 0.3, Twist: 0.1},
				{FracRadius: 0.8, Chord: 2.1, Twist: 0.4},
			}

			res, err := a.Analyze(ctx, geom, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Degraded).To(BeTrue())

			Expect(res.Stations[0].Err).To(BeNil())
			Expect(res.Stations[1].Err).To(MatchError(aero.ErrNoConvergence))
			Expect(res.Faults()).To(Equal([]int{1}))
			Expect(res.PowerCoef).To(Equal(res.Stations[0].PowerCoef))
		})
	})
})

var _ = Describe("NonlinearAnalyzer", func() {
	It("is a declared but unavailable strategy", func() {
		a := rotor.NewNonlinearAnalyzer()
		geom := []aero.Station{{FracRadius: 0.5, Chord: 0.3, Twist: 0.1}}

		res, err := a.Analyze(context.Background(), geom, testConfig())
		Expect(res).To(BeNil())
		Expect(err).To(MatchError(aero.ErrUnimplemented))
	})
})

var _ = Describe("OptimumRotor", func() {
	It("designs a table the analyzer accepts end to end", func() {
		geom, err := rotor.OptimumRotor(1.0, 0.12, 7, 20, 1, 3, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(geom).To(HaveLen(10))

		for _, st := range geom {
			Expect(st.FracRadius).To(BeNumerically(">", 0))
			Expect(st.FracRadius).To(BeNumerically("<", 1))
			Expect(st.Chord).To(BeNumerically(">", 0))
		}
		// Twist unwinds toward the tip.
		for i := 1; i < len(geom); i++ {
			Expect(geom[i].Twist).To(BeNumerically("<", geom[i-1].Twist))
		}

		cfg := testConfig()
		cfg.HubRadius = 1
		res, aerr := rotor.NewLinearAnalyzer().Analyze(context.Background(), geom, cfg)
		Expect(aerr).NotTo(HaveOccurred())
		Expect(res.Degraded).To(BeFalse())
		for _, sr := range res.Stations {
			Expect(sr.Finite()).To(BeTrue())
		}
		Expect(math.IsNaN(res.PowerCoef)).To(BeFalse())
	})

	It("rejects a hub at or beyond the tip", func() {
		_, err := rotor.OptimumRotor(1.0, 0.12, 7, 20, 20, 3, 10)
		Expect(err).To(MatchError(aero.ErrInvalidGeometry))
	})

	It("rejects a zero section count", func() {
		_, err := rotor.OptimumRotor(1.0, 0.12, 7, 20, 1, 3, 0)
		Expect(err).To(MatchError(aero.ErrInvalidGeometry))
	})
})

var _ = Describe("ByName", func() {
	It("resolves the registered variants", func() {
		for _, name := range rotor.Variants() {
			a, err := rotor.ByName(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(a).NotTo(BeNil())
		}
	})

	It("rejects an unknown variant", func() {
		_, err := rotor.ByName("quadratic")
		Expect(err).To(HaveOccurred())
	})
})
