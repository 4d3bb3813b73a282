package config

// Presets are ready-made rotor configurations for common study cases.
var Presets = map[string]*Config{
	"baseline": func() *Config {
		c := DefaultConfig()
		return c
	}(),
	"two_blade_fast": {
		Rotor: RotorConfig{
			TipSpeedRatio: 10, Blades: 2, BladeRadius: 25,
			LiftSlope: DefaultLiftSlope, LiftIntercept: DefaultLiftIntercept,
			DragSlope: DefaultDragSlope, DragIntercept: DefaultDragIntercept,
		},
		Solver: SolverConfig{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations},
		Design: DesignConfig{LiftCoef: 1.0, AttackAngle: 0.12, Sections: 12},
	},
	"farm_workhorse": {
		Rotor: RotorConfig{
			TipSpeedRatio: 5, Blades: 3, BladeRadius: 40, HubRadius: 1.5,
			RootPitch: 0.03,
			LiftSlope: DefaultLiftSlope, LiftIntercept: DefaultLiftIntercept,
			DragSlope: DefaultDragSlope, DragIntercept: DefaultDragIntercept,
		},
		Solver: SolverConfig{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations, Parallel: true},
		Design: DesignConfig{LiftCoef: 1.1, AttackAngle: 0.1, Sections: 15},
	},
}

// GetPreset returns the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
