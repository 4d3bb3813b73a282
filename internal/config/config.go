package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rotorlab/internal/aero"
	"github.com/san-kum/rotorlab/internal/solver"
)

const (
	DefaultTipSpeedRatio = 7.0
	DefaultBlades        = 3
	DefaultBladeRadius   = 20.0
	DefaultLiftSlope     = 5.73
	DefaultLiftIntercept = 0.3
	DefaultDragSlope     = 0.01
	DefaultDragIntercept = 0.01
	DefaultTolerance     = 0.01
	DefaultMaxIterations = 100
)

type Config struct {
	Rotor    RotorConfig    `yaml:"rotor"`
	Solver   SolverConfig   `yaml:"solver"`
	Geometry []aero.Station `yaml:"geometry"`
	Design   DesignConfig   `yaml:"design"`
}

type RotorConfig struct {
	TipSpeedRatio float64 `yaml:"tip_speed_ratio"`
	Blades        int     `yaml:"blades"`
	RootPitch     float64 `yaml:"root_pitch"`
	BladeRadius   float64 `yaml:"blade_radius"`
	HubRadius     float64 `yaml:"hub_radius"`
	LiftSlope     float64 `yaml:"lift_slope"`
	LiftIntercept float64 `yaml:"lift_intercept"`
	DragSlope     float64 `yaml:"drag_slope"`
	DragIntercept float64 `yaml:"drag_intercept"`
}

type SolverConfig struct {
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	Parallel      bool    `yaml:"parallel"`
}

// DesignConfig feeds the optimum-rotor designer when no geometry table
// is given.
type DesignConfig struct {
	LiftCoef    float64 `yaml:"lift_coef"`
	AttackAngle float64 `yaml:"attack_angle"`
	Sections    int     `yaml:"sections"`
}

func DefaultConfig() *Config {
	return &Config{
		Rotor: RotorConfig{
			TipSpeedRatio: DefaultTipSpeedRatio,
			Blades:        DefaultBlades,
			BladeRadius:   DefaultBladeRadius,
			LiftSlope:     DefaultLiftSlope,
			LiftIntercept: DefaultLiftIntercept,
			DragSlope:     DefaultDragSlope,
			DragIntercept: DefaultDragIntercept,
		},
		Solver: SolverConfig{
			Tolerance:     DefaultTolerance,
			MaxIterations: DefaultMaxIterations,
		},
		Design: DesignConfig{
			LiftCoef:    1.0,
			AttackAngle: 0.12,
			Sections:    10,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RotorConfig maps the YAML rotor section onto the analysis input.
func (c *Config) RotorConfig() aero.RotorConfig {
	return aero.RotorConfig{
		TipSpeedRatio: c.Rotor.TipSpeedRatio,
		Blades:        c.Rotor.Blades,
		RootPitch:     c.Rotor.RootPitch,
		BladeRadius:   c.Rotor.BladeRadius,
		HubRadius:     c.Rotor.HubRadius,
		LiftSlope:     c.Rotor.LiftSlope,
		LiftIntercept: c.Rotor.LiftIntercept,
		DragSlope:     c.Rotor.DragSlope,
		DragIntercept: c.Rotor.DragIntercept,
	}
}

func (c *Config) SolverSettings() solver.Settings {
	return solver.Settings{
		Tolerance:     c.Solver.Tolerance,
		MaxIterations: c.Solver.MaxIterations,
	}
}
