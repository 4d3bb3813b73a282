package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/rotorlab/internal/aero"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Rotor.TipSpeedRatio <= 0 {
		t.Error("tip-speed ratio should be positive")
	}
	if cfg.Rotor.Blades < 1 {
		t.Error("blade count should be at least 1")
	}
	if cfg.Solver.Tolerance != 0.01 {
		t.Errorf("expected tolerance 0.01, got %f", cfg.Solver.Tolerance)
	}
	if cfg.Solver.MaxIterations <= 0 {
		t.Error("max iterations should be positive")
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rotor.TipSpeedRatio = 8.5
	cfg.Rotor.Blades = 2
	cfg.Geometry = []aero.Station{
		{FracRadius: 0.5, Chord: 0.3, Twist: 0.1},
		{FracRadius: 0.9, Chord: 0.2, Twist: 0.02},
	}

	path := filepath.Join(t.TempDir(), "rotor.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Rotor.TipSpeedRatio != 8.5 {
		t.Errorf("expected tip-speed ratio 8.5, got %f", loaded.Rotor.TipSpeedRatio)
	}
	if loaded.Rotor.Blades != 2 {
		t.Errorf("expected 2 blades, got %d", loaded.Rotor.Blades)
	}
	if len(loaded.Geometry) != 2 {
		t.Fatalf("expected 2 geometry entries, got %d", len(loaded.Geometry))
	}
	if loaded.Geometry[1] != cfg.Geometry[1] {
		t.Errorf("geometry entry changed across roundtrip: %+v", loaded.Geometry[1])
	}
}

func TestLoadMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	partial := []byte("rotor:\n  tip_speed_ratio: 6\n")
	if err := os.WriteFile(path, partial, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rotor.TipSpeedRatio != 6 {
		t.Errorf("expected tip-speed ratio 6, got %f", cfg.Rotor.TipSpeedRatio)
	}
	if cfg.Rotor.LiftSlope != DefaultLiftSlope {
		t.Errorf("expected default lift slope, got %f", cfg.Rotor.LiftSlope)
	}
}

func TestGetPreset(t *testing.T) {
	if GetPreset("baseline") == nil {
		t.Fatal("expected baseline preset")
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
	if len(ListPresets()) == 0 {
		t.Error("expected at least one preset")
	}
}
