package storage

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/rotorlab/internal/aero"
)

func sampleResult() (aero.RotorConfig, *aero.RotorResult) {
	cfg := aero.RotorConfig{
		TipSpeedRatio: 7, Blades: 3, BladeRadius: 20,
		LiftSlope: 5.73, LiftIntercept: 0.3,
		DragSlope: 0.01, DragIntercept: 0.01,
	}
	res := &aero.RotorResult{
		Stations: []aero.StationResult{
			{
				LocalRadius: 10, TipLoss: 1, AttackAngle: -0.17,
				RelWindAngle: -0.07, LiftCoef: -0.7, DragCoef: 0.008,
				AxialInduction: -0.8, AngularInduction: -0.016,
				ThrustCoef: 0.1, TorqueCoef: 0.02, PowerCoef: 0.07,
				Iterations: 1,
			},
			{LocalRadius: 18, Err: &aero.StationError{Station: 1, Wrapped: aero.ErrSingular}},
		},
		PowerCoef: 0.07,
		Degraded:  true,
	}
	return cfg, res
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	cfg, res := sampleResult()
	runID, err := s.Save("baseline", cfg, res)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(runID, "baseline_") {
		t.Errorf("unexpected run id %q", runID)
	}

	meta, loaded, err := s.Load(runID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if meta.Stations != 2 || !meta.Degraded {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.Rotor != cfg {
		t.Errorf("rotor config changed across roundtrip: %+v", meta.Rotor)
	}
	if len(loaded.Stations) != 2 {
		t.Fatalf("expected 2 stations, got %d", len(loaded.Stations))
	}
	if loaded.Stations[0].PowerCoef != 0.07 {
		t.Errorf("expected power coef 0.07, got %g", loaded.Stations[0].PowerCoef)
	}
	if loaded.Stations[1].Err == nil {
		t.Error("expected fault to survive the roundtrip")
	}
	if loaded.PowerCoef != res.PowerCoef {
		t.Errorf("expected total %g, got %g", res.PowerCoef, loaded.PowerCoef)
	}
}

func TestList(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}

	cfg, res := sampleResult()
	if _, err := s.Save("a", cfg, res); err != nil {
		t.Fatal(err)
	}

	runs, err = s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	s := New("does-not-exist")
	runs, err := s.List()
	if err != nil {
		t.Fatalf("expected empty list for missing dir, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	cfg, res := sampleResult()

	var buf bytes.Buffer
	if err := ExportJSON(&buf, "baseline", cfg, res); err != nil {
		t.Fatal(err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(data.Stations) != 2 {
		t.Fatalf("expected 2 stations, got %d", len(data.Stations))
	}
	if data.Stations[1].Fault == "" {
		t.Error("expected fault message on station 1")
	}
}
