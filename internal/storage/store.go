package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/rotorlab/internal/aero"
)

// Store persists analysis runs under a base directory, one
// subdirectory per run holding metadata.json and stations.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Timestamp time.Time        `json:"timestamp"`
	Rotor     aero.RotorConfig `json:"rotor"`
	Stations  int              `json:"stations"`
	PowerCoef float64          `json:"power_coef"`
	Degraded  bool             `json:"degraded"`
}

var csvHeader = []string{
	"local_radius", "tip_loss", "attack_angle", "rel_wind_angle",
	"lift_coef", "drag_coef", "axial_induction", "angular_induction",
	"thrust_coef", "torque_coef", "power_coef", "iterations", "fault",
}

func (s *Store) Save(name string, cfg aero.RotorConfig, result *aero.RotorResult) (string, error) {
	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Name:      name,
		Timestamp: time.Now(),
		Rotor:     cfg,
		Stations:  len(result.Stations),
		PowerCoef: result.PowerCoef,
		Degraded:  result.Degraded,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "stations.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, sr := range result.Stations {
		fault := ""
		if sr.Err != nil {
			fault = sr.Err.Error()
		}
		row := make([]string, 0, len(csvHeader))
		for _, v := range []float64{
			sr.LocalRadius, sr.TipLoss, sr.AttackAngle, sr.RelWindAngle,
			sr.LiftCoef, sr.DragCoef, sr.AxialInduction, sr.AngularInduction,
			sr.ThrustCoef, sr.TorqueCoef, sr.PowerCoef,
		} {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		row = append(row, strconv.Itoa(sr.Iterations), fault)
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) LoadMetadata(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Load reads a stored run back into a RotorResult. Faulted stations
// come back with an opaque error carrying the recorded message.
func (s *Store) Load(runID string) (*RunMetadata, *aero.RotorResult, error) {
	meta, err := s.LoadMetadata(runID)
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "stations.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 1 {
		return meta, &aero.RotorResult{Degraded: meta.Degraded}, nil
	}

	result := &aero.RotorResult{
		PowerCoef: meta.PowerCoef,
		Degraded:  meta.Degraded,
		Stations:  make([]aero.StationResult, 0, len(records)-1),
	}
	for _, rec := range records[1:] {
		if len(rec) != len(csvHeader) {
			return nil, nil, fmt.Errorf("storage: malformed station row in run %s", runID)
		}
		vals := make([]float64, 11)
		for i := range vals {
			v, err := strconv.ParseFloat(rec[i], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("storage: run %s: %w", runID, err)
			}
			vals[i] = v
		}
		iters, err := strconv.Atoi(rec[11])
		if err != nil {
			return nil, nil, fmt.Errorf("storage: run %s: %w", runID, err)
		}
		sr := aero.StationResult{
			LocalRadius:      vals[0],
			TipLoss:          vals[1],
			AttackAngle:      vals[2],
			RelWindAngle:     vals[3],
			LiftCoef:         vals[4],
			DragCoef:         vals[5],
			AxialInduction:   vals[6],
			AngularInduction: vals[7],
			ThrustCoef:       vals[8],
			TorqueCoef:       vals[9],
			PowerCoef:        vals[10],
			Iterations:       iters,
		}
		if rec[12] != "" {
			sr.Err = fmt.Errorf("%s", rec[12])
		}
		result.Stations = append(result.Stations, sr)
	}
	return meta, result, nil
}
