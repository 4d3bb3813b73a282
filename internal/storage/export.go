package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/rotorlab/internal/aero"
)

// ExportData is the flat JSON shape handed to external tooling.
type ExportData struct {
	Name      string           `json:"name"`
	Rotor     aero.RotorConfig `json:"rotor"`
	PowerCoef float64          `json:"power_coef"`
	Degraded  bool             `json:"degraded"`
	Stations  []ExportStation  `json:"stations"`
}

type ExportStation struct {
	LocalRadius      float64 `json:"local_radius"`
	TipLoss          float64 `json:"tip_loss"`
	AttackAngle      float64 `json:"attack_angle"`
	RelWindAngle     float64 `json:"rel_wind_angle"`
	LiftCoef         float64 `json:"lift_coef"`
	DragCoef         float64 `json:"drag_coef"`
	AxialInduction   float64 `json:"axial_induction"`
	AngularInduction float64 `json:"angular_induction"`
	ThrustCoef       float64 `json:"thrust_coef"`
	TorqueCoef       float64 `json:"torque_coef"`
	PowerCoef        float64 `json:"power_coef"`
	Fault            string  `json:"fault,omitempty"`
}

// ExportJSON writes a full run to w as indented JSON.
func ExportJSON(w io.Writer, name string, cfg aero.RotorConfig, result *aero.RotorResult) error {
	data := ExportData{
		Name:      name,
		Rotor:     cfg,
		PowerCoef: result.PowerCoef,
		Degraded:  result.Degraded,
		Stations:  make([]ExportStation, len(result.Stations)),
	}
	for i, sr := range result.Stations {
		es := ExportStation{
			LocalRadius:      sr.LocalRadius,
			TipLoss:          sr.TipLoss,
			AttackAngle:      sr.AttackAngle,
			RelWindAngle:     sr.RelWindAngle,
			LiftCoef:         sr.LiftCoef,
			DragCoef:         sr.DragCoef,
			AxialInduction:   sr.AxialInduction,
			AngularInduction: sr.AngularInduction,
			ThrustCoef:       sr.ThrustCoef,
			TorqueCoef:       sr.TorqueCoef,
			PowerCoef:        sr.PowerCoef,
		}
		if sr.Err != nil {
			es.Fault = sr.Err.Error()
		}
		data.Stations[i] = es
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONStdout is ExportJSON to standard output.
func ExportJSONStdout(name string, cfg aero.RotorConfig, result *aero.RotorResult) error {
	return ExportJSON(os.Stdout, name, cfg, result)
}
