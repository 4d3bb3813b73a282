package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rotorlab/internal/aero"
)

// Spanwise fields that can be plotted against local radius.
const (
	FieldPowerCoef   = "power"
	FieldThrustCoef  = "thrust"
	FieldTorqueCoef  = "torque"
	FieldTipLoss     = "tiploss"
	FieldAttackAngle = "attack"
	FieldRelWind     = "relwind"
	FieldLiftCoef    = "lift"
	FieldDragCoef    = "drag"
	FieldAxial       = "axial"
	FieldAngular     = "angular"
)

// Fields lists the plottable field names in display order.
func Fields() []string {
	return []string{
		FieldPowerCoef, FieldThrustCoef, FieldTorqueCoef, FieldTipLoss,
		FieldAttackAngle, FieldRelWind, FieldLiftCoef, FieldDragCoef,
		FieldAxial, FieldAngular,
	}
}

// FieldValues extracts one spanwise series from the result, hub to tip
// in station order.
func FieldValues(res *aero.RotorResult, field string) ([]float64, error) {
	pick, err := picker(field)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, len(res.Stations))
	for i, sr := range res.Stations {
		vals[i] = pick(sr)
	}
	return vals, nil
}

func picker(field string) (func(aero.StationResult) float64, error) {
	switch field {
	case FieldPowerCoef:
		return func(s aero.StationResult) float64 { return s.PowerCoef }, nil
	case FieldThrustCoef:
		return func(s aero.StationResult) float64 { return s.ThrustCoef }, nil
	case FieldTorqueCoef:
		return func(s aero.StationResult) float64 { return s.TorqueCoef }, nil
	case FieldTipLoss:
		return func(s aero.StationResult) float64 { return s.TipLoss }, nil
	case FieldAttackAngle:
		return func(s aero.StationResult) float64 { return s.AttackAngle }, nil
	case FieldRelWind:
		return func(s aero.StationResult) float64 { return s.RelWindAngle }, nil
	case FieldLiftCoef:
		return func(s aero.StationResult) float64 { return s.LiftCoef }, nil
	case FieldDragCoef:
		return func(s aero.StationResult) float64 { return s.DragCoef }, nil
	case FieldAxial:
		return func(s aero.StationResult) float64 { return s.AxialInduction }, nil
	case FieldAngular:
		return func(s aero.StationResult) float64 { return s.AngularInduction }, nil
	default:
		return nil, fmt.Errorf("unknown field %q (have %s)", field, strings.Join(Fields(), ", "))
	}
}

// Spanwise renders one field against blade span as a terminal graph.
func Spanwise(res *aero.RotorResult, field string, height int) (string, error) {
	vals, err := FieldValues(res, field)
	if err != nil {
		return "", err
	}
	if len(vals) < 2 {
		// asciigraph needs at least two samples to draw an axis.
		return fmt.Sprintf("%s: %v (single station)", field, vals), nil
	}

	caption := fmt.Sprintf("%s vs span (hub -> tip, %d stations)", field, len(vals))
	graph := asciigraph.Plot(vals,
		asciigraph.Height(height),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	return graph, nil
}
