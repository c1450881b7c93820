package report

import (
	"fmt"

	aero "AeroLab/internal/calc/aero"
	multirotor "AeroLab/internal/calc/multirotor"
	propulsion "AeroLab/internal/calc/propulsion"
)

type Input struct {
	Title      string           `json:"title"`
	Aero       aero.Input       `json:"aero"`
	Propulsion propulsion.Input `json:"propulsion"`
	Multirotor multirotor.Input `json:"multirotor"`
}

type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// BuildLines recomputes every module from the submitted inputs and flattens
// the snapshot into the fixed export order. It refuses to produce anything
// when stall speed or endurance cannot be computed.
func BuildLines(in Input) ([]Line, error) {
	aeroRes, err := aero.Calculate(in.Aero)
	if err != nil {
		return nil, fmt.Errorf("no results to export: %w", err)
	}
	propRes, err := propulsion.Calculate(in.Propulsion, aeroRes.StallSpeedMS)
	if err != nil {
		return nil, fmt.Errorf("no results to export: %w", err)
	}
	mrRes, err := multirotor.Calculate(in.Multirotor)
	if err != nil {
		return nil, fmt.Errorf("no results to export: %w", err)
	}

	return []Line{
		{"Air Density", fmt.Sprintf("%g kg/m³", in.Aero.AirDensity)},
		{"Gravity", fmt.Sprintf("%g m/s²", in.Aero.Gravity)},
		{"Wing Area", fmt.Sprintf("%g m²", in.Aero.WingAreaM2)},
		{"Weight", fmt.Sprintf("%g kg", in.Aero.WeightKG)},
		{"Lift Coefficient", fmt.Sprintf("%g", in.Aero.LiftCoefficient)},
		{"Stall Speed", fmt.Sprintf("%.2f m/s", aeroRes.StallSpeedMS)},
		{"Thrust", fmt.Sprintf("%g N", in.Propulsion.ThrustN)},
		{"Propeller Efficiency", fmt.Sprintf("%.1f%%", in.Propulsion.PropellerEfficiency*100)},
		{"Fuel Mass", fmt.Sprintf("%g kg", in.Propulsion.FuelMassKG)},
		{"Estimated Endurance", fmt.Sprintf("%.2f hr", propRes.EnduranceHours)},
		{"Number of Rotors", fmt.Sprintf("%d", in.Multirotor.NumRotors)},
		{"Rotor Diameter", fmt.Sprintf("%g m", in.Multirotor.RotorDiameterM)},
		{"Battery Capacity", fmt.Sprintf("%g mAh", in.Multirotor.BatteryCapacityMAH)},
		{"Battery Voltage", fmt.Sprintf("%g V", in.Multirotor.BatteryVoltageV)},
		{"Multirotor Endurance", fmt.Sprintf("%.1f min", mrRes.EnduranceMin)},
	}, nil
}
