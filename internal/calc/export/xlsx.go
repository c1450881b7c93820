package export

import (
	"fmt"

	aero "AeroLab/internal/calc/aero"
	multirotor "AeroLab/internal/calc/multirotor"

	"github.com/xuri/excelize/v2"
)

type Input struct {
	Aero       aero.Input       `json:"aero"`
	Multirotor multirotor.Input `json:"multirotor"`
}

// BuildWorkbook renders the power-required curve and the payload sweep into
// one sheet each. Both are recomputed from the submitted inputs.
func BuildWorkbook(in Input) (*excelize.File, error) {
	aeroRes, err := aero.Calculate(in.Aero)
	if err != nil {
		return nil, fmt.Errorf("no results to export: %w", err)
	}
	mrRes, err := multirotor.Calculate(in.Multirotor)
	if err != nil {
		return nil, fmt.Errorf("no results to export: %w", err)
	}

	f := excelize.NewFile()
	const curveSheet = "Power Curve"
	const sweepSheet = "Payload Sweep"

	idx, err := f.NewSheet(curveSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.SetCellValue(curveSheet, "A1", "Speed (m/s)")
	f.SetCellValue(curveSheet, "B1", "Power (kW)")
	for i, pt := range aeroRes.PowerCurve {
		row := i + 2
		f.SetCellValue(curveSheet, fmt.Sprintf("A%d", row), pt.SpeedMS)
		f.SetCellValue(curveSheet, fmt.Sprintf("B%d", row), pt.PowerKW)
	}

	if _, err := f.NewSheet(sweepSheet); err != nil {
		return nil, err
	}
	f.SetCellValue(sweepSheet, "A1", "Payload (kg)")
	f.SetCellValue(sweepSheet, "B1", "Endurance (min)")
	f.SetCellValue(sweepSheet, "C1", "Hover Throttle")
	for i, pt := range mrRes.PayloadSweep {
		row := i + 2
		f.SetCellValue(sweepSheet, fmt.Sprintf("A%d", row), pt.PayloadKG)
		f.SetCellValue(sweepSheet, fmt.Sprintf("B%d", row), pt.EnduranceMin)
		f.SetCellValue(sweepSheet, fmt.Sprintf("C%d", row), pt.HoverThrottle)
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}
