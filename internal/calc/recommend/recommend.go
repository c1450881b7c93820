package recommend

import (
	"fmt"

	multirotor "AeroLab/internal/calc/multirotor"
)

type BatteryInput struct {
	TargetEnduranceMin float64          `json:"target_endurance_min"`
	Multirotor         multirotor.Input `json:"multirotor"`
}

type BatteryResult struct {
	RequiredCapacityMAH float64 `json:"required_capacity_mah"`
	HoverPowerW         float64 `json:"hover_power_w"`
	Notes               string  `json:"notes"`
}

// Battery inverts the endurance formula: given the hover power draw of the
// airframe, size the pack that sustains the target endurance at the given
// voltage.
func Battery(in BatteryInput) (BatteryResult, error) {
	if in.TargetEnduranceMin <= 0 || in.Multirotor.BatteryVoltageV <= 0 {
		return BatteryResult{}, fmt.Errorf("invalid input")
	}
	res, err := multirotor.Calculate(in.Multirotor)
	if err != nil {
		return BatteryResult{}, err
	}
	if res.TotalPowerW <= 0 {
		return BatteryResult{}, fmt.Errorf("invalid input")
	}

	// endurance_min = (mAh/1000 * V * 3600) / P / 60, solved for mAh
	energyJ := res.TotalPowerW * in.TargetEnduranceMin * 60.0
	capacityMAH := energyJ / 3600.0 / in.Multirotor.BatteryVoltageV * 1000.0

	return BatteryResult{
		RequiredCapacityMAH: capacityMAH,
		HoverPowerW:         res.TotalPowerW,
		Notes:               "Pack sized for hover power only; leave margin for climb and wind.",
	}, nil
}
