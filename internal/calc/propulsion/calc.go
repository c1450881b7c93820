package propulsion

import (
	"fmt"
	"math"
)

type Input struct {
	ThrustN               float64 `json:"thrust_n"`
	PropellerEfficiency   float64 `json:"propeller_efficiency"`
	FuelEnergyDensityMJKG float64 `json:"fuel_energy_density_mj_kg"`
	FuelMassKG            float64 `json:"fuel_mass_kg"`
}

type Result struct {
	PowerAvailableKW float64 `json:"power_available_kw"`
	EnduranceHours   float64 `json:"endurance_hours"`
	Notes            string  `json:"notes"`
}

// Calculate derives the cruise power budget from a stall-speed reference point.
// The stall speed comes from the aerodynamics calc and is passed in explicitly.
func Calculate(in Input, stallSpeedMS float64) (Result, error) {
	if in.PropellerEfficiency <= 0 || in.PropellerEfficiency > 1 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if stallSpeedMS < 0 || math.IsNaN(stallSpeedMS) || math.IsInf(stallSpeedMS, 0) {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.ThrustN < 0 || in.FuelEnergyDensityMJKG < 0 || in.FuelMassKG < 0 {
		return Result{}, fmt.Errorf("invalid input")
	}

	powerKW := in.ThrustN * stallSpeedMS / 1000.0 / in.PropellerEfficiency

	endurance := 0.0
	if powerKW > 0 {
		// fuel energy [J] / power [W] / 3600 [s/hr]
		endurance = (in.FuelEnergyDensityMJKG * 1e6 * in.FuelMassKG) / (powerKW * 1000.0 * 3600.0)
	}

	return Result{
		PowerAvailableKW: powerKW,
		EnduranceHours:   endurance,
		Notes:            "Shaft power at stall-speed reference; endurance from fuel energy over power draw.",
	}, nil
}
