package multirotor

import (
	"fmt"
	"math"
)

const (
	sweepPoints     = 20
	sweepPayloadMin = 0.5
	sweepPayloadMax = 5.0

	// The hover-throttle proxy in the payload sweep has always used a fixed
	// 9.8 rather than the user-supplied gravity. Kept as-is; see DESIGN.md.
	throttleGravity = 9.8
)

type Input struct {
	NumRotors          int     `json:"num_rotors"`
	RotorDiameterM     float64 `json:"rotor_diameter_m"`
	BatteryCapacityMAH float64 `json:"battery_capacity_mah"`
	BatteryVoltageV    float64 `json:"battery_voltage_v"`
	PayloadKG          float64 `json:"payload_kg"`
	FrameWeightKG      float64 `json:"frame_weight_kg"`
	AirDensity         float64 `json:"air_density"`
	Gravity            float64 `json:"gravity"`
}

type SweepPoint struct {
	PayloadKG     float64 `json:"payload_kg"`
	EnduranceMin  float64 `json:"endurance_min"`
	HoverThrottle float64 `json:"hover_throttle"`
}

type Result struct {
	ThrustPerMotorN float64      `json:"thrust_per_motor_n"`
	TotalPowerW     float64      `json:"total_power_w"`
	EnduranceMin    float64      `json:"endurance_min"`
	PayloadSweep    []SweepPoint `json:"payload_sweep"`
	Notes           string       `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.NumRotors < 2 || in.NumRotors > 8 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.RotorDiameterM <= 0 || in.AirDensity <= 0 || in.Gravity <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.PayloadKG < 0 || in.FrameWeightKG < 0 || in.BatteryCapacityMAH < 0 || in.BatteryVoltageV < 0 {
		return Result{}, fmt.Errorf("invalid input")
	}

	diskArea := math.Pi * (in.RotorDiameterM / 2) * (in.RotorDiameterM / 2)
	energyJ := (in.BatteryCapacityMAH / 1000.0) * in.BatteryVoltageV * 3600.0

	thrust, _, totalPower := hoverFigures(in, diskArea, in.PayloadKG)

	enduranceMin := 0.0
	if totalPower > 0 {
		enduranceMin = energyJ / totalPower / 60.0
	}

	sweep := make([]SweepPoint, 0, sweepPoints)
	step := (sweepPayloadMax - sweepPayloadMin) / float64(sweepPoints-1)
	for i := 0; i < sweepPoints; i++ {
		p := sweepPayloadMin + step*float64(i)
		tpm, _, tp := hoverFigures(in, diskArea, p)
		e := 0.0
		if tp > 0 {
			e = energyJ / tp / 60.0
		}
		throttle := tpm / (throttleGravity * (in.FrameWeightKG/float64(in.NumRotors) + p/float64(in.NumRotors)))
		sweep = append(sweep, SweepPoint{
			PayloadKG:     p,
			EnduranceMin:  e,
			HoverThrottle: throttle,
		})
	}

	return Result{
		ThrustPerMotorN: thrust,
		TotalPowerW:     totalPower,
		EnduranceMin:    enduranceMin,
		PayloadSweep:    sweep,
		Notes:           "Momentum-theory hover estimate with ideal induced power.",
	}, nil
}

// hoverFigures evaluates the momentum-theory chain for one payload value.
func hoverFigures(in Input, diskArea, payloadKG float64) (thrustPerMotor, inducedVelocity, totalPower float64) {
	totalWeight := (payloadKG + in.FrameWeightKG) * in.Gravity
	thrustPerMotor = totalWeight / float64(in.NumRotors)
	inducedVelocity = math.Sqrt(thrustPerMotor / (2 * in.AirDensity * diskArea))
	totalPower = thrustPerMotor * inducedVelocity * float64(in.NumRotors)
	return thrustPerMotor, inducedVelocity, totalPower
}
