package aero

import (
	"fmt"
	"math"
)

const (
	dragCoefficient = 0.03
	curvePoints     = 30
	curveSpeedMin   = 20.0
	curveSpeedMax   = 100.0
)

type Input struct {
	WingAreaM2      float64 `json:"wing_area_m2"`
	WeightKG        float64 `json:"weight_kg"`
	LiftCoefficient float64 `json:"lift_coefficient"`
	AirDensity      float64 `json:"air_density"`
	Gravity         float64 `json:"gravity"`
}

type PowerPoint struct {
	SpeedMS float64 `json:"speed_ms"`
	PowerKW float64 `json:"power_kw"`
}

type Result struct {
	StallSpeedMS  float64      `json:"stall_speed_ms"`
	StallSpeedKMH float64      `json:"stall_speed_kmh"`
	PowerCurve    []PowerPoint `json:"power_curve"`
	Notes         string       `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.WingAreaM2 <= 0 || in.AirDensity <= 0 || in.LiftCoefficient <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.WeightKG < 0 || in.Gravity <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}

	// Level-flight lift balance: L = 0.5 rho v^2 S Cl = W g
	stall := math.Sqrt((2 * in.WeightKG * in.Gravity) / (in.AirDensity * in.WingAreaM2 * in.LiftCoefficient))

	curve := make([]PowerPoint, 0, curvePoints)
	step := (curveSpeedMax - curveSpeedMin) / float64(curvePoints-1)
	for i := 0; i < curvePoints; i++ {
		v := curveSpeedMin + step*float64(i)
		drag := 0.5 * in.AirDensity * v * v * in.WingAreaM2 * dragCoefficient
		curve = append(curve, PowerPoint{
			SpeedMS: v,
			PowerKW: drag * v / 1000.0,
		})
	}

	return Result{
		StallSpeedMS:  stall,
		StallSpeedKMH: stall * 3.6,
		PowerCurve:    curve,
		Notes:         "Stall speed from level-flight lift balance; parasite-drag power curve (Cd=0.03).",
	}, nil
}
