package batch

import (
	"testing"

	multirotor "AeroLab/internal/calc/multirotor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quad(payload float64) multirotor.Input {
	return multirotor.Input{
		NumRotors:          4,
		RotorDiameterM:     0.3,
		BatteryCapacityMAH: 10000,
		BatteryVoltageV:    22.2,
		PayloadKG:          payload,
		FrameWeightKG:      1.5,
		AirDensity:         1.225,
		Gravity:            9.81,
	}
}

func TestBatchMultirotor(t *testing.T) {
	res, err := CalculateMultirotor(MultirotorBatchInput{
		Items: []multirotor.Input{quad(1.0), quad(2.0), quad(3.0)},
	})
	require.NoError(t, err)
	require.Len(t, res.Results, 3)
	assert.Greater(t, res.Results[0].EnduranceMin, res.Results[2].EnduranceMin)
}

func TestBatchEmpty(t *testing.T) {
	_, err := CalculateMultirotor(MultirotorBatchInput{})
	require.Error(t, err)
}

func TestBatchFailsOnBadItem(t *testing.T) {
	bad := quad(1.0)
	bad.NumRotors = 1
	_, err := CalculateMultirotor(MultirotorBatchInput{Items: []multirotor.Input{quad(1.0), bad}})
	require.Error(t, err)
}
