package propulsion

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	aero "AeroLab/internal/calc/aero"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput() Input {
	return Input{
		ThrustN:               500.0,
		PropellerEfficiency:   0.8,
		FuelEnergyDensityMJKG: 43.0,
		FuelMassKG:            100.0,
	}
}

func TestPowerAvailable(t *testing.T) {
	res, err := Calculate(baseInput(), 30.0)
	require.NoError(t, err)

	// 500 * 30 / 1000 / 0.8
	assert.InDelta(t, 18.75, res.PowerAvailableKW, 1e-9)
	// 43e6 * 100 / (18750 * 3600)
	assert.InDelta(t, 43e6*100/(18750.0*3600.0), res.EnduranceHours, 1e-9)
}

func TestZeroEfficiencyUnavailable(t *testing.T) {
	in := baseInput()
	in.PropellerEfficiency = 0
	_, err := Calculate(in, 30.0)
	require.Error(t, err)
}

func TestEfficiencyAboveOneRejected(t *testing.T) {
	in := baseInput()
	in.PropellerEfficiency = 1.2
	_, err := Calculate(in, 30.0)
	require.Error(t, err)
}

func TestNegativeStallSpeedRejected(t *testing.T) {
	_, err := Calculate(baseInput(), -1.0)
	require.Error(t, err)
}

func TestEnduranceLinearInFuelMass(t *testing.T) {
	single, err := Calculate(baseInput(), 30.0)
	require.NoError(t, err)

	doubled := baseInput()
	doubled.FuelMassKG *= 2
	double, err := Calculate(doubled, 30.0)
	require.NoError(t, err)

	assert.InDelta(t, 2*single.EnduranceHours, double.EnduranceHours, 1e-9)
}

func TestZeroThrustZeroEndurance(t *testing.T) {
	in := baseInput()
	in.ThrustN = 0
	res, err := Calculate(in, 30.0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.PowerAvailableKW)
	assert.Equal(t, 0.0, res.EnduranceHours)
}

func TestHandlerDerivesStallSpeed(t *testing.T) {
	req := Request{
		Input: baseInput(),
		Aero: aero.Input{
			WingAreaM2:      16.0,
			WeightKG:        1200.0,
			LiftCoefficient: 1.2,
			AirDensity:      1.225,
			Gravity:         9.81,
		},
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)

	h := &Handler{}
	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest("POST", "/api/tools/propulsion/calc", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.InDelta(t, 31.64, resp.StallSpeedMS, 0.01)
	assert.InDelta(t, 500.0*resp.StallSpeedMS/1000.0/0.8, resp.PowerAvailableKW, 1e-6)
}

func TestHandlerRejectsBadAeroInputs(t *testing.T) {
	req := Request{Input: baseInput()} // zero-valued aero inputs
	body, err := json.Marshal(req)
	require.NoError(t, err)

	h := &Handler{}
	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest("POST", "/api/tools/propulsion/calc", bytes.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
