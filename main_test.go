package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() http.Handler {
	r := mux.NewRouter()
	HandleList(r, nil) // no database: desktop mode
	return CORS(r)
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]bool
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body["ok"])
}

func TestAeroCalcRoute(t *testing.T) {
	payload := map[string]float64{
		"wing_area_m2":     16.0,
		"weight_kg":        1200.0,
		"lift_coefficient": 1.2,
		"air_density":      1.225,
		"gravity":          9.81,
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("POST", "/api/tools/aero/calc", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var res map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.InDelta(t, 31.64, res["stall_speed_ms"].(float64), 0.01)
}

func TestCalcRouteRejectsInvalidDomain(t *testing.T) {
	body := []byte(`{"wing_area_m2":0,"weight_kg":1200,"lift_coefficient":1.2,"air_density":1.225,"gravity":9.81}`)
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("POST", "/api/tools/aero/calc", bytes.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPresetRoutesAbsentWithoutDatabase(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/api/user/presets", nil))
	assert.NotEqual(t, http.StatusOK, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/api/tools/aero/calc", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
