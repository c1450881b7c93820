package propulsion

import (
	"encoding/json"
	"net/http"

	aero "AeroLab/internal/calc/aero"
)

type Handler struct{}

// Request carries the propulsion inputs together with the aerodynamic inputs
// the stall-speed reference is derived from.
type Request struct {
	Input
	Aero aero.Input `json:"aero"`
}

type Response struct {
	Result
	StallSpeedMS float64 `json:"stall_speed_ms"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	aeroRes, err := aero.Calculate(req.Aero)
	if err != nil {
		http.Error(w, "Stall speed unavailable", http.StatusBadRequest)
		return
	}
	res, err := Calculate(req.Input, aeroRes.StallSpeedMS)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{Result: res, StallSpeedMS: aeroRes.StallSpeedMS})
}
