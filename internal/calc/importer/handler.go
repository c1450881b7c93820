package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	multirotor "AeroLab/internal/calc/multirotor"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type MultirotorImportResult struct {
	Count   int                 `json:"count"`
	Results []multirotor.Result `json:"results"`
}

func (h *Handler) Multirotor(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []multirotor.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseMultirotorRow(rows[i])
		if err != nil {
			continue
		}
		res, err := multirotor.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MultirotorImportResult{Count: len(results), Results: results})
}

// expected columns: num_rotors, rotor_diameter_m, battery_capacity_mah,
// battery_voltage_v, payload_kg, frame_weight_kg, air_density(optional),
// gravity(optional)
func parseMultirotorRow(row []string) (multirotor.Input, error) {
	if len(row) < 6 {
		return multirotor.Input{}, fmt.Errorf("bad row")
	}
	rotors, err := toFloat(row[0])
	if err != nil {
		return multirotor.Input{}, err
	}
	diameter, err := toFloat(row[1])
	if err != nil {
		return multirotor.Input{}, err
	}
	capacity, err := toFloat(row[2])
	if err != nil {
		return multirotor.Input{}, err
	}
	voltage, err := toFloat(row[3])
	if err != nil {
		return multirotor.Input{}, err
	}
	payload, err := toFloat(row[4])
	if err != nil {
		return multirotor.Input{}, err
	}
	frame, err := toFloat(row[5])
	if err != nil {
		return multirotor.Input{}, err
	}
	density := 1.225
	if len(row) > 6 && row[6] != "" {
		density, _ = toFloat(row[6])
	}
	gravity := 9.81
	if len(row) > 7 && row[7] != "" {
		gravity, _ = toFloat(row[7])
	}
	return multirotor.Input{
		NumRotors:          int(rotors),
		RotorDiameterM:     diameter,
		BatteryCapacityMAH: capacity,
		BatteryVoltageV:    voltage,
		PayloadKG:          payload,
		FrameWeightKG:      frame,
		AirDensity:         density,
		Gravity:            gravity,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
