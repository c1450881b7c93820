package batch

import (
	"fmt"

	multirotor "AeroLab/internal/calc/multirotor"
)

type MultirotorBatchInput struct {
	Items []multirotor.Input `json:"items"`
}

type MultirotorBatchResult struct {
	Results []multirotor.Result `json:"results"`
}

func CalculateMultirotor(in MultirotorBatchInput) (MultirotorBatchResult, error) {
	if len(in.Items) == 0 {
		return MultirotorBatchResult{}, fmt.Errorf("no items")
	}
	out := MultirotorBatchResult{Results: make([]multirotor.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := multirotor.Calculate(item)
		if err != nil {
			return MultirotorBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
