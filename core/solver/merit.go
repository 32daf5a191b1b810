package solver

import (
	"slices"

	"github.com/kilianp07/powerplan/core/model"
)

// Entry pairs a plant with its marginal cost in the merit order.
type Entry struct {
	Plant model.Plant
	Cost  float64
}

// MeritOrder returns the request's plants sorted ascending by marginal cost.
// It validates the request first and is safe for diagnostic use: it mutates
// no shared state.
func MeritOrder(req model.DispatchRequest) ([]Entry, error) {
	if err := req.Validate(); err != nil {
		return nil, invalidRequest(err)
	}
	plants, costs, err := buildMeritOrder(req.Plants, req.Fuels)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(plants))
	for i := range plants {
		entries[i] = Entry{Plant: plants[i], Cost: costs[i]}
	}
	return entries, nil
}

// buildMeritOrder sorts plants ascending by marginal cost using incremental
// front-scan insertion. A new plant is inserted before the first entry whose
// cost is greater than or equal to its own, so among equal-cost plants the
// later arrival ends up first. Downstream output order depends on this exact
// tie-break; do not replace it with a stable sort.
func buildMeritOrder(plants []model.Plant, fuels model.FuelPrices) ([]model.Plant, []float64, error) {
	first, err := MarginalCost(plants[0], fuels)
	if err != nil {
		return nil, nil, err
	}
	ordered := make([]model.Plant, 1, len(plants))
	costs := make([]float64, 1, len(plants))
	ordered[0] = plants[0]
	costs[0] = first

	for _, p := range plants[1:] {
		cost, err := MarginalCost(p, fuels)
		if err != nil {
			return nil, nil, err
		}
		inserted := false
		for j := range costs {
			if cost <= costs[j] {
				costs = slices.Insert(costs, j, cost)
				ordered = slices.Insert(ordered, j, p)
				inserted = true
				break
			}
		}
		if !inserted {
			costs = append(costs, cost)
			ordered = append(ordered, p)
		}
	}
	return ordered, costs, nil
}
