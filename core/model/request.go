package model

import "fmt"

// FuelPrices holds the fuel costs in effect for one solve. WindPct is not a
// price: it is the percentage of nameplate capacity wind turbines can
// currently deliver.
type FuelPrices struct {
	Gas      float64 // euro/MWh
	Kerosine float64 // euro/MWh
	CO2      float64 // euro/ton, carried along but never priced in
	WindPct  float64 // percent, 0-100
}

// Validate checks that all prices are non-negative and the wind percentage
// stays within 0-100.
func (f FuelPrices) Validate() error {
	if f.Gas < 0 || f.Kerosine < 0 || f.CO2 < 0 {
		return fmt.Errorf("fuel prices must be non-negative")
	}
	if f.WindPct < 0 || f.WindPct > 100 {
		return fmt.Errorf("wind availability must be between 0 and 100, got %v", f.WindPct)
	}
	return nil
}

// DispatchRequest is the immutable input of one unit-commitment solve.
type DispatchRequest struct {
	Load   float64
	Fuels  FuelPrices
	Plants []Plant
}

// Validate performs the defensive precondition checks the solver relies on.
func (r DispatchRequest) Validate() error {
	if r.Load < 0 {
		return fmt.Errorf("load must be non-negative, got %v", r.Load)
	}
	if len(r.Plants) == 0 {
		return fmt.Errorf("at least one plant is required")
	}
	if err := r.Fuels.Validate(); err != nil {
		return err
	}
	for _, p := range r.Plants {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PlantPower is the power assigned to one plant in a production plan.
type PlantPower struct {
	Name  string  `json:"name"`
	Power float64 `json:"power"`
}

// Plan is a feasible per-plant assignment in merit order.
type Plan []PlantPower

// TotalPower returns the sum of all assigned powers.
func (p Plan) TotalPower() float64 {
	var total float64
	for _, pp := range p {
		total += pp.Power
	}
	return total
}
