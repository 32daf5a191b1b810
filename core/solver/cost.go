package solver

import "github.com/kilianp07/powerplan/core/model"

// MarginalCost returns the cost in euro of producing one MWh with the given
// plant under the given fuel prices. Wind costs nothing, so wind turbines
// sort to the front of the merit order. CO2 is deliberately not priced in
// for any plant type.
func MarginalCost(p model.Plant, f model.FuelPrices) (float64, error) {
	switch p.Type {
	case model.WindTurbine:
		return 0, nil
	case model.GasFired:
		return f.Gas / p.Efficiency, nil
	case model.Turbojet:
		return f.Kerosine / p.Efficiency, nil
	default:
		return 0, UnsupportedPlantTypeError{Plant: p}
	}
}

// EffectiveMin returns the lowest power the plant can deliver while
// committed. A wind turbine has no partial range below curtailment: it
// delivers exactly its wind-derated capacity or nothing, so its effective
// minimum equals its effective maximum.
func EffectiveMin(p model.Plant, f model.FuelPrices) float64 {
	if p.Type == model.WindTurbine {
		return p.PMax * f.WindPct / 100
	}
	return p.PMin
}

// EffectiveMax returns the highest power the plant can deliver under the
// given fuel prices, applying wind derating for wind turbines.
func EffectiveMax(p model.Plant, f model.FuelPrices) float64 {
	if p.Type == model.WindTurbine {
		return p.PMax * f.WindPct / 100
	}
	return p.PMax
}
