package productionplan

import (
	"fmt"

	"github.com/kilianp07/powerplan/core/model"
)

// Fuel keys as they appear on the wire.
const (
	fuelGas      = "gas(euro/MWh)"
	fuelKerosine = "kerosine(euro/MWh)"
	fuelCO2      = "co2(euro/ton)"
	fuelWind     = "wind(%)"
)

// Payload is the body of a POST /productionplan request.
type Payload struct {
	Load        float64             `json:"load"`
	Fuels       map[string]float64  `json:"fuels"`
	Powerplants []PowerplantPayload `json:"powerplants"`
}

// PowerplantPayload describes one plant in the request.
type PowerplantPayload struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Efficiency float64 `json:"efficiency"`
	PMin       float64 `json:"pmin"`
	PMax       float64 `json:"pmax"`
}

// PlantResponse is one entry of the plan returned on the wire. The field is
// named "p" for compatibility with existing consumers.
type PlantResponse struct {
	Name  string  `json:"name"`
	Power float64 `json:"p"`
}

// ToRequest converts the wire payload into a core dispatch request. Unknown
// fuel keys and plant types are rejected here so the core only ever sees the
// closed type set.
func (p Payload) ToRequest() (model.DispatchRequest, error) {
	var fuels model.FuelPrices
	for key, value := range p.Fuels {
		switch key {
		case fuelGas:
			fuels.Gas = value
		case fuelKerosine:
			fuels.Kerosine = value
		case fuelCO2:
			fuels.CO2 = value
		case fuelWind:
			fuels.WindPct = value
		default:
			return model.DispatchRequest{}, fmt.Errorf("unknown fuel %q", key)
		}
	}

	plants := make([]model.Plant, len(p.Powerplants))
	for i, pp := range p.Powerplants {
		pt, err := model.ParsePlantType(pp.Type)
		if err != nil {
			return model.DispatchRequest{}, fmt.Errorf("powerplant %s: %w", pp.Name, err)
		}
		plants[i] = model.Plant{
			Name:       pp.Name,
			Type:       pt,
			Efficiency: pp.Efficiency,
			PMin:       pp.PMin,
			PMax:       pp.PMax,
		}
	}

	return model.DispatchRequest{Load: p.Load, Fuels: fuels, Plants: plants}, nil
}
