package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/powerplan/core/model"
)

func exampleRequest() model.DispatchRequest {
	return model.DispatchRequest{
		Load:  480,
		Fuels: model.FuelPrices{Gas: 13.4, Kerosine: 50.8, CO2: 20, WindPct: 60},
		Plants: []model.Plant{
			{Name: "gasfiredbig1", Type: model.GasFired, Efficiency: 0.53, PMin: 100, PMax: 460},
			{Name: "gasfiredbig2", Type: model.GasFired, Efficiency: 0.53, PMin: 100, PMax: 460},
			{Name: "gasfiredsomewhatsmaller", Type: model.GasFired, Efficiency: 0.37, PMin: 40, PMax: 210},
			{Name: "tj1", Type: model.Turbojet, Efficiency: 0.3, PMin: 0, PMax: 16},
			{Name: "windpark1", Type: model.WindTurbine, Efficiency: 1, PMin: 0, PMax: 150},
			{Name: "windpark2", Type: model.WindTurbine, Efficiency: 1, PMin: 0, PMax: 36},
		},
	}
}

func TestMeritOrder_CostsAscending(t *testing.T) {
	entries, err := MeritOrder(exampleRequest())
	require.NoError(t, err)

	costs := make([]float64, len(entries))
	for i, e := range entries {
		costs[i] = e.Cost
	}
	assert.Equal(t, []float64{0, 0, 13.4 / 0.53, 13.4 / 0.53, 13.4 / 0.37, 50.8 / 0.3}, costs)
}

// Equal-cost plants are inserted ahead of the ones already placed, so the
// later-arriving windpark2 and gasfiredbig2 come first. The production plan
// output order depends on this.
func TestMeritOrder_EqualCostTieBreak(t *testing.T) {
	entries, err := MeritOrder(exampleRequest())
	require.NoError(t, err)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Plant.Name
	}
	assert.Equal(t, []string{"windpark2", "windpark1", "gasfiredbig2", "gasfiredbig1", "gasfiredsomewhatsmaller", "tj1"}, names)
}

func TestMeritOrder_SinglePlant(t *testing.T) {
	req := exampleRequest()
	req.Plants = req.Plants[:1]

	entries, err := MeritOrder(req)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "gasfiredbig1", entries[0].Plant.Name)
}

func TestMeritOrder_UnsupportedType(t *testing.T) {
	req := exampleRequest()
	req.Plants = append(req.Plants, model.Plant{Name: "fusion1", Type: model.PlantType(7), Efficiency: 0.9, PMax: 1000})

	_, err := MeritOrder(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedPlantType))

	var typeErr UnsupportedPlantTypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "fusion1", typeErr.Plant.Name)
}

func TestMeritOrder_InvalidRequest(t *testing.T) {
	req := exampleRequest()
	req.Plants = nil

	_, err := MeritOrder(req)
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}
