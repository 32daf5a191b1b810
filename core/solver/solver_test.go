package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/kilianp07/powerplan/core/model"
)

const tol = 1e-9

func TestSolve_ExampleScenario(t *testing.T) {
	plan, err := Solve(exampleRequest())
	require.NoError(t, err)

	want := model.Plan{
		{Name: "windpark2", Power: 21.6},
		{Name: "windpark1", Power: 90},
		{Name: "gasfiredbig2", Power: 368.4},
		{Name: "gasfiredbig1", Power: 0},
		{Name: "gasfiredsomewhatsmaller", Power: 0},
		{Name: "tj1", Power: 0},
	}
	require.Len(t, plan, len(want))
	for i := range want {
		assert.Equal(t, want[i].Name, plan[i].Name)
		assert.True(t, scalar.EqualWithinAbs(want[i].Power, plan[i].Power, tol),
			"plant %s: want %v, got %v", want[i].Name, want[i].Power, plan[i].Power)
	}
}

func TestSolve_SumAndBoundsInvariants(t *testing.T) {
	for _, load := range []float64{21.6, 111.6, 211.6, 480, 590, 910, 1111.6} {
		req := exampleRequest()
		req.Load = load

		plan, err := Solve(req)
		if errors.Is(err, ErrNoFeasibleSolution) {
			continue
		}
		require.NoError(t, err, "load %v", load)
		assert.True(t, scalar.EqualWithinAbs(load, plan.TotalPower(), tol),
			"load %v: plan sums to %v", load, plan.TotalPower())

		entries, err := MeritOrder(req)
		require.NoError(t, err)
		for i, e := range entries {
			p := plan[i].Power
			if p == 0 {
				continue
			}
			effMin := EffectiveMin(e.Plant, req.Fuels)
			effMax := EffectiveMax(e.Plant, req.Fuels)
			assert.True(t, p >= effMin-tol && p <= effMax+tol,
				"load %v: plant %s assigned %v outside [%v,%v]", load, e.Plant.Name, p, effMin, effMax)
		}
	}
}

func TestSolve_LoadAboveTotalCapacity(t *testing.T) {
	req := exampleRequest()
	req.Load = 100000

	_, err := Solve(req)
	assert.True(t, errors.Is(err, ErrNoFeasibleSolution))
}

// Wind output cannot be curtailed partially, so a load below the forced wind
// commitment has no solution.
func TestSolve_LoadBelowForcedMinimums(t *testing.T) {
	req := exampleRequest()
	req.Load = 5

	_, err := Solve(req)
	assert.True(t, errors.Is(err, ErrNoFeasibleSolution))
}

func TestSolve_ZeroLoadWithoutWind(t *testing.T) {
	req := exampleRequest()
	req.Load = 0
	req.Fuels.WindPct = 0

	plan, err := Solve(req)
	require.NoError(t, err)
	assert.Zero(t, plan.TotalPower())
}

func TestSolve_UnsupportedTypeAbortsBeforeAssignment(t *testing.T) {
	req := exampleRequest()
	req.Plants[0].Type = model.PlantType(99)

	plan, err := Solve(req)
	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, ErrUnsupportedPlantType))
}

func TestSolve_InvalidRequests(t *testing.T) {
	cases := map[string]func(*model.DispatchRequest){
		"no plants":       func(r *model.DispatchRequest) { r.Plants = nil },
		"negative load":   func(r *model.DispatchRequest) { r.Load = -1 },
		"negative fuel":   func(r *model.DispatchRequest) { r.Fuels.Gas = -0.1 },
		"wind above 100%": func(r *model.DispatchRequest) { r.Fuels.WindPct = 101 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := exampleRequest()
			mutate(&req)
			_, err := Solve(req)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
		})
	}
}

// The unwind sheds exactly the overshoot from the nearest cheaper plant that
// has room, leaving all other commitments untouched.
func TestDecreaseTotalLoad_ShedsExactOvershoot(t *testing.T) {
	req := exampleRequest()
	plants, _, err := buildMeritOrder(req.Plants, req.Fuels)
	require.NoError(t, err)

	p := &problem{
		load:     590,
		fuels:    req.Fuels,
		plants:   plants,
		solution: []float64{21.6, 90, 460, 100, 0, 0},
	}
	p.current = floats.Sum(p.solution)

	require.True(t, p.decreaseTotalLoad(2))
	want := []float64{21.6, 90, 378.4, 100, 0, 0}
	require.Len(t, p.solution, len(want))
	for i := range want {
		assert.True(t, scalar.EqualWithinAbs(want[i], p.solution[i], tol),
			"index %d: want %v, got %v", i, want[i], p.solution[i])
	}
	assert.True(t, scalar.EqualWithinAbs(590, p.current, tol))
}

// A failed unwind must leave the committed allocation untouched.
func TestDecreaseTotalLoad_FailureKeepsState(t *testing.T) {
	req := exampleRequest()
	plants, _, err := buildMeritOrder(req.Plants, req.Fuels)
	require.NoError(t, err)

	before := []float64{21.6, 90, 100, 100, 0, 0}
	p := &problem{
		load:     50,
		fuels:    req.Fuels,
		plants:   plants,
		solution: append([]float64(nil), before...),
	}
	p.current = floats.Sum(before)

	require.False(t, p.decreaseTotalLoad(3))
	assert.Equal(t, before, p.solution)
	assert.Equal(t, floats.Sum(before), p.current)
}
