package solver

import (
	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/powerplan/core/model"
)

// Solve computes a production plan whose total output equals the requested
// load exactly. The returned plan is in merit order, not in the caller's
// input order. Infeasible requests return ErrNoFeasibleSolution; an unknown
// plant type aborts with UnsupportedPlantTypeError before any assignment.
func Solve(req model.DispatchRequest) (model.Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, invalidRequest(err)
	}
	plants, _, err := buildMeritOrder(req.Plants, req.Fuels)
	if err != nil {
		return nil, err
	}
	p := &problem{
		load:     req.Load,
		fuels:    req.Fuels,
		plants:   plants,
		solution: make([]float64, len(plants)),
	}
	if !p.assign(0) {
		return nil, ErrNoFeasibleSolution
	}
	plan := make(model.Plan, len(plants))
	for i, pl := range plants {
		plan[i] = model.PlantPower{Name: pl.Name, Power: p.solution[i]}
	}
	return plan, nil
}

// problem holds the working state of one solve. It is created per call, so
// concurrent solves never share mutable state.
type problem struct {
	load     float64
	fuels    model.FuelPrices
	plants   []model.Plant // merit order
	solution []float64     // parallel to plants
	current  float64       // running committed total
}

// assign commits a power level to plants[idx] and recurses down the merit
// order. For every index exactly one of three branches applies:
//
//  1. Even the plant's maximum leaves a deficit: commit the maximum and
//     recurse. Intermediate levels are never tried in this branch; only the
//     exact-fit branch ever assigns a non-boundary value, and only to the
//     single plant that closes the gap. Known limitation, kept as-is.
//  2. Even the plant's minimum overshoots: commit the minimum tentatively
//     and shed the excess from cheaper plants via decreaseTotalLoad.
//  3. Otherwise the remaining deficit fits this plant's range: commit it and
//     terminate.
//
// Running past the last plant with an outstanding deficit means no feasible
// plan exists on this branch. Every failed commitment is rolled back before
// reporting failure upward.
func (p *problem) assign(idx int) bool {
	if idx >= len(p.plants) {
		return false
	}
	pl := p.plants[idx]
	switch {
	case p.current+EffectiveMax(pl, p.fuels) < p.load:
		effMax := EffectiveMax(pl, p.fuels)
		p.solution[idx] = effMax
		p.current += effMax
		if p.assign(idx + 1) {
			return true
		}
		p.solution[idx] = 0
		p.current -= effMax
		return false

	case p.current+EffectiveMin(pl, p.fuels) > p.load:
		effMin := EffectiveMin(pl, p.fuels)
		p.solution[idx] = effMin
		p.current += effMin
		if p.decreaseTotalLoad(idx - 1) {
			return true
		}
		p.solution[idx] = 0
		p.current -= effMin
		return false

	default:
		p.solution[idx] = p.load - p.current
		p.current += p.solution[idx]
		return true
	}
}

// decreaseTotalLoad sheds the current overshoot by reducing output on
// cheaper plants, walking backward from idx toward the front of the merit
// order. It works on a scratch copy so a failed attempt leaves the committed
// state untouched. The plant that finally closes the gap is reduced by
// exactly the remaining excess, not by everything it could shed.
func (p *problem) decreaseTotalLoad(idx int) bool {
	scratchLoad := p.current
	scratch := make([]float64, len(p.solution))
	copy(scratch, p.solution)

	for ; idx >= 0; idx-- {
		effMin := EffectiveMin(p.plants[idx], p.fuels)
		if effMin >= scratch[idx] {
			continue
		}
		possible := scratch[idx] - effMin
		if scratchLoad-possible <= p.load {
			scratch[idx] -= scratchLoad - p.load
			p.solution = scratch
			p.current = floats.Sum(scratch)
			return true
		}
		scratch[idx] -= possible
		scratchLoad -= possible
	}
	return false
}
