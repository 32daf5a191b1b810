package productionplan

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/powerplan/core/events"
	"github.com/kilianp07/powerplan/core/logger"
	"github.com/kilianp07/powerplan/core/solver"
	"github.com/kilianp07/powerplan/internal/eventbus"
)

// NewHandler returns the HTTP handler for POST /productionplan. It decodes
// the payload, runs the solver and writes the merit-ordered plan. An
// infeasible problem yields an empty list with status 200; that outcome is
// part of the contract, not an error. Each solve is announced on the bus.
func NewHandler(bus eventbus.EventBus, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var payload Payload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		req, err := payload.ToRequest()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		planID := uuid.NewString()
		start := time.Now()
		plan, err := solver.Solve(req)
		elapsed := time.Since(start)

		switch {
		case err == nil:
		case errors.Is(err, solver.ErrNoFeasibleSolution):
			log.Warnf("plan %s: no feasible solution for load %v", planID, req.Load)
		case errors.Is(err, solver.ErrInvalidRequest), errors.Is(err, solver.ErrUnsupportedPlantType):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if bus != nil {
			bus.Publish(events.PlanComputed{
				PlanID:   planID,
				Time:     start.UTC(),
				Load:     req.Load,
				Plants:   len(req.Plants),
				Feasible: err == nil,
				Duration: elapsed,
				Plan:     plan,
			})
		}
		log.Debugw("plan computed", map[string]any{
			"plan_id":  planID,
			"load":     req.Load,
			"feasible": err == nil,
			"duration": elapsed.String(),
		})

		// the response is always a list, empty when infeasible
		out := make([]PlantResponse, len(plan))
		for i, pp := range plan {
			out[i] = PlantResponse{Name: pp.Name, Power: pp.Power}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(out); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// MeritEntryResponse is one entry of the merit-order preview.
type MeritEntryResponse struct {
	Name string  `json:"name"`
	Type string  `json:"type"`
	Cost float64 `json:"cost"`
}

// NewMeritOrderHandler returns the HTTP handler for POST /meritorder. It
// evaluates the merit order for the supplied payload without building a
// plan, for diagnostic use.
func NewMeritOrderHandler(log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var payload Payload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		req, err := payload.ToRequest()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		entries, err := solver.MeritOrder(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		out := make([]MeritEntryResponse, len(entries))
		for i, e := range entries {
			out[i] = MeritEntryResponse{Name: e.Plant.Name, Type: e.Plant.Type.String(), Cost: e.Cost}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(out); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
