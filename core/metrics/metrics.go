package metrics

import (
	"time"

	"github.com/kilianp07/powerplan/core/model"
)

// SolveEvent describes the outcome of one production-plan solve.
type SolveEvent struct {
	PlanID   string
	Load     float64
	Plants   int
	Feasible bool
	Duration time.Duration
	Plan     model.Plan
	Time     time.Time
}

// SolveSink records solve outcomes for observability purposes.
type SolveSink interface {
	RecordSolve(ev SolveEvent) error
}

// NopSink implements SolveSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSolve(SolveEvent) error { return nil }
