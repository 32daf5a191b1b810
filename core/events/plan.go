// Package events defines the domain events exchanged on the internal bus.
package events

import (
	"time"

	"github.com/kilianp07/powerplan/core/model"
)

// PlanComputed is published after every solve, feasible or not. Subscribers
// feed the plan log, metrics sinks and the optional MQTT publisher; the
// solver itself never sees the bus.
type PlanComputed struct {
	PlanID   string
	Time     time.Time
	Load     float64
	Plants   int
	Feasible bool
	Duration time.Duration
	Plan     model.Plan
}
