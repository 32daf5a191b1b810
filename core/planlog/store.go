// Package planlog persists computed production plans for later inspection.
package planlog

import (
	"context"
	"time"

	"github.com/kilianp07/powerplan/core/model"
)

// Record captures one solve outcome.
type Record struct {
	Timestamp time.Time          `json:"timestamp"`
	PlanID    string             `json:"plan_id"`
	Load      float64            `json:"load"`
	Feasible  bool               `json:"feasible"`
	Plan      []model.PlantPower `json:"plan,omitempty"`
}

// Query defines filters for retrieving records. Zero values match anything.
// Feasible filters on the solve outcome when non-nil.
type Query struct {
	Start    time.Time
	End      time.Time
	Feasible *bool
}

// Store persists Records and supports querying.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}
