package solver

import (
	"errors"
	"fmt"

	"github.com/kilianp07/powerplan/core/model"
)

// ErrNoFeasibleSolution is returned when the search exhausts every branch
// without matching the requested load. This is an expected outcome, not a
// fault; callers distinguish it with errors.Is.
var ErrNoFeasibleSolution = errors.New("no feasible production plan")

// ErrUnsupportedPlantType is the sentinel wrapped by
// UnsupportedPlantTypeError.
var ErrUnsupportedPlantType = errors.New("unsupported plant type")

// ErrInvalidRequest is the sentinel wrapped by request validation failures.
var ErrInvalidRequest = errors.New("invalid dispatch request")

// UnsupportedPlantTypeError reports a plant whose type the cost model does
// not understand. It aborts the solve immediately.
type UnsupportedPlantTypeError struct {
	Plant model.Plant
}

func (e UnsupportedPlantTypeError) Error() string {
	return fmt.Sprintf("plant %s: unsupported plant type %d", e.Plant.Name, e.Plant.Type)
}

func (e UnsupportedPlantTypeError) Unwrap() error { return ErrUnsupportedPlantType }

func invalidRequest(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}
