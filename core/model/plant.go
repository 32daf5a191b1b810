package model

import "fmt"

// PlantType identifies the technology of a power plant. The set is closed:
// the cost and capacity models switch exhaustively on it, so adding a type
// requires extending both in lockstep.
type PlantType int

const (
	GasFired PlantType = iota
	Turbojet
	WindTurbine
)

// String returns the wire name of the plant type.
func (t PlantType) String() string {
	switch t {
	case GasFired:
		return "gasfired"
	case Turbojet:
		return "turbojet"
	case WindTurbine:
		return "windturbine"
	default:
		return "unknown"
	}
}

// ParsePlantType converts a wire name into a PlantType.
func ParsePlantType(s string) (PlantType, error) {
	switch s {
	case "gasfired":
		return GasFired, nil
	case "turbojet":
		return Turbojet, nil
	case "windturbine":
		return WindTurbine, nil
	default:
		return 0, fmt.Errorf("unknown plant type %q", s)
	}
}

// Plant describes one power plant available for dispatch. Name is only used
// to label the plant in the output; it carries no meaning for the solver.
type Plant struct {
	Name       string
	Type       PlantType
	Efficiency float64 // fraction of fuel energy converted, ignored for wind
	PMin       float64 // nameplate minimum power in MW when committed
	PMax       float64 // nameplate maximum power in MW
}

// Validate checks that the plant parameters are sound.
func (p Plant) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("plant name is required")
	}
	if p.Type != WindTurbine && (p.Efficiency <= 0 || p.Efficiency > 1) {
		return fmt.Errorf("plant %s: efficiency must be in (0,1], got %v", p.Name, p.Efficiency)
	}
	if p.PMin < 0 || p.PMax < p.PMin {
		return fmt.Errorf("plant %s: power range must satisfy 0 <= pmin <= pmax, got [%v,%v]", p.Name, p.PMin, p.PMax)
	}
	return nil
}
