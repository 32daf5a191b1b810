package metrics

// MultiSink fans solve events out to multiple sinks.
type MultiSink struct {
	Sinks []SolveSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...SolveSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSolve forwards the event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordSolve(ev SolveEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordSolve(ev); err != nil {
			return err
		}
	}
	return nil
}
