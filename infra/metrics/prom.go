package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/powerplan/core/metrics"
)

// PromSink records solve outcomes in Prometheus metrics.
type PromSink struct {
	solves   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	lastLoad prometheus.Gauge
}

// NewPromSink registers the solve metrics on the default Prometheus
// registerer. The metrics server is started separately.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	solves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "production_plan_solves_total",
		Help: "Total number of production plan solves",
	}, []string{"feasible"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "production_plan_solve_duration_seconds",
		Help:    "Wall-clock duration of production plan solves",
		Buckets: prometheus.DefBuckets,
	}, []string{"feasible"})
	lastLoad := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "production_plan_last_load_mw",
		Help: "Requested load of the most recent solve",
	})

	if err := reg.Register(solves); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			solves = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(lastLoad); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			lastLoad = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{solves: solves, duration: duration, lastLoad: lastLoad}, nil
}

// RecordSolve increments the counter and observes the solve duration.
func (s *PromSink) RecordSolve(ev coremetrics.SolveEvent) error {
	feasible := strconv.FormatBool(ev.Feasible)
	s.solves.WithLabelValues(feasible).Inc()
	s.duration.WithLabelValues(feasible).Observe(ev.Duration.Seconds())
	s.lastLoad.Set(ev.Load)
	return nil
}
