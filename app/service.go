// Package app wires the solver API, the event bus and the observability
// consumers into a runnable service.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"

	planlogapi "github.com/kilianp07/powerplan/api/planlog"
	"github.com/kilianp07/powerplan/api/productionplan"
	"github.com/kilianp07/powerplan/config"
	"github.com/kilianp07/powerplan/core/events"
	coremetrics "github.com/kilianp07/powerplan/core/metrics"
	"github.com/kilianp07/powerplan/core/planlog"
	"github.com/kilianp07/powerplan/infra/logger"
	"github.com/kilianp07/powerplan/infra/metrics"
	"github.com/kilianp07/powerplan/infra/mqtt"
	"github.com/kilianp07/powerplan/internal/eventbus"
)

// Service hosts the production-plan HTTP API and fans solve outcomes out to
// the plan log, metrics sinks and the optional MQTT publisher.
type Service struct {
	cfg       *config.Config
	log       logger.Logger
	bus       *eventbus.Bus
	events    <-chan eventbus.Event
	sink      coremetrics.SolveSink
	store     planlog.Store
	publisher *mqtt.PlanPublisher
	handler   http.Handler
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.SolveSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken, cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket))
	}
	var sink coremetrics.SolveSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = coremetrics.NewMultiSink(sinks...)
	}

	var store planlog.Store
	if cfg.PlanLog.Enabled {
		s, err := planlog.NewJSONLStore(cfg.PlanLog.Path, cfg.PlanLog.MaxSizeMB, cfg.PlanLog.MaxBackups, cfg.PlanLog.MaxAgeDays)
		if err != nil {
			return nil, fmt.Errorf("plan log: %w", err)
		}
		store = s
	}

	var publisher *mqtt.PlanPublisher
	if cfg.MQTT.Enabled {
		p, err := mqtt.NewPlanPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		publisher = p
	}

	bus := eventbus.New()
	svc := &Service{cfg: cfg, log: logg, bus: bus, events: bus.Subscribe(), sink: sink, store: store, publisher: publisher}
	svc.handler = svc.buildHandler()
	return svc, nil
}

func (s *Service) buildHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/productionplan", productionplan.NewHandler(s.bus, logger.New("productionplan")))
	mux.Handle("/meritorder", productionplan.NewMeritOrderHandler(logger.New("meritorder")))
	if s.store != nil {
		mux.Handle("/plans", planlogapi.NewHandler(s.store))
	}
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if len(s.cfg.API.AllowedOrigins) > 0 {
		return cors.New(cors.Options{
			AllowedOrigins: s.cfg.API.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
		}).Handler(mux)
	}
	return mux
}

// Handler exposes the HTTP handler, mainly for tests.
func (s *Service) Handler() http.Handler { return s.handler }

// Run starts the service and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	go s.consumeEvents()
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	srv := &http.Server{Addr: s.cfg.API.Addr, Handler: s.handler}
	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("listening on %s", s.cfg.API.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// consumeEvents forwards PlanComputed events to the configured consumers.
// The subscription is taken in New so no event is lost between construction
// and Run. Consumer failures are logged, never propagated to the request
// path.
func (s *Service) consumeEvents() {
	for ev := range s.events {
		pc, ok := ev.(events.PlanComputed)
		if !ok {
			continue
		}
		if err := s.sink.RecordSolve(coremetrics.SolveEvent{
			PlanID:   pc.PlanID,
			Load:     pc.Load,
			Plants:   pc.Plants,
			Feasible: pc.Feasible,
			Duration: pc.Duration,
			Plan:     pc.Plan,
			Time:     pc.Time,
		}); err != nil {
			s.log.Errorf("record solve %s: %v", pc.PlanID, err)
		}
		rec := planlog.Record{
			Timestamp: pc.Time,
			PlanID:    pc.PlanID,
			Load:      pc.Load,
			Feasible:  pc.Feasible,
			Plan:      pc.Plan,
		}
		if s.store != nil {
			if err := s.store.Append(context.Background(), rec); err != nil {
				s.log.Errorf("append plan %s: %v", pc.PlanID, err)
			}
		}
		if s.publisher != nil {
			if err := s.publisher.PublishPlan(rec); err != nil {
				s.log.Errorf("publish plan %s: %v", pc.PlanID, err)
			}
		}
	}
}

// Close releases the bus, the plan log and the MQTT connection.
func (s *Service) Close() error {
	s.bus.Close()
	if s.publisher != nil {
		s.publisher.Close()
	}
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
