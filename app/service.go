// Package app wires configuration, sinks and core components into a runnable
// service used by the CLI commands.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gyakuten55/rikuso-demo/config"
	"github.com/gyakuten55/rikuso-demo/core/allocation"
	"github.com/gyakuten55/rikuso-demo/core/alloclog"
	"github.com/gyakuten55/rikuso-demo/core/availability"
	"github.com/gyakuten55/rikuso-demo/core/events"
	coremetrics "github.com/gyakuten55/rikuso-demo/core/metrics"
	"github.com/gyakuten55/rikuso-demo/core/model"
	"github.com/gyakuten55/rikuso-demo/core/schedule"
	"github.com/gyakuten55/rikuso-demo/core/snapshot"
	"github.com/gyakuten55/rikuso-demo/core/stats"
	"github.com/gyakuten55/rikuso-demo/core/vacation"
	"github.com/gyakuten55/rikuso-demo/infra/logger"
	inframetrics "github.com/gyakuten55/rikuso-demo/infra/metrics"
	"github.com/gyakuten55/rikuso-demo/internal/eventbus"
)

// RunResult is what one allocation run produces.
type RunResult struct {
	Allocations []model.Allocation
	Working     []model.Driver
	Unassigned  []model.Driver
	Summary     stats.FleetSummary
}

// Service holds the wired components.
type Service struct {
	cfg       *config.Config
	log       logger.Logger
	bus       *eventbus.Bus
	sink      coremetrics.Sink
	engine    *allocation.Engine
	validator *vacation.Validator
	decisions alloclog.Store
}

// New builds a Service from configuration.
func New(cfg *config.Config) (*Service, error) {
	log := logger.New("app")
	bus := eventbus.New()

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		ps, err := inframetrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prometheus sink: %w", err)
		}
		sinks = append(sinks, ps)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, inframetrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken,
			cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket))
	}
	var sink coremetrics.Sink
	switch len(sinks) {
	case 0:
		sink = coremetrics.NopSink{}
	case 1:
		sink = sinks[0]
	default:
		sink = inframetrics.NewMultiSink(sinks...)
	}

	decisions, err := alloclog.NewJSONLStore(cfg.Logging.Path)
	if err != nil {
		return nil, fmt.Errorf("decision log: %w", err)
	}

	return &Service{
		cfg:       cfg,
		log:       log,
		bus:       bus,
		sink:      sink,
		engine:    allocation.NewEngine(cfg.Allocation, logger.New("allocation"), sink, bus),
		validator: vacation.NewValidator(cfg.Vacation.Settings()),
		decisions: decisions,
	}, nil
}

// Run serves metrics until the context is canceled. It returns immediately
// when the Prometheus endpoint is disabled.
func (s *Service) Run(ctx context.Context) error {
	go s.drainEvents(ctx)
	if !s.cfg.Metrics.PrometheusEnabled {
		return nil
	}
	return inframetrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort)
}

// drainEvents logs bus traffic so runs leave a trace even without sinks.
func (s *Service) drainEvents(ctx context.Context) {
	sub := s.bus.Subscribe()
	defer s.bus.Unsubscribe(sub)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case events.ConflictEvent:
				s.log.Warnf("conflict on vehicle %d: %s", e.VehicleID, e.Reason)
			case events.AllocationEvent:
				s.log.Debugw("allocation", map[string]any{
					"vehicle": e.VehicleID, "driver": e.DriverID, "auto": e.Auto,
				})
			}
		}
	}
}

// Allocate recomputes the working set for date, auto-assigns the working
// drivers and appends the run to the decision log.
func (s *Service) Allocate(ctx context.Context, date time.Time, snap snapshot.Snapshot) (RunResult, error) {
	if _, err := s.engine.Recompute(date, snap); err != nil {
		return RunResult{}, err
	}
	calc := availability.Calculator{WindowDays: s.cfg.Allocation.InspectionWindowDays}
	working, _, err := calc.Compute(date, snap)
	if err != nil {
		return RunResult{}, err
	}
	allocs, unassigned := s.engine.AutoAssign(working)

	ids := make([]int, 0, len(unassigned))
	for _, d := range unassigned {
		ids = append(ids, d.ID)
	}
	if err := s.decisions.Append(ctx, alloclog.NewRecord(date, allocs, ids)); err != nil {
		s.log.Errorf("append decision log: %v", err)
	}

	return RunResult{
		Allocations: allocs,
		Working:     working,
		Unassigned:  unassigned,
		Summary:     stats.Summarize(snap, allocs, working),
	}, nil
}

// Engine exposes the allocation engine for manual assign and unassign.
func (s *Service) Engine() *allocation.Engine { return s.engine }

// ValidateVacation runs the request through the policy validator and records
// the verdict on the metrics sink.
func (s *Service) ValidateVacation(req model.VacationRequest, snap snapshot.Snapshot) vacation.Verdict {
	var quota *model.VacationQuota
	if q, ok := snap.QuotaFor(req.DriverID, req.StartDate.Year()); ok {
		quota = &q
	}
	verdict := s.validator.Validate(req, quota, snap.ApprovedRequests(req.Team))
	if vr, ok := s.sink.(coremetrics.VerdictRecorder); ok {
		if err := vr.RecordVerdict(coremetrics.VerdictRecord{
			RequestID: req.ID,
			DriverID:  req.DriverID,
			Team:      req.Team,
			Type:      req.Type,
			OK:        verdict.OK,
			Reason:    string(verdict.Reason),
			Time:      time.Now(),
		}); err != nil {
			s.log.Warnf("record verdict: %v", err)
		}
	}
	s.bus.Publish(events.VerdictEvent{
		RequestID: req.ID,
		DriverID:  req.DriverID,
		OK:        verdict.OK,
		Reason:    string(verdict.Reason),
	})
	return verdict
}

// TransitionSchedule advances a schedule entry through its lifecycle and
// announces the change on the bus.
func (s *Service) TransitionSchedule(entry model.DispatchSchedule, target model.ScheduleStatus, now time.Time) (model.DispatchSchedule, error) {
	next, err := schedule.Transition(entry, target, now)
	if err != nil {
		return entry, err
	}
	s.bus.Publish(events.TransitionEvent{ScheduleID: next.ID, From: entry.Status, To: next.Status, At: now})
	s.log.Infof("schedule %d: %s -> %s", next.ID, entry.Status, next.Status)
	return next, nil
}

// Decisions returns the allocation decision log.
func (s *Service) Decisions() alloclog.Store { return s.decisions }

// Close releases sinks, the bus and the decision log.
func (s *Service) Close() error {
	s.bus.Close()
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	return s.decisions.Close()
}
