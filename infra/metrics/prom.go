package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/gyakuten55/rikuso-demo/core/metrics"
)

// PromSink records allocation events in Prometheus metrics.
type PromSink struct {
	allocations *prometheus.CounterVec
	verdicts    *prometheus.CounterVec
	fleet       prometheus.Gauge
}

// NewPromSink registers allocation metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	allocations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "allocation_events_total",
		Help: "Total number of vehicle allocation events",
	}, []string{"status", "auto"})
	verdicts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vacation_verdicts_total",
		Help: "Total number of vacation validation verdicts",
	}, []string{"ok", "reason"})
	fleet := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_vehicles_total",
		Help: "Number of vehicles in the last computed snapshot",
	})

	if err := reg.Register(allocations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			allocations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(verdicts); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			verdicts = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(fleet); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			fleet = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{allocations: allocations, verdicts: verdicts, fleet: fleet}, nil
}

// RecordAllocationResult increments the counter for each allocation result.
func (s *PromSink) RecordAllocationResult(res []coremetrics.AllocationResult) error {
	for _, r := range res {
		s.allocations.WithLabelValues(string(r.Status), strconv.FormatBool(r.Auto)).Inc()
	}
	return nil
}

// RecordVerdict increments the verdict counter.
func (s *PromSink) RecordVerdict(rec coremetrics.VerdictRecord) error {
	s.verdicts.WithLabelValues(strconv.FormatBool(rec.OK), rec.Reason).Inc()
	return nil
}

// RecordFleetSize sets the gauge to the snapshot's vehicle count.
func (s *PromSink) RecordFleetSize(size int) error {
	if s.fleet != nil {
		s.fleet.Set(float64(size))
	}
	return nil
}
