package allocation

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	vehiclesComputed    *prometheus.CounterVec
	assignConflicts     prometheus.Counter
	autoAssignShortfall prometheus.Gauge
)

// newCollectors creates new metric collectors.
func newCollectors() (*prometheus.CounterVec, prometheus.Counter, prometheus.Gauge) {
	computed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "allocation_entries_total",
			Help: "Number of allocation entries produced by recomputation",
		},
		[]string{"status"},
	)
	conflicts := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "allocation_conflicts_total",
			Help: "Number of rejected manual assign/unassign operations",
		},
	)
	shortfall := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "allocation_auto_assign_shortfall",
			Help: "Drivers left without a vehicle by the last auto-assign run",
		},
	)
	return computed, conflicts, shortfall
}

func init() {
	vehiclesComputed, assignConflicts, autoAssignShortfall = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers allocation metrics on the provided registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(vehiclesComputed, assignConflicts, autoAssignShortfall)
}

// ResetMetrics reinitializes metrics collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	vehiclesComputed, assignConflicts, autoAssignShortfall = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
