package metrics

import (
	"time"

	"github.com/gyakuten55/rikuso-demo/core/model"
)

// AllocationResult represents a per-vehicle allocation outcome to be recorded.
type AllocationResult struct {
	Date      time.Time
	VehicleID int
	DriverID  int
	Status    model.AllocationStatus
	Priority  int
	Auto      bool
}

// Sink records allocation results for observability purposes.
type Sink interface {
	RecordAllocationResult(results []AllocationResult) error
}

// VerdictRecord captures the outcome of one vacation request validation.
type VerdictRecord struct {
	RequestID int
	DriverID  int
	Team      string
	Type      model.VacationType
	OK        bool
	Reason    string
	Time      time.Time
}

// VerdictRecorder records vacation validation verdicts.
type VerdictRecorder interface {
	RecordVerdict(rec VerdictRecord) error
}

// FleetSizeRecorder records the number of vehicles in the snapshot being
// computed over.
type FleetSizeRecorder interface {
	RecordFleetSize(size int) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordAllocationResult([]AllocationResult) error { return nil }
func (NopSink) RecordVerdict(VerdictRecord) error               { return nil }
func (NopSink) RecordFleetSize(int) error                       { return nil }
