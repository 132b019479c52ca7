package metrics

import coremetrics "github.com/gyakuten55/rikuso-demo/core/metrics"

// MultiSink fans allocation results out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordAllocationResult forwards the results to all sinks, returning the
// first error encountered.
func (m *MultiSink) RecordAllocationResult(res []coremetrics.AllocationResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordAllocationResult(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordVerdict forwards verdicts to sinks that record them.
func (m *MultiSink) RecordVerdict(rec coremetrics.VerdictRecord) error {
	for _, s := range m.Sinks {
		if vr, ok := s.(coremetrics.VerdictRecorder); ok {
			if err := vr.RecordVerdict(rec); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordFleetSize forwards fleet size metrics when supported by the sink.
func (m *MultiSink) RecordFleetSize(size int) error {
	for _, s := range m.Sinks {
		if fr, ok := s.(coremetrics.FleetSizeRecorder); ok {
			if err := fr.RecordFleetSize(size); err != nil {
				return err
			}
		}
	}
	return nil
}
