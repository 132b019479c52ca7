package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/gyakuten55/rikuso-demo/core/metrics"
)

type recordingSink struct {
	results  int
	verdicts int
	fleet    int
	err      error
}

func (r *recordingSink) RecordAllocationResult(res []coremetrics.AllocationResult) error {
	r.results += len(res)
	return r.err
}

func (r *recordingSink) RecordVerdict(coremetrics.VerdictRecord) error {
	r.verdicts++
	return r.err
}

func (r *recordingSink) RecordFleetSize(int) error {
	r.fleet++
	return r.err
}

// resultOnlySink implements only the base Sink interface.
type resultOnlySink struct{ results int }

func (r *resultOnlySink) RecordAllocationResult(res []coremetrics.AllocationResult) error {
	r.results += len(res)
	return nil
}

func TestMultiSinkFansOut(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	multi := NewMultiSink(a, b)

	require.NoError(t, multi.RecordAllocationResult(make([]coremetrics.AllocationResult, 2)))
	require.NoError(t, multi.RecordVerdict(coremetrics.VerdictRecord{OK: true}))
	require.NoError(t, multi.RecordFleetSize(5))

	for _, s := range []*recordingSink{a, b} {
		assert.Equal(t, 2, s.results)
		assert.Equal(t, 1, s.verdicts)
		assert.Equal(t, 1, s.fleet)
	}
}

func TestMultiSinkSkipsUnsupportedRecorders(t *testing.T) {
	base := &resultOnlySink{}
	full := &recordingSink{}
	multi := NewMultiSink(base, full)

	require.NoError(t, multi.RecordVerdict(coremetrics.VerdictRecord{}))
	require.NoError(t, multi.RecordFleetSize(5))
	assert.Equal(t, 1, full.verdicts)
	assert.Equal(t, 1, full.fleet)
}

func TestMultiSinkPropagatesError(t *testing.T) {
	bad := &recordingSink{err: errors.New("sink down")}
	good := &recordingSink{}
	multi := NewMultiSink(bad, good)

	err := multi.RecordAllocationResult(make([]coremetrics.AllocationResult, 1))
	assert.Error(t, err)
	// First error wins; later sinks are not reached.
	assert.Equal(t, 0, good.results)
}

func TestInfluxFallbackToNop(t *testing.T) {
	sink := NewInfluxSinkWithFallback("http://127.0.0.1:1", "", "org", "bucket")
	_, isNop := sink.(coremetrics.NopSink)
	assert.True(t, isNop, "unreachable InfluxDB must fall back to NopSink")
}
