// Package alloclog persists allocation decisions for audit queries.
package alloclog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gyakuten55/rikuso-demo/core/model"
)

// Record captures one allocation run: the working set it produced and the
// drivers it could not serve.
type Record struct {
	RunID             string             `json:"run_id"`
	Timestamp         time.Time          `json:"timestamp"`
	Date              time.Time          `json:"date"`
	Allocations       []model.Allocation `json:"allocations"`
	UnassignedDrivers []int              `json:"unassigned_drivers,omitempty"`
}

// NewRecord builds a record with a fresh run id.
func NewRecord(date time.Time, allocs []model.Allocation, unassigned []int) Record {
	return Record{
		RunID:             uuid.NewString(),
		Timestamp:         time.Now(),
		Date:              date,
		Allocations:       allocs,
		UnassignedDrivers: unassigned,
	}
}

// Query filters records. Zero values match everything.
type Query struct {
	Start     time.Time
	End       time.Time
	VehicleID int
	DriverID  int
}

// Store is an append-only log of allocation runs.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}
