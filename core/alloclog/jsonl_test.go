package alloclog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gyakuten55/rikuso-demo/core/model"
)

func testStore(t *testing.T) *JSONLStore {
	t.Helper()
	store, err := NewJSONLStore(filepath.Join(t.TempDir(), "allocations.log"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestAppendAndQuery(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	rec1 := NewRecord(date, []model.Allocation{
		{VehicleID: 1, DriverID: 10, Date: date, Status: model.StatusAllocated},
	}, nil)
	rec2 := NewRecord(date.AddDate(0, 0, 1), []model.Allocation{
		{VehicleID: 2, DriverID: 11, Date: date.AddDate(0, 0, 1), Status: model.StatusAllocated},
	}, []int{13})

	if err := store.Append(ctx, rec1); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(ctx, rec2); err != nil {
		t.Fatalf("append: %v", err)
	}

	all, err := store.Query(ctx, Query{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("records = %d, want 2", len(all))
	}
	if all[0].RunID == "" || all[0].RunID == all[1].RunID {
		t.Fatalf("run ids must be unique and non-empty: %q %q", all[0].RunID, all[1].RunID)
	}
}

func TestQueryByVehicle(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	_ = store.Append(ctx, NewRecord(date, []model.Allocation{{VehicleID: 1, DriverID: 10}}, nil))
	_ = store.Append(ctx, NewRecord(date, []model.Allocation{{VehicleID: 2, DriverID: 11}}, nil))

	got, err := store.Query(ctx, Query{VehicleID: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || got[0].Allocations[0].VehicleID != 2 {
		t.Fatalf("vehicle query = %+v", got)
	}
}

func TestQueryByDriverIncludesUnassigned(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	_ = store.Append(ctx, NewRecord(date, []model.Allocation{{VehicleID: 1, DriverID: 10}}, []int{13}))
	_ = store.Append(ctx, NewRecord(date, []model.Allocation{{VehicleID: 2, DriverID: 11}}, nil))

	got, err := store.Query(ctx, Query{DriverID: 13})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || len(got[0].UnassignedDrivers) != 1 {
		t.Fatalf("driver query = %+v", got)
	}
}

func TestQueryTimeRange(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	rec := NewRecord(date, nil, nil)
	if err := store.Append(ctx, rec); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := store.Query(ctx, Query{Start: rec.Timestamp.Add(time.Minute)})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no records after the window start, got %d", len(got))
	}

	got, err = store.Query(ctx, Query{End: rec.Timestamp.Add(time.Minute)})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected the record inside the window, got %d", len(got))
	}
}
