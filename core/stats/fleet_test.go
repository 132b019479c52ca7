package stats

import (
	"math"
	"testing"
	"time"

	"github.com/gyakuten55/rikuso-demo/core/model"
	"github.com/gyakuten55/rikuso-demo/core/snapshot"
)

func TestSummarize(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	snap := snapshot.Snapshot{
		Vehicles: []model.Vehicle{
			{ID: 1, Team: "A", Status: model.VehicleActive, Mileage: 10_000},
			{ID: 2, Team: "A", Status: model.VehicleActive, Mileage: 20_000},
			{ID: 3, Team: "B", Status: model.VehicleMaintenance, Mileage: 30_000},
		},
	}
	allocs := []model.Allocation{
		{VehicleID: 1, DriverID: 10, Date: date, Status: model.StatusAllocated},
		{VehicleID: 2, Date: date, Status: model.StatusAvailable},
		{VehicleID: 3, Date: date, Status: model.StatusMaintenance},
	}
	working := []model.Driver{{ID: 10}, {ID: 11}}

	sum := Summarize(snap, allocs, working)

	if sum.Vehicles != 3 || sum.WorkingDrivers != 2 {
		t.Fatalf("counts: %+v", sum)
	}
	if sum.ByTeam["A"] != 2 || sum.ByTeam["B"] != 1 {
		t.Fatalf("by team: %+v", sum.ByTeam)
	}
	if sum.ByStatus[model.VehicleActive] != 2 || sum.ByStatus[model.VehicleMaintenance] != 1 {
		t.Fatalf("by status: %+v", sum.ByStatus)
	}
	if sum.Allocations[model.StatusAllocated] != 1 || sum.Allocations[model.StatusAvailable] != 1 {
		t.Fatalf("allocations: %+v", sum.Allocations)
	}
	if sum.MileageMean != 20_000 {
		t.Fatalf("mean = %f, want 20000", sum.MileageMean)
	}
	if sum.MileageMedian != 20_000 {
		t.Fatalf("median = %f, want 20000", sum.MileageMedian)
	}
	if math.Abs(sum.MileageStdDev-10_000) > 1e-6 {
		t.Fatalf("stddev = %f, want 10000", sum.MileageStdDev)
	}
	if math.Abs(sum.UtilizationRate-1.0/3.0) > 1e-9 {
		t.Fatalf("utilization = %f, want 1/3", sum.UtilizationRate)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(snapshot.Snapshot{}, nil, nil)
	if sum.Vehicles != 0 || sum.UtilizationRate != 0 || sum.MileageMean != 0 {
		t.Fatalf("empty summary: %+v", sum)
	}
}

func TestSummarizeSingleVehicle(t *testing.T) {
	snap := snapshot.Snapshot{Vehicles: []model.Vehicle{{ID: 1, Mileage: 42_000, Status: model.VehicleActive}}}
	sum := Summarize(snap, nil, nil)
	if sum.MileageMean != 42_000 || sum.MileageStdDev != 0 {
		t.Fatalf("single vehicle summary: %+v", sum)
	}
}
