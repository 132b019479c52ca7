// Package stats produces the fleet summary figures shown on the operations
// dashboard.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/gyakuten55/rikuso-demo/core/model"
	"github.com/gyakuten55/rikuso-demo/core/snapshot"
)

// FleetSummary aggregates snapshot-wide figures for one allocation run.
type FleetSummary struct {
	Vehicles       int                          `json:"vehicles"`
	WorkingDrivers int                          `json:"working_drivers"`
	ByTeam         map[string]int               `json:"by_team"`
	ByStatus       map[model.VehicleStatus]int  `json:"by_status"`
	Allocations    map[model.AllocationStatus]int `json:"allocations"`

	MileageMean   float64 `json:"mileage_mean"`
	MileageMedian float64 `json:"mileage_median"`
	MileageStdDev float64 `json:"mileage_std_dev"`

	// UtilizationRate is allocated vehicles over total vehicles, in [0,1].
	UtilizationRate float64 `json:"utilization_rate"`
}

// Summarize computes the summary from a snapshot, the allocation working set
// and the working driver list. Any of the slices may be empty.
func Summarize(snap snapshot.Snapshot, allocs []model.Allocation, working []model.Driver) FleetSummary {
	s := FleetSummary{
		Vehicles:       len(snap.Vehicles),
		WorkingDrivers: len(working),
		ByTeam:         map[string]int{},
		ByStatus:       map[model.VehicleStatus]int{},
		Allocations:    map[model.AllocationStatus]int{},
	}

	mileages := make([]float64, 0, len(snap.Vehicles))
	for _, v := range snap.Vehicles {
		s.ByTeam[v.Team]++
		s.ByStatus[v.Status]++
		mileages = append(mileages, float64(v.Mileage))
	}
	if len(mileages) > 0 {
		sort.Float64s(mileages)
		s.MileageMean = stat.Mean(mileages, nil)
		s.MileageMedian = stat.Quantile(0.5, stat.Empirical, mileages, nil)
		if len(mileages) > 1 {
			s.MileageStdDev = stat.StdDev(mileages, nil)
		}
	}

	for _, a := range allocs {
		s.Allocations[a.Status]++
	}
	if s.Vehicles > 0 {
		s.UtilizationRate = float64(s.Allocations[model.StatusAllocated]) / float64(s.Vehicles)
	}
	return s
}
