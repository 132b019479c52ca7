package model

import "time"

// AllocationStatus tags one entry of the per-date allocation working set.
type AllocationStatus string

const (
	StatusAllocated   AllocationStatus = "allocated"
	StatusAvailable   AllocationStatus = "available"
	StatusMaintenance AllocationStatus = "maintenance"
	StatusInspection  AllocationStatus = "inspection"
)

// Allocation pairs a vehicle with at most one driver for a single date. It is
// derived on every recomputation and never carried across dates. DriverID zero
// means no driver is assigned.
type Allocation struct {
	VehicleID int              `json:"vehicle_id"`
	DriverID  int              `json:"driver_id,omitempty"`
	Date      time.Time        `json:"date"`
	TimeSlot  TimeSlot         `json:"time_slot"`
	Status    AllocationStatus `json:"status"`

	// Priority is 0 for off-road entries, 1 for schedule-backed ones and the
	// vehicle score in [1,10] for available ones.
	Priority int `json:"priority"`

	// Scheduled marks entries backed by a persisted dispatch schedule. Those
	// can only be released through the schedule lifecycle, not by Unassign.
	Scheduled bool `json:"scheduled,omitempty"`
}

// StatusRank orders allocation entries for display: allocated first, then
// available, then off-road entries.
func (a Allocation) StatusRank() int {
	switch a.Status {
	case StatusAllocated:
		return 1
	case StatusAvailable:
		return 2
	case StatusMaintenance:
		return 3
	default:
		return 4
	}
}
