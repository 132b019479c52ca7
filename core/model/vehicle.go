package model

import (
	"fmt"
	"time"
)

// VehicleStatus enumerates the operational state of a vehicle.
type VehicleStatus string

const (
	VehicleActive      VehicleStatus = "active"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleInspection  VehicleStatus = "inspection"
	VehicleBreakdown   VehicleStatus = "breakdown"
)

// Vehicle represents one truck of the fleet.
type Vehicle struct {
	ID          int           `json:"id"`
	PlateNumber string        `json:"plate_number"`
	Type        string        `json:"type"`
	Model       string        `json:"model"`
	Year        int           `json:"year"`
	Team        string        `json:"team"`
	Status      VehicleStatus `json:"status"`

	// LastInspection and NextInspection bound the statutory inspection cycle.
	// A zero NextInspection means no inspection is booked.
	LastInspection time.Time `json:"last_inspection"`
	NextInspection time.Time `json:"next_inspection,omitempty"`

	Mileage  int    `json:"mileage"`
	Location string `json:"location,omitempty"`

	// Driver is a display-only back-reference maintained by the surrounding
	// application. It carries no ownership semantics.
	Driver string `json:"driver,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// Validate checks that the vehicle record is sound.
func (v Vehicle) Validate() error {
	if v.ID <= 0 {
		return fmt.Errorf("vehicle id must be positive")
	}
	switch v.Status {
	case VehicleActive, VehicleMaintenance, VehicleInspection, VehicleBreakdown:
	default:
		return fmt.Errorf("unknown vehicle status %q", v.Status)
	}
	return nil
}

// InMaintenanceWindow reports whether the vehicle must be kept off the road on
// the given date: either it is flagged for maintenance, or the date falls
// within windowDays of its next inspection. A vehicle without a booked
// inspection is never excluded on inspection grounds.
func (v Vehicle) InMaintenanceWindow(date time.Time, windowDays int) bool {
	if v.Status == VehicleMaintenance {
		return true
	}
	if v.NextInspection.IsZero() {
		return false
	}
	diff := DaysBetween(date, v.NextInspection)
	if diff < 0 {
		diff = -diff
	}
	return diff <= windowDays
}

// Allocatable reports whether the vehicle may be handed to a driver on the
// given date. Committed vehicles are filtered separately against the dispatch
// schedule.
func (v Vehicle) Allocatable(date time.Time, windowDays int) bool {
	return v.Status == VehicleActive && !v.InMaintenanceWindow(date, windowDays)
}
