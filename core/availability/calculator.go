// Package availability derives, for a target date, the set of drivers who are
// working and the set of vehicles that may be allocated. It is a pure function
// of the snapshot: recomputation with the same inputs yields the same outputs.
package availability

import (
	"time"

	"github.com/gyakuten55/rikuso-demo/core/model"
	"github.com/gyakuten55/rikuso-demo/core/schedule"
	"github.com/gyakuten55/rikuso-demo/core/snapshot"
)

// InspectionWindowDays is the default half-width of the maintenance window
// around a vehicle's next inspection date.
const InspectionWindowDays = 1

// Calculator computes per-date availability from a snapshot.
type Calculator struct {
	// WindowDays overrides InspectionWindowDays when positive.
	WindowDays int
}

func (c Calculator) windowDays() int {
	if c.WindowDays > 0 {
		return c.WindowDays
	}
	return InspectionWindowDays
}

// Compute returns the working drivers and allocatable vehicles for the date.
// Order follows the snapshot. It fails with an UnresolvedReferenceError when a
// schedule points at an entity the snapshot does not contain.
func (c Calculator) Compute(date time.Time, snap snapshot.Snapshot) ([]model.Driver, []model.Vehicle, error) {
	if err := snap.Validate(); err != nil {
		return nil, nil, err
	}

	committedDrivers := map[int]bool{}
	committedVehicles := map[int]bool{}
	for _, sc := range snap.SchedulesOn(date) {
		if !schedule.Commits(sc.Status) {
			continue
		}
		committedDrivers[sc.DriverID] = true
		committedVehicles[sc.VehicleID] = true
	}

	var working []model.Driver
	for _, d := range snap.Drivers {
		if !c.attending(d, date, snap) {
			continue
		}
		// Attending drivers count as working when schedule evidence exists or
		// their live status already says so.
		if committedDrivers[d.ID] || d.Status == model.DriverWorking {
			working = append(working, d)
		}
	}

	var allocatable []model.Vehicle
	for _, v := range snap.Vehicles {
		if !v.Allocatable(date, c.windowDays()) {
			continue
		}
		if committedVehicles[v.ID] {
			continue
		}
		allocatable = append(allocatable, v)
	}
	return working, allocatable, nil
}

// attending applies the attendance rule: a record with present status or a
// clock-in stamp wins; a live working status is the fallback when no record
// exists yet.
func (c Calculator) attending(d model.Driver, date time.Time, snap snapshot.Snapshot) bool {
	if rec, ok := snap.AttendanceFor(d.ID, date); ok && rec.Attending() {
		return true
	}
	return d.Status == model.DriverWorking
}

// Committed returns the vehicle and driver ids bound by non-cancelled
// schedules on the date. It is shared with the allocation engine.
func Committed(date time.Time, snap snapshot.Snapshot) (vehicles, drivers map[int]bool) {
	vehicles = map[int]bool{}
	drivers = map[int]bool{}
	for _, sc := range snap.SchedulesOn(date) {
		if !schedule.Commits(sc.Status) {
			continue
		}
		vehicles[sc.VehicleID] = true
		drivers[sc.DriverID] = true
	}
	return vehicles, drivers
}
