package snapshot

import (
	"fmt"
	"time"

	"github.com/gyakuten55/rikuso-demo/core/model"
)

// Snapshot is a point-in-time, read-only view of the fleet state. The core
// computes over snapshots and never mutates them; writes go through the
// surrounding application.
type Snapshot struct {
	Vehicles         []model.Vehicle          `json:"vehicles"`
	Drivers          []model.Driver           `json:"drivers"`
	Schedules        []model.DispatchSchedule `json:"schedules"`
	Attendance       []model.AttendanceRecord `json:"attendance"`
	VacationRequests []model.VacationRequest  `json:"vacation_requests"`
	Quotas           []model.VacationQuota    `json:"quotas"`
	Settings         model.VacationSettings   `json:"settings"`
}

// UnresolvedReferenceError reports a schedule pointing at an entity absent
// from the snapshot. It is a fatal precondition violation for the computation
// that hit it; the snapshot itself is left untouched.
type UnresolvedReferenceError struct {
	ScheduleID int
	Kind       string // "vehicle" or "driver"
	RefID      int
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("schedule %d references unknown %s %d", e.ScheduleID, e.Kind, e.RefID)
}

// Vehicle looks up a vehicle by id.
func (s Snapshot) Vehicle(id int) (model.Vehicle, bool) {
	for _, v := range s.Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return model.Vehicle{}, false
}

// Driver looks up a driver by id.
func (s Snapshot) Driver(id int) (model.Driver, bool) {
	for _, d := range s.Drivers {
		if d.ID == id {
			return d, true
		}
	}
	return model.Driver{}, false
}

// QuotaFor returns the vacation quota of a driver for a year, if recorded.
func (s Snapshot) QuotaFor(driverID, year int) (model.VacationQuota, bool) {
	for _, q := range s.Quotas {
		if q.DriverID == driverID && q.Year == year {
			return q, true
		}
	}
	return model.VacationQuota{}, false
}

// SchedulesOn returns all schedule entries falling on the given date, in
// snapshot order.
func (s Snapshot) SchedulesOn(date time.Time) []model.DispatchSchedule {
	var out []model.DispatchSchedule
	for _, sc := range s.Schedules {
		if sc.On(date) {
			out = append(out, sc)
		}
	}
	return out
}

// AttendanceFor returns the attendance record of a driver on a date.
func (s Snapshot) AttendanceFor(driverID int, date time.Time) (model.AttendanceRecord, bool) {
	for _, r := range s.Attendance {
		if r.DriverID == driverID && model.SameDay(r.Date, date) {
			return r, true
		}
	}
	return model.AttendanceRecord{}, false
}

// ApprovedRequests returns the approved vacation requests, optionally limited
// to one team. Team "" matches all teams.
func (s Snapshot) ApprovedRequests(team string) []model.VacationRequest {
	var out []model.VacationRequest
	for _, r := range s.VacationRequests {
		if r.Status != model.RequestApproved {
			continue
		}
		if team != "" && r.Team != team {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Validate checks referential integrity: every schedule must resolve to a
// vehicle and a driver present in the snapshot.
func (s Snapshot) Validate() error {
	for _, sc := range s.Schedules {
		if _, ok := s.Vehicle(sc.VehicleID); !ok {
			return &UnresolvedReferenceError{ScheduleID: sc.ID, Kind: "vehicle", RefID: sc.VehicleID}
		}
		if _, ok := s.Driver(sc.DriverID); !ok {
			return &UnresolvedReferenceError{ScheduleID: sc.ID, Kind: "driver", RefID: sc.DriverID}
		}
	}
	return nil
}

// Clone returns a deep copy of the snapshot so callers can hand it out without
// sharing backing arrays.
func (s Snapshot) Clone() Snapshot {
	cp := s
	cp.Vehicles = append([]model.Vehicle(nil), s.Vehicles...)
	cp.Drivers = append([]model.Driver(nil), s.Drivers...)
	cp.Schedules = append([]model.DispatchSchedule(nil), s.Schedules...)
	cp.Attendance = append([]model.AttendanceRecord(nil), s.Attendance...)
	cp.VacationRequests = append([]model.VacationRequest(nil), s.VacationRequests...)
	cp.Quotas = append([]model.VacationQuota(nil), s.Quotas...)
	return cp
}
