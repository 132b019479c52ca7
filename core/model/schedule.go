package model

import "time"

// ScheduleStatus enumerates the lifecycle states of a dispatch schedule entry.
type ScheduleStatus string

const (
	ScheduleScheduled  ScheduleStatus = "scheduled"
	ScheduleInProgress ScheduleStatus = "in_progress"
	ScheduleCompleted  ScheduleStatus = "completed"
	ScheduleCancelled  ScheduleStatus = "cancelled"
)

// SchedulePriority ranks dispatch urgency.
type SchedulePriority string

const (
	PriorityUrgent SchedulePriority = "urgent"
	PriorityHigh   SchedulePriority = "high"
	PriorityNormal SchedulePriority = "normal"
	PriorityLow    SchedulePriority = "low"
)

// Route describes the planned trip of a schedule entry.
type Route struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Waypoints   []string `json:"waypoints,omitempty"`
}

// DispatchSchedule binds a driver and a vehicle to a trip on a date. The
// existence of a non-cancelled entry commits both parties for that date.
type DispatchSchedule struct {
	ID        int              `json:"id"`
	Date      time.Time        `json:"date"`
	DriverID  int              `json:"driver_id"`
	VehicleID int              `json:"vehicle_id"`
	Team      string           `json:"team,omitempty"`
	Route     Route            `json:"route"`
	TimeSlot  TimeSlot         `json:"time_slot"`
	Status    ScheduleStatus   `json:"status"`
	Priority  SchedulePriority `json:"priority"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// On reports whether the entry falls on the given calendar date.
func (s DispatchSchedule) On(date time.Time) bool {
	return SameDay(s.Date, date)
}
