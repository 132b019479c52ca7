// Package events defines the payloads published on the internal event bus.
package events

import (
	"time"

	"github.com/gyakuten55/rikuso-demo/core/model"
)

// AllocationEvent reports a vehicle handed to a driver.
type AllocationEvent struct {
	Date      time.Time
	VehicleID int
	DriverID  int
	Auto      bool
}

// ConflictEvent reports a rejected manual operation.
type ConflictEvent struct {
	Date      time.Time
	VehicleID int
	DriverID  int
	Op        string
	Reason    string
}

// VerdictEvent reports the outcome of a vacation request validation.
type VerdictEvent struct {
	RequestID int
	DriverID  int
	OK        bool
	Reason    string
}

// TransitionEvent reports a schedule lifecycle change.
type TransitionEvent struct {
	ScheduleID int
	From, To   model.ScheduleStatus
	At         time.Time
}
