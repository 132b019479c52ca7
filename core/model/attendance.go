package model

import "time"

// AttendanceStatus enumerates clock-in outcomes.
type AttendanceStatus string

const (
	AttendancePresent    AttendanceStatus = "present"
	AttendanceAbsent     AttendanceStatus = "absent"
	AttendanceLate       AttendanceStatus = "late"
	AttendanceEarlyLeave AttendanceStatus = "early_leave"
)

// AttendanceRecord captures one driver's attendance for one date.
type AttendanceRecord struct {
	ID        int              `json:"id"`
	DriverID  int              `json:"driver_id"`
	Date      time.Time        `json:"date"`
	ClockIn   time.Time        `json:"clock_in,omitempty"`
	ClockOut  time.Time        `json:"clock_out,omitempty"`
	Status    AttendanceStatus `json:"status"`
	WorkHours float64          `json:"work_hours,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// Attending reports whether the record counts as attendance evidence: an
// explicit present status, or any clock-in stamp.
func (r AttendanceRecord) Attending() bool {
	return r.Status == AttendancePresent || !r.ClockIn.IsZero()
}
