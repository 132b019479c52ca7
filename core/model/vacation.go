package model

import (
	"fmt"
	"time"
)

// VacationType enumerates leave categories.
type VacationType string

const (
	VacationAnnual    VacationType = "annual"
	VacationSick      VacationType = "sick"
	VacationPersonal  VacationType = "personal"
	VacationEmergency VacationType = "emergency"
)

// VacationStatus enumerates the review state of a request.
type VacationStatus string

const (
	RequestPending   VacationStatus = "pending"
	RequestApproved  VacationStatus = "approved"
	RequestRejected  VacationStatus = "rejected"
	RequestCancelled VacationStatus = "cancelled"
)

// RecurringPattern describes a repeating leave request. Patterns are stored
// but never expanded into concrete dates by this core.
type RecurringPattern string

const (
	RecurWeekly  RecurringPattern = "weekly"
	RecurMonthly RecurringPattern = "monthly"
)

// VacationRequest is one driver's leave request over an inclusive date range.
type VacationRequest struct {
	ID         int            `json:"id"`
	DriverID   int            `json:"driver_id"`
	DriverName string         `json:"driver_name,omitempty"`
	Team       string         `json:"team"`
	EmployeeID string         `json:"employee_id,omitempty"`
	Type       VacationType   `json:"type"`
	StartDate  time.Time      `json:"start_date"`
	EndDate    time.Time      `json:"end_date"`
	Days       int            `json:"days"`
	Reason     string         `json:"reason,omitempty"`
	Status     VacationStatus `json:"status"`

	RequestedAt    time.Time `json:"requested_at"`
	ReviewedAt     time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy     string    `json:"reviewed_by,omitempty"`
	ReviewComments string    `json:"review_comments,omitempty"`

	IsRecurring      bool             `json:"is_recurring,omitempty"`
	RecurringPattern RecurringPattern `json:"recurring_pattern,omitempty"`
	RecurringDays    []time.Weekday   `json:"recurring_days,omitempty"`
}

// Covers reports whether the given calendar day falls inside the request's
// inclusive date range.
func (r VacationRequest) Covers(day time.Time) bool {
	d := DateOnly(day)
	return !d.Before(DateOnly(r.StartDate)) && !d.After(DateOnly(r.EndDate))
}

// VacationQuota is the per-driver, per-year leave ledger.
type VacationQuota struct {
	ID            int `json:"id"`
	DriverID      int `json:"driver_id"`
	Year          int `json:"year"`
	TotalDays     int `json:"total_days"`
	UsedDays      int `json:"used_days"`
	RemainingDays int `json:"remaining_days"`
	CarryOverDays int `json:"carry_over_days"`
}

// ApplyApproval debits the quota for an approved annual request. It is the
// single place the remaining-days invariant is enforced: the balance never
// goes negative. Callers must serialize concurrent approvals for one driver.
func (q *VacationQuota) ApplyApproval(days int) error {
	if days < 0 {
		return fmt.Errorf("vacation days must be non-negative, got %d", days)
	}
	if days > q.RemainingDays {
		return fmt.Errorf("quota for driver %d would go negative: %d remaining, %d requested", q.DriverID, q.RemainingDays, days)
	}
	q.UsedDays += days
	q.RemainingDays -= days
	return nil
}

// VacationSettings is the process-wide leave policy. It is read-mostly
// configuration; the core never mutates it.
type VacationSettings struct {
	MaxVacationDaysPerYear int `json:"max_vacation_days_per_year"`
	MaxConsecutiveDays     int `json:"max_consecutive_days"`
	MinAdvanceNoticeDays   int `json:"min_advance_notice_days"`

	// MaxDriversOffPerDay caps simultaneous approved leave per team. A team
	// missing from the map is uncapped.
	MaxDriversOffPerDay map[string]int `json:"max_drivers_off_per_day"`

	// MaxDriversOffPerWeekday refines the cap per team and weekday.
	MaxDriversOffPerWeekday map[string]map[time.Weekday]int `json:"max_drivers_off_per_weekday"`

	BlackoutDates []time.Time `json:"blackout_dates"`
	HolidayDates  []time.Time `json:"holiday_dates"`
}

// IsBlackout reports whether the day is barred from leave regardless of quota.
func (s VacationSettings) IsBlackout(day time.Time) bool {
	for _, d := range s.BlackoutDates {
		if SameDay(d, day) {
			return true
		}
	}
	return false
}

// IsHoliday reports whether the day is a public holiday. Holidays do not block
// requests; they are exposed for calendar rendering.
func (s VacationSettings) IsHoliday(day time.Time) bool {
	for _, d := range s.HolidayDates {
		if SameDay(d, day) {
			return true
		}
	}
	return false
}
