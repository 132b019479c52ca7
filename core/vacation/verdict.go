package vacation

import (
	"fmt"
	"time"
)

// Reason identifies which check rejected a vacation request.
type Reason string

const (
	ReasonAdvanceNotice      Reason = "AdvanceNotice"
	ReasonConsecutiveCap     Reason = "ConsecutiveCap"
	ReasonQuotaExceeded      Reason = "QuotaExceeded"
	ReasonBlackout           Reason = "Blackout"
	ReasonDailyCapExceeded   Reason = "DailyCapExceeded"
	ReasonWeekdayCapExceeded Reason = "WeekdayCapExceeded"
)

// Verdict is the outcome of validating a request. A rejection is a normal
// negative result, not an error: Reason says which rule fired and Date/Limit
// carry enough context to explain it to the requester.
type Verdict struct {
	OK     bool      `json:"ok"`
	Reason Reason    `json:"reason,omitempty"`
	Date   time.Time `json:"date,omitempty"`
	Limit  int       `json:"limit,omitempty"`
}

// Granted returns the positive verdict.
func Granted() Verdict { return Verdict{OK: true} }

func rejected(r Reason) Verdict { return Verdict{Reason: r} }

func (v Verdict) String() string {
	if v.OK {
		return "granted"
	}
	switch v.Reason {
	case ReasonAdvanceNotice:
		return fmt.Sprintf("rejected: %d days advance notice required", v.Limit)
	case ReasonConsecutiveCap:
		return fmt.Sprintf("rejected: at most %d consecutive days", v.Limit)
	case ReasonQuotaExceeded:
		return fmt.Sprintf("rejected: %d days of quota remaining", v.Limit)
	case ReasonBlackout:
		return fmt.Sprintf("rejected: %s is a blackout date", v.Date.Format("2006-01-02"))
	case ReasonDailyCapExceeded:
		return fmt.Sprintf("rejected: team cap of %d drivers off reached on %s", v.Limit, v.Date.Format("2006-01-02"))
	case ReasonWeekdayCapExceeded:
		return fmt.Sprintf("rejected: weekday cap of %d drivers off reached on %s", v.Limit, v.Date.Format("2006-01-02"))
	default:
		return "rejected"
	}
}
