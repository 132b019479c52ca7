// Package vacation decides whether a leave request is grantable under the
// process-wide policy: advance notice, consecutive-day cap, annual quota,
// blackout dates and per-team caps. The validator only predicts the outcome;
// debiting the quota on approval is the caller's atomic read-modify-write.
package vacation

import (
	"time"

	"github.com/gyakuten55/rikuso-demo/core/model"
)

// Validator applies the policy checks in a fixed order; the first failure
// wins. It holds no mutable state, so repeated validation of the same inputs
// is idempotent.
type Validator struct {
	Settings model.VacationSettings

	// Now supplies the clock for the advance-notice check. Defaults to
	// time.Now.
	Now func() time.Time
}

// NewValidator returns a validator for the given policy.
func NewValidator(settings model.VacationSettings) *Validator {
	return &Validator{Settings: settings, Now: time.Now}
}

// Validate checks the request against the quota and the already-approved
// requests of the same team. A nil quota means no ledger exists for the
// driver/year and counts as zero remaining days. Recurring patterns are not
// expanded: only the concrete [StartDate, EndDate] range is examined.
//
// Checks, in order: advance notice (skipped for sick and emergency leave),
// consecutive-day cap, annual quota sufficiency, blackout dates, per-day team
// cap, per-weekday team cap. Each check scans the whole requested range before
// the next one runs, so a blackout anywhere in the range wins over a cap hit
// on an earlier day.
func (v *Validator) Validate(req model.VacationRequest, quota *model.VacationQuota, approved []model.VacationRequest) Verdict {
	now := time.Now
	if v.Now != nil {
		now = v.Now
	}

	if req.Type != model.VacationSick && req.Type != model.VacationEmergency {
		notice := model.DaysBetween(now(), req.StartDate)
		if notice < v.Settings.MinAdvanceNoticeDays {
			verdict := rejected(ReasonAdvanceNotice)
			verdict.Date = model.DateOnly(req.StartDate)
			verdict.Limit = v.Settings.MinAdvanceNoticeDays
			return verdict
		}
	}

	if v.Settings.MaxConsecutiveDays > 0 && req.Days > v.Settings.MaxConsecutiveDays {
		verdict := rejected(ReasonConsecutiveCap)
		verdict.Limit = v.Settings.MaxConsecutiveDays
		return verdict
	}

	// Only annual leave draws down the quota; sick, personal and emergency
	// leave are tracked but not debited.
	if req.Type == model.VacationAnnual {
		remaining := 0
		if quota != nil {
			remaining = quota.RemainingDays
		}
		if req.Days > remaining {
			verdict := rejected(ReasonQuotaExceeded)
			verdict.Limit = remaining
			return verdict
		}
	}

	verdict := Granted()
	model.EachDay(req.StartDate, req.EndDate, func(day time.Time) bool {
		if v.Settings.IsBlackout(day) {
			verdict = rejected(ReasonBlackout)
			verdict.Date = day
			return false
		}
		return true
	})
	if !verdict.OK {
		return verdict
	}

	if cap, ok := v.Settings.MaxDriversOffPerDay[req.Team]; ok {
		model.EachDay(req.StartDate, req.EndDate, func(day time.Time) bool {
			if countOff(approved, req, day) >= cap {
				verdict = rejected(ReasonDailyCapExceeded)
				verdict.Date = day
				verdict.Limit = cap
				return false
			}
			return true
		})
		if !verdict.OK {
			return verdict
		}
	}

	if caps, ok := v.Settings.MaxDriversOffPerWeekday[req.Team]; ok {
		model.EachDay(req.StartDate, req.EndDate, func(day time.Time) bool {
			cap, ok := caps[day.Weekday()]
			if !ok {
				return true
			}
			if countOff(approved, req, day) >= cap {
				verdict = rejected(ReasonWeekdayCapExceeded)
				verdict.Date = day
				verdict.Limit = cap
				return false
			}
			return true
		})
	}
	return verdict
}

// countOff counts approved same-team requests covering the day, excluding the
// candidate itself so re-validating an already-approved request stays stable.
func countOff(approved []model.VacationRequest, req model.VacationRequest, day time.Time) int {
	n := 0
	for _, r := range approved {
		if r.ID == req.ID || r.Status != model.RequestApproved || r.Team != req.Team {
			continue
		}
		if r.Covers(day) {
			n++
		}
	}
	return n
}
