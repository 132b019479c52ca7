package vacation

import (
	"testing"
	"time"

	"github.com/gyakuten55/rikuso-demo/core/model"
)

var now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func testValidator(settings model.VacationSettings) *Validator {
	v := NewValidator(settings)
	v.Now = func() time.Time { return now }
	return v
}

func policy() model.VacationSettings {
	return model.VacationSettings{
		MaxVacationDaysPerYear: 20,
		MaxConsecutiveDays:     7,
		MinAdvanceNoticeDays:   3,
		MaxDriversOffPerDay:    map[string]int{"A": 2},
	}
}

func request(days int, startOffset int) model.VacationRequest {
	start := now.AddDate(0, 0, startOffset)
	return model.VacationRequest{
		ID:        1,
		DriverID:  10,
		Team:      "A",
		Type:      model.VacationAnnual,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, days-1),
		Days:      days,
		Status:    model.RequestPending,
	}
}

func quota(remaining int) *model.VacationQuota {
	return &model.VacationQuota{DriverID: 10, Year: 2026, TotalDays: 20, RemainingDays: remaining}
}

func TestValidateGranted(t *testing.T) {
	v := testValidator(policy())
	verdict := v.Validate(request(3, 10), quota(15), nil)
	if !verdict.OK {
		t.Fatalf("expected grant, got %s", verdict)
	}
}

func TestValidateAdvanceNotice(t *testing.T) {
	v := testValidator(policy())
	verdict := v.Validate(request(3, 1), quota(15), nil)
	if verdict.OK || verdict.Reason != ReasonAdvanceNotice {
		t.Fatalf("verdict = %+v, want AdvanceNotice", verdict)
	}
	if verdict.Limit != 3 {
		t.Fatalf("limit = %d, want 3", verdict.Limit)
	}
}

func TestValidateAdvanceNoticeBoundary(t *testing.T) {
	v := testValidator(policy())
	// Exactly the minimum notice is allowed.
	if verdict := v.Validate(request(1, 3), quota(15), nil); !verdict.OK {
		t.Fatalf("three days notice should pass, got %s", verdict)
	}
}

func TestValidateSickLeaveSkipsNotice(t *testing.T) {
	v := testValidator(policy())
	req := request(1, 0)
	req.Type = model.VacationSick
	if verdict := v.Validate(req, quota(15), nil); !verdict.OK {
		t.Fatalf("sick leave should skip advance notice, got %s", verdict)
	}
	req.Type = model.VacationEmergency
	if verdict := v.Validate(req, quota(15), nil); !verdict.OK {
		t.Fatalf("emergency leave should skip advance notice, got %s", verdict)
	}
}

func TestValidateConsecutiveCap(t *testing.T) {
	v := testValidator(policy())
	verdict := v.Validate(request(8, 10), quota(15), nil)
	if verdict.OK || verdict.Reason != ReasonConsecutiveCap || verdict.Limit != 7 {
		t.Fatalf("verdict = %+v, want ConsecutiveCap limit 7", verdict)
	}
}

func TestValidateQuota(t *testing.T) {
	v := testValidator(policy())

	verdict := v.Validate(request(5, 10), quota(4), nil)
	if verdict.OK || verdict.Reason != ReasonQuotaExceeded || verdict.Limit != 4 {
		t.Fatalf("verdict = %+v, want QuotaExceeded limit 4", verdict)
	}

	// A missing ledger counts as zero remaining days.
	verdict = v.Validate(request(1, 10), nil, nil)
	if verdict.OK || verdict.Reason != ReasonQuotaExceeded || verdict.Limit != 0 {
		t.Fatalf("verdict = %+v, want QuotaExceeded limit 0", verdict)
	}
}

func TestValidateNonAnnualIgnoresQuota(t *testing.T) {
	v := testValidator(policy())
	req := request(2, 10)
	req.Type = model.VacationPersonal
	if verdict := v.Validate(req, nil, nil); !verdict.OK {
		t.Fatalf("personal leave must not draw quota, got %s", verdict)
	}
}

func TestValidateBlackout(t *testing.T) {
	settings := policy()
	blackout := now.AddDate(0, 0, 11)
	settings.BlackoutDates = []time.Time{blackout}
	v := testValidator(settings)

	verdict := v.Validate(request(3, 10), quota(15), nil)
	if verdict.OK || verdict.Reason != ReasonBlackout {
		t.Fatalf("verdict = %+v, want Blackout", verdict)
	}
	if !model.SameDay(verdict.Date, blackout) {
		t.Fatalf("verdict date = %v, want %v", verdict.Date, blackout)
	}
}

func TestValidateBlackoutWinsOverDailyCap(t *testing.T) {
	// The blackout sweep covers the whole range before any cap is consulted:
	// a full team on the first day must not mask a blackout on the second.
	settings := policy()
	settings.MaxDriversOffPerDay["A"] = 1
	day1 := now.AddDate(0, 0, 10)
	day2 := day1.AddDate(0, 0, 1)
	settings.BlackoutDates = []time.Time{day2}
	v := testValidator(settings)

	approved := []model.VacationRequest{
		{ID: 2, DriverID: 20, Team: "A", Status: model.RequestApproved, StartDate: day1, EndDate: day1},
	}
	verdict := v.Validate(request(2, 10), quota(15), approved)
	if verdict.OK || verdict.Reason != ReasonBlackout {
		t.Fatalf("verdict = %+v, want Blackout", verdict)
	}
	if !model.SameDay(verdict.Date, day2) {
		t.Fatalf("verdict date = %v, want %v", verdict.Date, day2)
	}
}

func TestValidateDailyCapWinsOverWeekdayCap(t *testing.T) {
	// The per-day sweep finishes before the per-weekday sweep starts.
	settings := policy()
	day1 := now.AddDate(0, 0, 10)
	day2 := day1.AddDate(0, 0, 1)
	settings.MaxDriversOffPerWeekday = map[string]map[time.Weekday]int{
		"A": {day1.Weekday(): 1},
	}
	v := testValidator(settings)

	approved := []model.VacationRequest{
		{ID: 2, DriverID: 20, Team: "A", Status: model.RequestApproved, StartDate: day1, EndDate: day1},
		{ID: 3, DriverID: 21, Team: "A", Status: model.RequestApproved, StartDate: day2, EndDate: day2},
		{ID: 4, DriverID: 22, Team: "A", Status: model.RequestApproved, StartDate: day2, EndDate: day2},
	}
	// Day 1 trips only the weekday cap, day 2 trips the daily cap of 2.
	verdict := v.Validate(request(2, 10), quota(15), approved)
	if verdict.OK || verdict.Reason != ReasonDailyCapExceeded {
		t.Fatalf("verdict = %+v, want DailyCapExceeded", verdict)
	}
	if !model.SameDay(verdict.Date, day2) {
		t.Fatalf("verdict date = %v, want %v", verdict.Date, day2)
	}
}

func TestValidateDailyCap(t *testing.T) {
	v := testValidator(policy())
	day := now.AddDate(0, 0, 10)
	approved := []model.VacationRequest{
		{ID: 2, DriverID: 20, Team: "A", Status: model.RequestApproved, StartDate: day, EndDate: day},
		{ID: 3, DriverID: 21, Team: "A", Status: model.RequestApproved, StartDate: day, EndDate: day},
	}

	verdict := v.Validate(request(1, 10), quota(15), approved)
	if verdict.OK || verdict.Reason != ReasonDailyCapExceeded || verdict.Limit != 2 {
		t.Fatalf("verdict = %+v, want DailyCapExceeded limit 2", verdict)
	}

	// One slot left: only one teammate off that day.
	verdict = v.Validate(request(1, 10), quota(15), approved[:1])
	if !verdict.OK {
		t.Fatalf("expected grant with one slot free, got %s", verdict)
	}
}

func TestValidateDailyCapIgnoresOtherTeams(t *testing.T) {
	v := testValidator(policy())
	day := now.AddDate(0, 0, 10)
	approved := []model.VacationRequest{
		{ID: 2, DriverID: 20, Team: "B", Status: model.RequestApproved, StartDate: day, EndDate: day},
		{ID: 3, DriverID: 21, Team: "B", Status: model.RequestApproved, StartDate: day, EndDate: day},
	}
	if verdict := v.Validate(request(1, 10), quota(15), approved); !verdict.OK {
		t.Fatalf("other teams must not count against the cap, got %s", verdict)
	}
}

func TestValidateUncappedTeam(t *testing.T) {
	v := testValidator(policy())
	day := now.AddDate(0, 0, 10)
	req := request(1, 10)
	req.Team = "C"
	approved := []model.VacationRequest{
		{ID: 2, DriverID: 20, Team: "C", Status: model.RequestApproved, StartDate: day, EndDate: day},
		{ID: 3, DriverID: 21, Team: "C", Status: model.RequestApproved, StartDate: day, EndDate: day},
		{ID: 4, DriverID: 22, Team: "C", Status: model.RequestApproved, StartDate: day, EndDate: day},
	}
	if verdict := v.Validate(req, quota(15), approved); !verdict.OK {
		t.Fatalf("team without a cap must never hit DailyCapExceeded, got %s", verdict)
	}
}

func TestValidateWeekdayCap(t *testing.T) {
	settings := policy()
	delete(settings.MaxDriversOffPerDay, "A")
	day := now.AddDate(0, 0, 10) // 2026-03-12, a Thursday
	settings.MaxDriversOffPerWeekday = map[string]map[time.Weekday]int{
		"A": {day.Weekday(): 1},
	}
	v := testValidator(settings)
	approved := []model.VacationRequest{
		{ID: 2, DriverID: 20, Team: "A", Status: model.RequestApproved, StartDate: day, EndDate: day},
	}

	verdict := v.Validate(request(1, 10), quota(15), approved)
	if verdict.OK || verdict.Reason != ReasonWeekdayCapExceeded || verdict.Limit != 1 {
		t.Fatalf("verdict = %+v, want WeekdayCapExceeded limit 1", verdict)
	}

	// The next day has no weekday cap.
	if verdict := v.Validate(request(1, 11), quota(15), approved); !verdict.OK {
		t.Fatalf("uncapped weekday should pass, got %s", verdict)
	}
}

func TestValidateRevalidationIsStable(t *testing.T) {
	// An already-approved request must not count against itself when
	// re-validated.
	v := testValidator(policy())
	day := now.AddDate(0, 0, 10)
	req := request(1, 10)
	req.Status = model.RequestApproved
	approved := []model.VacationRequest{
		req,
		{ID: 2, DriverID: 20, Team: "A", Status: model.RequestApproved, StartDate: day, EndDate: day},
	}
	if verdict := v.Validate(req, quota(15), approved); !verdict.OK {
		t.Fatalf("re-validation flipped the verdict: %s", verdict)
	}
}

func TestValidateIdempotent(t *testing.T) {
	v := testValidator(policy())
	req := request(3, 10)
	first := v.Validate(req, quota(15), nil)
	for i := 0; i < 3; i++ {
		if got := v.Validate(req, quota(15), nil); got != first {
			t.Fatalf("verdict changed between calls: %+v then %+v", first, got)
		}
	}
}

func TestVerdictString(t *testing.T) {
	if got := Granted().String(); got != "granted" {
		t.Fatalf("granted verdict string = %q", got)
	}
	verdict := Verdict{Reason: ReasonQuotaExceeded, Limit: 2}
	if got := verdict.String(); got != "rejected: 2 days of quota remaining" {
		t.Fatalf("rejection string = %q", got)
	}
}
