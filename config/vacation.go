package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gyakuten55/rikuso-demo/core/model"
)

const dateLayout = "2006-01-02"

// VacationConfig carries the leave policy in file-friendly form: dates as
// YYYY-MM-DD strings and weekdays as "0"(Sunday) through "6" keys.
type VacationConfig struct {
	MaxVacationDaysPerYear  int                       `json:"max_vacation_days_per_year"`
	MaxConsecutiveDays      int                       `json:"max_consecutive_days"`
	MinAdvanceNoticeDays    int                       `json:"min_advance_notice_days"`
	MaxDriversOffPerDay     map[string]int            `json:"max_drivers_off_per_day"`
	MaxDriversOffPerWeekday map[string]map[string]int `json:"max_drivers_off_per_weekday"`
	BlackoutDates           []string                  `json:"blackout_dates"`
	HolidayDates            []string                  `json:"holiday_dates"`
}

// SetDefaults applies the policy the operations team runs with.
func (c *VacationConfig) SetDefaults() {
	if c.MaxVacationDaysPerYear == 0 {
		c.MaxVacationDaysPerYear = 20
	}
	if c.MaxConsecutiveDays == 0 {
		c.MaxConsecutiveDays = 7
	}
	if c.MinAdvanceNoticeDays == 0 {
		c.MinAdvanceNoticeDays = 3
	}
}

// Validate checks date formats and weekday keys.
func (c VacationConfig) Validate() error {
	for _, d := range append(append([]string(nil), c.BlackoutDates...), c.HolidayDates...) {
		if _, err := time.Parse(dateLayout, d); err != nil {
			return fmt.Errorf("invalid policy date %q: %w", d, err)
		}
	}
	for team, caps := range c.MaxDriversOffPerWeekday {
		for wd := range caps {
			n, err := strconv.Atoi(wd)
			if err != nil || n < 0 || n > 6 {
				return fmt.Errorf("team %s: weekday key %q must be 0-6", team, wd)
			}
		}
	}
	return nil
}

// Settings converts the file form into the model policy. Validate must have
// succeeded first.
func (c VacationConfig) Settings() model.VacationSettings {
	s := model.VacationSettings{
		MaxVacationDaysPerYear: c.MaxVacationDaysPerYear,
		MaxConsecutiveDays:     c.MaxConsecutiveDays,
		MinAdvanceNoticeDays:   c.MinAdvanceNoticeDays,
		MaxDriversOffPerDay:    c.MaxDriversOffPerDay,
	}
	if len(c.MaxDriversOffPerWeekday) > 0 {
		s.MaxDriversOffPerWeekday = map[string]map[time.Weekday]int{}
		for team, caps := range c.MaxDriversOffPerWeekday {
			m := map[time.Weekday]int{}
			for wd, cap := range caps {
				n, _ := strconv.Atoi(wd)
				m[time.Weekday(n)] = cap
			}
			s.MaxDriversOffPerWeekday[team] = m
		}
	}
	for _, d := range c.BlackoutDates {
		t, _ := time.Parse(dateLayout, d)
		s.BlackoutDates = append(s.BlackoutDates, t)
	}
	for _, d := range c.HolidayDates {
		t, _ := time.Parse(dateLayout, d)
		s.HolidayDates = append(s.HolidayDates, t)
	}
	return s
}
