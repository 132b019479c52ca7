package model

import "time"

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DaysBetween returns the number of calendar days from a to b, negative when b
// precedes a. Both arguments are reduced to their calendar date and re-anchored
// in UTC, so days shortened or stretched by DST transitions still count as one.
func DaysBetween(a, b time.Time) int {
	return int(utcMidnight(b).Sub(utcMidnight(a)).Hours() / 24)
}

func utcMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EachDay calls fn for every calendar day in [start, end] inclusive. It stops
// early when fn returns false.
func EachDay(start, end time.Time, fn func(day time.Time) bool) {
	for day := DateOnly(start); !day.After(DateOnly(end)); day = day.AddDate(0, 0, 1) {
		if !fn(day) {
			return
		}
	}
}

// TimeSlot is a clock-time window within a single day, "HH:MM" formatted.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
