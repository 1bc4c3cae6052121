package util

import (
	"fmt"
	"time"
)

// DueSoonDays is the inclusive window, in days, for a due date to count as "due soon"
const DueSoonDays = 7

// PreviousMonth returns the year and month for the previous month
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// NextMonth returns the year and month for the following month
func NextMonth(year, month int) (int, int) {
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}

// DateOnly drops the clock part of t, keeping its calendar date in UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CalculateActualDate returns the actual date for a target day in a given month,
// handling months with fewer days (e.g., day 31 in February returns Feb 28/29)
func CalculateActualDate(year int, month time.Month, targetDay int) time.Time {
	lastDay := DaysInMonth(year, month)

	actualDay := targetDay
	if actualDay > lastDay {
		actualDay = lastDay
	}
	if actualDay < 1 {
		actualDay = 1
	}

	return time.Date(year, month, actualDay, 0, 0, 0, 0, time.UTC)
}

// GetMonthCycleDates returns the inclusive [start, end] window of the budget cycle
// containing today. A cycle starts on startDay of a month and ends the day before
// startDay of the next month. startDay is clamped to the length of short months.
func GetMonthCycleDates(today time.Time, startDay int) (time.Time, time.Time) {
	today = DateOnly(today)
	year, month := today.Year(), int(today.Month())

	start := CalculateActualDate(year, time.Month(month), startDay)
	if today.Before(start) {
		py, pm := PreviousMonth(year, month)
		start = CalculateActualDate(py, time.Month(pm), startDay)
		year, month = py, pm
	}

	ny, nm := NextMonth(year, month)
	end := CalculateActualDate(ny, time.Month(nm), startDay).AddDate(0, 0, -1)

	return start, end
}

// InCycle reports whether date falls within [start, end], comparing dates only
func InCycle(date, start, end time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(start)) && !d.After(DateOnly(end))
}

// DaysBetween returns the number of whole calendar days from a to b
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// DaysUntilDue returns the days from today until the next occurrence of dueDay,
// looking at this month and then the following one. A dueDay beyond the end of
// a month falls on that month's last day.
func DaysUntilDue(dueDay int, today time.Time) int {
	today = DateOnly(today)
	year, month := today.Year(), int(today.Month())

	due := CalculateActualDate(year, time.Month(month), dueDay)
	if due.Before(today) {
		ny, nm := NextMonth(year, month)
		due = CalculateActualDate(ny, time.Month(nm), dueDay)
	}

	return DaysBetween(today, due)
}

// IsDueSoon reports whether dueDay is between 0 and DueSoonDays days away
func IsDueSoon(dueDay int, today time.Time) bool {
	days := DaysUntilDue(dueDay, today)
	return days >= 0 && days <= DueSoonDays
}

// CycleKey returns the YYYY-MM calendar month key for t
func CycleKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// ParseMonthKey parses a YYYY-MM key into its year and month
func ParseMonthKey(key string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t.Year(), t.Month(), nil
}

// CycleLabel formats a cycle window for display, e.g. "Jan 15 - Feb 14"
func CycleLabel(start, end time.Time) string {
	return start.Format("Jan 2") + " - " + end.Format("Jan 2")
}
