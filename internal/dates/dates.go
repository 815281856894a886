// Package dates holds calendar-day helpers shared by the stores and views.
// All comparisons happen in the location of the reference time.
package dates

import "time"

// StartOfDay returns midnight of t's calendar day in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfTomorrow returns midnight of the day after now
func StartOfTomorrow(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

// SameDay reports whether t falls on now's calendar day, judged in now's location
func SameDay(t, now time.Time) bool {
	ty, tm, td := t.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return ty == ny && tm == nm && td == nd
}

// AfterToday reports whether t is strictly after the end of now's calendar day
func AfterToday(t, now time.Time) bool {
	return !t.Before(StartOfTomorrow(now))
}

// AddDays returns t shifted by n calendar days, keeping wall-clock time
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}
