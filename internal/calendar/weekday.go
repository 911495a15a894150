package calendar

import "time"

// Previous returns the closest date strictly before anchor that falls on wd.
// An anchor already on wd yields the same weekday one week earlier.
func Previous(anchor time.Time, wd time.Weekday) time.Time {
	delta := (int(anchor.Weekday()) - int(wd) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return anchor.AddDate(0, 0, -delta)
}

// Next returns the closest date strictly after anchor that falls on wd.
// An anchor already on wd yields the same weekday one week later.
func Next(anchor time.Time, wd time.Weekday) time.Time {
	delta := (int(wd) - int(anchor.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return anchor.AddDate(0, 0, delta)
}

// OnOrAfter returns anchor itself when it falls on wd, otherwise the
// closest later date that does.
func OnOrAfter(anchor time.Time, wd time.Weekday) time.Time {
	delta := (int(wd) - int(anchor.Weekday()) + 7) % 7
	return anchor.AddDate(0, 0, delta)
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DayName returns the Swedish name of the weekday (måndag, tisdag, etc.)
func DayName(date time.Time) string {
	days := []string{"söndag", "måndag", "tisdag", "onsdag", "torsdag", "fredag", "lördag"}
	return days[date.Weekday()]
}

// daysIn returns the number of days in month of year.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
