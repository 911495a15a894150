package calendar

import (
	"fmt"
	"sort"
	"time"
)

// FixedHolidays returns the fixed-date holidays of year in table order.
func FixedHolidays(year int) ([]Holiday, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	return evaluate(fixedRules, year, time.Time{})
}

// EasterDependentHolidays returns the movable holidays of year in rule order.
// easter must be the Easter Sunday of year.
func EasterDependentHolidays(year int, easter time.Time) ([]Holiday, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if easter.Year() != year {
		return nil, fmt.Errorf("%w: easter %s is outside %d", ErrInvalidDate, easter.Format(time.DateOnly), year)
	}
	return evaluate(easterRules, year, dateOf(easter))
}

func evaluate(rules []Rule, year int, easter time.Time) ([]Holiday, error) {
	holidays := make([]Holiday, 0, len(rules))
	for _, r := range rules {
		date, err := r.DateIn(year, easter)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, r.holiday(date))
	}
	return holidays, nil
}

// MergeUnique concatenates sets, keeping only the first holiday seen for
// each calendar date. The inputs are not modified.
func MergeUnique(sets ...[]Holiday) []Holiday {
	seen := make(map[time.Time]struct{})
	var merged []Holiday
	for _, set := range sets {
		for _, h := range set {
			key := dateOf(h.Date)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, h)
		}
	}
	return merged
}

// FilterAndAugmentWeekends keeps the holidays of set that fall in month and
// adds every Saturday and Sunday of year/month not already present. The
// result is sorted by date.
func FilterAndAugmentWeekends(set []Holiday, year int, month time.Month) []Holiday {
	var inMonth []Holiday
	for _, h := range set {
		if h.Date.Month() == month {
			inMonth = append(inMonth, h)
		}
	}

	var weekends []Holiday
	for day := 1; day <= daysIn(year, month); day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if IsWeekend(date) {
			weekends = append(weekends, weekendDay(date))
		}
	}

	result := MergeUnique(inMonth, weekends)
	SortByDate(result)
	return result
}

func weekendDay(date time.Time) Holiday {
	return Holiday{
		Date:       date,
		Name:       date.Weekday().String(),
		LocalName:  DayName(date),
		Observance: ObservanceWeekend,
	}
}

// SortByDate sorts holidays ascending by date in place.
func SortByDate(holidays []Holiday) {
	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
}

// Dates returns the dates of holidays, preserving order.
func Dates(holidays []Holiday) []time.Time {
	dates := make([]time.Time, len(holidays))
	for i, h := range holidays {
		dates[i] = h.Date
	}
	return dates
}
