// Package calendar computes the Swedish holiday calendar: fixed holidays,
// Easter Sunday and the movable feasts derived from it.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Valid year range for the Gregorian Easter computation.
const (
	MinYear = 1583
	MaxYear = 9999
)

var (
	// ErrInvalidYear is returned for years the Easter computation does not cover.
	ErrInvalidYear = errors.New("invalid year")

	// ErrInvalidMonth is returned for months outside January through December.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidDate is returned when a rule produces a day that does not
	// exist in the calendar or falls outside the requested year.
	ErrInvalidDate = errors.New("invalid calendar date")
)

// Easter calculates the date of Easter Sunday for a given year.
//
// The computation is the congruential method used by the Swedish almanac
// tables. Every division truncates; the dependent holidays inherit the result
// so it must not be replaced by a floating point variant.
func Easter(year int) (time.Time, error) {
	if err := validateYear(year); err != nil {
		return time.Time{}, err
	}

	g := year % 19
	c := year / 100
	h := (c - c/4 - (8*c+13)/25 + 19*g + 15) % 30
	i := h - h/28*(1-h/28*(29/(h+1))*((21-g)/11))

	day := i - ((year + year/4 + i + 2 - c + c/4) % 7) + 28
	month := time.March

	if day > 31 {
		month = time.April
		day -= 31
	}

	return civilDate(year, month, day)
}

// validateYear checks that year is within [MinYear, MaxYear].
func validateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidYear, year, MinYear, MaxYear)
	}
	return nil
}

// civilDate builds a midnight UTC date and rejects combinations that
// time.Date would silently normalize (April 31 becoming May 1 and so on).
func civilDate(year int, month time.Month, day int) (time.Time, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return t, nil
}

// dateOf strips the clock and location from t, keeping its calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
