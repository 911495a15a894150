package calendar

import (
	"fmt"
	"time"
)

// Engine holds the Swedish holidays of one year.
//
// All state is computed by New and never changes afterwards, so an Engine
// may be shared between goroutines.
type Engine struct {
	year     int
	month    time.Month
	easter   time.Time
	holidays []Holiday
	byDate   map[time.Time]int
}

// Option configures New.
type Option func(*options)

type options struct {
	year     int
	month    time.Month
	hasYear  bool
	hasMonth bool
	clock    Clock
}

// WithYear sets the calendar year. Without it the clock's current year is used.
func WithYear(year int) Option {
	return func(o *options) {
		o.year = year
		o.hasYear = true
	}
}

// WithMonth sets the month used by weekend inclusion. Without it the clock's
// current month is used.
func WithMonth(month time.Month) Option {
	return func(o *options) {
		o.month = month
		o.hasMonth = true
	}
}

// WithClock replaces SystemClock as the source of the default year and month.
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// New computes the holidays of the configured year: the fixed table first,
// then Easter, then the Easter-dependent holidays not already present.
func New(opts ...Option) (*Engine, error) {
	o := options{clock: SystemClock}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.hasYear || !o.hasMonth {
		now := o.clock.Now()
		if !o.hasYear {
			o.year = now.Year()
		}
		if !o.hasMonth {
			o.month = now.Month()
		}
	}

	if o.month < time.January || o.month > time.December {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMonth, int(o.month))
	}

	fixed, err := FixedHolidays(o.year)
	if err != nil {
		return nil, fmt.Errorf("fixed holidays: %w", err)
	}

	easter, err := Easter(o.year)
	if err != nil {
		return nil, fmt.Errorf("easter: %w", err)
	}

	movable, err := EasterDependentHolidays(o.year, easter)
	if err != nil {
		return nil, fmt.Errorf("easter-dependent holidays: %w", err)
	}

	holidays := MergeUnique(fixed, movable)
	byDate := make(map[time.Time]int, len(holidays))
	for i, h := range holidays {
		byDate[h.Date] = i
	}

	return &Engine{
		year:     o.year,
		month:    o.month,
		easter:   easter,
		holidays: holidays,
		byDate:   byDate,
	}, nil
}

// Year returns the configured year.
func (e *Engine) Year() int {
	return e.year
}

// Month returns the month used by weekend inclusion.
func (e *Engine) Month() time.Month {
	return e.month
}

// EasterDate returns Easter Sunday of the configured year.
func (e *Engine) EasterDate() time.Time {
	return e.easter
}

// Holidays returns the full-year holidays in insertion order.
func (e *Engine) Holidays() []Holiday {
	out := make([]Holiday, len(e.holidays))
	copy(out, e.holidays)
	return out
}

// HolidaysIncludingWeekends returns the holidays of the configured month
// together with every Saturday and Sunday of that month, sorted by date.
func (e *Engine) HolidaysIncludingWeekends() []Holiday {
	return FilterAndAugmentWeekends(e.holidays, e.year, e.month)
}

// AllHolidaysIncludingWeekends returns the dates of HolidaysIncludingWeekends.
func (e *Engine) AllHolidaysIncludingWeekends() []time.Time {
	return Dates(e.HolidaysIncludingWeekends())
}

// AllHolidaysExcludingWeekends returns every holiday date of the year in
// insertion order, without weekend days. Sort the result if a canonical
// order is needed.
func (e *Engine) AllHolidaysExcludingWeekends() []time.Time {
	return Dates(e.holidays)
}

// Lookup returns the holiday falling on the calendar date of t.
// Weekend days are not reported.
func (e *Engine) Lookup(t time.Time) (Holiday, bool) {
	i, ok := e.byDate[dateOf(t)]
	if !ok {
		return Holiday{}, false
	}
	return e.holidays[i], true
}
