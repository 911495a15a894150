package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
)

// BusinessCalendar answers holiday and workday questions for any date,
// using the same rules as Engine.
type BusinessCalendar struct {
	cal   *cal.BusinessCalendar
	rules map[*cal.Holiday]Rule
}

// NewBusinessCalendar registers every rule with a Monday-Friday business
// calendar. Fixed rules win over movable ones that land on the same date.
func NewBusinessCalendar() *BusinessCalendar {
	bc := &BusinessCalendar{
		cal:   cal.NewBusinessCalendar(),
		rules: make(map[*cal.Holiday]Rule),
	}

	for _, r := range Rules() {
		h := calHoliday(r)
		bc.rules[h] = r
		bc.cal.AddHoliday(h)
	}

	return bc
}

// calHoliday wraps r so the business calendar can evaluate it for any year.
// Years outside the Easter range evaluate to the zero time and never match.
func calHoliday(r Rule) *cal.Holiday {
	typ := cal.ObservancePublic
	if r.Observance != ObservancePublic {
		typ = cal.ObservanceOther
	}

	return &cal.Holiday{
		Name:  r.LocalName,
		Type:  typ,
		Month: r.Month,
		Day:   r.Day,
		Func: func(_ *cal.Holiday, year int) time.Time {
			easter, err := Easter(year)
			if err != nil {
				return time.Time{}
			}
			date, err := r.DateIn(year, easter)
			if err != nil {
				return time.Time{}
			}
			return date
		},
	}
}

// IsHoliday returns the holiday falling on the calendar date of t.
func (c *BusinessCalendar) IsHoliday(t time.Time) (Holiday, bool) {
	if validateYear(t.Year()) != nil {
		return Holiday{}, false
	}

	date := dateOf(t)
	actual, observed, h := c.cal.IsHoliday(date)
	if !actual && !observed || h == nil {
		return Holiday{}, false
	}

	r, ok := c.rules[h]
	if !ok {
		return Holiday{}, false
	}
	return r.holiday(date), true
}

// IsWorkday reports whether t is a weekday that is not a holiday.
func (c *BusinessCalendar) IsWorkday(t time.Time) bool {
	if IsWeekend(t) {
		return false
	}
	if _, ok := c.IsHoliday(t); ok {
		return false
	}
	return c.cal.IsWorkday(dateOf(t))
}

// Workdays counts the workdays in [from, to], both ends included.
func (c *BusinessCalendar) Workdays(from, to time.Time) int {
	n := 0
	for d := dateOf(from); !d.After(dateOf(to)); d = d.AddDate(0, 0, 1) {
		if c.IsWorkday(d) {
			n++
		}
	}
	return n
}
