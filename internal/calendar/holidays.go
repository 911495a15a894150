package calendar

import (
	"fmt"
	"time"
)

// Observance classifies how a day off is observed.
type Observance int

const (
	// ObservancePublic is an official public holiday ("röd dag").
	ObservancePublic Observance = iota

	// ObservanceEve is an eve or half-day that is customarily a day off.
	ObservanceEve

	// ObservanceWeekend is a Saturday or Sunday added by weekend inclusion.
	ObservanceWeekend
)

// String returns the lower-case observance name.
func (o Observance) String() string {
	switch o {
	case ObservancePublic:
		return "public"
	case ObservanceEve:
		return "eve"
	case ObservanceWeekend:
		return "weekend"
	default:
		return fmt.Sprintf("observance(%d)", int(o))
	}
}

// MarshalText encodes the observance by name.
func (o Observance) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Holiday is a single day off in a given year.
type Holiday struct {
	Date       time.Time
	Name       string
	LocalName  string
	Observance Observance
}

// Rule describes how to find a holiday in any year.
//
// Fixed rules set Month and Day. Movable rules set Derive, which receives the
// year and that year's Easter Sunday.
type Rule struct {
	Name       string
	LocalName  string
	Observance Observance

	Month time.Month
	Day   int

	Derive func(year int, easter time.Time) time.Time
}

// IsFixed reports whether the rule falls on the same month and day every year.
func (r Rule) IsFixed() bool {
	return r.Derive == nil
}

// DateIn evaluates the rule for year. The result must lie inside year.
func (r Rule) DateIn(year int, easter time.Time) (time.Time, error) {
	var date time.Time
	if r.IsFixed() {
		d, err := civilDate(year, r.Month, r.Day)
		if err != nil {
			return time.Time{}, fmt.Errorf("%s: %w", r.Name, err)
		}
		date = d
	} else {
		date = dateOf(r.Derive(year, easter))
	}

	if date.Year() != year {
		return time.Time{}, fmt.Errorf("%s: %w: %s is outside %d",
			r.Name, ErrInvalidDate, date.Format(time.DateOnly), year)
	}
	return date, nil
}

func (r Rule) holiday(date time.Time) Holiday {
	return Holiday{
		Date:       date,
		Name:       r.Name,
		LocalName:  r.LocalName,
		Observance: r.Observance,
	}
}

// fixedRules lists holidays on the same date every year, in insertion order.
var fixedRules = []Rule{
	{Name: "New Year's Day", LocalName: "Nyårsdagen", Observance: ObservancePublic, Month: time.January, Day: 1},
	{Name: "Twelfth Night", LocalName: "Trettondagsafton", Observance: ObservanceEve, Month: time.January, Day: 5},
	// Epiphany is disabled on purpose.
	// {Name: "Epiphany", LocalName: "Trettondedag jul", Observance: ObservancePublic, Month: time.January, Day: 6},
	{Name: "May Day", LocalName: "Första maj", Observance: ObservancePublic, Month: time.May, Day: 1},
	{Name: "Walpurgis Night", LocalName: "Valborgsmässoafton", Observance: ObservanceEve, Month: time.April, Day: 30},
	// June 1 is disabled on purpose.
	// {Name: "June 1", LocalName: "1 juni", Observance: ObservanceEve, Month: time.June, Day: 1},
	{Name: "National Day", LocalName: "Sveriges nationaldag", Observance: ObservancePublic, Month: time.June, Day: 6},
	{Name: "Christmas Eve", LocalName: "Julafton", Observance: ObservanceEve, Month: time.December, Day: 24},
	{Name: "Christmas Day", LocalName: "Juldagen", Observance: ObservancePublic, Month: time.December, Day: 25},
	{Name: "Boxing Day", LocalName: "Annandag jul", Observance: ObservancePublic, Month: time.December, Day: 26},
	{Name: "New Year's Eve", LocalName: "Nyårsafton", Observance: ObservanceEve, Month: time.December, Day: 31},
}

// easterRules lists the movable holidays, in insertion order.
var easterRules = []Rule{
	{
		Name: "Maundy Thursday", LocalName: "Skärtorsdagen", Observance: ObservanceEve,
		Derive: func(_ int, easter time.Time) time.Time {
			return Previous(easter, time.Thursday)
		},
	},
	{
		Name: "Good Friday", LocalName: "Långfredagen", Observance: ObservancePublic,
		Derive: func(_ int, easter time.Time) time.Time {
			return Previous(easter, time.Friday)
		},
	},
	{
		Name: "Holy Saturday", LocalName: "Påskafton", Observance: ObservanceEve,
		Derive: func(_ int, easter time.Time) time.Time {
			return Previous(easter, time.Saturday)
		},
	},
	{
		Name: "Easter Monday", LocalName: "Annandag påsk", Observance: ObservancePublic,
		Derive: func(_ int, easter time.Time) time.Time {
			return easter.AddDate(0, 0, 1)
		},
	},
	{
		Name: "Ascension Day", LocalName: "Kristi himmelsfärdsdag", Observance: ObservancePublic,
		Derive: func(_ int, easter time.Time) time.Time {
			return Next(easter, time.Thursday).AddDate(0, 0, 5*7)
		},
	},
	{
		Name: "Pentecost", LocalName: "Pingstdagen", Observance: ObservancePublic,
		Derive: func(_ int, easter time.Time) time.Time {
			return Next(easter, time.Sunday).AddDate(0, 0, 6*7)
		},
	},
	{
		Name: "Pentecost Eve", LocalName: "Pingstafton", Observance: ObservanceEve,
		Derive: func(_ int, easter time.Time) time.Time {
			return Next(easter, time.Sunday).AddDate(0, 0, 6*7-1)
		},
	},
	{
		Name: "Midsummer Eve", LocalName: "Midsommarafton", Observance: ObservanceEve,
		Derive: func(year int, _ time.Time) time.Time {
			return OnOrAfter(time.Date(year, time.June, 19, 0, 0, 0, 0, time.UTC), time.Friday)
		},
	},
	{
		Name: "Midsummer Day", LocalName: "Midsommardagen", Observance: ObservancePublic,
		Derive: func(year int, _ time.Time) time.Time {
			return OnOrAfter(time.Date(year, time.June, 20, 0, 0, 0, 0, time.UTC), time.Saturday)
		},
	},
	{
		Name: "All Hallows' Eve", LocalName: "Allhelgonaafton", Observance: ObservanceEve,
		Derive: func(year int, _ time.Time) time.Time {
			return OnOrAfter(time.Date(year, time.October, 30, 0, 0, 0, 0, time.UTC), time.Friday)
		},
	},
	{
		Name: "All Hallows' Day", LocalName: "Alla helgons dag", Observance: ObservancePublic,
		Derive: func(year int, _ time.Time) time.Time {
			return OnOrAfter(time.Date(year, time.October, 31, 0, 0, 0, 0, time.UTC), time.Saturday)
		},
	},
}

// Rules returns every holiday rule, fixed rules first, in insertion order.
func Rules() []Rule {
	rules := make([]Rule, 0, len(fixedRules)+len(easterRules))
	rules = append(rules, fixedRules...)
	return append(rules, easterRules...)
}
