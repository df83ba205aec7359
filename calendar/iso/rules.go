// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iso

import (
	"slices"

	"cloudeng.io/threeten/calendar"
)

// rule provides the name and range shared by all ISO rules, each
// field is implemented by its own type that embeds a rule.
type rule struct {
	name string
	rng  calendar.Range
}

func (r rule) Name() string {
	return r.name
}

func (r rule) Chronology() string {
	return Name
}

func (r rule) Range() calendar.Range {
	return r.rng
}

func (r rule) String() string {
	return r.name
}

// The date rules of the ISO chronology.
var (
	Year           calendar.Rule = &yearRule{rule{"Year", calendar.YearRange}}
	QuarterOfYear  calendar.Rule = &quarterOfYearRule{rule{"QuarterOfYear", calendar.Range{Min: 1, Max: 4}}}
	MonthOfYear    calendar.Rule = &monthOfYearRule{rule{"MonthOfYear", calendar.Range{Min: 1, Max: 12}}}
	MonthOfQuarter calendar.Rule = &monthOfQuarterRule{rule{"MonthOfQuarter", calendar.Range{Min: 1, Max: 3}}}
	DayOfYear      calendar.Rule = &dayOfYearRule{rule{"DayOfYear", calendar.Range{Min: 1, Max: 366}}}
	DayOfMonth     calendar.Rule = &dayOfMonthRule{rule{"DayOfMonth", calendar.Range{Min: 1, Max: 31}}}
	DayOfWeek      calendar.Rule = &dayOfWeekRule{rule{"DayOfWeek", calendar.Range{Min: 1, Max: 7}}}
)

// QuarterOf returns the quarter, 1-4, for the month, 1-12.
func QuarterOf(month int) int {
	return ((month - 1) / 3) + 1
}

// MonthOfQuarterOf returns the month within its quarter, 1-3, for the
// month, 1-12.
func MonthOfQuarterOf(month int) int {
	return ((month - 1) % 3) + 1
}

func monthFromQuarter(quarter, monthOfQuarter int) calendar.Month {
	return calendar.Month((quarter-1)*3 + monthOfQuarter)
}

// withMonth returns the date in the specified month with the day clamped
// to the length of that month.
func withMonth(d calendar.LocalDate, month calendar.Month) (calendar.LocalDate, error) {
	day := min(d.Day(), calendar.DaysInMonth(d.Year(), month))
	return calendar.NewLocalDate(d.Year(), month, day)
}

// storedDate returns the date given by the first complete combination of
// stored date fields that does not include skip. The combinations are
// those used by Chronology.ResolveDate.
func storedDate(cal calendar.Calendrical, skip calendar.Rule) (calendar.LocalDate, bool) {
	for _, combination := range dateCombinations {
		if slices.Contains(combination.rules, skip) {
			continue
		}
		v, ok := stored(cal, combination.rules...)
		if !ok {
			continue
		}
		if d, err := combination.date(v); err == nil {
			return d, true
		}
	}
	return calendar.LocalDate{}, false
}

type yearRule struct{ rule }

func (r *yearRule) Derive(cal calendar.Calendrical) (int, bool) {
	if d, ok := cal.Date(); ok {
		return d.Year(), true
	}
	return 0, false
}

// AdjustDate implements calendar.DateAdjuster, Feb 29 becomes Feb 28 in
// a non-leap year.
func (r *yearRule) AdjustDate(d calendar.LocalDate, year int) (calendar.LocalDate, error) {
	day := min(d.Day(), calendar.DaysInMonth(year, d.Month()))
	return calendar.NewLocalDate(year, d.Month(), day)
}

type quarterOfYearRule struct{ rule }

func (r *quarterOfYearRule) Derive(cal calendar.Calendrical) (int, bool) {
	if d, ok := cal.Date(); ok {
		return QuarterOf(int(d.Month())), true
	}
	if m, ok := cal.Field(MonthOfYear); ok {
		return QuarterOf(m), true
	}
	if d, ok := storedDate(cal, QuarterOfYear); ok {
		return QuarterOf(int(d.Month())), true
	}
	return 0, false
}

// AdjustDate implements calendar.DateAdjuster, the month of the quarter
// is retained.
func (r *quarterOfYearRule) AdjustDate(d calendar.LocalDate, quarter int) (calendar.LocalDate, error) {
	return withMonth(d, monthFromQuarter(quarter, MonthOfQuarterOf(int(d.Month()))))
}

type monthOfYearRule struct{ rule }

func (r *monthOfYearRule) Derive(cal calendar.Calendrical) (int, bool) {
	if d, ok := cal.Date(); ok {
		return int(d.Month()), true
	}
	if v, ok := stored(cal, QuarterOfYear, MonthOfQuarter); ok {
		return int(monthFromQuarter(v[0], v[1])), true
	}
	if d, ok := storedDate(cal, MonthOfYear); ok {
		return int(d.Month()), true
	}
	return 0, false
}

func (r *monthOfYearRule) AdjustDate(d calendar.LocalDate, month int) (calendar.LocalDate, error) {
	return withMonth(d, calendar.Month(month))
}

type monthOfQuarterRule struct{ rule }

func (r *monthOfQuarterRule) Derive(cal calendar.Calendrical) (int, bool) {
	if d, ok := cal.Date(); ok {
		return MonthOfQuarterOf(int(d.Month())), true
	}
	if m, ok := cal.Field(MonthOfYear); ok {
		return MonthOfQuarterOf(m), true
	}
	if d, ok := storedDate(cal, MonthOfQuarter); ok {
		return MonthOfQuarterOf(int(d.Month())), true
	}
	return 0, false
}

func (r *monthOfQuarterRule) AdjustDate(d calendar.LocalDate, moq int) (calendar.LocalDate, error) {
	return withMonth(d, monthFromQuarter(QuarterOf(int(d.Month())), moq))
}

type dayOfYearRule struct{ rule }

func (r *dayOfYearRule) Derive(cal calendar.Calendrical) (int, bool) {
	if d, ok := cal.Date(); ok {
		return d.DayOfYear(), true
	}
	if d, ok := storedDate(cal, DayOfYear); ok {
		return d.DayOfYear(), true
	}
	return 0, false
}

func (r *dayOfYearRule) AdjustDate(d calendar.LocalDate, doy int) (calendar.LocalDate, error) {
	return calendar.LocalDateOfYearDay(d.Year(), doy)
}

type dayOfMonthRule struct{ rule }

func (r *dayOfMonthRule) Derive(cal calendar.Calendrical) (int, bool) {
	if d, ok := cal.Date(); ok {
		return d.Day(), true
	}
	if d, ok := storedDate(cal, DayOfMonth); ok {
		return d.Day(), true
	}
	return 0, false
}

// AdjustDate implements calendar.DateAdjuster, a day that is not valid
// for the month results in a calendar.RangeError.
func (r *dayOfMonthRule) AdjustDate(d calendar.LocalDate, day int) (calendar.LocalDate, error) {
	return calendar.NewLocalDate(d.Year(), d.Month(), day)
}

type dayOfWeekRule struct{ rule }

func (r *dayOfWeekRule) Derive(cal calendar.Calendrical) (int, bool) {
	if d, ok := cal.Date(); ok {
		return d.DayOfWeek(), true
	}
	if d, ok := storedDate(cal, DayOfWeek); ok {
		return d.DayOfWeek(), true
	}
	return 0, false
}

// AdjustDate implements calendar.DateAdjuster, the date is moved within
// its ISO week, which starts on Monday.
func (r *dayOfWeekRule) AdjustDate(d calendar.LocalDate, dow int) (calendar.LocalDate, error) {
	return d.PlusDays(dow - d.DayOfWeek()), nil
}
