// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package field

import (
	"cloudeng.io/threeten/calendar"
	"cloudeng.io/threeten/calendar/iso"
)

// MonthOfYear represents a month, January to December.
type MonthOfYear int

const (
	January MonthOfYear = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var months = enum[MonthOfYear]{
	rule: iso.MonthOfYear,
	labels: []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
}

// MonthOfYearRule returns the rule for MonthOfYear.
func MonthOfYearRule() calendar.Rule {
	return months.rule
}

// NewMonthOfYear returns the MonthOfYear for v, 1-12.
func NewMonthOfYear(v int) (MonthOfYear, error) {
	return months.of(v)
}

// MonthOfYearFrom returns the MonthOfYear held by, or derived from, cal.
func MonthOfYearFrom(cal calendar.Calendrical) (MonthOfYear, error) {
	return months.from(cal)
}

// ParseMonthOfYear parses a month name, or a prefix of at least three
// characters of one, in any case, or a number 1-12.
func ParseMonthOfYear(val string) (MonthOfYear, error) {
	return months.parse(val)
}

// MonthOfYearValues returns all of the months in order.
func MonthOfYearValues() []MonthOfYear {
	return months.values()
}

func (m MonthOfYear) Value() int {
	return int(m)
}

func (m MonthOfYear) Label() string {
	return months.label(m)
}

// String returns MonthOfYear=<Label>.
func (m MonthOfYear) String() string {
	return months.format(m)
}

func (m MonthOfYear) IsValid() bool {
	return months.isValid(m)
}

// Next returns the next month, December is followed by January.
func (m MonthOfYear) Next() MonthOfYear {
	return months.plus(m, 1)
}

// Previous returns the previous month, January is preceded by December.
func (m MonthOfYear) Previous() MonthOfYear {
	return months.plus(m, -1)
}

// Plus returns the month n months later, wrapping around the year.
func (m MonthOfYear) Plus(n int) MonthOfYear {
	return months.plus(m, n)
}

// Month returns m as a calendar.Month.
func (m MonthOfYear) Month() calendar.Month {
	return calendar.Month(m)
}

// Quarter returns the quarter that contains m.
func (m MonthOfYear) Quarter() QuarterOfYear {
	return QuarterOfYear(iso.QuarterOf(int(m)))
}

// MonthOfQuarter returns the position of m within its quarter, 1-3.
func (m MonthOfYear) MonthOfQuarter() int {
	return iso.MonthOfQuarterOf(int(m))
}

// Length returns the number of days in the month for a leap or non-leap
// year, or 0 for an invalid month.
func (m MonthOfYear) Length(leap bool) int {
	if !m.IsValid() {
		return 0
	}
	if leap {
		return calendar.DaysInMonth(2024, calendar.Month(m))
	}
	return calendar.DaysInMonth(2023, calendar.Month(m))
}

// MinLength returns the fewest days the month may have.
func (m MonthOfYear) MinLength() int {
	return m.Length(false)
}

// MaxLength returns the most days the month may have.
func (m MonthOfYear) MaxLength() int {
	return m.Length(true)
}

// CalendarValue returns m as a calendar.Value.
func (m MonthOfYear) CalendarValue() (calendar.Value, error) {
	return months.value(m)
}

// Matches implements calendar.Matcher.
func (m MonthOfYear) Matches(cal calendar.Calendrical) (bool, error) {
	return months.matches(m, cal)
}

// Field implements calendar.Calendrical.
func (m MonthOfYear) Field(rule calendar.Rule) (int, bool) {
	return months.field(m, rule)
}

// Date implements calendar.Calendrical.
func (m MonthOfYear) Date() (calendar.LocalDate, bool) {
	return calendar.LocalDate{}, false
}

// Time implements calendar.Calendrical.
func (m MonthOfYear) Time() (calendar.LocalTime, bool) {
	return 0, false
}
