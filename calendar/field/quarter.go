// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package field

import (
	"cloudeng.io/threeten/calendar"
	"cloudeng.io/threeten/calendar/iso"
)

// QuarterOfYear represents a quarter of the year, Q1 to Q4. Q1 is
// January to March, Q2 April to June, Q3 July to September and Q4
// October to December.
type QuarterOfYear int

const (
	Q1 QuarterOfYear = iota + 1
	Q2
	Q3
	Q4
)

var quarters = enum[QuarterOfYear]{
	rule:   iso.QuarterOfYear,
	labels: []string{"Q1", "Q2", "Q3", "Q4"},
}

// QuarterOfYearRule returns the rule for QuarterOfYear.
func QuarterOfYearRule() calendar.Rule {
	return quarters.rule
}

// NewQuarterOfYear returns the QuarterOfYear for v or a
// calendar.RangeError if v is not in the range 1-4.
func NewQuarterOfYear(v int) (QuarterOfYear, error) {
	return quarters.of(v)
}

// QuarterOfYearFrom returns the QuarterOfYear held by, or derived from, cal.
func QuarterOfYearFrom(cal calendar.Calendrical) (QuarterOfYear, error) {
	return quarters.from(cal)
}

// ParseQuarterOfYear parses Q1-Q4 in any case or 1-4.
func ParseQuarterOfYear(val string) (QuarterOfYear, error) {
	return quarters.parse(val)
}

// QuarterOfYearValues returns all of the quarters in order.
func QuarterOfYearValues() []QuarterOfYear {
	return quarters.values()
}

// Value returns the quarter as an int, 1-4.
func (q QuarterOfYear) Value() int {
	return int(q)
}

// Label returns the short form of the quarter, eg. Q1.
func (q QuarterOfYear) Label() string {
	return quarters.label(q)
}

// String returns QuarterOfYear=<Label>.
func (q QuarterOfYear) String() string {
	return quarters.format(q)
}

// IsValid returns true if q is one of Q1 to Q4.
func (q QuarterOfYear) IsValid() bool {
	return quarters.isValid(q)
}

// Next returns the next quarter, Q4 is followed by Q1.
func (q QuarterOfYear) Next() QuarterOfYear {
	return quarters.plus(q, 1)
}

// Previous returns the previous quarter, Q1 is preceded by Q4.
func (q QuarterOfYear) Previous() QuarterOfYear {
	return quarters.plus(q, -1)
}

// Plus returns the quarter n quarters later, wrapping around the year.
func (q QuarterOfYear) Plus(n int) QuarterOfYear {
	return quarters.plus(q, n)
}

// FirstMonth returns the first month of the quarter.
func (q QuarterOfYear) FirstMonth() MonthOfYear {
	return MonthOfYear((q-1)*3 + 1)
}

// Months returns the three months of the quarter.
func (q QuarterOfYear) Months() []MonthOfYear {
	first := q.FirstMonth()
	return []MonthOfYear{first, first + 1, first + 2}
}

// CalendarValue returns q as a calendar.Value.
func (q QuarterOfYear) CalendarValue() (calendar.Value, error) {
	return quarters.value(q)
}

// Matches implements calendar.Matcher.
func (q QuarterOfYear) Matches(cal calendar.Calendrical) (bool, error) {
	return quarters.matches(q, cal)
}

// Field implements calendar.Calendrical.
func (q QuarterOfYear) Field(rule calendar.Rule) (int, bool) {
	return quarters.field(q, rule)
}

// Date implements calendar.Calendrical.
func (q QuarterOfYear) Date() (calendar.LocalDate, bool) {
	return calendar.LocalDate{}, false
}

// Time implements calendar.Calendrical.
func (q QuarterOfYear) Time() (calendar.LocalTime, bool) {
	return 0, false
}
