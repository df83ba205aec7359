// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package field

import (
	"cloudeng.io/threeten/calendar"
	"cloudeng.io/threeten/calendar/iso"
)

// DayOfWeek represents an ISO-8601 day of the week, Monday (1) to
// Sunday (7).
type DayOfWeek int

const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdays = enum[DayOfWeek]{
	rule:   iso.DayOfWeek,
	labels: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
}

// DayOfWeekRule returns the rule for DayOfWeek.
func DayOfWeekRule() calendar.Rule {
	return weekdays.rule
}

// NewDayOfWeek returns the DayOfWeek for v, 1-7.
func NewDayOfWeek(v int) (DayOfWeek, error) {
	return weekdays.of(v)
}

// DayOfWeekFrom returns the DayOfWeek held by, or derived from, cal.
func DayOfWeekFrom(cal calendar.Calendrical) (DayOfWeek, error) {
	return weekdays.from(cal)
}

// ParseDayOfWeek parses a day name, or a prefix of at least three
// characters of one, in any case, or a number 1-7.
func ParseDayOfWeek(val string) (DayOfWeek, error) {
	return weekdays.parse(val)
}

// DayOfWeekValues returns all of the days, Monday first.
func DayOfWeekValues() []DayOfWeek {
	return weekdays.values()
}

func (d DayOfWeek) Value() int {
	return int(d)
}

func (d DayOfWeek) Label() string {
	return weekdays.label(d)
}

func (d DayOfWeek) String() string {
	return weekdays.format(d)
}

func (d DayOfWeek) IsValid() bool {
	return weekdays.isValid(d)
}

func (d DayOfWeek) Next() DayOfWeek {
	return weekdays.plus(d, 1)
}

func (d DayOfWeek) Previous() DayOfWeek {
	return weekdays.plus(d, -1)
}

func (d DayOfWeek) Plus(n int) DayOfWeek {
	return weekdays.plus(d, n)
}

// IsWeekend returns true for Saturday and Sunday.
func (d DayOfWeek) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

func (d DayOfWeek) CalendarValue() (calendar.Value, error) {
	return weekdays.value(d)
}

// Matches implements calendar.Matcher.
func (d DayOfWeek) Matches(cal calendar.Calendrical) (bool, error) {
	return weekdays.matches(d, cal)
}

// Field implements calendar.Calendrical.
func (d DayOfWeek) Field(rule calendar.Rule) (int, bool) {
	return weekdays.field(d, rule)
}

func (d DayOfWeek) Date() (calendar.LocalDate, bool) {
	return calendar.LocalDate{}, false
}

func (d DayOfWeek) Time() (calendar.LocalTime, bool) {
	return 0, false
}
