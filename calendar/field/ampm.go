// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package field

import (
	"cloudeng.io/threeten/calendar"
	"cloudeng.io/threeten/calendar/iso"
)

// AmPmOfDay represents the half of the day, AM (0) or PM (1).
type AmPmOfDay int

const (
	AM AmPmOfDay = iota
	PM
)

var halves = enum[AmPmOfDay]{
	rule:   iso.AmPmOfDay,
	labels: []string{"AM", "PM"},
}

// AmPmOfDayRule returns the rule for AmPmOfDay.
func AmPmOfDayRule() calendar.Rule {
	return halves.rule
}

// NewAmPmOfDay returns the AmPmOfDay for v, 0 for AM or 1 for PM.
func NewAmPmOfDay(v int) (AmPmOfDay, error) {
	return halves.of(v)
}

// AmPmOfDayFrom returns the AmPmOfDay held by, or derived from, cal.
func AmPmOfDayFrom(cal calendar.Calendrical) (AmPmOfDay, error) {
	return halves.from(cal)
}

// ParseAmPmOfDay parses AM or PM, in any case, or 0 or 1.
func ParseAmPmOfDay(val string) (AmPmOfDay, error) {
	return halves.parse(val)
}

// AmPmOfDayValues returns AM and PM.
func AmPmOfDayValues() []AmPmOfDay {
	return halves.values()
}

// AmPmOf returns the half of the day containing hour, 0-23.
func AmPmOf(hour int) (AmPmOfDay, error) {
	if err := calendar.CheckValid(iso.HourOfDay, hour); err != nil {
		return 0, err
	}
	return AmPmOfDay(hour / 12), nil
}

func (a AmPmOfDay) Value() int { return int(a) }
func (a AmPmOfDay) Label() string { return halves.label(a) }
func (a AmPmOfDay) String() string { return halves.format(a) }
func (a AmPmOfDay) IsValid() bool { return halves.isValid(a) }
func (a AmPmOfDay) Next() AmPmOfDay { return halves.plus(a, 1) }
func (a AmPmOfDay) Previous() AmPmOfDay { return halves.plus(a, -1) }

// Date implements calendar.Calendrical.
func (a AmPmOfDay) Date() (calendar.LocalDate, bool) {
	return calendar.LocalDate{}, false
}

// Time implements calendar.Calendrical.
func (a AmPmOfDay) Time() (calendar.LocalTime, bool) {
	return 0, false
}

// Field implements calendar.Calendrical.
func (a AmPmOfDay) Field(rule calendar.Rule) (int, bool) {
	return halves.field(a, rule)
}

// Matches implements calendar.Matcher.
func (a AmPmOfDay) Matches(cal calendar.Calendrical) (bool, error) {
	return halves.matches(a, cal)
}

// CalendarValue returns a as a calendar.Value.
func (a AmPmOfDay) CalendarValue() (calendar.Value, error) {
	return halves.value(a)
}
