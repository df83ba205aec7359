// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package iso provides the ISO-8601 chronology, that is, the proleptic
// Gregorian calendar, its field rules and the strategies used to resolve
// a date and time of day from a set of field values.
package iso

import (
	"fmt"
	"slices"
	"strings"

	"cloudeng.io/threeten/calendar"
)

// Name is the name of the ISO chronology.
const Name = "ISO"

// Chronology implements calendar.Chronology for the ISO calendar system.
// It is immutable once created by New.
type Chronology struct {
	rules  []calendar.Rule
	byName map[string]calendar.Rule
}

// New returns an ISO Chronology.
func New() *Chronology {
	rules := []calendar.Rule{
		Year,
		QuarterOfYear,
		MonthOfYear,
		MonthOfQuarter,
		DayOfYear,
		DayOfMonth,
		DayOfWeek,
		AmPmOfDay,
		HourOfDay,
		HourOfAmPm,
		MinuteOfHour,
		SecondOfMinute,
	}
	c := &Chronology{
		rules:  rules,
		byName: make(map[string]calendar.Rule, len(rules)),
	}
	for _, r := range rules {
		c.byName[r.Name()] = r
	}
	return c
}

// Name implements calendar.Chronology.
func (c *Chronology) Name() string {
	return Name
}

// Rules implements calendar.Chronology.
func (c *Chronology) Rules() []calendar.Rule {
	return slices.Clone(c.rules)
}

// Rule implements calendar.Chronology.
func (c *Chronology) Rule(name string) (calendar.Rule, bool) {
	r, ok := c.byName[name]
	return r, ok
}

func stored(cal calendar.Calendrical, rules ...calendar.Rule) ([]int, bool) {
	vals := make([]int, len(rules))
	for i, r := range rules {
		v, ok := cal.Field(r)
		if !ok {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}

type dateCombination struct {
	rules []calendar.Rule
	date  func(v []int) (calendar.LocalDate, error)
}

var dateCombinations = []dateCombination{
	{[]calendar.Rule{Year, MonthOfYear, DayOfMonth}, func(v []int) (calendar.LocalDate, error) {
		return calendar.NewLocalDate(v[0], calendar.Month(v[1]), v[2])
	}},
	{[]calendar.Rule{Year, DayOfYear}, func(v []int) (calendar.LocalDate, error) {
		return calendar.LocalDateOfYearDay(v[0], v[1])
	}},
	{[]calendar.Rule{Year, QuarterOfYear, MonthOfQuarter, DayOfMonth}, func(v []int) (calendar.LocalDate, error) {
		return calendar.NewLocalDate(v[0], monthFromQuarter(v[1], v[2]), v[3])
	}},
}

func describe(cal calendar.Calendrical, rules []calendar.Rule) string {
	parts := make([]string, len(rules))
	for i, r := range rules {
		v, _ := cal.Field(r)
		parts[i] = fmt.Sprintf("%s=%d", r.Name(), v)
	}
	return strings.Join(parts, ", ")
}

// ResolveDate implements calendar.Chronology. The following combinations
// of fields are used, in order:
//
//	Year, MonthOfYear, DayOfMonth
//	Year, DayOfYear
//	Year, QuarterOfYear, MonthOfQuarter, DayOfMonth
//
// If more than one combination is present they must all yield the same
// date, otherwise a calendar.ConflictError is returned. A day that is not
// valid for the month or year results in a calendar.RangeError.
func (c *Chronology) ResolveDate(cal calendar.Calendrical) (calendar.LocalDate, bool, error) {
	if cal == nil {
		return calendar.LocalDate{}, false, &calendar.NilArgumentError{Argument: "calendrical"}
	}
	var first calendar.LocalDate
	var firstRules []calendar.Rule
	for _, combination := range dateCombinations {
		v, ok := stored(cal, combination.rules...)
		if !ok {
			continue
		}
		d, err := combination.date(v)
		if err != nil {
			return calendar.LocalDate{}, false, err
		}
		if firstRules == nil {
			first, firstRules = d, combination.rules
			continue
		}
		if d != first {
			return calendar.LocalDate{}, false, &calendar.ConflictError{
				Rule:     "Date",
				Supplied: d.String(),
				Source:   fmt.Sprintf("%v from %s", first, describe(cal, firstRules)),
			}
		}
	}
	return first, firstRules != nil, nil
}

// ResolveTime implements calendar.Chronology. The following combinations
// of fields are used, in order, with SecondOfMinute defaulting to zero:
//
//	HourOfDay, MinuteOfHour[, SecondOfMinute]
//	AmPmOfDay, HourOfAmPm, MinuteOfHour[, SecondOfMinute]
func (c *Chronology) ResolveTime(cal calendar.Calendrical) (calendar.LocalTime, bool, error) {
	if cal == nil {
		return 0, false, &calendar.NilArgumentError{Argument: "calendrical"}
	}
	minute, ok := cal.Field(MinuteOfHour)
	if !ok {
		return 0, false, nil
	}
	second, _ := cal.Field(SecondOfMinute)
	var byHour calendar.LocalTime
	hour, hasHour := cal.Field(HourOfDay)
	if hasHour {
		t, err := calendar.NewLocalTime(hour, minute, second)
		if err != nil {
			return 0, false, err
		}
		byHour = t
	}
	v, ok := stored(cal, AmPmOfDay, HourOfAmPm)
	if !ok {
		return byHour, hasHour, nil
	}
	t, err := calendar.NewLocalTime(v[0]*12+v[1], minute, second)
	if err != nil {
		return 0, false, err
	}
	if hasHour && t != byHour {
		return 0, false, &calendar.ConflictError{
			Rule:     "Time",
			Supplied: t.String(),
			Source:   fmt.Sprintf("%v from %s", byHour, describe(cal, []calendar.Rule{HourOfDay, MinuteOfHour})),
		}
	}
	return t, true, nil
}
