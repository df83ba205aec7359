// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package field

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/threeten/calendar"
)

var labelParsers = map[calendar.Rule]func(string) (int, error){
	quarters.rule: parserFor(quarters),
	months.rule:   parserFor(months),
	weekdays.rule: parserFor(weekdays),
	halves.rule:   parserFor(halves),
}

func parserFor[T ~int](e enum[T]) func(string) (int, error) {
	return func(val string) (int, error) {
		v, err := e.parse(val)
		return int(v), err
	}
}

// ParseValue returns the calendar.Value for the rule of chrono with the
// given name. The value may be an integer or, for the enumerated
// fields, a label such as Q3, Apr or monday.
func ParseValue(chrono calendar.Chronology, name, val string) (calendar.Value, error) {
	if chrono == nil {
		return calendar.Value{}, &calendar.NilArgumentError{Argument: "chronology"}
	}
	rule, ok := chrono.Rule(strings.TrimSpace(name))
	if !ok {
		return calendar.Value{}, fmt.Errorf("unknown %s field: %q", chrono.Name(), name)
	}
	val = strings.TrimSpace(val)
	if parser, ok := labelParsers[rule]; ok {
		v, err := parser(val)
		if err != nil {
			return calendar.Value{}, err
		}
		return calendar.NewValue(rule, v)
	}
	v, err := strconv.Atoi(val)
	if err != nil {
		return calendar.Value{}, fmt.Errorf("invalid %s: %q", rule.Name(), val)
	}
	return calendar.NewValue(rule, v)
}

// ParseAssignment parses <Name>=<value> as per ParseValue.
func ParseAssignment(chrono calendar.Chronology, assignment string) (calendar.Value, error) {
	name, val, ok := strings.Cut(assignment, "=")
	if !ok {
		return calendar.Value{}, fmt.Errorf("invalid field assignment %q, expected <name>=<value>", assignment)
	}
	return ParseValue(chrono, name, val)
}

// Label returns the label for v if its rule is one of the enumerated
// fields and the decimal value otherwise.
func Label(v calendar.Value) string {
	switch v.Rule() {
	case quarters.rule:
		return QuarterOfYear(v.Int()).Label()
	case months.rule:
		return MonthOfYear(v.Int()).Label()
	case weekdays.rule:
		return DayOfWeek(v.Int()).Label()
	case halves.rule:
		return AmPmOfDay(v.Int()).Label()
	}
	return strconv.Itoa(v.Int())
}
