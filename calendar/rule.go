// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// Calendrical is implemented by any type that carries calendar
// information: a concrete date or time, a single field value or a
// collection of field values.
type Calendrical interface {
	// Field returns the value of the specified rule if it is held
	// directly, that is, without derivation from other information.
	Field(rule Rule) (int, bool)
	// Date returns the date held, if any.
	Date() (LocalDate, bool)
	// Time returns the time of day held, if any.
	Time() (LocalTime, bool)
}

// Range represents the inclusive range of legal values for a field.
type Range struct {
	Min, Max int
}

// IsValid returns true if v lies within the range.
func (r Range) IsValid(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Size returns the number of values in the range.
func (r Range) Size() int {
	return r.Max - r.Min + 1
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// Rule describes a named calendar field, the range of values it may
// take and how its value is derived from other calendrical information.
// Rules are immutable singletons owned by a Chronology and are compared
// by identity.
type Rule interface {
	// Name returns the name of the field, eg. QuarterOfYear.
	Name() string
	// Chronology returns the name of the chronology that defines the rule.
	Chronology() string
	// Range returns the legal values for the field.
	Range() Range
	// Derive computes the value of the field from the date, time or
	// other fields held by cal. It returns false if cal carries
	// insufficient information. Derive never consults cal.Field(r)
	// for its own rule.
	Derive(cal Calendrical) (int, bool)
}

// DateAdjuster is implemented by rules whose value can be applied to a
// date to obtain a new date.
type DateAdjuster interface {
	AdjustDate(date LocalDate, value int) (LocalDate, error)
}

// TimeAdjuster is implemented by rules whose value can be applied to a
// time of day to obtain a new time of day.
type TimeAdjuster interface {
	AdjustTime(t LocalTime, value int) (LocalTime, error)
}

// Chronology is a calendar system: the set of rules it defines and the
// means of resolving a set of field values into a date and time.
type Chronology interface {
	Name() string
	// Rules returns all of the rules defined by the chronology ordered
	// from the largest to the smallest unit.
	Rules() []Rule
	// Rule returns the rule with the given name.
	Rule(name string) (Rule, bool)
	// ResolveDate attempts to compute a date from the fields held
	// directly by cal. It returns false, with a nil error, if the fields
	// are insufficient to do so.
	ResolveDate(cal Calendrical) (LocalDate, bool, error)
	// ResolveTime is like ResolveDate for the time of day.
	ResolveTime(cal Calendrical) (LocalTime, bool, error)
}

// IsValid returns true if v is a legal value for rule.
func IsValid(rule Rule, v int) bool {
	return rule.Range().IsValid(v)
}

// CheckValid returns a RangeError if v is not a legal value for rule.
func CheckValid(rule Rule, v int) error {
	if rule == nil {
		return nilArgument("rule")
	}
	if !rule.Range().IsValid(v) {
		return newRangeError(rule, v)
	}
	return nil
}

// Get returns the value of rule for cal. A value held directly by cal
// takes precedence over one derived from its date, time or other fields.
// An UnsupportedRuleError is returned if the value cannot be obtained.
func Get(rule Rule, cal Calendrical) (int, error) {
	if rule == nil {
		return 0, nilArgument("rule")
	}
	if cal == nil {
		return 0, nilArgument("calendrical")
	}
	if v, ok := lookup(rule, cal); ok {
		return v, nil
	}
	return 0, &UnsupportedRuleError{Rule: rule.Name()}
}

func lookup(rule Rule, cal Calendrical) (int, bool) {
	if v, ok := cal.Field(rule); ok {
		return v, true
	}
	return rule.Derive(cal)
}

// Adjust returns date with the field described by rule set to value.
func Adjust(rule Rule, date LocalDate, value int) (LocalDate, error) {
	if err := CheckValid(rule, value); err != nil {
		return LocalDate{}, err
	}
	adj, ok := rule.(DateAdjuster)
	if !ok {
		return LocalDate{}, &UnsupportedRuleError{Rule: rule.Name()}
	}
	return adj.AdjustDate(date, value)
}

// AdjustTime returns t with the field described by rule set to value.
func AdjustTime(rule Rule, t LocalTime, value int) (LocalTime, error) {
	if err := CheckValid(rule, value); err != nil {
		return 0, err
	}
	adj, ok := rule.(TimeAdjuster)
	if !ok {
		return 0, &UnsupportedRuleError{Rule: rule.Name()}
	}
	return adj.AdjustTime(t, value)
}
