// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrRangeViolation is matched by all RangeError values.
	ErrRangeViolation = errors.New("illegal calendar field value")
	// ErrUnsupportedRule is matched by all UnsupportedRuleError values.
	ErrUnsupportedRule = errors.New("unsupported rule")
	// ErrNilArgument is matched by all NilArgumentError values.
	ErrNilArgument = errors.New("nil argument")
	// ErrConflict is matched by all ConflictError values.
	ErrConflict = errors.New("conflicting calendar field values")
)

// RangeError is returned when a value lies outside of the range of
// values permitted for a field. Values are never clamped.
type RangeError struct {
	Rule  string
	Value int
	Range Range
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("illegal value for %s field, value %d is not in the range %d to %d", e.Rule, e.Value, e.Range.Min, e.Range.Max)
}

// Is implements errors.Is.
func (e *RangeError) Is(target error) bool {
	return target == ErrRangeViolation
}

// UnsupportedRuleError is returned when the value of a rule cannot be
// obtained from a Calendrical since it holds neither the field itself
// nor the date/time information needed to derive it.
type UnsupportedRuleError struct {
	Rule string
}

func (e *UnsupportedRuleError) Error() string {
	return fmt.Sprintf("rule %s cannot be derived from the available calendrical information", e.Rule)
}

// Is implements errors.Is.
func (e *UnsupportedRuleError) Is(target error) bool {
	return target == ErrUnsupportedRule
}

// NilArgumentError is returned when a required Calendrical, Rule or
// Chronology is nil.
type NilArgumentError struct {
	Argument string
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("%s must not be nil", e.Argument)
}

// Is implements errors.Is.
func (e *NilArgumentError) Is(target error) bool {
	return target == ErrNilArgument
}

// ConflictError is returned when a supplied field value disagrees with
// the value derived for the same rule from other information, either
// another field or an attached date or time. It is also returned when two
// dates, or two times of day, disagree. In that case Rule is "Date" or
// "Time", Supplied is the rejected date or time and Source the one it
// conflicts with; Value and Derived are not used.
type ConflictError struct {
	Rule     string // The rule of the supplied value.
	Value    int    // The supplied value.
	Derived  int    // The value derived from Source.
	Source   string // What Derived was computed from, eg. "2008-04-01" or "MonthOfYear=4".
	Supplied string // The supplied date or time, eg. "2008-04-02".
}

func (e *ConflictError) Error() string {
	if len(e.Supplied) > 0 {
		return fmt.Sprintf("%s %s conflicts with %s", e.Rule, e.Supplied, e.Source)
	}
	return fmt.Sprintf("%s=%d conflicts with %s=%d derived from %s", e.Rule, e.Value, e.Rule, e.Derived, e.Source)
}

// Is implements errors.Is.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

func newRangeError(rule Rule, value int) error {
	return &RangeError{Rule: rule.Name(), Value: value, Range: rule.Range()}
}

func nilArgument(name string) error {
	return &NilArgumentError{Argument: name}
}
