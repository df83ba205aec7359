// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// Value is an immutable, validated pair of a Rule and an integer value
// that lies within the Rule's range. It is the atomic unit of
// calendrical information.
type Value struct {
	rule  Rule
	value int
}

// NewValue returns a Value for rule, or a RangeError if v is not
// a legal value for rule.
func NewValue(rule Rule, v int) (Value, error) {
	if err := CheckValid(rule, v); err != nil {
		return Value{}, err
	}
	return Value{rule: rule, value: v}, nil
}

// MustValue is like NewValue but panics on error.
func MustValue(rule Rule, v int) Value {
	fv, err := NewValue(rule, v)
	if err != nil {
		panic(err)
	}
	return fv
}

// ValueFrom returns the Value of rule obtained from cal as per Get.
func ValueFrom(rule Rule, cal Calendrical) (Value, error) {
	v, err := Get(rule, cal)
	if err != nil {
		return Value{}, err
	}
	return NewValue(rule, v)
}

// Rule returns the rule for the value, it is nil for the zero Value.
func (v Value) Rule() Rule {
	return v.rule
}

// Int returns the integer value.
func (v Value) Int() int {
	return v.value
}

// IsZero returns true for the zero Value, which has no rule.
func (v Value) IsZero() bool {
	return v.rule == nil
}

// String returns <RuleName>=<value>.
func (v Value) String() string {
	if v.rule == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s=%d", v.rule.Name(), v.value)
}

// Field implements Calendrical.
func (v Value) Field(rule Rule) (int, bool) {
	if rule == nil || rule != v.rule {
		return 0, false
	}
	return v.value, true
}

// Date implements Calendrical.
func (v Value) Date() (LocalDate, bool) {
	return LocalDate{}, false
}

// Time implements Calendrical.
func (v Value) Time() (LocalTime, bool) {
	return 0, false
}

// Matches implements Matcher. It returns true if the value of the
// rule obtained from cal is equal to v.
func (v Value) Matches(cal Calendrical) (bool, error) {
	return Matches(v.rule, v.value, cal)
}
