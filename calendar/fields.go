// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"slices"
	"strings"

	"cloudeng.io/errors"
)

// Fields is an immutable Calendrical that holds at most one Value per
// Rule and, optionally, a date and a time of day. The values held are
// always mutually consistent: a value that can be derived from the
// date, time or other values must agree with that derivation. All
// methods that add information return a new Fields and leave the
// receiver unchanged.
type Fields struct {
	values  []Value
	date    LocalDate
	hasDate bool
	tod     LocalTime
	hasTime bool
}

// NewFields returns a Fields containing the supplied values. All
// conflicts between the values are reported.
func NewFields(values ...Value) (Fields, error) {
	var f Fields
	errs := &errors.M{}
	for _, v := range values {
		nf, err := f.With(v)
		if err != nil {
			errs.Append(err)
			continue
		}
		f = nf
	}
	if err := errs.Err(); err != nil {
		return Fields{}, err
	}
	return f, nil
}

// FieldsFrom returns a Fields containing the date, time and all
// values for the rules of chrono held directly by cal. Each value is
// validated against its rule's range and for consistency with the
// date, time and previously added values, with rules being added in
// the order returned by chrono.Rules.
func FieldsFrom(cal Calendrical, chrono Chronology) (Fields, error) {
	if cal == nil {
		return Fields{}, nilArgument("calendrical")
	}
	if chrono == nil {
		return Fields{}, nilArgument("chronology")
	}
	if f, ok := cal.(Fields); ok {
		return f, nil
	}
	var f Fields
	if d, ok := cal.Date(); ok && !d.IsZero() {
		f.date, f.hasDate = d, true
	}
	if t, ok := cal.Time(); ok {
		f.tod, f.hasTime = t, true
	}
	errs := &errors.M{}
	for _, rule := range chrono.Rules() {
		v, ok := cal.Field(rule)
		if !ok {
			continue
		}
		fv, err := NewValue(rule, v)
		if err != nil {
			errs.Append(err)
			continue
		}
		nf, err := f.With(fv)
		if err != nil {
			errs.Append(err)
			continue
		}
		f = nf
	}
	if err := errs.Err(); err != nil {
		return Fields{}, err
	}
	return f, nil
}

func (f Fields) clone() Fields {
	f.values = slices.Clone(f.values)
	return f
}

// With returns a new Fields with v added. If the value of v's rule is
// already held, or can be derived from the information already held,
// then v must agree with it; if it does the receiver is returned
// unchanged, otherwise a ConflictError is returned. Adding v must not
// make any other value inconsistent.
func (f Fields) With(v Value) (Fields, error) {
	if v.rule == nil {
		return f, nilArgument("value rule")
	}
	if existing, ok := f.Field(v.rule); ok {
		if existing != v.value {
			return f, &ConflictError{
				Rule:    v.rule.Name(),
				Value:   v.value,
				Derived: existing,
				Source:  Value{rule: v.rule, value: existing}.String(),
			}
		}
		return f, nil
	}
	if derived, ok := v.rule.Derive(f); ok {
		if derived != v.value {
			return f, &ConflictError{
				Rule:    v.rule.Name(),
				Value:   v.value,
				Derived: derived,
				Source:  f.source(),
			}
		}
		return f, nil
	}
	nf := f.clone()
	nf.values = append(nf.values, v)
	if err := nf.verify(); err != nil {
		return f, err
	}
	return nf, nil
}

// WithDate returns a new Fields with the date attached. Every value held
// that can be derived from the date must agree with it. The zero
// LocalDate is not a date and results in a NilArgumentError.
func (f Fields) WithDate(d LocalDate) (Fields, error) {
	if d.IsZero() {
		return f, nilArgument("date")
	}
	if f.hasDate {
		if f.date != d {
			return f, &ConflictError{Rule: "Date", Supplied: d.String(), Source: f.date.String()}
		}
		return f, nil
	}
	nf := f.clone()
	nf.date, nf.hasDate = d, true
	if err := nf.verify(); err != nil {
		return f, err
	}
	return nf, nil
}

// WithTime returns a new Fields with the time of day attached. Every value
// held that can be derived from the time must agree with it.
func (f Fields) WithTime(t LocalTime) (Fields, error) {
	if f.hasTime {
		if f.tod != t {
			return f, &ConflictError{Rule: "Time", Supplied: t.String(), Source: f.tod.String()}
		}
		return f, nil
	}
	nf := f.clone()
	nf.tod, nf.hasTime = t, true
	if err := nf.verify(); err != nil {
		return f, err
	}
	return nf, nil
}

// verify checks every held value against the value derived for its
// rule from the remaining information.
func (f Fields) verify() error {
	errs := &errors.M{}
	for _, v := range f.values {
		derived, ok := v.rule.Derive(f)
		if !ok || derived == v.value {
			continue
		}
		errs.Append(&ConflictError{
			Rule:    v.rule.Name(),
			Value:   v.value,
			Derived: derived,
			Source:  f.sourceExcluding(v.rule),
		})
	}
	return errs.Err()
}

func (f Fields) source() string {
	return f.sourceExcluding(nil)
}

func (f Fields) sourceExcluding(rule Rule) string {
	parts := make([]string, 0, len(f.values)+2)
	if f.hasDate {
		parts = append(parts, f.date.String())
	}
	if f.hasTime {
		parts = append(parts, f.tod.String())
	}
	for _, v := range f.values {
		if v.rule != rule {
			parts = append(parts, v.String())
		}
	}
	return strings.Join(parts, " ")
}

// Field implements Calendrical.
func (f Fields) Field(rule Rule) (int, bool) {
	for _, v := range f.values {
		if v.rule == rule {
			return v.value, true
		}
	}
	return 0, false
}

// Date implements Calendrical.
func (f Fields) Date() (LocalDate, bool) {
	return f.date, f.hasDate
}

// Time implements Calendrical.
func (f Fields) Time() (LocalTime, bool) {
	return f.tod, f.hasTime
}

// Values returns the values held in the order in which they were added.
func (f Fields) Values() []Value {
	return slices.Clone(f.values)
}

// Len returns the number of values held.
func (f Fields) Len() int {
	return len(f.values)
}

// IsEmpty returns true if f holds no values, date or time.
func (f Fields) IsEmpty() bool {
	return len(f.values) == 0 && !f.hasDate && !f.hasTime
}

func (f Fields) String() string {
	return "{" + strings.ReplaceAll(f.source(), " ", ", ") + "}"
}
