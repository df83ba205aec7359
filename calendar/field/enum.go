// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package field provides enumerated calendar fields for the ISO
// chronology, such as QuarterOfYear and DayOfWeek. Each is a closed
// integer type whose constants are the only legal values; values are
// compared with == and implement calendar.Calendrical and
// calendar.Matcher.
package field

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/threeten/calendar"
)

// enum implements the operations common to all of the enumerated
// fields. labels[i] is the label for the value rule.Range().Min+i.
type enum[T ~int] struct {
	rule   calendar.Rule
	labels []string
}

func (e enum[T]) of(v int) (T, error) {
	if err := calendar.CheckValid(e.rule, v); err != nil {
		return 0, err
	}
	return T(v), nil
}

func (e enum[T]) from(cal calendar.Calendrical) (T, error) {
	v, err := calendar.Get(e.rule, cal)
	if err != nil {
		return 0, err
	}
	return e.of(v)
}

// plus wraps modulo the number of values in the field.
func (e enum[T]) plus(v T, n int) T {
	r := e.rule.Range()
	size := r.Size()
	off := ((int(v)-r.Min+n)%size + size) % size
	return T(r.Min + off)
}

func (e enum[T]) label(v T) string {
	idx := int(v) - e.rule.Range().Min
	if idx < 0 || idx >= len(e.labels) {
		return strconv.Itoa(int(v))
	}
	return e.labels[idx]
}

func (e enum[T]) format(v T) string {
	return e.rule.Name() + "=" + e.label(v)
}

func (e enum[T]) isValid(v T) bool {
	return e.rule.Range().IsValid(int(v))
}

func (e enum[T]) values() []T {
	r := e.rule.Range()
	vals := make([]T, 0, r.Size())
	for v := r.Min; v <= r.Max; v++ {
		vals = append(vals, T(v))
	}
	return vals
}

// parse accepts a label in any case, an unambiguous prefix of at least
// three characters of a label, or an integer value.
func (e enum[T]) parse(val string) (T, error) {
	lc := strings.ToLower(strings.TrimSpace(val))
	lo := e.rule.Range().Min
	for i, l := range e.labels {
		if strings.ToLower(l) == lc {
			return T(lo + i), nil
		}
	}
	if len(lc) >= 3 {
		match := -1
		for i, l := range e.labels {
			if strings.HasPrefix(strings.ToLower(l), lc) {
				if match >= 0 {
					return 0, fmt.Errorf("ambiguous %s: %q", e.rule.Name(), val)
				}
				match = i
			}
		}
		if match >= 0 {
			return T(lo + match), nil
		}
	}
	if n, err := strconv.Atoi(lc); err == nil {
		return e.of(n)
	}
	return 0, fmt.Errorf("invalid %s: %q", e.rule.Name(), val)
}

func (e enum[T]) matches(v T, cal calendar.Calendrical) (bool, error) {
	return calendar.Matches(e.rule, int(v), cal)
}

func (e enum[T]) field(v T, rule calendar.Rule) (int, bool) {
	if rule != e.rule || !e.isValid(v) {
		return 0, false
	}
	return int(v), true
}

func (e enum[T]) value(v T) (calendar.Value, error) {
	return calendar.NewValue(e.rule, int(v))
}
