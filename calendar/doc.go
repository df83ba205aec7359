// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides typed calendar fields and the means of
// validating, deriving and reconciling them.
//
// A Rule describes a named calendar field, such as QuarterOfYear, the
// range of values it may take and how its value is derived from a date,
// a time of day or other fields. A Value pairs a Rule with a validated
// integer. Any type that carries calendar information implements
// Calendrical: LocalDate, LocalTime, Value and Fields all do so. Fields
// is an immutable collection of Values with an optional date and time
// that is kept internally consistent as it is extended:
//
//	d := calendar.MustLocalDate(2008, 4, 1)
//	f, _ := calendar.Fields{}.WithDate(d)
//	_, err := f.With(calendar.MustValue(iso.QuarterOfYear, 3))
//	errors.Is(err, calendar.ErrConflict) // true, the date is in Q2.
//
// A Resolver uses the rules of a Chronology, see package iso, to derive
// a date and time from a set of field values and to merge the
// information held by several calendricals, reporting every conflict
// it encounters. Values held directly by a Calendrical are never
// overridden by derived ones; a date or time that is held is always
// authoritative.
//
// All of the types in this package are immutable and safe for
// concurrent use.
package calendar
