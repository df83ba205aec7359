// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// MinYear is the earliest year supported by LocalDate.
	MinYear = -999_999
	// MaxYear is the latest year supported by LocalDate.
	MaxYear = 999_999
)

// YearRange is the range of years supported by LocalDate.
var YearRange = Range{Min: MinYear, Max: MaxYear}

// LocalDate represents a date in the proleptic Gregorian calendar
// without a time zone. The zero value is not a valid date.
type LocalDate struct {
	year  int
	month Month
	day   int
}

// NewLocalDate returns the LocalDate for the given year, month and day,
// or a RangeError if any of them is out of range. The day is validated
// against the length of the month in the given year.
func NewLocalDate(year int, month Month, day int) (LocalDate, error) {
	if !YearRange.IsValid(year) {
		return LocalDate{}, &RangeError{Rule: "Year", Value: year, Range: YearRange}
	}
	if !month.IsValid() {
		return LocalDate{}, &RangeError{Rule: "MonthOfYear", Value: int(month), Range: Range{1, 12}}
	}
	if dim := DaysInMonth(year, month); day < 1 || day > dim {
		return LocalDate{}, &RangeError{Rule: "DayOfMonth", Value: day, Range: Range{1, dim}}
	}
	return LocalDate{year: year, month: month, day: day}, nil
}

// MustLocalDate is like NewLocalDate but panics on error.
func MustLocalDate(year int, month Month, day int) LocalDate {
	d, err := NewLocalDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// LocalDateOf returns the date component of t in t's location.
func LocalDateOf(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{year: y, month: Month(m), day: d}
}

// LocalDateOfYearDay returns the date for the given 1-based day of the year.
func LocalDateOfYearDay(year, day int) (LocalDate, error) {
	if !YearRange.IsValid(year) {
		return LocalDate{}, &RangeError{Rule: "Year", Value: year, Range: YearRange}
	}
	month, dom, ok := DateFromDay(year, day)
	if !ok {
		return LocalDate{}, &RangeError{Rule: "DayOfYear", Value: day, Range: Range{1, DaysInYear(year)}}
	}
	return LocalDate{year: year, month: month, day: dom}, nil
}

func (d LocalDate) Year() int {
	return d.year
}

func (d LocalDate) Month() Month {
	return d.month
}

func (d LocalDate) Day() int {
	return d.day
}

// IsZero returns true for the zero value.
func (d LocalDate) IsZero() bool {
	return d == LocalDate{}
}

// IsLeap returns true if the date falls in a leap year.
func (d LocalDate) IsLeap() bool {
	return IsLeap(d.year)
}

// DayOfYear returns the day of the year as 1-365 for non-leap years
// and 1-366 for leap years, or 0 for the zero value.
func (d LocalDate) DayOfYear() int {
	if d.IsZero() {
		return 0
	}
	return firstDayOfMonth(d.year, d.month) + d.day - 1
}

// DayOfWeek returns the ISO-8601 day of the week, 1 for Monday through
// to 7 for Sunday, or 0 for the zero value.
func (d LocalDate) DayOfWeek() int {
	if d.IsZero() {
		return 0
	}
	wd := d.stdTime().Weekday()
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

func (d LocalDate) stdTime() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
}

// At returns a time.Time for the date and time of day in the specified
// location using time.Date.
func (d LocalDate) At(tod LocalTime, loc *time.Location) time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, tod.Hour(), tod.Minute(), tod.Second(), 0, loc)
}

// PlusDays returns the date n days later, or earlier for negative n.
func (d LocalDate) PlusDays(n int) LocalDate {
	if n == 0 {
		return d
	}
	return LocalDateOf(d.stdTime().AddDate(0, 0, n))
}

// Tomorrow returns the date of the next day.
func (d LocalDate) Tomorrow() LocalDate {
	if d.day < DaysInMonth(d.year, d.month) {
		d.day++
		return d
	}
	if d.month == 12 {
		return LocalDate{year: d.year + 1, month: 1, day: 1}
	}
	return LocalDate{year: d.year, month: d.month + 1, day: 1}
}

// Yesterday returns the date of the previous day.
func (d LocalDate) Yesterday() LocalDate {
	if d.day > 1 {
		d.day--
		return d
	}
	if d.month == 1 {
		return LocalDate{year: d.year - 1, month: 12, day: 31}
	}
	return LocalDate{year: d.year, month: d.month - 1, day: DaysInMonth(d.year, d.month-1)}
}

// Compare returns -1, 0 or +1 if d is before, equal to or after o.
func (d LocalDate) Compare(o LocalDate) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	}
	return cmpInt(d.day, o.day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before returns true if d is before o.
func (d LocalDate) Before(o LocalDate) bool {
	return d.Compare(o) < 0
}

// After returns true if d is after o.
func (d LocalDate) After(o LocalDate) bool {
	return d.Compare(o) > 0
}

// String returns the ISO-8601 form of the date, ie. 2008-04-01.
func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Field implements Calendrical. A LocalDate holds no fields directly,
// all of its fields are derived from the date itself.
func (d LocalDate) Field(Rule) (int, bool) {
	return 0, false
}

// Date implements Calendrical. The zero value is not a date and
// returns false.
func (d LocalDate) Date() (LocalDate, bool) {
	return d, !d.IsZero()
}

// Time implements Calendrical.
func (d LocalDate) Time() (LocalTime, bool) {
	return 0, false
}

const expectedDateFormats = "2006-01-02, 01/02/2006 or Jan-02-2006"

// ParseLocalDate parses a date in one of the formats '2006-01-02',
// '01/02/2006' or 'Jan-02-2006'.
func ParseLocalDate(val string) (LocalDate, error) {
	var d LocalDate
	if err := d.Parse(val); err != nil {
		return LocalDate{}, err
	}
	return d, nil
}

// Parse parses a date in one of the formats '2006-01-02', '01/02/2006'
// or 'Jan-02-2006' with error checking for valid month and day.
func (d *LocalDate) Parse(val string) error {
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected %s", expectedDateFormats)
	}
	var (
		year, day int
		month     Month
		err       error
	)
	if strings.Contains(val, "/") {
		year, month, day, err = parseNumericDate(val)
	} else {
		year, month, day, err = parseDashedDate(val)
	}
	if err != nil {
		return fmt.Errorf("invalid date %q, expected %s: %w", val, expectedDateFormats, err)
	}
	nd, err := NewLocalDate(year, month, day)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

func atoi(what, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", what, val)
	}
	return n, nil
}

// parseNumericDate parses '01/02/2006'.
func parseNumericDate(val string) (int, Month, int, error) {
	parts := strings.Split(val, "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected month/day/year")
	}
	month, err := ParseNumericMonth(parts[0])
	if err != nil {
		return 0, 0, 0, err
	}
	day, err := atoi("day", parts[1])
	if err != nil {
		return 0, 0, 0, err
	}
	year, err := atoi("year", parts[2])
	if err != nil {
		return 0, 0, 0, err
	}
	return year, month, day, nil
}

// parseDashedDate parses '2006-01-02' or 'Jan-02-2006'.
func parseDashedDate(val string) (int, Month, int, error) {
	neg := strings.HasPrefix(val, "-")
	if neg {
		val = val[1:]
	}
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected three components")
	}
	if month, err := ParseMonth(parts[0]); err == nil {
		if neg {
			return 0, 0, 0, fmt.Errorf("unexpected leading '-'")
		}
		day, err := atoi("day", parts[1])
		if err != nil {
			return 0, 0, 0, err
		}
		year, err := atoi("year", parts[2])
		if err != nil {
			return 0, 0, 0, err
		}
		return year, month, day, nil
	}
	year, err := atoi("year", parts[0])
	if err != nil {
		return 0, 0, 0, err
	}
	if neg {
		year = -year
	}
	month, err := ParseNumericMonth(parts[1])
	if err != nil {
		return 0, 0, 0, err
	}
	day, err := atoi("day", parts[2])
	if err != nil {
		return 0, 0, 0, err
	}
	return year, month, day, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *LocalDate) UnmarshalYAML(node *yaml.Node) error {
	return d.Parse(node.Value)
}

// MarshalYAML implements yaml.Marshaler.
func (d LocalDate) MarshalYAML() (any, error) {
	return d.String(), nil
}
