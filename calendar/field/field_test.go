// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package field_test

import (
	"errors"
	"testing"

	"cloudeng.io/threeten/calendar"
	"cloudeng.io/threeten/calendar/field"
	"cloudeng.io/threeten/calendar/iso"
)

func TestMonthOfYear(t *testing.T) {
	date := calendar.MustLocalDate(2008, 1, 1)
	for i := 0; i < 366; i++ {
		m, err := field.MonthOfYearFrom(date)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := m.Month(), date.Month(); got != want {
			t.Errorf("%v: got %v, want %v", date, got, want)
		}
		q, err := field.QuarterOfYearFrom(date)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := m.Quarter(), q; got != want {
			t.Errorf("%v: got %v, want %v", date, got, want)
		}
		date = date.Tomorrow()
	}

	for _, tc := range []struct {
		m        field.MonthOfYear
		min, max int
		moq      int
	}{
		{field.January, 31, 31, 1},
		{field.February, 28, 29, 2},
		{field.April, 30, 30, 1},
		{field.September, 30, 30, 3},
	} {
		if got, want := tc.m.MinLength(), tc.min; got != want {
			t.Errorf("%v: got %v, want %v", tc.m, got, want)
		}
		if got, want := tc.m.MaxLength(), tc.max; got != want {
			t.Errorf("%v: got %v, want %v", tc.m, got, want)
		}
		if got, want := tc.m.MonthOfQuarter(), tc.moq; got != want {
			t.Errorf("%v: got %v, want %v", tc.m, got, want)
		}
	}

	if got, want := field.December.Next(), field.January; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := field.January.Plus(-13), field.December; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := field.April.String(), "MonthOfYear=April"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := field.NewMonthOfYear(13); !errors.Is(err, calendar.ErrRangeViolation) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	for _, m := range []field.MonthOfYear{0, 13} {
		if got, want := m.Length(false), 0; got != want {
			t.Errorf("%v: got %v, want %v", int(m), got, want)
		}
		if got, want := m.MaxLength(), 0; got != want {
			t.Errorf("%v: got %v, want %v", int(m), got, want)
		}
	}
}

func TestDayOfWeek(t *testing.T) {
	// 2024-01-01 is a Monday.
	date := calendar.MustLocalDate(2024, 1, 1)
	for i := 0; i < 21; i++ {
		d, err := field.DayOfWeekFrom(date)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := d, field.Monday.Plus(i); got != want {
			t.Errorf("%v: got %v, want %v", date, got, want)
		}
		if got, want := d.IsWeekend(), i%7 >= 5; got != want {
			t.Errorf("%v: got %v, want %v", date, got, want)
		}
		date = date.Tomorrow()
	}
	ok, err := field.Tuesday.Matches(calendar.MustLocalDate(2008, 1, 1))
	if err != nil || !ok {
		t.Errorf("got %v, %v", ok, err)
	}
	if got, want := field.Sunday.Next(), field.Monday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(field.DayOfWeekValues()), 7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAmPmOfDay(t *testing.T) {
	for _, tc := range []struct {
		hour int
		want field.AmPmOfDay
	}{
		{0, field.AM}, {11, field.AM}, {12, field.PM}, {23, field.PM},
	} {
		got, err := field.AmPmOf(tc.hour)
		if err != nil || got != tc.want {
			t.Errorf("%v: got %v, %v, want %v", tc.hour, got, err, tc.want)
		}
		got, err = field.AmPmOfDayFrom(calendar.MustLocalTime(tc.hour, 0, 0))
		if err != nil || got != tc.want {
			t.Errorf("%v: got %v, %v, want %v", tc.hour, got, err, tc.want)
		}
	}
	if _, err := field.AmPmOf(24); !errors.Is(err, calendar.ErrRangeViolation) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if got, want := field.PM.Next(), field.AM; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := field.PM.String(), "AmPmOfDay=PM"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := field.AmPmOfDayFrom(calendar.MustLocalDate(2024, 1, 1)); !errors.Is(err, calendar.ErrUnsupportedRule) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestParse(t *testing.T) {
	chrono := iso.New()
	for _, tc := range []struct {
		input string
		rule  calendar.Rule
		value int
	}{
		{"QuarterOfYear=Q3", iso.QuarterOfYear, 3},
		{"QuarterOfYear=q2", iso.QuarterOfYear, 2},
		{"QuarterOfYear=4", iso.QuarterOfYear, 4},
		{"MonthOfYear=Apr", iso.MonthOfYear, 4},
		{"MonthOfYear=september", iso.MonthOfYear, 9},
		{"DayOfWeek=sun", iso.DayOfWeek, 7},
		{"AmPmOfDay=pm", iso.AmPmOfDay, 1},
		{" Year = 2008 ", iso.Year, 2008},
		{"DayOfMonth=31", iso.DayOfMonth, 31},
	} {
		v, err := field.ParseAssignment(chrono, tc.input)
		if err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := v.Rule(), tc.rule; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
		if got, want := v.Int(), tc.value; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}

	for _, tc := range []string{
		"QuarterOfYear",
		"Quarter=1",
		"QuarterOfYear=Q5",
		"MonthOfYear=Ju",
		"DayOfWeek=t",
		"DayOfMonth=x",
	} {
		if _, err := field.ParseAssignment(chrono, tc); err == nil {
			t.Errorf("%v: expected an error", tc)
		}
	}

	_, err := field.ParseAssignment(chrono, "DayOfMonth=32")
	if !errors.Is(err, calendar.ErrRangeViolation) {
		t.Errorf("unexpected or missing error: %v", err)
	}

	if _, err := field.ParseValue(nil, "Year", "2008"); !errors.Is(err, calendar.ErrNilArgument) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestLabel(t *testing.T) {
	for _, tc := range []struct {
		value calendar.Value
		want  string
	}{
		{calendar.MustValue(iso.QuarterOfYear, 2), "Q2"},
		{calendar.MustValue(iso.MonthOfYear, 2), "February"},
		{calendar.MustValue(iso.DayOfWeek, 2), "Tuesday"},
		{calendar.MustValue(iso.AmPmOfDay, 0), "AM"},
		{calendar.MustValue(iso.DayOfMonth, 2), "2"},
	} {
		if got := field.Label(tc.value); got != tc.want {
			t.Errorf("got %v, want %v", got, tc.want)
		}
	}
}
