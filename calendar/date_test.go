// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"cloudeng.io/threeten/calendar"
	"gopkg.in/yaml.v3"
)

func TestMonths(t *testing.T) {
	for i, tc := range []struct {
		input string
		month calendar.Month
	}{
		{"1", 1}, {"01", 1}, {"12", 12},
		{"jan", 1}, {"Jan", 1}, {"january", 1}, {"sept", 9}, {"DEC", 12},
	} {
		var m calendar.Month
		if err := m.Parse(tc.input); err != nil {
			t.Errorf("%v: %v: %v", i, tc.input, err)
			continue
		}
		if got, want := m, tc.month; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	for _, tc := range []string{"0", "13", "ja", "foo", ""} {
		var m calendar.Month
		if err := m.Parse(tc); err == nil {
			t.Errorf("%v: expected an error", tc)
		}
	}
}

func TestLeapYears(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{2000, true}, {1900, false}, {2008, true}, {2007, false}, {2100, false}, {0, true}, {-4, true},
	} {
		if got, want := calendar.IsLeap(tc.year), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		days := 365
		if tc.leap {
			days = 366
		}
		if got, want := calendar.DaysInYear(tc.year), days; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestLocalDate(t *testing.T) {
	d, err := calendar.NewLocalDate(2008, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.String(), "2008-04-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.DayOfYear(), 92; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.DayOfWeek(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !d.IsLeap() || d.IsZero() {
		t.Errorf("unexpected leap or zero status for %v", d)
	}

	for _, tc := range []struct {
		year  int
		month calendar.Month
		day   int
		rule  string
		rng   calendar.Range
	}{
		{2007, 2, 29, "DayOfMonth", calendar.Range{Min: 1, Max: 28}},
		{2008, 4, 31, "DayOfMonth", calendar.Range{Min: 1, Max: 30}},
		{2008, 4, 0, "DayOfMonth", calendar.Range{Min: 1, Max: 30}},
		{2008, 13, 1, "MonthOfYear", calendar.Range{Min: 1, Max: 12}},
		{1_000_000, 1, 1, "Year", calendar.YearRange},
	} {
		_, err := calendar.NewLocalDate(tc.year, tc.month, tc.day)
		if !errors.Is(err, calendar.ErrRangeViolation) {
			t.Errorf("%v-%v-%v: unexpected or missing error: %v", tc.year, tc.month, tc.day, err)
			continue
		}
		var re *calendar.RangeError
		if !errors.As(err, &re) {
			t.Errorf("%v: not a range error", err)
			continue
		}
		if got, want := re.Rule, tc.rule; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := re.Range, tc.rng; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestLocalDateZero(t *testing.T) {
	var d calendar.LocalDate
	if !d.IsZero() {
		t.Errorf("not zero")
	}
	if _, ok := d.Date(); ok {
		t.Errorf("zero value reported as a date")
	}
	if got, want := d.DayOfYear(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.DayOfWeek(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, ok := calendar.MustLocalDate(2008, 4, 1).Date(); !ok {
		t.Errorf("date not reported")
	}
	for _, m := range []calendar.Month{0, 13, -1} {
		if got, want := calendar.DaysInMonth(2008, m), 0; got != want {
			t.Errorf("%v: got %v, want %v", m, got, want)
		}
	}
}

func TestLocalDateArithmetic(t *testing.T) {
	start := calendar.MustLocalDate(2007, 12, 25)
	d := start
	for i := 1; i <= 800; i++ {
		next := d.Tomorrow()
		if got, want := next, start.PlusDays(i); got != want {
			t.Fatalf("%v: got %v, want %v", i, got, want)
		}
		if got, want := next.Yesterday(), d; got != want {
			t.Fatalf("%v: got %v, want %v", i, got, want)
		}
		if !next.After(d) || !d.Before(next) || d.Compare(d) != 0 {
			t.Fatalf("%v: ordering of %v and %v", i, d, next)
		}
		d = next
	}
	if got, want := start.PlusDays(-358), calendar.MustLocalDate(2007, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for year := 2007; year <= 2008; year++ {
		for day := 1; day <= calendar.DaysInYear(year); day++ {
			d, err := calendar.LocalDateOfYearDay(year, day)
			if err != nil {
				t.Fatal(err)
			}
			if got, want := d.DayOfYear(), day; got != want {
				t.Errorf("%v: got %v, want %v", d, got, want)
			}
		}
	}
	if _, err := calendar.LocalDateOfYearDay(2007, 366); !errors.Is(err, calendar.ErrRangeViolation) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestLocalDateTime(t *testing.T) {
	d := calendar.MustLocalDate(2008, 4, 1)
	tod := calendar.MustLocalTime(10, 30, 15)
	st := d.At(tod, time.UTC)
	if got, want := st, time.Date(2008, 4, 1, 10, 30, 15, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.LocalDateOf(st), d; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.LocalTimeOf(st), tod; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseLocalDate(t *testing.T) {
	for i, tc := range []struct {
		input string
		want  calendar.LocalDate
	}{
		{"2008-04-01", calendar.MustLocalDate(2008, 4, 1)},
		{" 2008-4-1 ", calendar.MustLocalDate(2008, 4, 1)},
		{"04/01/2008", calendar.MustLocalDate(2008, 4, 1)},
		{"Apr-01-2008", calendar.MustLocalDate(2008, 4, 1)},
		{"february-29-2008", calendar.MustLocalDate(2008, 2, 29)},
		{"-0044-03-15", calendar.MustLocalDate(-44, 3, 15)},
	} {
		got, err := calendar.ParseLocalDate(tc.input)
		if err != nil {
			t.Errorf("%v: %v: %v", i, tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %v, want %v", i, got, tc.want)
		}
	}

	for _, tc := range []string{
		"", "2008", "2008-04", "2008-13-01", "02/30/2008", "Foo-01-2008", "2007-02-29", "-Apr-01-2008",
	} {
		if _, err := calendar.ParseLocalDate(tc); err == nil {
			t.Errorf("%q: expected an error", tc)
		}
	}
}

func TestLocalDateYAML(t *testing.T) {
	var cfg struct {
		Date calendar.LocalDate   `yaml:"date"`
		Time calendar.LocalTime   `yaml:"time"`
		More []calendar.LocalDate `yaml:"more"`
	}
	spec := `date: 2008-04-01
time: 2:30pm
more: [Jan-02-2006, 12/25/2007]
`
	if err := yaml.Unmarshal([]byte(spec), &cfg); err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Date, calendar.MustLocalDate(2008, 4, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Time, calendar.MustLocalTime(14, 30, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(cfg.More), 2; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := cfg.More[1], calendar.MustLocalDate(2007, 12, 25); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "2008-04-01") || !strings.Contains(string(out), "14:30:00") {
		t.Errorf("unexpected output: %s", out)
	}
	var rt struct {
		Date calendar.LocalDate `yaml:"date"`
		Time calendar.LocalTime `yaml:"time"`
	}
	if err := yaml.Unmarshal(out, &rt); err != nil {
		t.Fatal(err)
	}
	if rt.Date != cfg.Date || rt.Time != cfg.Time {
		t.Errorf("got %v %v, want %v %v", rt.Date, rt.Time, cfg.Date, cfg.Time)
	}
}
