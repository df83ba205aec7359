// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/threeten/calendar"
	"github.com/stretchr/testify/require"
)

func line(name, value string) string {
	return fmt.Sprintf("%-16s%s\n", name, value)
}

func TestFields(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	require.NoError(t, fields(ctx, &out, []string{"2008-04-01", "10:30"}))
	for _, l := range []string{
		line("Year", "2008"),
		line("QuarterOfYear", "Q2"),
		line("MonthOfYear", "April"),
		line("MonthOfQuarter", "1"),
		line("DayOfYear", "92"),
		line("DayOfMonth", "1"),
		line("DayOfWeek", "Tuesday"),
		line("AmPmOfDay", "AM"),
		line("HourOfDay", "10"),
		line("HourOfAmPm", "10"),
		line("MinuteOfHour", "30"),
		line("SecondOfMinute", "0"),
	} {
		require.Contains(t, out.String(), l)
	}
	require.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), 12)

	out.Reset()
	require.NoError(t, fields(ctx, &out, []string{"MonthOfYear=aug"}))
	require.Equal(t, line("QuarterOfYear", "Q3")+line("MonthOfYear", "August")+line("MonthOfQuarter", "2"), out.String())

	err := fields(ctx, &out, []string{"2008-04-01", "QuarterOfYear=Q3"})
	require.ErrorIs(t, err, calendar.ErrConflict)

	err = fields(ctx, &out, []string{"not-a-date"})
	require.Error(t, err)
}

func TestMatch(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	ok, err := match(ctx, &out, "2008-04-01", []string{"QuarterOfYear=Q2", "DayOfWeek=tue"})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "QuarterOfYear=Q2: true\nDayOfWeek=Tuesday: true\n", out.String())

	out.Reset()
	ok, err = match(ctx, &out, "04/01/2008", []string{"QuarterOfYear=Q2", "MonthOfYear=May"})
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "QuarterOfYear=Q2: true\nMonthOfYear=May: false\n", out.String())

	out.Reset()
	ok, err = match(ctx, &out, "2pm", []string{"AmPmOfDay=PM", "QuarterOfYear=1"})
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "AmPmOfDay=PM: true\nQuarterOfYear=Q1: false\n", out.String())

	_, err = match(ctx, &out, "QuarterOfYear=Q2", []string{"QuarterOfYear=Q2"})
	require.Error(t, err)
	_, err = match(ctx, &out, "2008-04-01", []string{"QuarterOfYear=7"})
	require.ErrorIs(t, err, calendar.ErrRangeViolation)
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer

	cals, err := parseCalendricals([]string{"Year=2008", "DayOfYear=92", "HourOfDay=14", "MinuteOfHour=5"})
	require.NoError(t, err)
	require.NoError(t, resolve(ctx, &out, cals, false))
	require.True(t, strings.HasPrefix(out.String(), "state: complete\ndate: 2008-04-01\ntime: 14:05:00\n"), out.String())
	require.Contains(t, out.String(), line("QuarterOfYear", "2"))
	require.Contains(t, out.String(), line("AmPmOfDay", "1"))

	out.Reset()
	cals, err = parseCalendricals([]string{"QuarterOfYear=Q2"})
	require.NoError(t, err)
	require.NoError(t, resolve(ctx, &out, cals, true))
	require.Equal(t, "state: partial\n"+line("QuarterOfYear", "Q2"), out.String())

	out.Reset()
	cals, err = parseCalendricals([]string{"2008-04-01", "QuarterOfYear=Q3", "DayOfWeek=Monday"})
	require.NoError(t, err)
	err = resolve(ctx, &out, cals, true)
	require.ErrorIs(t, err, calendar.ErrConflict)
	require.Equal(t, "state: conflicting\n", out.String())
}

const resolveConfig = `calendricals:
  - date: 2008-04-01
  - fields:
      QuarterOfYear: Q2
      DayOfWeek: tuesday
  - time: 10:30am
    fields:
      AmPmOfDay: AM
      SecondOfMinute: 0
`

func TestResolveConfig(t *testing.T) {
	ctx := context.Background()
	var cfg Config
	require.NoError(t, cmdyaml.ParseConfigString(resolveConfig, &cfg))
	require.Len(t, cfg.Entries, 3)
	cals, err := cfg.Calendricals(chronology)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, resolve(ctx, &out, cals, true))
	require.True(t, strings.HasPrefix(out.String(), "state: complete\ndate: 2008-04-01\ntime: 10:30:00\n"), out.String())

	var conflicting Config
	require.NoError(t, cmdyaml.ParseConfigString(`calendricals:
  - date: 2008-04-01
    fields:
      QuarterOfYear: Q3
      Month: 4
`, &conflicting))
	_, err = conflicting.Calendricals(chronology)
	require.ErrorIs(t, err, calendar.ErrConflict)
	require.Contains(t, err.Error(), "unknown ISO field")
}

func TestLogging(t *testing.T) {
	ctx := context.Background()
	logFile := filepath.Join(t.TempDir(), "calendrical.log")
	ctx, done, err := withLogger(ctx, &cmdutil.LoggingFlags{Level: 3, File: logFile, Format: "json"})
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, fields(ctx, &out, []string{"Year=2008", "MonthOfYear=4", "DayOfMonth=1"}))
	done()
	buf, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(buf), `"msg":"resolve: date"`)
	require.Contains(t, string(buf), `"date":"2008-04-01"`)
}
