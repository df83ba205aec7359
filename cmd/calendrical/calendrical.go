// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/threeten/calendar"
	"cloudeng.io/threeten/calendar/field"
	"cloudeng.io/threeten/calendar/iso"
)

var chronology = iso.New()

// withLogger returns a context carrying the logger configured by the
// supplied flags and a function to close the logger.
func withLogger(ctx context.Context, lf *cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}

func newResolver(ctx context.Context) *calendar.Resolver {
	return calendar.NewResolver(chronology, calendar.WithLogger(ctxlog.Logger(ctx)))
}

// parseCalendrical parses a date, a time of day or a <name>=<value>
// field assignment.
func parseCalendrical(arg string) (calendar.Calendrical, error) {
	if strings.Contains(arg, "=") {
		return field.ParseAssignment(chronology, arg)
	}
	if d, err := calendar.ParseLocalDate(arg); err == nil {
		return d, nil
	}
	if t, err := calendar.ParseLocalTime(arg); err == nil {
		return t, nil
	}
	return nil, fmt.Errorf("%q is not a date, time or <name>=<value>", arg)
}

func parseCalendricals(args []string) ([]calendar.Calendrical, error) {
	cals := make([]calendar.Calendrical, 0, len(args))
	for _, arg := range args {
		cal, err := parseCalendrical(arg)
		if err != nil {
			return nil, err
		}
		cals = append(cals, cal)
	}
	return cals, nil
}

// describe writes every field of chrono that can be obtained from cal.
func describe(w io.Writer, cal calendar.Calendrical, labels bool) {
	for _, rule := range chronology.Rules() {
		v, err := calendar.ValueFrom(rule, cal)
		if err != nil {
			continue
		}
		val := fmt.Sprintf("%d", v.Int())
		if labels {
			val = field.Label(v)
		}
		fmt.Fprintf(w, "%-16s%s\n", rule.Name(), val)
	}
}

func fieldsCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*FieldsFlags)
	ctx, done, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	return fields(ctx, os.Stdout, args)
}

func fields(ctx context.Context, w io.Writer, args []string) error {
	cals, err := parseCalendricals(args)
	if err != nil {
		return err
	}
	f, err := newResolver(ctx).Merge(cals...)
	if err != nil {
		return err
	}
	describe(w, f, true)
	return nil
}

func matchCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*MatchFlags)
	ctx, done, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	matched, err := match(ctx, os.Stdout, args[0], args[1:])
	if err != nil {
		return err
	}
	if !matched {
		return fmt.Errorf("%v does not match all of: %v", args[0], strings.Join(args[1:], " "))
	}
	return nil
}

// match reports whether the date or time in arg matches each of the
// supplied field assignments and returns true if all of them match.
func match(ctx context.Context, w io.Writer, arg string, assignments []string) (bool, error) {
	cal, err := parseCalendrical(arg)
	if err != nil {
		return false, err
	}
	if _, ok := cal.(calendar.Value); ok {
		return false, fmt.Errorf("%q is not a date or time", arg)
	}
	logger := ctxlog.Logger(ctx)
	matchers := make([]calendar.Matcher, 0, len(assignments))
	for _, a := range assignments {
		v, err := field.ParseAssignment(chronology, a)
		if err != nil {
			return false, err
		}
		ok, err := v.Matches(cal)
		if err != nil {
			return false, err
		}
		logger.Debug("match", "calendrical", arg, "value", v.String(), "matched", ok)
		fmt.Fprintf(w, "%v=%v: %v\n", v.Rule().Name(), field.Label(v), ok)
		matchers = append(matchers, v)
	}
	return calendar.MatchAll(matchers...).Matches(cal)
}

func resolveCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*ResolveFlags)
	ctx, done, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	cals, err := parseCalendricals(args)
	if err != nil {
		return err
	}
	return resolve(ctx, os.Stdout, cals, fv.Labels)
}

func resolveFileCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*ResolveFlags)
	ctx, done, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	var cfg Config
	if err := cmdyaml.ParseConfigFile(ctx, args[0], &cfg); err != nil {
		return err
	}
	cals, err := cfg.Calendricals(chronology)
	if err != nil {
		return err
	}
	return resolve(ctx, os.Stdout, cals, fv.Labels)
}

// resolve merges cals and writes the state of the result, any date and
// time that were resolved and all of the fields that are available.
func resolve(ctx context.Context, w io.Writer, cals []calendar.Calendrical, labels bool) error {
	r := newResolver(ctx)
	f, err := r.Merge(cals...)
	if err != nil {
		fmt.Fprintf(w, "state: %v\n", calendar.Conflicting)
		return err
	}
	fmt.Fprintf(w, "state: %v\n", r.State(f))
	if d, ok := f.Date(); ok {
		fmt.Fprintf(w, "date: %v\n", d)
	}
	if t, ok := f.Time(); ok {
		fmt.Fprintf(w, "time: %v\n", t)
	}
	describe(w, f, labels)
	return nil
}
