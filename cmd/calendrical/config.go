// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"maps"
	"slices"

	"cloudeng.io/errors"
	"cloudeng.io/threeten/calendar"
	"cloudeng.io/threeten/calendar/field"
)

// Config represents the YAML file read by the resolve-file command, eg:
//
//	calendricals:
//	  - date: 2008-04-01
//	  - fields:
//	      QuarterOfYear: Q2
//	      DayOfWeek: tuesday
//	  - time: 10:30am
//	    fields:
//	      AmPmOfDay: AM
type Config struct {
	Entries []CalendricalConfig `yaml:"calendricals"`
}

// CalendricalConfig represents a single calendrical, that is, an
// optional date, an optional time and a set of field values.
type CalendricalConfig struct {
	Date   *calendar.LocalDate `yaml:"date"`
	Time   *calendar.LocalTime `yaml:"time"`
	Fields map[string]string   `yaml:"fields"`
}

// CalendarFields returns the calendar.Fields represented by c.
func (c CalendricalConfig) CalendarFields(chrono calendar.Chronology) (calendar.Fields, error) {
	var (
		f   calendar.Fields
		err error
	)
	if c.Date != nil {
		if f, err = f.WithDate(*c.Date); err != nil {
			return calendar.Fields{}, err
		}
	}
	if c.Time != nil {
		if f, err = f.WithTime(*c.Time); err != nil {
			return calendar.Fields{}, err
		}
	}
	errs := &errors.M{}
	for _, name := range slices.Sorted(maps.Keys(c.Fields)) {
		v, err := field.ParseValue(chrono, name, c.Fields[name])
		if err != nil {
			errs.Append(err)
			continue
		}
		nf, err := f.With(v)
		if err != nil {
			errs.Append(err)
			continue
		}
		f = nf
	}
	if err := errs.Err(); err != nil {
		return calendar.Fields{}, err
	}
	return f, nil
}

// Calendricals returns the calendricals specified by the config.
func (c Config) Calendricals(chrono calendar.Chronology) ([]calendar.Calendrical, error) {
	cals := make([]calendar.Calendrical, 0, len(c.Entries))
	for i, e := range c.Entries {
		f, err := e.CalendarFields(chrono)
		if err != nil {
			return nil, fmt.Errorf("calendrical %v: %w", i, err)
		}
		cals = append(cals, f)
	}
	return cals, nil
}
