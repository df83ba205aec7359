// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iso

import "cloudeng.io/threeten/calendar"

// The time of day rules of the ISO chronology.
var (
	AmPmOfDay      calendar.Rule = &amPmOfDayRule{rule{"AmPmOfDay", calendar.Range{Min: 0, Max: 1}}}
	HourOfDay      calendar.Rule = &hourOfDayRule{rule{"HourOfDay", calendar.Range{Min: 0, Max: 23}}}
	HourOfAmPm     calendar.Rule = &hourOfAmPmRule{rule{"HourOfAmPm", calendar.Range{Min: 0, Max: 11}}}
	MinuteOfHour   calendar.Rule = &minuteOfHourRule{rule{"MinuteOfHour", calendar.Range{Min: 0, Max: 59}}}
	SecondOfMinute calendar.Rule = &secondOfMinuteRule{rule{"SecondOfMinute", calendar.Range{Min: 0, Max: 59}}}
)

type amPmOfDayRule struct{ rule }

func (r *amPmOfDayRule) Derive(cal calendar.Calendrical) (int, bool) {
	if t, ok := cal.Time(); ok {
		return t.Hour() / 12, true
	}
	if h, ok := cal.Field(HourOfDay); ok {
		return h / 12, true
	}
	return 0, false
}

func (r *amPmOfDayRule) AdjustTime(t calendar.LocalTime, ampm int) (calendar.LocalTime, error) {
	return calendar.NewLocalTime(ampm*12+t.Hour()%12, t.Minute(), t.Second())
}

type hourOfDayRule struct{ rule }

func (r *hourOfDayRule) Derive(cal calendar.Calendrical) (int, bool) {
	if t, ok := cal.Time(); ok {
		return t.Hour(), true
	}
	if v, ok := stored(cal, AmPmOfDay, HourOfAmPm); ok {
		return v[0]*12 + v[1], true
	}
	return 0, false
}

func (r *hourOfDayRule) AdjustTime(t calendar.LocalTime, hour int) (calendar.LocalTime, error) {
	return calendar.NewLocalTime(hour, t.Minute(), t.Second())
}

type hourOfAmPmRule struct{ rule }

func (r *hourOfAmPmRule) Derive(cal calendar.Calendrical) (int, bool) {
	if t, ok := cal.Time(); ok {
		return t.Hour() % 12, true
	}
	if h, ok := cal.Field(HourOfDay); ok {
		return h % 12, true
	}
	return 0, false
}

func (r *hourOfAmPmRule) AdjustTime(t calendar.LocalTime, hour int) (calendar.LocalTime, error) {
	return calendar.NewLocalTime(t.Hour()/12*12+hour, t.Minute(), t.Second())
}

type minuteOfHourRule struct{ rule }

func (r *minuteOfHourRule) Derive(cal calendar.Calendrical) (int, bool) {
	if t, ok := cal.Time(); ok {
		return t.Minute(), true
	}
	return 0, false
}

func (r *minuteOfHourRule) AdjustTime(t calendar.LocalTime, minute int) (calendar.LocalTime, error) {
	return calendar.NewLocalTime(t.Hour(), minute, t.Second())
}

type secondOfMinuteRule struct{ rule }

func (r *secondOfMinuteRule) Derive(cal calendar.Calendrical) (int, bool) {
	if t, ok := cal.Time(); ok {
		return t.Second(), true
	}
	return 0, false
}

func (r *secondOfMinuteRule) AdjustTime(t calendar.LocalTime, second int) (calendar.LocalTime, error) {
	return calendar.NewLocalTime(t.Hour(), t.Minute(), second)
}
