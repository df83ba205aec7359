// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"
)

// LocalTime represents a time of day, to second precision, without a
// date or time zone. The zero value is midnight.
type LocalTime uint32

var (
	hourRange   = Range{0, 23}
	minuteRange = Range{0, 59}
	secondRange = Range{0, 59}
)

func newLocalTime(hour, minute, second int) LocalTime {
	return LocalTime(hour<<16 | minute<<8 | second)
}

// NewLocalTime returns the LocalTime for the specified hour, minute and
// second or a RangeError if any of them is out of range.
func NewLocalTime(hour, minute, second int) (LocalTime, error) {
	switch {
	case !hourRange.IsValid(hour):
		return 0, &RangeError{Rule: "HourOfDay", Value: hour, Range: hourRange}
	case !minuteRange.IsValid(minute):
		return 0, &RangeError{Rule: "MinuteOfHour", Value: minute, Range: minuteRange}
	case !secondRange.IsValid(second):
		return 0, &RangeError{Rule: "SecondOfMinute", Value: second, Range: secondRange}
	}
	return newLocalTime(hour, minute, second), nil
}

// MustLocalTime is like NewLocalTime but panics on error.
func MustLocalTime(hour, minute, second int) LocalTime {
	t, err := NewLocalTime(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

// LocalTimeOf returns the time of day component of t.
func LocalTimeOf(t time.Time) LocalTime {
	return newLocalTime(t.Hour(), t.Minute(), t.Second())
}

func (t LocalTime) Hour() int {
	return int(t >> 16)
}

func (t LocalTime) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t LocalTime) Second() int {
	return int(t & 0xff)
}

// SecondOfDay returns the number of seconds since midnight.
func (t LocalTime) SecondOfDay() int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

func (t LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Duration returns the time.Duration since midnight.
func (t LocalTime) Duration() time.Duration {
	return time.Duration(t.SecondOfDay()) * time.Second
}

// Add delta to the time of day. The result is clamped to
// 00:00:00 to 23:59:59 rather than wrapping into another day.
func (t LocalTime) Add(delta time.Duration) LocalTime {
	if delta == 0 {
		return t
	}
	dt := time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	nt := dt.Add(delta)
	if dt.Day() != nt.Day() || dt.Month() != nt.Month() || dt.Year() != nt.Year() {
		if delta > 0 {
			return newLocalTime(23, 59, 59)
		}
		return newLocalTime(0, 0, 0)
	}
	return LocalTimeOf(nt)
}

// Field implements Calendrical.
func (t LocalTime) Field(Rule) (int, bool) {
	return 0, false
}

// Date implements Calendrical, a LocalTime never carries a date.
func (t LocalTime) Date() (LocalDate, bool) {
	return LocalDate{}, false
}

// Time implements Calendrical.
func (t LocalTime) Time() (LocalTime, bool) {
	return t, true
}

func isDigits(s string) bool {
	for _, c := range s {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return len(s) > 0
}

func parseHour(h string, ampmState int) (int, error) {
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour: %s", h)
	}
	if ampmState != 0 && (hour < 1 || hour > 12) {
		return 0, fmt.Errorf("invalid hour: %s with am/pm", h)
	}
	switch {
	case ampmState == 1 && hour == 12:
		hour = 0
	case ampmState == 2 && hour != 12:
		hour += 12
	}
	return hour, nil
}

func parseHourMinuteSec(h, m, s string, ampmState int) (LocalTime, error) {
	if !isDigits(s) || !isDigits(h) || !isDigits(m) {
		return 0, fmt.Errorf("invalid time: %s:%s:%s", h, m, s)
	}
	hour, err := parseHour(h, ampmState)
	if err != nil {
		return 0, err
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute: %s", m)
	}
	sec, err := strconv.Atoi(s)
	if err != nil || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid second: %s", s)
	}
	return newLocalTime(hour, minute, sec), nil
}

// ParseLocalTime is like LocalTime.Parse.
func ParseLocalTime(val string) (LocalTime, error) {
	var t LocalTime
	if err := t.Parse(val); err != nil {
		return 0, err
	}
	return t, nil
}

// Parse val in formats '08[:12[:10]][am|pm]'. 12am is midnight and
// 12pm is noon.
func (t *LocalTime) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected '08[:12][:10][am|pm]'")
	}
	tl := strings.TrimSpace(strings.ToLower(val))
	val = tl
	ampmState := 0
	if strings.HasSuffix(tl, "am") {
		val = strings.TrimSpace(tl[:len(tl)-2])
		ampmState = 1
	}
	if strings.HasSuffix(tl, "pm") {
		val = strings.TrimSpace(tl[:len(tl)-2])
		ampmState = 2
	}
	parts := strings.Split(val, ":")
	var (
		nt  LocalTime
		err error
	)
	switch len(parts) {
	case 1:
		nt, err = parseHourMinuteSec(parts[0], "0", "0", ampmState)
	case 2:
		nt, err = parseHourMinuteSec(parts[0], parts[1], "0", ampmState)
	case 3:
		nt, err = parseHourMinuteSec(parts[0], parts[1], parts[2], ampmState)
	default:
		return fmt.Errorf("invalid format, expected '08:12[:10]'")
	}
	if err != nil {
		return err
	}
	*t = nt
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *LocalTime) UnmarshalYAML(node *yaml.Node) error {
	return t.Parse(node.Value)
}

// MarshalYAML implements yaml.Marshaler.
func (t LocalTime) MarshalYAML() (any, error) {
	return t.String(), nil
}
