// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay represents a time of day.
type TimeOfDay uint32

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute
// and second, which must already be in range.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour<<16 | minute<<8 | second)
}

func (t TimeOfDay) Hour() int {
	return int(t >> 16)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t TimeOfDay) Second() int {
	return int(t & 0xff)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// isDigits accepts ASCII digits only; unicode.IsNumber would admit
// numerics (eg. arabic-indic digits, roman numerals) that Atoi rejects.
func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func validTime(hour, minute, second int) bool {
	return hour >= 0 && hour <= 23 &&
		minute >= 0 && minute <= 59 &&
		second >= 0 && second <= 59
}

func (t *TimeOfDay) parseHourMinuteSec(h, m, s string) error {
	if !isDigits(h) || !isDigits(m) || !isDigits(s) {
		return fmt.Errorf("time %s:%s:%s: %w", h, m, s, ErrNonNumeric)
	}
	hour, herr := strconv.Atoi(h)
	minute, merr := strconv.Atoi(m)
	sec, serr := strconv.Atoi(s)
	if herr != nil || merr != nil || serr != nil {
		return fmt.Errorf("time %s:%s:%s: %w", h, m, s, ErrNonNumeric)
	}
	if !validTime(hour, minute, sec) {
		return fmt.Errorf("time %s:%s:%s: %w", h, m, s, ErrInvalidTime)
	}
	*t = NewTimeOfDay(hour, minute, sec)
	return nil
}

// Parse val in formats '08[:12[:10]]'.
func (t *TimeOfDay) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected '08[:12[:10]]': %w", ErrParse)
	}
	parts := strings.Split(strings.TrimSpace(val), ":")
	switch len(parts) {
	case 1:
		return t.parseHourMinuteSec(parts[0], "0", "0")
	case 2:
		return t.parseHourMinuteSec(parts[0], parts[1], "0")
	case 3:
		return t.parseHourMinuteSec(parts[0], parts[1], parts[2])
	}
	return fmt.Errorf("invalid format, expected '08:12[:10]': %w", ErrParse)
}
