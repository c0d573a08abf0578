// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package caldate provides a validated calendar date value type with
// parsing from delimited textual forms, formatted projection to a fixed
// token set and calendar-correct arithmetic. Every CalendarDate holds a
// valid proleptic Gregorian year/month/day at all times; operations
// validate their complete candidate state before committing and leave
// the value unchanged on failure.
package caldate

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/errors"
)

// CalendarDate represents a calendar date with an optional time of day
// and a location that is fixed at construction. The zero value is not
// useful; use Now, NowIn or New.
type CalendarDate struct {
	year  int
	month Month
	day   int
	tod   TimeOfDay
	loc   *time.Location
}

// Now returns the CalendarDate for the current instant in
// DefaultLocation.
func Now() CalendarDate {
	return NowIn(nil)
}

// NowIn returns the CalendarDate for the current instant in the given
// location, or in DefaultLocation if loc is nil.
func NowIn(loc *time.Location) CalendarDate {
	loc = locationOrDefault(loc)
	now := time.Now().In(loc)
	return CalendarDate{
		year:  now.Year(),
		month: Month(now.Month()),
		day:   now.Day(),
		tod:   NewTimeOfDay(now.Hour(), now.Minute(), now.Second()),
		loc:   loc,
	}
}

// New returns a CalendarDate for the given year, month and day in
// DefaultLocation. It fails with ErrInvalidDate if the triple is not a
// real calendar date.
func New(year int, month Month, day int) (CalendarDate, error) {
	if !validDate(year, month, day) {
		return CalendarDate{}, fmt.Errorf("%04d-%02d-%02d: %w", year, month, day, ErrInvalidDate)
	}
	return CalendarDate{year: year, month: month, day: day, loc: DefaultLocation}, nil
}

// NewAt is like New but also sets the time of day.
func NewAt(year int, month Month, day int, hour, minute, second int) (CalendarDate, error) {
	cd, err := New(year, month, day)
	if err != nil {
		return CalendarDate{}, err
	}
	if err := cd.SetTime(hour, minute, second); err != nil {
		return CalendarDate{}, err
	}
	return cd, nil
}

// Year returns the year.
func (cd CalendarDate) Year() int { return cd.year }

// Month returns the month.
func (cd CalendarDate) Month() Month { return cd.month }

// Day returns the day of the month.
func (cd CalendarDate) Day() int { return cd.day }

// Time returns the time of day.
func (cd CalendarDate) Time() TimeOfDay { return cd.tod }

// Location returns the location fixed at construction.
func (cd CalendarDate) Location() *time.Location {
	return locationOrDefault(cd.loc)
}

// Weekday returns the day of the week.
func (cd CalendarDate) Weekday() time.Weekday {
	return weekdayFromJulian(cd.julian())
}

// DayOfYear returns the day of the year, 1-365 for non-leap years and
// 1-366 for leap years.
func (cd CalendarDate) DayOfYear() int {
	if IsLeap(cd.year) {
		return dayOfYearLeap[cd.month-1] + cd.day
	}
	return dayOfYear[cd.month-1] + cd.day
}

func (cd CalendarDate) julian() int {
	return julianDayNumber(cd.year, cd.month, cd.day)
}

// SetDate sets the year, month and day. It fails with ErrInvalidDate
// if the triple is not a real calendar date, in which case the value
// is unchanged; all three fields are committed together on success.
func (cd *CalendarDate) SetDate(year int, month Month, day int) error {
	if !validDate(year, month, day) {
		return fmt.Errorf("%04d-%02d-%02d: %w", year, month, day, ErrInvalidDate)
	}
	cd.year, cd.month, cd.day = year, month, day
	return nil
}

// SetTime sets the time of day. It fails with ErrInvalidTime if any
// value is out of range, in which case the value is unchanged.
func (cd *CalendarDate) SetTime(hour, minute, second int) error {
	if !validTime(hour, minute, second) {
		return fmt.Errorf("%02d:%02d:%02d: %w", hour, minute, second, ErrInvalidTime)
	}
	cd.tod = NewTimeOfDay(hour, minute, second)
	return nil
}

// SetDateTime sets the date and time of day together, validating both
// before committing either. All validation failures are returned, not
// just the first.
func (cd *CalendarDate) SetDateTime(year int, month Month, day, hour, minute, second int) error {
	errs := errors.M{}
	if !validDate(year, month, day) {
		errs.Append(fmt.Errorf("%04d-%02d-%02d: %w", year, month, day, ErrInvalidDate))
	}
	if !validTime(hour, minute, second) {
		errs.Append(fmt.Errorf("%02d:%02d:%02d: %w", hour, minute, second, ErrInvalidTime))
	}
	if err := errs.Err(); err != nil {
		return err
	}
	cd.year, cd.month, cd.day = year, month, day
	cd.tod = NewTimeOfDay(hour, minute, second)
	return nil
}

// Modify always fails with ErrDisabledOperation. Free-form phrases
// silently accept out-of-range values (eg. "Feb 30" rolling into
// March); use SetDate, SetTime or the named arithmetic operations.
func (cd *CalendarDate) Modify(string) error {
	return ErrDisabledOperation
}

// String returns the default rendering, eg. "Thursday, 3rd March, 2011".
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%s, %s %s, %04d", cd.Weekday(), Ordinal(cd.day), cd.month.Name(), cd.year)
}

type CalendarDateList []CalendarDate

// Parse a comma separated list of dates in the storage form accepted
// by ParseStored.
func (cdl *CalendarDateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	d := make(CalendarDateList, 0, len(parts))
	for _, part := range parts {
		cd, err := ParseStored(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		d = append(d, cd)
	}
	*cdl = d
	return nil
}

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.ISO())
	}
	return out.String()
}

func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	for _, cd := range cdl {
		if cd.year == d.year && cd.month == d.month && cd.day == d.day {
			return true
		}
	}
	return false
}
