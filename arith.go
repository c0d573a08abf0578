// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import "fmt"

// The Add/Sub operations all take a positive delta; the direction is
// implied by the operation, not the sign of the argument. Results are
// always valid calendar dates: day and week shifts move along the
// continuous day count, month and year shifts normalize the month and
// clamp the day to the end of the target month.

func checkDelta(op string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%s: delta %d must be positive: %w", op, n, ErrNonNumeric)
	}
	return nil
}

// shiftDays moves the date by n whole days in either direction via the
// Julian day number, re-deriving year, month and day.
func (cd CalendarDate) shiftDays(n int) CalendarDate {
	cd.year, cd.month, cd.day = civilFromJulian(cd.julian() + n)
	return cd
}

// AddDays returns the date n days later. n must be positive.
func (cd CalendarDate) AddDays(n int) (CalendarDate, error) {
	if err := checkDelta("AddDays", n); err != nil {
		return cd, err
	}
	return cd.shiftDays(n), nil
}

// SubDays returns the date n days earlier. n must be positive.
func (cd CalendarDate) SubDays(n int) (CalendarDate, error) {
	if err := checkDelta("SubDays", n); err != nil {
		return cd, err
	}
	return cd.shiftDays(-n), nil
}

// AddWeeks returns the date n weeks later. n must be positive.
func (cd CalendarDate) AddWeeks(n int) (CalendarDate, error) {
	if err := checkDelta("AddWeeks", n); err != nil {
		return cd, err
	}
	return cd.shiftDays(n * 7), nil
}

// SubWeeks returns the date n weeks earlier. n must be positive.
func (cd CalendarDate) SubWeeks(n int) (CalendarDate, error) {
	if err := checkDelta("SubWeeks", n); err != nil {
		return cd, err
	}
	return cd.shiftDays(-n * 7), nil
}

// Tomorrow returns the date of the next day.
func (cd CalendarDate) Tomorrow() CalendarDate {
	return cd.shiftDays(1)
}

// Yesterday returns the date of the previous day.
func (cd CalendarDate) Yesterday() CalendarDate {
	return cd.shiftDays(-1)
}

// normalizeMonth maps an unconstrained month number (which may be <= 0
// or > 12) onto a year offset and a month in 1-12. An exact multiple
// of 12 lands on December of the preceding year rather than rolling
// into January: month 12 + 12 is December next year, not January the
// year after.
func normalizeMonth(raw int) (yearOffset int, month Month) {
	if raw >= 1 && raw <= 12 {
		return 0, Month(raw)
	}
	yearOffset = (raw - 1) / 12
	if raw < 1 && (raw-1)%12 != 0 {
		yearOffset--
	}
	return yearOffset, Month(raw - yearOffset*12)
}

// clampDay reduces the day to the last day of the month when it
// overflows it: 30 for April, June, September and November, 29 or 28
// for February depending on the target year. This is what makes
// Aug 31 + 1 month Sep 30 and Feb 29 + 1 year Feb 28.
func clampDay(year int, month Month, day int) int {
	if last := DaysInMonth(year, month); day > last {
		return last
	}
	return day
}

// shiftMonths applies a signed month delta with normalization and
// end-of-month clamping. The result is valid by construction.
func (cd CalendarDate) shiftMonths(n int) CalendarDate {
	yearOffset, month := normalizeMonth(int(cd.month) + n)
	cd.year += yearOffset
	cd.month = month
	cd.day = clampDay(cd.year, cd.month, cd.day)
	return cd
}

// AddMonths returns the date n months later, clamped to the end of the
// target month. n must be positive.
func (cd CalendarDate) AddMonths(n int) (CalendarDate, error) {
	if err := checkDelta("AddMonths", n); err != nil {
		return cd, err
	}
	return cd.shiftMonths(n), nil
}

// SubMonths returns the date n months earlier, clamped to the end of
// the target month. n must be positive.
func (cd CalendarDate) SubMonths(n int) (CalendarDate, error) {
	if err := checkDelta("SubMonths", n); err != nil {
		return cd, err
	}
	return cd.shiftMonths(-n), nil
}

func (cd CalendarDate) shiftYears(n int) CalendarDate {
	cd.year += n
	cd.day = clampDay(cd.year, cd.month, cd.day)
	return cd
}

// AddYears returns the date n years later, with Feb 29 clamped to
// Feb 28 in non-leap target years. n must be positive.
func (cd CalendarDate) AddYears(n int) (CalendarDate, error) {
	if err := checkDelta("AddYears", n); err != nil {
		return cd, err
	}
	return cd.shiftYears(n), nil
}

// SubYears returns the date n years earlier, with Feb 29 clamped to
// Feb 28 in non-leap target years. n must be positive.
func (cd CalendarDate) SubYears(n int) (CalendarDate, error) {
	if err := checkDelta("SubYears", n); err != nil {
		return cd, err
	}
	return cd.shiftYears(-n), nil
}

// DateDiff returns the signed number of whole days from start to end:
// positive if start precedes end, negative if it follows it and zero
// when both denote the same calendar day. Time of day and location are
// ignored.
func DateDiff(start, end CalendarDate) int {
	return end.julian() - start.julian()
}
