// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import "time"

// julianDayNumber returns the Julian day number for the given proleptic
// Gregorian date using the Fliegel-Van Flandern integer algorithm. The
// result counts whole days and is independent of time of day and location.
func julianDayNumber(year int, month Month, day int) int {
	a := (14 - int(month)) / 12
	y := year + 4800 - a
	m := int(month) + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// civilFromJulian is the inverse of julianDayNumber.
func civilFromJulian(jdn int) (year int, month Month, day int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153
	day = e - (153*m+2)/5 + 1
	month = Month(m + 3 - 12*(m/10))
	year = 100*b + d - 4800 + m/10
	return
}

// weekdayFromJulian maps a Julian day number onto time.Weekday.
func weekdayFromJulian(jdn int) time.Weekday {
	return time.Weekday((jdn + 1) % 7)
}
