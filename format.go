// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"
	"strconv"
)

// Format tokens. Format accepts exactly this set; anything else fails
// with ErrUnknownToken.
const (
	TokenMDY        = "mdy"        // 3/14/2011
	TokenMDYPadded  = "mdy0"       // 03/14/2011
	TokenDMY        = "dmy"        // 14/3/2011
	TokenDMYPadded  = "dmy0"       // 14/03/2011
	TokenMySQL      = "mysql"      // 2011-03-14
	TokenFullYear   = "fullyear"   // 2011
	TokenYear       = "year"       // 11
	TokenMonth      = "month"      // 3
	TokenMonthPad   = "month0"     // 03
	TokenMonthName  = "monthname"  // March
	TokenMonthAbbr  = "monthabbr"  // Mar
	TokenDay        = "day"        // 3
	TokenDayPad     = "day0"       // 03
	TokenDayOrdinal = "dayordinal" // 3rd
	TokenDayName    = "dayname"    // Thursday
	TokenDayAbbr    = "dayabbr"    // Thu
)

// Ordinal returns n with its English ordinal suffix, eg. "1st", "2nd",
// "3rd", "11th", "21st".
func Ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// ISO returns the storage form YYYY-MM-DD.
func (cd CalendarDate) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.year, cd.month, cd.day)
}

// MonthName returns the full English month name, eg. "March".
func (cd CalendarDate) MonthName() string {
	return cd.month.Name()
}

// MonthAbbr returns the three letter month abbreviation, eg. "Mar".
func (cd CalendarDate) MonthAbbr() string {
	return cd.month.Abbr()
}

// DayName returns the full weekday name, eg. "Thursday".
func (cd CalendarDate) DayName() string {
	return cd.Weekday().String()
}

// DayAbbr returns the three letter weekday abbreviation, eg. "Thu".
func (cd CalendarDate) DayAbbr() string {
	return cd.Weekday().String()[:3]
}

// Format returns the projection of the date selected by the token, one
// of the Token constants above. Formatting is pure: the same date and
// token always yield the same string.
func (cd CalendarDate) Format(token string) (string, error) {
	switch token {
	case TokenMDY:
		return fmt.Sprintf("%d/%d/%04d", cd.month, cd.day, cd.year), nil
	case TokenMDYPadded:
		return fmt.Sprintf("%02d/%02d/%04d", cd.month, cd.day, cd.year), nil
	case TokenDMY:
		return fmt.Sprintf("%d/%d/%04d", cd.day, cd.month, cd.year), nil
	case TokenDMYPadded:
		return fmt.Sprintf("%02d/%02d/%04d", cd.day, cd.month, cd.year), nil
	case TokenMySQL:
		return cd.ISO(), nil
	case TokenFullYear:
		return strconv.Itoa(cd.year), nil
	case TokenYear:
		// Non-negative remainder; arithmetic can produce negative years.
		return fmt.Sprintf("%02d", (cd.year%100+100)%100), nil
	case TokenMonth:
		return strconv.Itoa(int(cd.month)), nil
	case TokenMonthPad:
		return fmt.Sprintf("%02d", cd.month), nil
	case TokenMonthName:
		return cd.MonthName(), nil
	case TokenMonthAbbr:
		return cd.MonthAbbr(), nil
	case TokenDay:
		return strconv.Itoa(cd.day), nil
	case TokenDayPad:
		return fmt.Sprintf("%02d", cd.day), nil
	case TokenDayOrdinal:
		return Ordinal(cd.day), nil
	case TokenDayName:
		return cd.DayName(), nil
	case TokenDayAbbr:
		return cd.DayAbbr(), nil
	}
	return "", fmt.Errorf("%q: %w", token, ErrUnknownToken)
}
