// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/errors"
)

// The three accepted textual forms all split on the same delimiter set
// and differ only in token order:
//
//	month first: month, day, year (year token exactly 4 characters)
//	day first:   day, month, year (year token exactly 4 characters)
//	storage:     year, month, day (no constraint on year width)
//
// A parse that yields a non-existent date surfaces ErrInvalidDate from
// date validation, not a parser error.

func isDelimiter(r rune) bool {
	switch r {
	case '-', '/', ':', '.', ' ':
		return true
	}
	return false
}

func splitDate(val string) ([]string, error) {
	parts := strings.FieldsFunc(val, isDelimiter)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%q: expected 3 date parts, got %d: %w", val, len(parts), ErrParse)
	}
	return parts, nil
}

// atoiParts converts each token, reporting every non-numeric token
// rather than just the first.
func atoiParts(parts []string) ([]int, error) {
	errs := errors.M{}
	vals := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			errs.Append(fmt.Errorf("%q: %w", p, ErrNonNumeric))
			continue
		}
		vals[i] = n
	}
	return vals, errs.Err()
}

func parseOrdered(val string, yi, mi, di int, fullYear bool) (CalendarDate, error) {
	parts, err := splitDate(val)
	if err != nil {
		return CalendarDate{}, err
	}
	if fullYear && len(parts[yi]) != 4 {
		return CalendarDate{}, fmt.Errorf("%q: year %q must be 4 digits: %w", val, parts[yi], ErrParse)
	}
	vals, err := atoiParts(parts)
	if err != nil {
		return CalendarDate{}, err
	}
	var cd CalendarDate
	cd.loc = DefaultLocation
	if err := cd.SetDate(vals[yi], Month(vals[mi]), vals[di]); err != nil {
		return CalendarDate{}, err
	}
	return cd, nil
}

// ParseMonthFirst parses dates of the form month, day, year, eg.
// "3/14/2011" or "03-14-2011". The year token must be 4 characters.
func ParseMonthFirst(val string) (CalendarDate, error) {
	return parseOrdered(val, 2, 0, 1, true)
}

// ParseDayFirst parses dates of the form day, month, year, eg.
// "14/3/2011" or "14-03-2011". The year token must be 4 characters.
func ParseDayFirst(val string) (CalendarDate, error) {
	return parseOrdered(val, 2, 1, 0, true)
}

// ParseStored parses dates in the storage form year, month, day, eg.
// "2011-03-14". The year may be any width.
func ParseStored(val string) (CalendarDate, error) {
	return parseOrdered(val, 0, 1, 2, false)
}

// Parse parses the storage form, as produced by ISO.
func (cd *CalendarDate) Parse(val string) error {
	ncd, err := ParseStored(val)
	if err != nil {
		return err
	}
	*cd = ncd
	return nil
}
