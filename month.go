// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month as an int, January is 1.
type Month time.Month

var months = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}

// Name returns the full English month name, eg. "March".
func (m Month) Name() string {
	return time.Month(m).String()
}

// Abbr returns the three letter month abbreviation, eg. "Mar".
func (m Month) Abbr() string {
	return time.Month(m).String()[:3]
}

func (m Month) String() string {
	return m.Name()
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("month %q: %w", val, ErrNonNumeric)
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("month %d: %w", n, ErrInvalidDate)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	if len(lc) < 3 {
		return 0, fmt.Errorf("month %q: %w", val, ErrParse)
	}
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("month %q: %w", val, ErrParse)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}
