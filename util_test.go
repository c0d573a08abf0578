// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate_test

import (
	"testing"

	"cloudeng.io/caldate"
)

func newCalendarDate(t *testing.T, y, m, d int) caldate.CalendarDate {
	t.Helper()
	cd, err := caldate.New(y, caldate.Month(m), d)
	if err != nil {
		t.Fatalf("failed: %04d-%02d-%02d: %v", y, m, d, err)
	}
	return cd
}

func ymd(cd caldate.CalendarDate) [3]int {
	return [3]int{cd.Year(), int(cd.Month()), cd.Day()}
}
