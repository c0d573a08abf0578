// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate_test

import (
	"errors"
	"testing"

	"cloudeng.io/caldate"
)

func TestParseMonthFirst(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want [3]int
	}{
		{"3/14/2011", [3]int{2011, 3, 14}},
		{"03-14-2011", [3]int{2011, 3, 14}},
		{"3.14.2011", [3]int{2011, 3, 14}},
		{"3 14 2011", [3]int{2011, 3, 14}},
		{"3:14:2011", [3]int{2011, 3, 14}},
		{"12/31/1999", [3]int{1999, 12, 31}},
		{"2/29/2024", [3]int{2024, 2, 29}},
	} {
		cd, err := caldate.ParseMonthFirst(tc.val)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := ymd(cd), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
}

func TestParseDayFirst(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want [3]int
	}{
		{"14/3/2011", [3]int{2011, 3, 14}},
		{"14-03-2011", [3]int{2011, 3, 14}},
		{"31.12.1999", [3]int{1999, 12, 31}},
		{"29 2 2024", [3]int{2024, 2, 29}},
	} {
		cd, err := caldate.ParseDayFirst(tc.val)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := ymd(cd), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
}

func TestParseStored(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want [3]int
	}{
		{"2011-03-14", [3]int{2011, 3, 14}},
		{"2011/3/14", [3]int{2011, 3, 14}},
		{"2024-02-29", [3]int{2024, 2, 29}},
		// The storage form does not constrain the year width.
		{"500-03-14", [3]int{500, 3, 14}},
		{"11-03-14", [3]int{11, 3, 14}},
		{"12345-03-14", [3]int{12345, 3, 14}},
	} {
		cd, err := caldate.ParseStored(tc.val)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := ymd(cd), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
}

// The two human orderings assign the first two tokens differently;
// 4/3/2011 is April 3 month first and March 4 day first.
func TestParseOrderingDisambiguation(t *testing.T) {
	mf, err := caldate.ParseMonthFirst("4/3/2011")
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	df, err := caldate.ParseDayFirst("4/3/2011")
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := ymd(mf), [3]int{2011, 4, 3}; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ymd(df), [3]int{2011, 3, 4}; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if ymd(mf) == ymd(df) {
		t.Errorf("orderings are indistinguishable: %v", ymd(mf))
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		parse func(string) (caldate.CalendarDate, error)
		val   string
		err   error
	}{
		{caldate.ParseMonthFirst, "", caldate.ErrParse},
		{caldate.ParseMonthFirst, "3/14", caldate.ErrParse},
		{caldate.ParseMonthFirst, "3/14/2011/1", caldate.ErrParse},
		{caldate.ParseMonthFirst, "3/14/11", caldate.ErrParse},
		{caldate.ParseMonthFirst, "3/14/20111", caldate.ErrParse},
		{caldate.ParseDayFirst, "14/3/11", caldate.ErrParse},
		{caldate.ParseMonthFirst, "3/xx/2011", caldate.ErrNonNumeric},
		{caldate.ParseStored, "2011-xx-yy", caldate.ErrNonNumeric},
		{caldate.ParseMonthFirst, "2/30/2011", caldate.ErrInvalidDate},
		{caldate.ParseDayFirst, "30/2/2011", caldate.ErrInvalidDate},
		{caldate.ParseStored, "2011-13-01", caldate.ErrInvalidDate},
		{caldate.ParseStored, "2023-02-29", caldate.ErrInvalidDate},
	} {
		_, err := tc.parse(tc.val)
		if err == nil {
			t.Errorf("failed to return an error: %q", tc.val)
			continue
		}
		if !errors.Is(err, tc.err) {
			t.Errorf("%q: got %v, want %v", tc.val, err, tc.err)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		token string
		parse func(string) (caldate.CalendarDate, error)
	}{
		{caldate.TokenMDY, caldate.ParseMonthFirst},
		{caldate.TokenMDYPadded, caldate.ParseMonthFirst},
		{caldate.TokenDMY, caldate.ParseDayFirst},
		{caldate.TokenDMYPadded, caldate.ParseDayFirst},
		{caldate.TokenMySQL, caldate.ParseStored},
	} {
		for _, date := range [][3]int{
			{2011, 3, 3},
			{1999, 12, 31},
			{2024, 2, 29},
			{2023, 1, 1},
		} {
			cd := newCalendarDate(t, date[0], date[1], date[2])
			val, err := cd.Format(tc.token)
			if err != nil {
				t.Fatalf("failed: %v: %v", tc.token, err)
			}
			ncd, err := tc.parse(val)
			if err != nil {
				t.Errorf("failed: %v %q: %v", tc.token, val, err)
				continue
			}
			if got, want := ymd(ncd), ymd(cd); got != want {
				t.Errorf("%v %q: got %v, want %v", tc.token, val, got, want)
			}
		}
	}
}

func TestTimeOfDayParse(t *testing.T) {
	for _, tc := range []struct {
		val     string
		h, m, s int
	}{
		{"8", 8, 0, 0},
		{"08:12", 8, 12, 0},
		{"08:12:10", 8, 12, 10},
		{"23:59:59", 23, 59, 59},
		{"0:0:0", 0, 0, 0},
	} {
		var tod caldate.TimeOfDay
		if err := tod.Parse(tc.val); err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := tod, caldate.NewTimeOfDay(tc.h, tc.m, tc.s); got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
	for _, tc := range []struct {
		val string
		err error
	}{
		{"", caldate.ErrParse},
		{"1:2:3:4", caldate.ErrParse},
		{"24:00", caldate.ErrInvalidTime},
		{"12:60", caldate.ErrInvalidTime},
		{"12:00:60", caldate.ErrInvalidTime},
		{"noon", caldate.ErrNonNumeric},
		{"-1:00", caldate.ErrNonNumeric},
		// Non-ASCII numerics must fail rather than silently parse as 0.
		{"٣:10", caldate.ErrNonNumeric},
		{"¼:¼", caldate.ErrNonNumeric},
		{"Ⅻ:00", caldate.ErrNonNumeric},
		{"99999999999999999999:00", caldate.ErrNonNumeric},
	} {
		var tod caldate.TimeOfDay
		err := tod.Parse(tc.val)
		if err == nil {
			t.Errorf("failed to return an error: %q", tc.val)
			continue
		}
		if !errors.Is(err, tc.err) {
			t.Errorf("%q: got %v, want %v", tc.val, err, tc.err)
		}
	}
}
