// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import "errors"

var (
	// ErrParse is returned when a textual date does not have the
	// expected number or shape of tokens.
	ErrParse = errors.New("malformed date")

	// ErrInvalidDate is returned when a year/month/day triple does not
	// denote a real Gregorian calendar date.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidTime is returned when an hour/minute/second value is
	// outside 0-23/0-59/0-59.
	ErrInvalidTime = errors.New("invalid time of day")

	// ErrNonNumeric is returned when a numeric value is required but a
	// non-numeric or non-positive one was supplied.
	ErrNonNumeric = errors.New("non-numeric or non-positive value")

	// ErrDisabledOperation is returned by entry points that accept
	// free-form modification phrases; such modification is disabled
	// and callers must use the named operations instead.
	ErrDisabledOperation = errors.New("free-form date modification is disabled")

	// ErrUnknownToken is returned by Format for a token outside the
	// recognized set.
	ErrUnknownToken = errors.New("unknown format token")
)
