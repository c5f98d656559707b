// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

/*
Package convert provides fault-tolerant type conversions.

It wraps [strconv] so that query-parameter parsing in handlers reads as a
single call instead of a three-line error dance. Do not use it where
distinguishing malformed input from a genuine zero matters.
*/
package convert

import "strconv"

// ToInt converts a string to an integer, silencing parse errors.
// It returns 0 if the string is empty or cannot be parsed.
func ToInt(s string) int {
	if s == "" {
		return 0
	}

	v, _ := strconv.Atoi(s)
	return v
}

// ToIntD converts a string to an int, returning def when parsing fails
// or the string is empty.
func ToIntD(s string, def int) int {
	if s == "" {
		return def
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
