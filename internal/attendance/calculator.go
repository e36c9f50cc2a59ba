// Package attendance holds the pure attendance arithmetic: percentage,
// safety classification against a threshold, and the required/bunkable
// class counts. Safety comparisons and both closed-form counts are done
// in integer arithmetic so exact threshold boundaries never drift the way
// they would under floating point.
package attendance

import "math"

// Percentage returns the attendance percentage rounded to one decimal
// place. It is display-only; classification never compares against it.
// A subject with no held classes is 0 by definition.
func Percentage(attended, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(100*float64(attended)/float64(total)*10) / 10
}

// IsSafe reports whether attended/total meets the threshold percentage.
// The comparison 100*attended >= threshold*total is exact in integers.
// A subject with no held classes is never safe.
func IsSafe(attended, total, threshold int) bool {
	if total == 0 {
		return false
	}
	return 100*attended >= threshold*total
}

// ClassesToAttend returns the minimum number of consecutive fully-attended
// classes needed to reach the threshold, or 0 when the subject is already
// safe, has no held classes yet, or the target is unreachable (threshold
// 100 with any class missed).
func ClassesToAttend(attended, total, threshold int) int {
	if total == 0 || IsSafe(attended, total, threshold) {
		return 0
	}
	if threshold >= 100 {
		// A missed class can never be recovered to a 100% ratio.
		return 0
	}
	n := ceilDiv(threshold*total-100*attended, 100-threshold)
	if n < 0 {
		return 0
	}
	return n
}

// ClassesBunkable returns the maximum number of consecutive classes that
// can be missed while staying at or above the threshold, or 0 when the
// subject is not safe. A zero threshold makes the count unbounded; 0 is
// reported in that case.
func ClassesBunkable(attended, total, threshold int) int {
	if !IsSafe(attended, total, threshold) {
		return 0
	}
	if threshold == 0 {
		return 0
	}
	m := (100*attended - threshold*total) / threshold
	if m < 0 {
		return 0
	}
	return m
}

// ceilDiv is integer division rounding toward positive infinity,
// for non-negative numerators and positive denominators.
func ceilDiv(num, den int) int {
	if num <= 0 {
		return 0
	}
	return (num + den - 1) / den
}
