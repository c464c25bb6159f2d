package ucc

import "math"

// IsLeapYear reports whether year is a UCC leap year.
//
// Leap years follow a 33-year cycle: a year is leap when year mod 33 is 0,
// or when the remainder is below 29 and divisible by 4. That gives eight leap
// years per cycle. The modulo is floored, so negative years keep the same
// cycle position as their positive counterparts 33k years later.
func IsLeapYear(year int64) bool {
	r := floorMod(year, 33)
	return r == 0 || (r < 29 && r%4 == 0)
}

// YearToDays returns the day number (since the UCC epoch) on which year begins.
// Year boundaries come from the fractional tropical year and are not evenly
// spaced, so this is recomputed per year.
func YearToDays(year int64) int64 {
	return int64(math.Floor(float64(year) * TropicalYear))
}

// DaysToYear returns the UCC year containing day number days.
func DaysToYear(days int64) int64 {
	return int64(math.Floor(float64(days) / TropicalYear))
}

// MsToYear returns the UCC year containing the instant ms.
func MsToYear(ms int64) int64 {
	return DaysToYear(MsToDays(ms))
}

// LeapDays returns the number of leap days between the epoch and the start of
// year.
func LeapDays(year int64) int64 {
	return int64(math.Floor(float64(year) / 33 * 8))
}

// LeapCycle returns the number of the 33-year leap cycle containing year.
// Cycles are anchored at year 12.
func LeapCycle(year int64) int64 {
	return int64(math.Round(float64(year-12) / 33))
}

// LeapOffset returns the position of year within its leap cycle.
func LeapOffset(year int64) int64 {
	return floorMod(year-12, 33)
}
