// Package ucc converts instants between the Unix millisecond timeline and the
// UCC calendar.
//
// The UCC calendar counts years from its own epoch (-011502-03-21 Gregorian,
// astronomical numbering) using a fixed tropical year of 365.242424242 days.
// Each year opens with two ZERO days, followed by twelve triads of 30 or 31
// days named after the zodiac signs. A 33-year cycle carries eight leap years.
//
// # Layers
//
// The package is built bottom-up:
//
//  1. Epoch arithmetic: Unix <-> UCC epoch, milliseconds <-> whole days.
//  2. Year rule: leap years and the day at which a year begins.
//  3. Day-of-year mapping: doy <-> (triad, day-of-triad).
//  4. Date: an immutable instant with derived queries and formatting.
//
// Every function is pure. The only source of wall-clock time is the Clock
// passed to Now, which keeps conversions deterministic under test.
//
// # Errors
//
// Triad numbers outside [0, 12] and day-of-year values outside [0, 365]
// are reported as *RangeError.
//
// Ordinary years run from doy 1 (New Year's) to 365; leap years also carry
// doy 0 (Leap Year's day). The boundary arithmetic leaves two gaps in that
// scheme: the first day of year 0 maps to doy -1, and some years before the
// epoch reach doy 366. Triad-based queries on those days return a RangeError
// rather than inventing a value.
package ucc
