// Package harness runs conformance scenarios against the UCC conversion
// engine.
//
// # Scenario Format
//
// Scenarios are YAML files with the following structure:
//
//	name: unix_epoch
//	description: "Unix epoch lands on 12th TEN-Capricorn 13470"
//	run_token: run-unix-epoch      # optional, fixed for golden comparison
//	now: 1710892800000             # optional, Unix ms returned by the "now" op
//	steps:
//	  - op: from_unix
//	    args: { unix: 0 }
//	    expect:
//	      result: { year: 13470, doy: 287, triad: 10, day: 12 }
//	  - op: doy_to_triad
//	    args: { doy: 366 }
//	    expect:
//	      error: OUT_OF_RANGE_DAY_OF_YEAR
//	assertions:
//	  - type: op_count
//	    op: from_unix
//	    count: 1
//	  - type: leap_count
//	    from: 0
//	    to: 33
//	    count: 8
//
// # Operations
//
//   - from_instant {instant}: date from internal-epoch milliseconds
//   - from_unix {unix}: date from Unix-epoch milliseconds
//   - from_fields {year, triad, day, hour?, minute?, second?, ms?}: composed date
//   - now {}: date read from the scenario clock
//   - is_leap_year {year}, year_to_days {year}
//   - days_before_triad {triad}, doy_to_triad {doy}, doy_to_day {doy}
//   - ordinal {n}
//
// Date-producing operations record the compact view from report.Core.
// Expected results are subset matches: only the listed keys are compared.
//
// # Assertion Types
//
//   - op_count: the op ran exactly count times
//   - leap_count: count leap years lie in [from, to)
//   - doy_round_trip: DaysBeforeTriad(triad) + day == doy for every day in [from, to)
//   - epoch_round_trip: epoch and day conversions round-trip for every Unix ms value
//
// # Deterministic Testing
//
// Every run uses a testutil.FixedClock set from the scenario's "now" and a
// fixed run token, so traces and their content-addressed IDs are identical
// across runs and can be compared against golden files.
package harness
