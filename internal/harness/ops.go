package harness

import (
	"slices"

	"github.com/roach88/uccal/internal/report"
	"github.com/roach88/uccal/internal/ucc"
)

// opSpec describes one scenario operation.
type opSpec struct {
	required []string
	optional []string
	run      func(h *Harness, args map[string]int64) (any, error)
}

// Operation names.
const (
	OpFromInstant     = "from_instant"
	OpFromUnix        = "from_unix"
	OpFromFields      = "from_fields"
	OpNow             = "now"
	OpIsLeapYear      = "is_leap_year"
	OpYearToDays      = "year_to_days"
	OpDaysBeforeTriad = "days_before_triad"
	OpDoyToTriad      = "doy_to_triad"
	OpDoyToDay        = "doy_to_day"
	OpOrdinal         = "ordinal"
)

var operations = map[string]opSpec{
	OpFromInstant: {
		required: []string{"instant"},
		run: func(_ *Harness, a map[string]int64) (any, error) {
			return report.Core(ucc.FromInstant(a["instant"])), nil
		},
	},
	OpFromUnix: {
		required: []string{"unix"},
		run: func(_ *Harness, a map[string]int64) (any, error) {
			return report.Core(ucc.FromUnixMilli(a["unix"])), nil
		},
	},
	OpFromFields: {
		required: []string{"year", "triad", "day"},
		optional: []string{"hour", "minute", "second", "ms"},
		run: func(_ *Harness, a map[string]int64) (any, error) {
			d, err := ucc.FromFields(a["year"], int(a["triad"]), a["day"], a["hour"], a["minute"], a["second"], a["ms"])
			if err != nil {
				return nil, err
			}
			return report.Core(d), nil
		},
	},
	OpNow: {
		run: func(h *Harness, _ map[string]int64) (any, error) {
			return report.Core(ucc.Now(h.clock)), nil
		},
	},
	OpIsLeapYear: {
		required: []string{"year"},
		run: func(_ *Harness, a map[string]int64) (any, error) {
			return ucc.IsLeapYear(a["year"]), nil
		},
	},
	OpYearToDays: {
		required: []string{"year"},
		run: func(_ *Harness, a map[string]int64) (any, error) {
			return ucc.YearToDays(a["year"]), nil
		},
	},
	OpDaysBeforeTriad: {
		required: []string{"triad"},
		run: func(_ *Harness, a map[string]int64) (any, error) {
			return ucc.DaysBeforeTriad(int(a["triad"]))
		},
	},
	OpDoyToTriad: {
		required: []string{"doy"},
		run: func(_ *Harness, a map[string]int64) (any, error) {
			return ucc.DoyToTriad(a["doy"])
		},
	},
	OpDoyToDay: {
		required: []string{"doy"},
		run: func(_ *Harness, a map[string]int64) (any, error) {
			return ucc.DoyToDay(a["doy"])
		},
	},
	OpOrdinal: {
		required: []string{"n"},
		run: func(_ *Harness, a map[string]int64) (any, error) {
			return ucc.Ordinal(a["n"]), nil
		},
	},
}

// Operations returns the names of all scenario operations, sorted.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
