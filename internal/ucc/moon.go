package ucc

import (
	"math"
	"time"
)

// fullMoon is a known full moon (1999-08-11 UTC) used as the phase reference.
var fullMoon = FromTime(time.Date(1999, time.August, 11, 0, 0, 0, 0, time.UTC))

// moonThresholds[i] is the upper bound, in days of moon age, of phase i.
var moonThresholds = [...]float64{1, 7, 8, 15, 16, 22, 23}

// MoonAge returns the days elapsed in the current lunar cycle, relative to
// the reference full moon, in [0, MoonPeriod).
func (d Date) MoonAge() float64 {
	diff := d.Days() - fullMoon.Days()
	if diff < 0 {
		diff = -diff
	}
	return math.Mod(float64(diff)+MoonPeriod, MoonPeriod)
}

// MoonPhase returns the name of the moon phase of d.
func (d Date) MoonPhase() string { return moonPhases[d.moonIndex()] }

// MoonSymbol returns the glyph of the moon phase of d.
func (d Date) MoonSymbol() string { return moonSymbols[d.moonIndex()] }

func (d Date) moonIndex() int {
	age := d.MoonAge()
	for i, limit := range moonThresholds {
		if age < limit {
			return i
		}
	}
	return len(moonThresholds)
}
