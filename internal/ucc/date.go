package ucc

import "time"

// A Date is an instant on the UCC calendar, stored as milliseconds since the
// UCC epoch. All other fields are derived on demand.
//
// Dates are values: they are never mutated after construction and are safe
// for concurrent use.
type Date struct {
	instant int64
}

// Now returns the current date as reported by c.
func Now(c Clock) Date {
	return FromTime(c.Now())
}

// FromInstant returns the Date for ms milliseconds since the UCC epoch.
func FromInstant(ms int64) Date {
	return Date{instant: ms}
}

// FromUnixMilli returns the Date for ms milliseconds since the Unix epoch.
func FromUnixMilli(ms int64) Date {
	return Date{instant: ToInternalEpoch(ms)}
}

// FromTime returns the Date for t, truncated to the millisecond.
func FromTime(t time.Time) Date {
	return FromUnixMilli(t.UnixMilli())
}

// FromFields composes a Date from calendar fields. Values of day, hour,
// minute, second and ms outside their usual ranges are not normalized; they
// are simply added to the instant. Leap years gain one day so that day
// numbering lines up with MsToDoy.
//
// An error is returned only when triad is outside [0, 12].
func FromFields(year int64, triad int, day, hour, minute, second, ms int64) (Date, error) {
	before, err := DaysBeforeTriad(triad)
	if err != nil {
		return Date{}, err
	}
	days := YearToDays(year) + before + day
	if IsLeapYear(year) {
		days++
	}
	instant := DaysToMs(days)
	instant += hour * msPerHour
	instant += minute * msPerMinute
	instant += second * msPerSecond
	instant += ms
	return Date{instant: instant}, nil
}

// Instant returns d as milliseconds since the UCC epoch.
func (d Date) Instant() int64 { return d.instant }

// UnixMilli returns d as milliseconds since the Unix epoch.
func (d Date) UnixMilli() int64 { return ToStandardEpoch(d.instant) }

// Time returns d as a UTC time.Time.
func (d Date) Time() time.Time {
	return time.UnixMilli(d.UnixMilli()).UTC()
}

// Year returns the UCC year.
func (d Date) Year() int64 { return MsToYear(d.instant) }

// Days returns the number of whole days since the UCC epoch.
func (d Date) Days() int64 { return MsToDays(d.instant) }

// Doy returns the day-of-the-year. See MsToDoy for the leap-year shift.
func (d Date) Doy() int64 { return MsToDoy(d.instant) }

// Triad returns the triad number, 0 for the ZERO days.
func (d Date) Triad() (int, error) { return MsToTriad(d.instant) }

// Day returns the day-of-the-triad.
func (d Date) Day() (int64, error) { return MsToDay(d.instant) }

// TriadDays returns the number of days in the year before the current triad.
func (d Date) TriadDays() (int64, error) {
	triad, err := d.Triad()
	if err != nil {
		return 0, err
	}
	return DaysBeforeTriad(triad)
}

// TriadName returns the zodiac name of the current triad, or "Zero".
func (d Date) TriadName() (string, error) {
	triad, err := d.Triad()
	if err != nil {
		return "", err
	}
	if triad == 0 {
		return ZeroTriadName, nil
	}
	return triadNames[triad-1], nil
}

// TriadSymbol returns the zodiac glyph of the current triad, or "0".
func (d Date) TriadSymbol() (string, error) {
	triad, err := d.Triad()
	if err != nil {
		return "", err
	}
	if triad == 0 {
		return ZeroTriadSymbol, nil
	}
	return triadSymbols[triad-1], nil
}

// Quarter returns triad/4 + 1, or 0 during the ZERO days.
func (d Date) Quarter() (int, error) {
	triad, err := d.Triad()
	if err != nil {
		return 0, err
	}
	if triad == 0 {
		return 0, nil
	}
	return triad/4 + 1, nil
}

// IsLeapYear reports whether d falls in a leap year.
func (d Date) IsLeapYear() bool { return IsLeapYear(d.Year()) }

// LeapDays returns the leap days added between the epoch and d's year.
func (d Date) LeapDays() int64 { return LeapDays(d.Year()) }

// LeapCycle returns the leap cycle number of d's year.
func (d Date) LeapCycle() int64 { return LeapCycle(d.Year()) }

// LeapOffset returns the years since the start of d's leap cycle.
func (d Date) LeapOffset() int64 { return LeapOffset(d.Year()) }

// Equal reports whether d and u are the same instant.
func (d Date) Equal(u Date) bool { return d.instant == u.instant }

// Before reports whether d is before u.
func (d Date) Before(u Date) bool { return d.instant < u.instant }

// After reports whether d is after u.
func (d Date) After(u Date) bool { return d.instant > u.instant }

// AddDays returns d shifted by n whole days.
func (d Date) AddDays(n int64) Date {
	return Date{instant: d.instant + DaysToMs(n)}
}
