package ucc

// triadThresholds[i] is the first day-of-year that belongs to triad i+2.
// Triads are 30 or 31 days long; the table is authoritative, not a formula.
var triadThresholds = [...]int64{33, 63, 93, 124, 154, 184, 215, 245, 275, 306, 336}

// MsToDoy returns the day-of-the-year of the instant ms.
//
// Leap years are shifted back by one day so that their first day is doy 0
// while ordinary years start at doy 1. The result can fall outside [0, 365]
// (doy -1 on the epoch day itself, 366 in some years before the epoch);
// callers mapping it to a triad must expect a RangeError there.
func MsToDoy(ms int64) int64 {
	days := MsToDays(ms)
	year := DaysToYear(days)
	doy := days - YearToDays(year)
	if IsLeapYear(year) {
		return doy - 1
	}
	return doy
}

// DaysBeforeTriad returns the number of days from the start of the year to
// the start of triad. Triad 0 (the ZERO days) starts the year.
func DaysBeforeTriad(triad int) (int64, error) {
	if triad < MinTriad || triad > MaxTriad {
		return 0, newTriadRangeError("DaysBeforeTriad", int64(triad))
	}
	if triad == 0 {
		return 0, nil
	}
	days := int64(triad-1) * 30
	switch {
	case triad < 4:
		return days + 2, nil
	case triad < 7:
		return days + 3, nil
	case triad < 10:
		return days + 4, nil
	}
	return days + 5, nil
}

// DoyToTriad returns the triad containing the day-of-the-year doy.
// Days 0 and 1 belong to triad 0.
func DoyToTriad(doy int64) (int, error) {
	if doy < MinDoy || doy > MaxDoy {
		return 0, newDoyRangeError("DoyToTriad", doy)
	}
	if doy < 2 {
		return 0, nil
	}
	for i, threshold := range triadThresholds {
		if doy < threshold {
			return i + 1, nil
		}
	}
	return MaxTriad, nil
}

// DoyToDay returns the day-of-the-triad for the day-of-the-year doy.
func DoyToDay(doy int64) (int64, error) {
	if doy < MinDoy || doy > MaxDoy {
		return 0, newDoyRangeError("DoyToDay", doy)
	}
	triad, err := DoyToTriad(doy)
	if err != nil {
		return 0, err
	}
	before, err := DaysBeforeTriad(triad)
	if err != nil {
		return 0, err
	}
	return doy - before, nil
}

// MsToTriad returns the triad containing the instant ms.
func MsToTriad(ms int64) (int, error) {
	return DoyToTriad(MsToDoy(ms))
}

// MsToDay returns the day-of-the-triad of the instant ms.
func MsToDay(ms int64) (int64, error) {
	return DoyToDay(MsToDoy(ms))
}
