package ucc

// Calendar constants. These are fixed; output compatibility with other UCC
// implementations depends on them being bit-exact.
const (
	// Offset is the UCC epoch relative to the Unix epoch, in milliseconds.
	Offset int64 = -425128348800000

	// OneDay is 24 * 60 * 60 * 1000 ms.
	OneDay int64 = 86400000

	// OneYear is 365 * OneDay. The Unix <-> UCC conversion shifts by one
	// calendar year on top of Offset.
	OneYear int64 = 31536000000

	// TropicalYear is the mean year length in days (365 + 8/33).
	TropicalYear = 365.242424242

	// OneAD is 1 Jan 0001 (Gregorian) as milliseconds since the UCC epoch.
	OneAD = 4200940 * OneDay

	// MoonPeriod is the synodic month in days, used for moon phases.
	MoonPeriod = 29.530588853
)

const (
	msPerSecond int64 = 1000
	msPerMinute       = 60 * msPerSecond
	msPerHour         = 60 * msPerMinute
)

// ToInternalEpoch converts milliseconds since the Unix epoch to milliseconds
// since the UCC epoch.
func ToInternalEpoch(unixMs int64) int64 {
	return unixMs - Offset - OneYear
}

// ToStandardEpoch is the inverse of ToInternalEpoch.
func ToStandardEpoch(internalMs int64) int64 {
	return internalMs + Offset + OneYear
}

// MsToDays returns the number of whole days in ms, rounding toward negative
// infinity so instants before the epoch land on the correct day.
func MsToDays(ms int64) int64 {
	return floorDiv(ms, OneDay)
}

// DaysToMs returns the instant at which day number days begins.
func DaysToMs(days int64) int64 {
	return days * OneDay
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
