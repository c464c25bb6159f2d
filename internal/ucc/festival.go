package ucc

// Intercalary days: the two ZERO days and the four season days that open
// triads 1, 4, 7 and 10.
var intercalDays = map[int64]struct{ name, symbol string }{
	0:   {"Leap Year's", "\u2736"},
	1:   {"New Year's", "\u2742"},
	2:   {"1st Season's", "\u25F7"},
	93:  {"2nd Season's", "\u25F4"},
	184: {"3rd Season's", "\u25F5"},
	275: {"4th Season's", "\u25F6"},
}

// festival is a window of days, exclusive on both ends.
type festival struct {
	after, before int64
	name, symbol  string
}

// festivals are numbered from 1 in table order. The first window wraps
// around the year boundary.
var festivals = [...]festival{
	{363, 3, "Aries", "\u2295\u2648"},
	{46, 49, "Taurus", "\u2297\u2649"},
	{91, 95, "Cancer", "\u2295\u264B"},
	{137, 140, "Leo", "\u2297\u264C"},
	{183, 188, "Libra", "\u2295\u264E"},
	{228, 231, "Scorpio", "\u2297\u264F"},
	{274, 278, "Capricorn", "\u2295\u2651"},
	{319, 322, "Aquarius", "\u2297\u2652"},
}

func (f festival) contains(doy int64) bool {
	if f.after > f.before {
		return doy > f.after || doy < f.before
	}
	return doy > f.after && doy < f.before
}

// IntercalName returns the name of the intercalary day at doy, or "".
func IntercalName(doy int64) string { return intercalDays[doy].name }

// IntercalSymbol returns the glyph of the intercalary day at doy, or "".
func IntercalSymbol(doy int64) string { return intercalDays[doy].symbol }

// FestivalNumber returns the 1-based festival containing doy, or 0.
func FestivalNumber(doy int64) int {
	for i, f := range festivals {
		if f.contains(doy) {
			return i + 1
		}
	}
	return 0
}

// FestivalName returns the name of the festival containing doy, or "".
func FestivalName(doy int64) string {
	if n := FestivalNumber(doy); n > 0 {
		return festivals[n-1].name
	}
	return ""
}

// FestivalSymbol returns the glyph pair of the festival containing doy, or "".
func FestivalSymbol(doy int64) string {
	if n := FestivalNumber(doy); n > 0 {
		return festivals[n-1].symbol
	}
	return ""
}

// Intercal returns the intercalary day name of d, or "".
func (d Date) Intercal() string { return IntercalName(d.Doy()) }

// IntercalSymbol returns the intercalary day glyph of d, or "".
func (d Date) IntercalSymbol() string { return IntercalSymbol(d.Doy()) }

// Intercals returns how many intercalary days have passed so far this year,
// counting the leap day in leap years.
func (d Date) Intercals() int64 {
	doy := d.Doy()
	if doy < 2 {
		return max(doy, 0)
	}
	var n int64
	switch {
	case doy < 93:
		n = 2
	case doy < 184:
		n = 3
	case doy < 275:
		n = 4
	default:
		n = 5
	}
	if d.IsLeapYear() {
		n++
	}
	return n
}

// Festival returns the festival name of d, or "".
func (d Date) Festival() string { return FestivalName(d.Doy()) }

// FestivalNumber returns the festival number of d, or 0.
func (d Date) FestivalNumber() int { return FestivalNumber(d.Doy()) }

// FestivalSymbol returns the festival glyphs of d, or "".
func (d Date) FestivalSymbol() string { return FestivalSymbol(d.Doy()) }
