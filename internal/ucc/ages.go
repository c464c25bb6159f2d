package ucc

import "fmt"

// greatYear is the length, in UCC years, of the cycle of ages.
const greatYear = 24000

// age is one segment of the great year, starting at start.
type age struct {
	start int64
	name  string
}

var yugas = [...]age{
	{0, "Satya Yuga (Golden Age) Descending"},
	{4800, "Treta Yuga (Silver Age) Descending"},
	{8400, "Dwapara Yuga (Bronze Age) Descending"},
	{10800, "Kali Yuga (Iron Age) Descending"},
	{12000, "Kali Yuga (Iron Age) Ascending"},
	{13200, "Dwapara Yuga (Bronze Age) Ascending"},
	{15600, "Treta Yuga (Silver Age) Ascending"},
	{19200, "Satya Yuga (Golden Age) Ascending"},
}

var zodiacAges = [...]age{
	{0, "Virgo, Great Summer Descending"},
	{1833, "Leo, Great Summer Descending"},
	{3733, "Cancer, Great Summer Descending"},
	{5699, "Gemini, Great Autumn Descending"},
	{7732, "Taurus, Great Autumn Descending"},
	{9832, "Aries, Great Autumn Descending"},
	{12000, "Pisces, Great Winter Ascending"},
	{14168, "Aquarius, Great Winter Ascending"},
	{16268, "Capricorn, Great Winter Ascending"},
	{18301, "Sagittarius, Great Spring Ascending"},
	{20267, "Scorpio, Great Spring Ascending"},
	{22167, "Libra, Great Spring Ascending"},
}

// Yuga returns the age of the yuga cycle containing d, prefixed with the
// number of years elapsed in it, e.g. "321 Dwapara Yuga (Bronze Age) Ascending".
func (d Date) Yuga() string { return ageOf(yugas[:], d.Year()) }

// ZodiacAge returns the zodiac age containing d, prefixed with the number of
// years elapsed in it.
func (d Date) ZodiacAge() string { return ageOf(zodiacAges[:], d.Year()) }

func ageOf(ages []age, year int64) string {
	y := floorMod(year, greatYear)
	cur := ages[0]
	for _, a := range ages[1:] {
		if y < a.start {
			break
		}
		cur = a
	}
	return fmt.Sprintf("%d %s", y-cur.start, cur.name)
}
