package ucc

import (
	"fmt"
	"strconv"
)

// Ordinal renders n with its English ordinal suffix: 1st, 2nd, 3rd, 4th,
// 11th, 12th, 13th, 21st and so on.
func Ordinal(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n > 10 && n < 21 {
		return s + "th"
	}
	switch n % 10 {
	case 1:
		return s + "st"
	case 2:
		return s + "nd"
	case 3:
		return s + "rd"
	}
	return s + "th"
}

// Full renders d as e.g. "8th TEN-Capricorn♑ 13521". The ZERO days render
// as "0 ZERO 13521" and "1st ZERO 13521"; day 0 of a triad renders as "0".
func (d Date) Full() (string, error) {
	year := d.Year()
	switch d.Doy() {
	case 0:
		return "0 ZERO " + strconv.FormatInt(year, 10), nil
	case 1:
		return "1st ZERO " + strconv.FormatInt(year, 10), nil
	}
	triad, day, err := d.triadDay()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s-%s%s %d", dayOrdinal(day), triadWords[triad-1], triadNames[triad-1], triadSymbols[triad-1], year), nil
}

// Long renders d as e.g. "8th Capricorn♑ 13521".
func (d Date) Long() (string, error) {
	year := d.Year()
	switch d.Doy() {
	case 0:
		return "0 ZERO " + strconv.FormatInt(year, 10), nil
	case 1:
		return "1st ZERO " + strconv.FormatInt(year, 10), nil
	}
	triad, day, err := d.triadDay()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s%s %d", dayOrdinal(day), triadNames[triad-1], triadSymbols[triad-1], year), nil
}

// Medium renders d as e.g. "8♑13521". Intercalary days use their own glyph
// in place of the day and triad.
func (d Date) Medium() (string, error) {
	return d.compact(strconv.FormatInt(d.Year(), 10))
}

// Short is Medium with the year cut to its last two characters, e.g. "8♑21".
func (d Date) Short() (string, error) {
	year := strconv.FormatInt(d.Year(), 10)
	if len(year) > 2 {
		year = year[len(year)-2:]
	}
	return d.compact(year)
}

// Sortable renders d as "year.triad.day" with two-digit triad and day,
// e.g. "13521.10.08".
func (d Date) Sortable() (string, error) {
	triad, day, err := d.triadDay()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d.%02d.%02d", d.Year(), triad, day), nil
}

// Format renders d in the default "day.triad.year" form, e.g. "8.10.13521".
func (d Date) Format() (string, error) {
	triad, day, err := d.triadDay()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d.%d.%d", day, triad, d.Year()), nil
}

// String implements fmt.Stringer using Full. Dates whose triad is undefined
// render as "%!Date(instant=N)".
func (d Date) String() string {
	s, err := d.Full()
	if err != nil {
		return fmt.Sprintf("%%!Date(instant=%d)", d.instant)
	}
	return s
}

func (d Date) compact(year string) (string, error) {
	if sym := d.IntercalSymbol(); sym != "" {
		return sym + year, nil
	}
	triad, day, err := d.triadDay()
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(day, 10) + triadSymbols[triad-1] + year, nil
}

// triadDay resolves the triad and day together from one doy computation.
func (d Date) triadDay() (int, int64, error) {
	doy := d.Doy()
	triad, err := DoyToTriad(doy)
	if err != nil {
		return 0, 0, err
	}
	day, err := DoyToDay(doy)
	if err != nil {
		return 0, 0, err
	}
	return triad, day, nil
}

func dayOrdinal(day int64) string {
	if day > 0 {
		return Ordinal(day)
	}
	return "0"
}
