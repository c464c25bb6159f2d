package ucc

import "fmt"

// Gregorian renders d on the proleptic Gregorian calendar in UTC as
// "D/M/Y hh:mm:ss.mmm CE". Years before 1 CE are written with the BCE era,
// so astronomical year 0 renders as 1 BCE.
func (d Date) Gregorian() string {
	t := d.Time()
	year, era := t.Year(), "CE"
	if year < 1 {
		year, era = 1-year, "BCE"
	}
	return fmt.Sprintf("%d/%d/%d %02d:%02d:%02d.%03d %s",
		t.Day(), int(t.Month()), year,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1e6, era)
}
