// Package report flattens a ucc.Date into the records printed by the CLI
// and recorded in harness traces.
package report

import (
	"fmt"

	"github.com/roach88/uccal/internal/ucc"
)

// Report is every derived field of a date. Fields that depend on the triad
// mapping are left empty and Error is set when the day-of-year is outside
// the mapped range.
type Report struct {
	Instant   int64  `json:"instant" yaml:"instant"`
	UnixMilli int64  `json:"unix_ms" yaml:"unix_ms"`
	Gregorian string `json:"gregorian" yaml:"gregorian"`
	Year      int64  `json:"year" yaml:"year"`
	Doy       int64  `json:"doy" yaml:"doy"`

	Triad       int    `json:"triad" yaml:"triad"`
	Day         int64  `json:"day" yaml:"day"`
	TriadName   string `json:"triad_name,omitempty" yaml:"triad_name,omitempty"`
	TriadSymbol string `json:"triad_symbol,omitempty" yaml:"triad_symbol,omitempty"`
	Quarter     int    `json:"quarter" yaml:"quarter"`

	Full     string `json:"full,omitempty" yaml:"full,omitempty"`
	Long     string `json:"long,omitempty" yaml:"long,omitempty"`
	Medium   string `json:"medium,omitempty" yaml:"medium,omitempty"`
	Short    string `json:"short,omitempty" yaml:"short,omitempty"`
	Sortable string `json:"sortable,omitempty" yaml:"sortable,omitempty"`
	Format   string `json:"format,omitempty" yaml:"format,omitempty"`

	Leap       bool  `json:"leap" yaml:"leap"`
	LeapDays   int64 `json:"leap_days" yaml:"leap_days"`
	LeapCycle  int64 `json:"leap_cycle" yaml:"leap_cycle"`
	LeapOffset int64 `json:"leap_offset" yaml:"leap_offset"`

	Pantheon    string `json:"pantheon" yaml:"pantheon"`
	Decan       int    `json:"decan" yaml:"decan"`
	DecanDay    string `json:"decan_day,omitempty" yaml:"decan_day,omitempty"`
	DecanSymbol string `json:"decan_symbol,omitempty" yaml:"decan_symbol,omitempty"`

	Intercal       string `json:"intercal,omitempty" yaml:"intercal,omitempty"`
	IntercalSymbol string `json:"intercal_symbol,omitempty" yaml:"intercal_symbol,omitempty"`
	Intercals      int64  `json:"intercals" yaml:"intercals"`
	Festival       string `json:"festival,omitempty" yaml:"festival,omitempty"`
	FestivalNumber int    `json:"festival_number" yaml:"festival_number"`
	FestivalSymbol string `json:"festival_symbol,omitempty" yaml:"festival_symbol,omitempty"`

	MoonAge    float64 `json:"moon_age" yaml:"moon_age"`
	MoonPhase  string  `json:"moon_phase" yaml:"moon_phase"`
	MoonSymbol string  `json:"moon_symbol" yaml:"moon_symbol"`
	Yuga       string  `json:"yuga" yaml:"yuga"`
	ZodiacAge  string  `json:"zodiac_age" yaml:"zodiac_age"`

	Error *Error `json:"error,omitempty" yaml:"error,omitempty"`
}

// Error is the serializable form of a ucc.RangeError.
type Error struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// NewError converts err into an Error, keeping the range error code when
// there is one.
func NewError(err error) *Error {
	if err == nil {
		return nil
	}
	code := string(ucc.ErrorCode(err))
	if code == "" {
		code = "ERROR"
	}
	return &Error{Code: code, Message: err.Error()}
}

// Build computes the report of d, naming decan days after p.
func Build(d ucc.Date, p ucc.Pantheon) Report {
	r := Report{
		Instant:        d.Instant(),
		UnixMilli:      d.UnixMilli(),
		Gregorian:      d.Gregorian(),
		Year:           d.Year(),
		Doy:            d.Doy(),
		Leap:           d.IsLeapYear(),
		LeapDays:       d.LeapDays(),
		LeapCycle:      d.LeapCycle(),
		LeapOffset:     d.LeapOffset(),
		Pantheon:       p.String(),
		Intercal:       d.Intercal(),
		IntercalSymbol: d.IntercalSymbol(),
		Intercals:      d.Intercals(),
		Festival:       d.Festival(),
		FestivalNumber: d.FestivalNumber(),
		FestivalSymbol: d.FestivalSymbol(),
		MoonAge:        d.MoonAge(),
		MoonPhase:      d.MoonPhase(),
		MoonSymbol:     d.MoonSymbol(),
		Yuga:           d.Yuga(),
		ZodiacAge:      d.ZodiacAge(),
	}
	if err := r.fillTriad(d, p); err != nil {
		r.Error = NewError(err)
	}
	return r
}

func (r *Report) fillTriad(d ucc.Date, p ucc.Pantheon) error {
	var err error
	if r.Triad, err = d.Triad(); err != nil {
		return err
	}
	if r.Day, err = d.Day(); err != nil {
		return err
	}
	if r.TriadName, err = d.TriadName(); err != nil {
		return err
	}
	if r.TriadSymbol, err = d.TriadSymbol(); err != nil {
		return err
	}
	if r.Quarter, err = d.Quarter(); err != nil {
		return err
	}
	if r.Decan, err = d.DecanNumber(); err != nil {
		return err
	}
	if r.DecanDay, err = d.DecanDay(p); err != nil {
		return err
	}
	if r.DecanSymbol, err = d.DecanSymbol(); err != nil {
		return err
	}
	for _, f := range []struct {
		dst    *string
		render func() (string, error)
	}{
		{&r.Full, d.Full},
		{&r.Long, d.Long},
		{&r.Medium, d.Medium},
		{&r.Short, d.Short},
		{&r.Sortable, d.Sortable},
		{&r.Format, d.Format},
	} {
		if *f.dst, err = f.render(); err != nil {
			return err
		}
	}
	return nil
}

// Style names a single-line rendering of a date.
type Style string

// Styles accepted by Render.
const (
	StyleFull      Style = "full"
	StyleLong      Style = "long"
	StyleMedium    Style = "medium"
	StyleShort     Style = "short"
	StyleSortable  Style = "sortable"
	StyleFormat    Style = "format"
	StyleGregorian Style = "gregorian"
)

// Styles lists every style in display order.
func Styles() []Style {
	return []Style{StyleFull, StyleLong, StyleMedium, StyleShort, StyleSortable, StyleFormat, StyleGregorian}
}

// ParseStyle validates s as a Style.
func ParseStyle(s string) (Style, error) {
	for _, st := range Styles() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown style %q: must be one of %v", s, Styles())
}

// Render renders d in style s.
func Render(d ucc.Date, s Style) (string, error) {
	switch s {
	case StyleFull, "":
		return d.Full()
	case StyleLong:
		return d.Long()
	case StyleMedium:
		return d.Medium()
	case StyleShort:
		return d.Short()
	case StyleSortable:
		return d.Sortable()
	case StyleFormat:
		return d.Format()
	case StyleGregorian:
		return d.Gregorian(), nil
	}
	return "", fmt.Errorf("unknown style %q", s)
}
