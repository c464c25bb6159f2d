package report

import "github.com/roach88/uccal/internal/ucc"

// Core returns the compact, canonical-JSON-safe view of d recorded in
// harness traces. Exactly one of "full" and "error" is present.
func Core(d ucc.Date) map[string]any {
	out := map[string]any{
		"instant": d.Instant(),
		"year":    d.Year(),
		"doy":     d.Doy(),
	}
	triad, err := d.Triad()
	if err != nil {
		out["error"] = string(ucc.ErrorCode(err))
		return out
	}
	day, _ := d.Day()
	name, _ := d.TriadName()
	full, _ := d.Full()
	out["triad"] = triad
	out["day"] = day
	out["triad_name"] = name
	out["full"] = full
	return out
}

// TriadRow describes one triad of the year.
type TriadRow struct {
	Number   int    `json:"number" yaml:"number"`
	Word     string `json:"word" yaml:"word"`
	Name     string `json:"name" yaml:"name"`
	Symbol   string `json:"symbol" yaml:"symbol"`
	FirstDoy int64  `json:"first_doy" yaml:"first_doy"`
	LastDoy  int64  `json:"last_doy" yaml:"last_doy"`
	Days     int64  `json:"days" yaml:"days"`
}

// Triads returns the ZERO days followed by the twelve triads, with the
// day-of-year span each one covers.
func Triads() []TriadRow {
	names, symbols, words := ucc.TriadNames(), ucc.TriadSymbols(), ucc.TriadWords()
	rows := make([]TriadRow, ucc.MaxTriad+1)
	rows[0] = TriadRow{Word: "ZERO", Name: ucc.ZeroTriadName, Symbol: ucc.ZeroTriadSymbol, FirstDoy: -1}
	for t := 1; t <= ucc.MaxTriad; t++ {
		rows[t] = TriadRow{Number: t, Word: words[t-1], Name: names[t-1], Symbol: symbols[t-1], FirstDoy: -1}
	}
	for doy := int64(ucc.MinDoy); doy <= ucc.MaxDoy; doy++ {
		t, err := ucc.DoyToTriad(doy)
		if err != nil {
			continue
		}
		row := &rows[t]
		if row.FirstDoy < 0 {
			row.FirstDoy = doy
		}
		row.LastDoy = doy
		row.Days++
	}
	return rows
}
