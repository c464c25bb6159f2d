package ucc

import (
	"fmt"
	"strings"
)

// Pantheon selects the naming scheme for decan days.
type Pantheon int

const (
	// Western names decan days after planets (Neptune, Sol, Mercury, ...).
	Western Pantheon = iota
	// Greek names decan days after Greek deities (Poseidon, Helios, ...).
	Greek
	// Hindu names decan days after Hindu deities (Varuna, Surya, ...).
	Hindu
)

var decanNames = map[Pantheon][10]string{
	Western: {"Neptune", "Sol", "Mercury", "Venus", "Earth", "Mars", "Ceres", "Jupiter", "Saturn", "Uranus"},
	Greek:   {"Poseidon", "Helios", "Hermes", "Aphrodite", "Terra", "Ares", "Demeter", "Zeus", "Cronus", "Caelus"},
	Hindu:   {"Varuna", "Surya", "Budha", "Shukra", "Thal", "Mangala", "Shakti", "Guru", "Shani", "Vasuki"},
}

var pantheonNames = [...]string{"western", "greek", "hindu"}

// String returns the lower-case pantheon name.
func (p Pantheon) String() string {
	if p < 0 || int(p) >= len(pantheonNames) {
		return fmt.Sprintf("Pantheon(%d)", int(p))
	}
	return pantheonNames[p]
}

// ParsePantheon parses a pantheon name, case-insensitively.
func ParsePantheon(s string) (Pantheon, error) {
	for i, name := range pantheonNames {
		if strings.EqualFold(s, name) {
			return Pantheon(i), nil
		}
	}
	return Western, fmt.Errorf("unknown pantheon %q: must be one of %v", s, pantheonNames)
}

// DecanNames returns the ten decan day names of p.
func DecanNames(p Pantheon) [10]string {
	names, ok := decanNames[p]
	if !ok {
		return decanNames[Western]
	}
	return names
}

// DecanNumber returns the decan of the year, 1 through 36. Intercalary days
// (triad 0 or day 0) have no decan and return 0.
func (d Date) DecanNumber() (int, error) {
	triad, day, err := d.triadDay()
	if err != nil {
		return 0, err
	}
	if triad == 0 || day == 0 {
		return 0, nil
	}
	return (triad-1)*3 + int((day-1)/10) + 1, nil
}

// DecanDay returns the name of the decan day in pantheon p, or "" on an
// intercalary day.
func (d Date) DecanDay(p Pantheon) (string, error) {
	i, err := d.decanIndex()
	if err != nil || i < 0 {
		return "", err
	}
	return DecanNames(p)[i], nil
}

// DecanSymbol returns the planetary glyph of the decan day, or "" on an
// intercalary day.
func (d Date) DecanSymbol() (string, error) {
	i, err := d.decanIndex()
	if err != nil || i < 0 {
		return "", err
	}
	return decanSymbols[i], nil
}

// decanIndex returns day mod 10, or -1 on an intercalary day.
func (d Date) decanIndex() (int, error) {
	triad, day, err := d.triadDay()
	if err != nil {
		return 0, err
	}
	if triad == 0 || day == 0 {
		return -1, nil
	}
	return int(day % 10), nil
}
