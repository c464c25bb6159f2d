package ucc

// Lookup tables, indexed from 0. Triad tables are indexed by triad-1.
var (
	triadNames = [12]string{
		"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
		"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
	}
	triadSymbols = [12]string{
		"\u2648", "\u2649", "\u264A", "\u264B", "\u264C", "\u264D",
		"\u264E", "\u264F", "\u2650", "\u2651", "\u2652", "\u2653",
	}
	triadWords = [12]string{
		"ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX",
		"SEVEN", "EIGHT", "NINE", "TEN", "ELEVEN", "TWELVE",
	}

	decanSymbols = [10]string{
		"\u2646", "\u2609", "\u263F", "\u2640", "\u2295",
		"\u2642", "\u26B3", "\u2643", "\u2644", "\u2645",
	}

	moonPhases = [8]string{
		"New", "Waxing crescent", "1st quarter", "Waxing gibbous",
		"Full", "Waning gibbous", "3rd quarter", "Waning crescent",
	}
	moonSymbols = [8]string{
		"\U0001F311", "\U0001F312", "\U0001F313", "\U0001F314",
		"\U0001F315", "\U0001F316", "\U0001F317", "\U0001F318",
	}
)

// Sentinel names for triad 0.
const (
	ZeroTriadName   = "Zero"
	ZeroTriadSymbol = "0"
)

// TriadNames returns the names of triads 1 through 12.
func TriadNames() [12]string { return triadNames }

// TriadSymbols returns the zodiac glyphs of triads 1 through 12.
func TriadSymbols() [12]string { return triadSymbols }

// TriadWords returns the upper-case number words of triads 1 through 12.
func TriadWords() [12]string { return triadWords }
