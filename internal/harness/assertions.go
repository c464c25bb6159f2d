package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/uccal/internal/ucc"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  actual: %s", e.Actual)
	return buf.String()
}

// EvaluateAssertions runs every assertion and returns the failure messages.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errs []string
	for i, a := range assertions {
		if err := evaluateAssertion(result.Trace, a); err != nil {
			errs = append(errs, fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return errs
}

func evaluateAssertion(trace []TraceEntry, a Assertion) error {
	switch a.Type {
	case AssertOpCount:
		return assertOpCount(trace, a)
	case AssertLeapCount:
		return assertLeapCount(a)
	case AssertDoyRoundTrip:
		return assertDoyRoundTrip(a)
	case AssertEpochRoundTrip:
		return assertEpochRoundTrip(a)
	}
	return fmt.Errorf("unknown assertion type %q", a.Type)
}

// assertOpCount checks that the op ran exactly Count times.
func assertOpCount(trace []TraceEntry, a Assertion) error {
	count := 0
	for _, e := range trace {
		if e.Op == a.Op {
			count++
		}
	}
	if count != a.Count {
		return &AssertionError{
			Type:     AssertOpCount,
			Expected: fmt.Sprintf("%d occurrences of %s", a.Count, a.Op),
			Actual:   fmt.Sprintf("%d occurrences", count),
		}
	}
	return nil
}

// assertLeapCount checks the number of leap years in [From, To).
func assertLeapCount(a Assertion) error {
	count := 0
	for y := a.From; y < a.To; y++ {
		if ucc.IsLeapYear(y) {
			count++
		}
	}
	if count != a.Count {
		return &AssertionError{
			Type:     AssertLeapCount,
			Expected: fmt.Sprintf("%d leap years in [%d, %d)", a.Count, a.From, a.To),
			Actual:   fmt.Sprintf("%d leap years", count),
		}
	}
	return nil
}

// assertDoyRoundTrip checks DaysBeforeTriad(triad) + day == doy for every
// day in [From, To) whose day-of-year is in range. Days outside the range
// (the epoch day, or doy 366 before the epoch) are skipped.
func assertDoyRoundTrip(a Assertion) error {
	for days := a.From; days < a.To; days++ {
		doy := ucc.MsToDoy(ucc.DaysToMs(days))
		if doy < ucc.MinDoy || doy > ucc.MaxDoy {
			continue
		}
		triad, err := ucc.DoyToTriad(doy)
		if err != nil {
			return err
		}
		day, err := ucc.DoyToDay(doy)
		if err != nil {
			return err
		}
		before, err := ucc.DaysBeforeTriad(triad)
		if err != nil {
			return err
		}
		if before+day != doy {
			return &AssertionError{
				Type:     AssertDoyRoundTrip,
				Expected: fmt.Sprintf("day %d: DaysBeforeTriad(%d) + %d == %d", days, triad, day, doy),
				Actual:   fmt.Sprintf("%d", before+day),
			}
		}
	}
	return nil
}

// assertEpochRoundTrip checks that every value, in Unix milliseconds,
// survives the epoch shift, and that its day count survives the day
// conversion.
func assertEpochRoundTrip(a Assertion) error {
	for _, v := range a.Values {
		if got := ucc.ToStandardEpoch(ucc.ToInternalEpoch(v)); got != v {
			return &AssertionError{
				Type:     AssertEpochRoundTrip,
				Expected: fmt.Sprintf("ToStandardEpoch(ToInternalEpoch(%d)) == %d", v, v),
				Actual:   fmt.Sprintf("%d", got),
			}
		}
		days := ucc.MsToDays(ucc.ToInternalEpoch(v))
		if got := ucc.MsToDays(ucc.DaysToMs(days)); got != days {
			return &AssertionError{
				Type:     AssertEpochRoundTrip,
				Expected: fmt.Sprintf("MsToDays(DaysToMs(%d)) == %d", days, days),
				Actual:   fmt.Sprintf("%d", got),
			}
		}
	}
	return nil
}
