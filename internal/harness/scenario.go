package harness

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: a sequence of engine
// operations with expected outcomes, followed by property assertions.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// RunToken is hashed into every step ID. Defaults to
	// testutil.DefaultRunToken.
	RunToken string `yaml:"run_token,omitempty"`

	// Now is the Unix-epoch millisecond instant returned by the "now" op.
	Now *int64 `yaml:"now,omitempty"`

	// Steps run in order; each records one trace entry.
	Steps []Step `yaml:"steps"`

	// Assertions are evaluated after all steps.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step invokes one engine operation.
type Step struct {
	// Op names the operation, e.g. "from_unix".
	Op string `yaml:"op"`

	// Args holds the integer arguments of the operation.
	Args map[string]int64 `yaml:"args,omitempty"`

	// Expect is optional. Without it the step only has to succeed.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect specifies the expected outcome of a step. At most one of Error and
// Result is set.
type Expect struct {
	// Error is the expected range error code, e.g. "OUT_OF_RANGE_TRIAD".
	Error string `yaml:"error,omitempty"`

	// Result is compared against the op's result. Maps are subset matches.
	Result any `yaml:"result,omitempty"`
}

// Assertion checks a property of the trace or of the engine.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Op is the operation counted by op_count.
	Op string `yaml:"op,omitempty"`

	// Count is the expected count for op_count and leap_count.
	Count int `yaml:"count,omitempty"`

	// From and To bound the half-open range scanned by leap_count (years)
	// and doy_round_trip (days since the UCC epoch).
	From int64 `yaml:"from,omitempty"`
	To   int64 `yaml:"to,omitempty"`

	// Values are the inputs of epoch_round_trip.
	Values []int64 `yaml:"values,omitempty"`
}

// Assertion type constants.
const (
	AssertOpCount        = "op_count"
	AssertLeapCount      = "leap_count"
	AssertDoyRoundTrip   = "doy_round_trip"
	AssertEpochRoundTrip = "epoch_round_trip"
)

// maxRangeSpan bounds the ranges scanned by leap_count and doy_round_trip.
const maxRangeSpan = 1_000_000

// LoadScenario reads, parses and validates a scenario YAML file.
// Unknown fields are rejected so that typos surface as errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(step); err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}
	}
	for i := range s.Assertions {
		if err := validateAssertion(&s.Assertions[i]); err != nil {
			return fmt.Errorf("assertions[%d]: %w", i, err)
		}
	}
	return nil
}

func validateStep(step Step) error {
	if step.Op == "" {
		return fmt.Errorf("op is required")
	}
	spec, ok := operations[step.Op]
	if !ok {
		return fmt.Errorf("unknown op %q (valid: %s)", step.Op, strings.Join(Operations(), ", "))
	}
	for _, name := range spec.required {
		if _, ok := step.Args[name]; !ok {
			return fmt.Errorf("%s: missing arg %q", step.Op, name)
		}
	}
	for name := range step.Args {
		if !slices.Contains(spec.required, name) && !slices.Contains(spec.optional, name) {
			return fmt.Errorf("%s: unknown arg %q", step.Op, name)
		}
	}
	if step.Expect != nil && step.Expect.Error != "" && step.Expect.Result != nil {
		return fmt.Errorf("expect: error and result are mutually exclusive")
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("type is required")
	case AssertOpCount:
		if _, ok := operations[a.Op]; !ok {
			return fmt.Errorf("op_count: unknown op %q (valid: %s)", a.Op, strings.Join(Operations(), ", "))
		}
		if a.Count < 0 {
			return fmt.Errorf("op_count: count must be non-negative")
		}
	case AssertLeapCount, AssertDoyRoundTrip:
		if a.To <= a.From {
			return fmt.Errorf("%s: to (%d) must be greater than from (%d)", a.Type, a.To, a.From)
		}
		if a.To-a.From > maxRangeSpan {
			return fmt.Errorf("%s: range spans more than %d values", a.Type, maxRangeSpan)
		}
		if a.Count < 0 {
			return fmt.Errorf("%s: count must be non-negative", a.Type)
		}
	case AssertEpochRoundTrip:
		if len(a.Values) == 0 {
			return fmt.Errorf("epoch_round_trip: values list is required")
		}
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}
