package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/uccal/internal/canon"
	"github.com/roach88/uccal/internal/testutil"
	"github.com/roach88/uccal/internal/ucc"
)

// DefaultNow is the clock reading, in Unix milliseconds, used by scenarios
// that call "now" without setting one: 2024-03-20T00:00:00Z, a leap day.
const DefaultNow int64 = 1710892800000

// Harness executes scenario steps against the engine with a fixed clock and
// a sequence counter.
type Harness struct {
	clock    *testutil.FixedClock
	seq      *testutil.Sequence
	runToken string
	logger   *slog.Logger
}

// Option configures a run.
type Option func(*Harness)

// WithLogger sets the logger. Runs are silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// Run executes a scenario and returns the result.
//
// Expectation and assertion failures are reported in the result; an error
// is returned only when a trace entry cannot be hashed.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	now := DefaultNow
	if scenario.Now != nil {
		now = *scenario.Now
	}

	tokens := testutil.NewFixedTokenGenerator(scenario.RunToken)
	h := &Harness{
		clock:    testutil.NewFixedClockUnixMilli(now),
		seq:      testutil.NewSequence(),
		runToken: tokens.Generate(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		entry, err := h.execute(step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		result.Trace = append(result.Trace, entry)

		if msg := checkExpect(step, entry); msg != "" {
			result.AddError(fmt.Sprintf("steps[%d] %s: %s", i, step.Op, msg))
		}

		h.logger.Debug("step completed",
			"scenario", scenario.Name,
			"step", i,
			"op", step.Op,
			"id", entry.ID,
			"error", entry.Error,
		)
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	h.logger.Info("scenario completed",
		"scenario", scenario.Name,
		"steps", len(result.Trace),
		"pass", result.Pass,
	)
	return result, nil
}

// execute runs one step and records its trace entry. The sequence number
// is drawn exactly once per step.
func (h *Harness) execute(step Step) (TraceEntry, error) {
	spec, ok := operations[step.Op]
	if !ok {
		return TraceEntry{}, fmt.Errorf("unknown op %q", step.Op)
	}

	entry := TraceEntry{
		Seq:  h.seq.Next(),
		Op:   step.Op,
		Args: step.Args,
	}

	value, err := spec.run(h, step.Args)
	if err != nil {
		entry.Error = errorCode(err)
	} else {
		entry.Result = value
	}

	hashed := entry.canonical()
	hashed["run_token"] = h.runToken
	id, err := canon.Hash(canon.DomainStep, hashed)
	if err != nil {
		return TraceEntry{}, err
	}
	entry.ID = id
	return entry, nil
}

// errorCode returns the range error code of err, or its message for other
// errors.
func errorCode(err error) string {
	if code := ucc.ErrorCode(err); code != "" {
		return string(code)
	}
	return err.Error()
}

// checkExpect compares a trace entry against the step's expectation and
// returns a failure message, or "" when it holds.
func checkExpect(step Step, entry TraceEntry) string {
	var want Expect
	if step.Expect != nil {
		want = *step.Expect
	}

	if want.Error != "" {
		if entry.Error != want.Error {
			return fmt.Sprintf("expected error %s, got %s", want.Error, describe(entry))
		}
		return ""
	}
	if entry.Error != "" {
		return fmt.Sprintf("unexpected error %s", entry.Error)
	}
	if want.Result == nil {
		return ""
	}

	ok, err := matchResult(entry.Result, want.Result)
	if err != nil {
		return fmt.Sprintf("invalid expected result: %v", err)
	}
	if !ok {
		return fmt.Sprintf("expected result %v, got %v", want.Result, entry.Result)
	}
	return ""
}

func describe(e TraceEntry) string {
	if e.Error != "" {
		return e.Error
	}
	return fmt.Sprintf("result %v", e.Result)
}

// matchResult reports whether actual matches expected. Maps match when every
// expected key is present with an equal value; other values are compared by
// their canonical encoding.
func matchResult(actual, expected any) (bool, error) {
	if want, ok := expected.(map[string]any); ok {
		got, ok := actual.(map[string]any)
		if !ok {
			return false, nil
		}
		for k, v := range want {
			av, present := got[k]
			if !present {
				return false, nil
			}
			match, err := matchResult(av, v)
			if err != nil || !match {
				return match, err
			}
		}
		return true, nil
	}

	wantJSON, err := canon.Marshal(expected)
	if err != nil {
		return false, err
	}
	gotJSON, err := canon.Marshal(actual)
	if err != nil {
		return false, err
	}
	return string(wantJSON) == string(gotJSON), nil
}
