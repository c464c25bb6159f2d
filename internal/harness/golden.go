package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/uccal/internal/canon"
	"github.com/roach88/uccal/internal/testutil"
)

// Snapshot returns the canonical JSON trace snapshot of a run. Golden files
// hold exactly these bytes.
func Snapshot(scenario *Scenario, result *Result) ([]byte, error) {
	trace := make([]any, len(result.Trace))
	for i, e := range result.Trace {
		trace[i] = e.canonical()
	}
	runToken := scenario.RunToken
	if runToken == "" {
		runToken = testutil.DefaultRunToken
	}
	return canon.Marshal(map[string]any{
		"scenario_name": scenario.Name,
		"run_token":     runToken,
		"trace":         trace,
	})
}

// RunWithGolden executes a scenario and compares its trace against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against its golden file.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	data, err := Snapshot(scenario, result)
	if err != nil {
		return err
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)
	return nil
}

// GoldenPath returns the golden file of a scenario file: golden/<base>.golden
// next to it.
func GoldenPath(scenarioFile string) string {
	base := filepath.Base(scenarioFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(scenarioFile), "golden", name+".golden")
}

// WriteGolden writes the snapshot of a run to path, creating its directory.
func WriteGolden(path string, scenario *Scenario, result *Result) error {
	data, err := Snapshot(scenario, result)
	if err != nil {
		return fmt.Errorf("failed to marshal trace: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}
	return nil
}

// CompareGolden reports whether the snapshot of a run equals the golden
// file at path.
func CompareGolden(path string, scenario *Scenario, result *Result) (bool, error) {
	want, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read golden file: %w", err)
	}
	got, err := Snapshot(scenario, result)
	if err != nil {
		return false, fmt.Errorf("failed to marshal current trace: %w", err)
	}
	return bytes.Equal(bytes.TrimSpace(want), got), nil
}
