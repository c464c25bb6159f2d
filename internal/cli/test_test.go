package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `name: cli_pass
description: "leap day and unix epoch"
steps:
  - op: from_unix
    args: { unix: 1710892800000 }
    expect:
      result: { full: "0 ZERO 13525" }
  - op: is_leap_year
    args: { year: 13525 }
    expect:
      result: true
assertions:
  - type: leap_count
    from: 0
    to: 33
    count: 8
`

const failingScenario = `name: cli_fail
description: "wrong expectation"
steps:
  - op: from_unix
    args: { unix: 0 }
    expect:
      result: { year: 1 }
`

func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestCmd(format string, args ...string) (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewTestCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestTestCommandMissingArgs(t *testing.T) {
	_, err := newTestCmd("text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestTestCommandNonExistentScenariosDir(t *testing.T) {
	_, err := newTestCmd("text", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "scenarios directory not found")
}

func TestTestCommandEmptyScenariosDir(t *testing.T) {
	buf, err := newTestCmd("text", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No scenarios found")
}

func TestTestCommandEmptyScenariosDirJSON(t *testing.T) {
	buf, err := newTestCmd("json", t.TempDir())
	require.NoError(t, err)

	var result TestResult
	resp := decodeResponse(t, buf.String(), &result)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 0, result.Total)
	assert.NotNil(t, result.Scenarios)
}

func TestTestCommandPassing(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "pass.yaml", passingScenario)

	buf, err := newTestCmd("text", dir)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "✓ cli_pass")
	assert.Contains(t, buf.String(), "1 passed, 0 failed, 1 total")
}

func TestTestCommandFailing(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "pass.yaml", passingScenario)
	writeScenario(t, dir, "fail.yaml", failingScenario)

	buf, err := newTestCmd("text", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "✗ cli_fail")
	assert.Contains(t, buf.String(), "1 passed, 1 failed, 2 total")
}

func TestTestCommandFailingJSON(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "fail.yaml", failingScenario)

	buf, err := newTestCmd("json", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var result TestResult
	resp := decodeResponse(t, buf.String(), &result)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeTestFailed, resp.Error.Code)
	require.Len(t, result.Scenarios, 1)
	assert.False(t, result.Scenarios[0].Pass)
	assert.NotEmpty(t, result.Scenarios[0].Errors)
}

func TestTestCommandFilter(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "pass.yaml", passingScenario)
	writeScenario(t, dir, "fail.yaml", failingScenario)

	buf, err := newTestCmd("text", dir, "--filter", "pa*")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1 passed, 0 failed, 1 total")
}

func TestTestCommandInvalidFilter(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "pass.yaml", passingScenario)

	_, err := newTestCmd("text", dir, "--filter", "[")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommandLoadError(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "broken.yaml", "name: broken\nsteps: [")

	buf, err := newTestCmd("text", dir)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "✗ broken.yaml")
	assert.Contains(t, buf.String(), "failed to load scenario")
}

func TestTestCommandGoldenUpdateAndCompare(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "pass.yaml", passingScenario)
	goldenPath := filepath.Join(dir, "golden", "pass.golden")

	_, err := newTestCmd("text", dir, "--update")
	require.NoError(t, err)
	require.FileExists(t, goldenPath)

	golden, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Contains(t, string(golden), `"scenario_name":"cli_pass"`)

	buf, err := newTestCmd("text", dir)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "✓ cli_pass")
}

func TestTestCommandGoldenMismatch(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "pass.yaml", passingScenario)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "golden"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "golden", "pass.golden"), []byte(`{"trace":[]}`), 0o644))

	buf, err := newTestCmd("text", dir)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "does not match golden file")
}

func TestTestCommandHarnessFixtures(t *testing.T) {
	dir := filepath.Join("..", "harness", "testdata", "scenarios")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Skip("harness scenarios not found")
	}

	buf, err := newTestCmd("text", dir)
	require.NoError(t, err, buf.String())
	assert.Contains(t, buf.String(), "✓ All scenarios passed")
}

func TestFindScenarioFilesSkipsGolden(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "a.yaml", passingScenario)
	writeScenario(t, dir, "b.yml", passingScenario)
	writeScenario(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "golden"), 0o755))
	writeScenario(t, filepath.Join(dir, "golden"), "c.yaml", passingScenario)

	files, err := findScenarioFiles(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yml")}, files)
}
