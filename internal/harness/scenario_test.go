package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	path := writeScenario(t, `
name: basic
description: "basic scenario"
run_token: tok-1
now: 0
steps:
  - op: from_unix
    args: { unix: 0 }
    expect:
      result: { year: 13470 }
  - op: doy_to_triad
    args: { doy: 400 }
    expect:
      error: OUT_OF_RANGE_DAY_OF_YEAR
assertions:
  - type: op_count
    op: from_unix
    count: 1
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "basic", s.Name)
	assert.Equal(t, "tok-1", s.RunToken)
	require.NotNil(t, s.Now)
	assert.Equal(t, int64(0), *s.Now)
	require.Len(t, s.Steps, 2)
	assert.Equal(t, OpFromUnix, s.Steps[0].Op)
	assert.Equal(t, map[string]int64{"unix": 0}, s.Steps[0].Args)
	assert.Equal(t, map[string]any{"year": 13470}, s.Steps[0].Expect.Result)
	assert.Equal(t, "OUT_OF_RANGE_DAY_OF_YEAR", s.Steps[1].Expect.Error)
	require.Len(t, s.Assertions, 1)
	assert.Equal(t, 1, s.Assertions[0].Count)
}

func TestLoadScenario_FileNotFound(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: "typo"
step:
  - op: now
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing name",
			yaml: "description: d\nsteps: [{op: now}]\n",
			want: "name is required",
		},
		{
			name: "missing description",
			yaml: "name: n\nsteps: [{op: now}]\n",
			want: "description is required",
		},
		{
			name: "no steps",
			yaml: "name: n\ndescription: d\nsteps: []\n",
			want: "steps list is required",
		},
		{
			name: "unknown op",
			yaml: "name: n\ndescription: d\nsteps: [{op: to_mars}]\n",
			want: `unknown op "to_mars"`,
		},
		{
			name: "missing arg",
			yaml: "name: n\ndescription: d\nsteps: [{op: from_fields, args: {year: 1, triad: 1}}]\n",
			want: `missing arg "day"`,
		},
		{
			name: "unknown arg",
			yaml: "name: n\ndescription: d\nsteps: [{op: from_unix, args: {unix: 0, tz: 1}}]\n",
			want: `unknown arg "tz"`,
		},
		{
			name: "non-integer arg",
			yaml: "name: n\ndescription: d\nsteps: [{op: from_unix, args: {unix: soon}}]\n",
			want: "failed to parse YAML",
		},
		{
			name: "error and result",
			yaml: "name: n\ndescription: d\nsteps: [{op: doy_to_triad, args: {doy: 1}, expect: {error: X, result: 0}}]\n",
			want: "mutually exclusive",
		},
		{
			name: "unknown assertion",
			yaml: "name: n\ndescription: d\nsteps: [{op: now}]\nassertions: [{type: vibes}]\n",
			want: `unknown assertion type "vibes"`,
		},
		{
			name: "empty range",
			yaml: "name: n\ndescription: d\nsteps: [{op: now}]\nassertions: [{type: leap_count, from: 5, to: 5}]\n",
			want: "must be greater than from",
		},
		{
			name: "range too large",
			yaml: "name: n\ndescription: d\nsteps: [{op: now}]\nassertions: [{type: doy_round_trip, from: 0, to: 5000000}]\n",
			want: "range spans more than",
		},
		{
			name: "op_count unknown op",
			yaml: "name: n\ndescription: d\nsteps: [{op: now}]\nassertions: [{type: op_count, op: nope}]\n",
			want: `op_count: unknown op "nope"`,
		},
		{
			name: "epoch_round_trip without values",
			yaml: "name: n\ndescription: d\nsteps: [{op: now}]\nassertions: [{type: epoch_round_trip}]\n",
			want: "values list is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestOperations(t *testing.T) {
	ops := Operations()
	assert.Len(t, ops, 10)
	assert.Equal(t, OpDaysBeforeTriad, ops[0])
	assert.Equal(t, OpYearToDays, ops[len(ops)-1])
	assert.Contains(t, ops, OpNow)
	assert.IsIncreasing(t, ops)
}

func TestParseScenario_UnknownOpListsValidOps(t *testing.T) {
	_, err := ParseScenario([]byte("name: x\ndescription: d\nsteps:\n  - op: to_mars\n"))
	require.Error(t, err)
	for _, op := range Operations() {
		assert.Contains(t, err.Error(), op)
	}
}
