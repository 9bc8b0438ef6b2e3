package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
name: sample
description: a sample scenario
args: [index, print]
input: |
  #index[1, k]
  a
`)
	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", s.Name)
	assert.Equal(t, []string{"index", "print"}, s.Args)
	assert.Equal(t, "#index[1, k]\na\n", s.Input)
}

func TestLoadScenarioRejectsUnknownFields(t *testing.T) {
	path := writeScenario(t, `
name: sample
args: [index, print]
inptu: typo
`)
	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestLoadScenarioRequiresNameAndArgs(t *testing.T) {
	_, err := LoadScenario(writeScenario(t, "args: [index, print]\n"))
	assert.ErrorContains(t, err, "name is required")

	_, err = LoadScenario(writeScenario(t, "name: sample\n"))
	assert.ErrorContains(t, err, "args are required")
}

func TestRun(t *testing.T) {
	result, err := Run(&Scenario{
		Name:  "inline",
		Args:  []string{"index", "numeric", "0", "3"},
		Input: "",
	})
	require.NoError(t, err)
	assert.Equal(t, "-\n0\n1\n2\n", result.Output)

	id, err := uuid.Parse(result.RunID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestRunCommandError(t *testing.T) {
	_, err := Run(&Scenario{
		Name: "broken",
		Args: []string{"index", "numeric", "0", "3", "0"},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "broken")
}

func TestScenariosAgainstGolden(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			require.NoError(t, RunWithGolden(t, s))
		})
	}
}
