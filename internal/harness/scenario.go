// Package harness runs end-to-end scenarios through the command tree and
// compares their rendered output against golden files.
package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/quarrydata/slate/internal/cli"
)

// Scenario defines one end-to-end case: a command invocation plus the
// descriptor blocks it reads from standard input.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario exercises.
	Description string `yaml:"description,omitempty"`

	// Args is the full command line, e.g. ["table", "stack"].
	Args []string `yaml:"args"`

	// Input holds the descriptor blocks fed to standard input.
	Input string `yaml:"input,omitempty"`
}

// Result captures one scenario execution.
type Result struct {
	// RunID is a time-sortable UUIDv7 identifying this execution.
	RunID string

	// Output is everything the command rendered.
	Output string
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected so typos fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	if len(s.Args) == 0 {
		return nil, fmt.Errorf("scenario %s: args are required", path)
	}
	return &s, nil
}

// LoadScenarios loads every *.yaml scenario under dir, sorted by file
// name for deterministic test order.
func LoadScenarios(dir string) ([]*Scenario, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	scenarios := make([]*Scenario, 0, len(matches))
	for _, path := range matches {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// Run executes the scenario through a fresh command tree, capturing the
// rendered output. Errors from the command surface as Run errors.
func Run(s *Scenario) (*Result, error) {
	cmd := cli.NewRootCommand()
	cmd.SetArgs(s.Args)
	cmd.SetIn(strings.NewReader(s.Input))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if err := cmd.Execute(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	return &Result{
		RunID:  uuid.Must(uuid.NewV7()).String(),
		Output: out.String(),
	}, nil
}
