package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Scenario describes one sanitization case: an untrusted input workspace
// and the assertions its sanitized output must satisfy.
type Scenario struct {
	// Name identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description says what behavior the scenario pins.
	Description string `yaml:"description"`

	// Workspace is the untrusted input, tab identifier to candidate state.
	Workspace map[string]any `yaml:"workspace"`

	// Assertions are checked against the sanitized output.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion is one expectation about sanitized output.
type Assertion struct {
	// Type selects the check; see the Assert* constants.
	Type string `yaml:"type"`

	// Tab names the tab under test (all types except tab_count).
	Tab string `yaml:"tab,omitempty"`

	// Keys lists state keys (keys_kept, keys_dropped).
	Keys []string `yaml:"keys,omitempty"`

	// Count is the expected number of surviving tabs (tab_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertTabPresent  = "tab_present"
	AssertTabAbsent   = "tab_absent"
	AssertKeysKept    = "keys_kept"
	AssertKeysDropped = "keys_dropped"
	AssertTabCount    = "tab_count"
)

var validAssertionTypes = []string{
	AssertTabPresent, AssertTabAbsent, AssertKeysKept, AssertKeysDropped, AssertTabCount,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &scenario, nil
}

// LoadScenarioDir loads every *.yaml scenario in a directory, sorted by
// file name for deterministic test ordering.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenario dir: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files found in %s", dir)
	}
	slices.Sort(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Workspace == nil {
		return fmt.Errorf("workspace mapping is required")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, a := range s.Assertions {
		if !slices.Contains(validAssertionTypes, a.Type) {
			return fmt.Errorf("assertion %d: unknown type %q", i, a.Type)
		}
		switch a.Type {
		case AssertTabCount:
			if a.Count < 0 {
				return fmt.Errorf("assertion %d: count must not be negative", i)
			}
		case AssertKeysKept, AssertKeysDropped:
			if a.Tab == "" {
				return fmt.Errorf("assertion %d: tab is required for %s", i, a.Type)
			}
			if len(a.Keys) == 0 {
				return fmt.Errorf("assertion %d: keys list is required for %s", i, a.Type)
			}
		default:
			if a.Tab == "" {
				return fmt.Errorf("assertion %d: tab is required for %s", i, a.Type)
			}
		}
	}
	return nil
}
