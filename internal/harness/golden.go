package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/fintab/deskstate/internal/value"
)

// RunWithGolden runs a scenario and compares its canonical sanitized
// output against a golden file in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files are the source of truth for expected sanitizer output;
// any behavioral drift in the allowlists, classifier, or credential
// heuristics shows up here as a byte diff.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result := Run(scenario)
	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an existing result against the golden file for
// scenarioName, without re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	snapshot := value.Object{
		"scenario_name": value.String(scenarioName),
		"sanitized":     result.Output,
	}
	data, err := value.MarshalCanonical(snapshot)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}
