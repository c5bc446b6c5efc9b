package harness

import (
	"github.com/fintab/deskstate/internal/sanitize"
	"github.com/fintab/deskstate/internal/value"
)

// Result holds the sanitized output for a scenario run.
type Result struct {
	// Output is the sanitized workspace mapping. Every entry is a
	// value.Object of surviving keys.
	Output value.Object
}

// Tab returns the sanitized state for a tab, and whether it survived.
func (r *Result) Tab(tabID string) (value.Object, bool) {
	v, ok := r.Output[tabID]
	if !ok {
		return nil, false
	}
	obj, ok := v.(value.Object)
	return obj, ok
}

// Run sanitizes the scenario's workspace. The sanitizer itself cannot
// fail, so Run has no error path; callers check assertions afterwards.
func Run(scenario *Scenario) *Result {
	input := value.FromAny(scenario.Workspace)
	return &Result{Output: sanitize.Workspace(input)}
}

// Check evaluates every assertion against the result, returning the
// first failure as an *AssertionError, or nil when all pass.
func Check(scenario *Scenario, result *Result) error {
	for _, assertion := range scenario.Assertions {
		if err := checkAssertion(result, assertion); err != nil {
			return err
		}
	}
	return nil
}
