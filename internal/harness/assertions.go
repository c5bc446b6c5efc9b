package harness

import (
	"fmt"
	"strings"

	"github.com/fintab/deskstate/internal/value"
)

// AssertionError is returned when an assertion fails. It carries enough
// context to debug the failure without re-running the scenario.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Output   value.Object
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if data, err := value.MarshalCanonical(e.Output); err == nil {
		fmt.Fprintf(&buf, "\nSanitized output:\n  %s\n", data)
	}
	return buf.String()
}

func checkAssertion(result *Result, assertion Assertion) error {
	switch assertion.Type {
	case AssertTabPresent:
		return assertTabPresent(result, assertion)
	case AssertTabAbsent:
		return assertTabAbsent(result, assertion)
	case AssertKeysKept:
		return assertKeysKept(result, assertion)
	case AssertKeysDropped:
		return assertKeysDropped(result, assertion)
	case AssertTabCount:
		return assertTabCount(result, assertion)
	default:
		// Unreachable for validated scenarios
		return fmt.Errorf("unknown assertion type %q", assertion.Type)
	}
}

func assertTabPresent(result *Result, assertion Assertion) error {
	if _, ok := result.Tab(assertion.Tab); !ok {
		return &AssertionError{
			Type:     assertion.Type,
			Expected: fmt.Sprintf("tab %q present in sanitized output", assertion.Tab),
			Actual:   fmt.Sprintf("tab %q absent", assertion.Tab),
			Output:   result.Output,
		}
	}
	return nil
}

func assertTabAbsent(result *Result, assertion Assertion) error {
	if _, ok := result.Output[assertion.Tab]; ok {
		return &AssertionError{
			Type:     assertion.Type,
			Expected: fmt.Sprintf("tab %q absent from sanitized output", assertion.Tab),
			Actual:   fmt.Sprintf("tab %q present", assertion.Tab),
			Output:   result.Output,
		}
	}
	return nil
}

func assertKeysKept(result *Result, assertion Assertion) error {
	tab, ok := result.Tab(assertion.Tab)
	if !ok {
		return &AssertionError{
			Type:     assertion.Type,
			Expected: fmt.Sprintf("tab %q with keys %v", assertion.Tab, assertion.Keys),
			Actual:   fmt.Sprintf("tab %q absent", assertion.Tab),
			Output:   result.Output,
		}
	}
	for _, key := range assertion.Keys {
		if _, present := tab[key]; !present {
			return &AssertionError{
				Type:     assertion.Type,
				Expected: fmt.Sprintf("key %q kept in tab %q", key, assertion.Tab),
				Actual:   fmt.Sprintf("key %q missing; surviving keys: %v", key, tab.SortedKeys()),
				Output:   result.Output,
			}
		}
	}
	return nil
}

// assertKeysDropped passes when none of the listed keys survive. A tab
// that is absent entirely counts as all keys dropped.
func assertKeysDropped(result *Result, assertion Assertion) error {
	tab, ok := result.Tab(assertion.Tab)
	if !ok {
		return nil
	}
	for _, key := range assertion.Keys {
		if _, present := tab[key]; present {
			return &AssertionError{
				Type:     assertion.Type,
				Expected: fmt.Sprintf("key %q dropped from tab %q", key, assertion.Tab),
				Actual:   fmt.Sprintf("key %q survived", key),
				Output:   result.Output,
			}
		}
	}
	return nil
}

func assertTabCount(result *Result, assertion Assertion) error {
	if got := len(result.Output); got != assertion.Count {
		return &AssertionError{
			Type:     assertion.Type,
			Expected: fmt.Sprintf("%d surviving tab(s)", assertion.Count),
			Actual:   fmt.Sprintf("%d surviving tab(s)", got),
			Output:   result.Output,
		}
	}
	return nil
}
