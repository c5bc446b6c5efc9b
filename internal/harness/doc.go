// Package harness runs declarative sanitization scenarios.
//
// A scenario is a YAML file describing an untrusted input workspace and
// assertions about what the sanitizer must keep or drop. Scenarios back
// two kinds of tests: assertion checks (tab present/absent, keys kept/
// dropped) and golden comparisons of the canonical sanitizer output via
// goldie fixtures under testdata/golden.
package harness
