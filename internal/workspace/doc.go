// Package workspace defines the persisted workspace model: named
// snapshots of sanitized per-tab state, their content-addressed hashes,
// and the versioned document format used for import and export files.
package workspace
