// Package sanitize filters untrusted per-tab workspace state before it
// crosses the persistence boundary.
//
// The filter is allowlist-driven and layered: a key must be allowlisted
// for its tab, must not resemble a credential by name, must hold a safe
// primitive (or homogeneous primitive array), and, for strings, must not
// resemble a credential by shape. Every rejection is a silent omission -
// the sanitizer never errors and never logs, because malformed or
// malicious input must not be able to crash or noisily degrade a save or
// import. Callers cannot distinguish "field was absent" from "field was
// rejected".
//
// The allowlist AND the key-name heuristic both apply even though curated
// allowlists never contain credential-like names. Defense in depth: a
// future allowlist mistake (say, an apiToken entry) is still blocked.
package sanitize
