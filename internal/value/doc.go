// Package value provides the tagged representation of untrusted workspace
// state for deskstate.
//
// Tab state arrives from the terminal UI or from imported workspace files
// and must be treated as hostile until the sanitizer has filtered it. This
// package contains type definitions and codecs only; policy (what is safe
// to persist) lives in internal/sanitize. All other internal packages
// import value; value imports nothing internal.
//
// Key design constraints:
//   - Value is sealed: exactly Null, String, Number, Bool, Array, Object,
//     and Opaque implement it, so classification is an exhaustive switch
//   - Canonical serialization is byte-stable for identical inputs (UTF-16
//     key order, NFC strings, no HTML escaping)
//   - Opaque values (functions, channels, arbitrary structs) are
//     representable but never serializable
package value
