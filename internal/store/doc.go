// Package store persists workspace snapshots in a local SQLite database.
//
// The store sits behind the sanitizer: rows only ever contain sanitized
// tab state, serialized as canonical JSON so that identical content is
// byte-identical on disk. Saves replace a snapshot's full tab set in one
// transaction; a save whose content hash matches the stored hash is a
// no-op that preserves updated_at.
package store
