package workspace

import (
	"time"

	"github.com/fintab/deskstate/internal/value"
)

// Snapshot is a named workspace persisted in the store. Tabs holds only
// sanitized state: every entry is a value.Object whose keys survived the
// sanitizer. The store never writes unsanitized rows.
type Snapshot struct {
	// ID is a UUID minted when the snapshot is first saved. It is stable
	// across overwrites of the same name.
	ID string

	// Name is the user-facing snapshot name, unique within a store.
	Name string

	// Tabs maps tab identifiers to sanitized tab state.
	Tabs value.Object

	// ContentHash is the domain-separated SHA-256 of the canonical JSON
	// encoding of Tabs. Identical content always has an identical hash.
	ContentHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SnapshotInfo is snapshot metadata without the tab payload, as returned
// by store listings.
type SnapshotInfo struct {
	ID          string
	Name        string
	ContentHash string
	TabCount    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
