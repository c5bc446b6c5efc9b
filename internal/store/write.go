package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintab/deskstate/internal/value"
	"github.com/fintab/deskstate/internal/workspace"
)

// SaveSnapshot persists a sanitized tab mapping under the given name,
// replacing any existing snapshot of that name in one transaction.
//
// Overwrites preserve the snapshot ID and created_at. A save whose
// content hash equals the stored hash is a no-op: updated_at does not
// move and no rows are rewritten.
//
// Callers must pass sanitized tabs (every entry a value.Object produced
// by the sanitizer); the store serializes them as canonical JSON and
// does not re-filter.
func (s *Store) SaveSnapshot(ctx context.Context, name string, tabs value.Object) (*workspace.Snapshot, error) {
	if name == "" {
		return nil, fmt.Errorf("save snapshot: name must not be empty")
	}

	hash, err := workspace.ContentHash(tabs)
	if err != nil {
		return nil, fmt.Errorf("save snapshot %q: %w", name, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("save snapshot %q: begin: %w", name, err)
	}
	defer tx.Rollback()

	snap := &workspace.Snapshot{
		Name:        name,
		Tabs:        tabs,
		ContentHash: hash,
	}

	var existingHash, createdAt string
	err = tx.QueryRowContext(ctx, `
		SELECT id, content_hash, created_at FROM workspaces WHERE name = ?
	`, name).Scan(&snap.ID, &existingHash, &createdAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		now := s.now()
		snap.ID = uuid.NewString()
		snap.CreatedAt = now
		snap.UpdatedAt = now
		_, err = tx.ExecContext(ctx, `
			INSERT INTO workspaces (id, name, content_hash, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`, snap.ID, name, hash, formatTime(now), formatTime(now))
		if err != nil {
			return nil, fmt.Errorf("save snapshot %q: insert: %w", name, err)
		}
	case err != nil:
		return nil, fmt.Errorf("save snapshot %q: lookup: %w", name, err)
	default:
		snap.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("save snapshot %q: %w", name, err)
		}
		if existingHash == hash {
			// Identical content; nothing to rewrite
			var updatedAt string
			if err := tx.QueryRowContext(ctx, `
				SELECT updated_at FROM workspaces WHERE id = ?
			`, snap.ID).Scan(&updatedAt); err != nil {
				return nil, fmt.Errorf("save snapshot %q: read updated_at: %w", name, err)
			}
			if snap.UpdatedAt, err = parseTime(updatedAt); err != nil {
				return nil, fmt.Errorf("save snapshot %q: %w", name, err)
			}
			return snap, tx.Commit()
		}

		snap.UpdatedAt = s.now()
		_, err = tx.ExecContext(ctx, `
			UPDATE workspaces SET content_hash = ?, updated_at = ? WHERE id = ?
		`, hash, formatTime(snap.UpdatedAt), snap.ID)
		if err != nil {
			return nil, fmt.Errorf("save snapshot %q: update: %w", name, err)
		}
		_, err = tx.ExecContext(ctx, `
			DELETE FROM workspace_tabs WHERE workspace_id = ?
		`, snap.ID)
		if err != nil {
			return nil, fmt.Errorf("save snapshot %q: clear tabs: %w", name, err)
		}
	}

	for _, tabID := range tabs.SortedKeys() {
		stateJSON, err := value.MarshalCanonical(tabs[tabID])
		if err != nil {
			return nil, fmt.Errorf("save snapshot %q: marshal tab %q: %w", name, tabID, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO workspace_tabs (workspace_id, tab_id, state)
			VALUES (?, ?, ?)
		`, snap.ID, tabID, string(stateJSON))
		if err != nil {
			return nil, fmt.Errorf("save snapshot %q: insert tab %q: %w", name, tabID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("save snapshot %q: commit: %w", name, err)
	}
	return snap, nil
}

// DeleteSnapshot removes a named snapshot and its tab rows.
// Returns ErrNotFound if no snapshot has that name.
func (s *Store) DeleteSnapshot(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM workspaces WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete snapshot %q: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete snapshot %q: %w", name, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete snapshot %q: %w", name, ErrNotFound)
	}
	return nil
}
