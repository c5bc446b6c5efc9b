package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fintab/deskstate/internal/value"
	"github.com/fintab/deskstate/internal/workspace"
)

// GetSnapshot loads a named snapshot with its full tab mapping.
// Returns ErrNotFound if no snapshot has that name.
func (s *Store) GetSnapshot(ctx context.Context, name string) (*workspace.Snapshot, error) {
	var (
		snap      workspace.Snapshot
		createdAt string
		updatedAt string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, content_hash, created_at, updated_at
		FROM workspaces
		WHERE name = ?
	`, name).Scan(&snap.ID, &snap.Name, &snap.ContentHash, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get snapshot %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot %q: %w", name, err)
	}

	if snap.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("get snapshot %q: %w", name, err)
	}
	if snap.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("get snapshot %q: %w", name, err)
	}

	snap.Tabs, err = s.readTabs(ctx, snap.ID)
	if err != nil {
		return nil, fmt.Errorf("get snapshot %q: %w", name, err)
	}
	return &snap, nil
}

// readTabs returns the tab mapping for a workspace id. Rows are read in
// deterministic order (tab_id COLLATE BINARY) even though the result is
// a map, so failures reproduce stably.
func (s *Store) readTabs(ctx context.Context, workspaceID string) (value.Object, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT tab_id, state
		FROM workspace_tabs
		WHERE workspace_id = ?
		ORDER BY tab_id COLLATE BINARY ASC
	`, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("query tabs: %w", err)
	}
	defer rows.Close()

	tabs := value.Object{}
	for rows.Next() {
		var tabID, stateJSON string
		if err := rows.Scan(&tabID, &stateJSON); err != nil {
			return nil, fmt.Errorf("scan tab: %w", err)
		}
		state, err := value.FromJSON([]byte(stateJSON))
		if err != nil {
			return nil, fmt.Errorf("tab %q: %w", tabID, err)
		}
		tabs[tabID] = state
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tabs: %w", err)
	}
	return tabs, nil
}

// ListSnapshots returns metadata for all snapshots, ordered by name.
// Returns an empty slice (not nil) when the store is empty.
func (s *Store) ListSnapshots(ctx context.Context) ([]workspace.SnapshotInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT w.id, w.name, w.content_hash, w.created_at, w.updated_at,
		       (SELECT COUNT(*) FROM workspace_tabs t WHERE t.workspace_id = w.id)
		FROM workspaces w
		ORDER BY w.name COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	infos := []workspace.SnapshotInfo{}
	for rows.Next() {
		var (
			info      workspace.SnapshotInfo
			createdAt string
			updatedAt string
		)
		if err := rows.Scan(&info.ID, &info.Name, &info.ContentHash, &createdAt, &updatedAt, &info.TabCount); err != nil {
			return nil, fmt.Errorf("list snapshots: scan: %w", err)
		}
		if info.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("list snapshots: %w", err)
		}
		if info.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("list snapshots: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots: iterate: %w", err)
	}
	return infos, nil
}
