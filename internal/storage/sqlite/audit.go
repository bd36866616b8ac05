package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mportesi/catering/internal/storage"
)

// AppendAuditEntry writes one audit entry.
func (s *Store) AppendAuditEntry(ctx context.Context, entry storage.AuditEntry) error {
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO audit_log (id, ts, actor, action, entity_kind, entity_id, detail) VALUES (?, ?, ?, ?, ?, ?, ?)",
		entry.ID, entry.Timestamp.UTC().UnixMilli(), entry.Actor, entry.Action,
		entry.EntityKind, entry.EntityID, entry.Detail); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// ListAuditEntries returns the most recent entries, newest first. A limit
// of zero or less returns everything.
func (s *Store) ListAuditEntries(ctx context.Context, limit int) ([]storage.AuditEntry, error) {
	query := "SELECT id, ts, actor, action, entity_kind, entity_id, detail FROM audit_log ORDER BY ts DESC, id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	var entries []storage.AuditEntry
	for rows.Next() {
		var entry storage.AuditEntry
		var ts int64
		if err := rows.Scan(&entry.ID, &ts, &entry.Actor, &entry.Action,
			&entry.EntityKind, &entry.EntityID, &entry.Detail); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entry.Timestamp = time.UnixMilli(ts).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, nil
}
