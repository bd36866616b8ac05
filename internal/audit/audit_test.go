package audit

import (
	"context"
	"testing"
	"time"

	"github.com/mportesi/catering/internal/menu"
	"github.com/mportesi/catering/internal/storage"
	"github.com/mportesi/catering/internal/user"
)

// memoryStore collects appended entries.
type memoryStore struct {
	entries []storage.AuditEntry
}

func (m *memoryStore) AppendAuditEntry(ctx context.Context, entry storage.AuditEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memoryStore) ListAuditEntries(ctx context.Context, limit int) ([]storage.AuditEntry, error) {
	return m.entries, nil
}

func TestRecorderCapturesActorAndAction(t *testing.T) {
	store := &memoryStore{}
	session := user.NewSingleSession()
	chef := user.New("marianna", user.RoleChef)
	chef.SetID(1)
	session.SetCurrentUser(chef)

	rec := NewRecorder(store, session)
	fixed := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	rec.SetClock(func() time.Time { return fixed })

	m := menu.New(chef, "Spring Gala")
	m.SetID(7)
	if err := rec.MenuCreated(context.Background(), m); err != nil {
		t.Fatalf("MenuCreated error = %v", err)
	}

	if len(store.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(store.entries))
	}
	entry := store.entries[0]
	if entry.Action != ActionMenuCreated {
		t.Fatalf("action = %q, want %q", entry.Action, ActionMenuCreated)
	}
	if entry.Actor != "marianna" {
		t.Fatalf("actor = %q, want marianna", entry.Actor)
	}
	if entry.EntityKind != "menu" || entry.EntityID != 7 {
		t.Fatalf("entity = %s/%d, want menu/7", entry.EntityKind, entry.EntityID)
	}
	if !entry.Timestamp.Equal(fixed) {
		t.Fatalf("timestamp = %v, want %v", entry.Timestamp, fixed)
	}
	if entry.ID == "" {
		t.Fatalf("entry id is empty")
	}
}

func TestRecorderBlankActorWithoutSession(t *testing.T) {
	store := &memoryStore{}
	rec := NewRecorder(store, nil)

	m := menu.New(nil, "Anonymous menu")
	if err := rec.MenuDeleted(context.Background(), m); err != nil {
		t.Fatalf("MenuDeleted error = %v", err)
	}
	if store.entries[0].Actor != "" {
		t.Fatalf("actor = %q, want blank", store.entries[0].Actor)
	}
}

func TestRecorderEntryIDsAreUnique(t *testing.T) {
	store := &memoryStore{}
	rec := NewRecorder(store, nil)
	m := menu.New(nil, "Menu")

	for i := 0; i < 5; i++ {
		if err := rec.TitleChanged(context.Background(), m); err != nil {
			t.Fatalf("TitleChanged error = %v", err)
		}
	}
	seen := make(map[string]bool)
	for _, entry := range store.entries {
		if seen[entry.ID] {
			t.Fatalf("duplicate entry id %q", entry.ID)
		}
		seen[entry.ID] = true
	}
}
