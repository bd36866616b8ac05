// Package audit records a durable operational history of domain
// mutations. The Recorder implements every receiver interface, so
// subscribing it to the managers after the storage receiver yields one
// audit entry per persisted mutation.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/mportesi/catering/internal/id"
	"github.com/mportesi/catering/internal/storage"
	"github.com/mportesi/catering/internal/user"
)

// Action names for audit entries, one per domain mutation.
const (
	ActionMenuCreated            = "menu.created"
	ActionMenuDeleted            = "menu.deleted"
	ActionMenuTitleChanged       = "menu.title_changed"
	ActionMenuPublishedChanged   = "menu.published_changed"
	ActionMenuFeaturesChanged    = "menu.features_changed"
	ActionSectionAdded           = "menu.section_added"
	ActionSectionRemoved         = "menu.section_removed"
	ActionSectionRenamed         = "menu.section_renamed"
	ActionSectionsReordered      = "menu.sections_reordered"
	ActionSectionItemsReordered  = "menu.section_items_reordered"
	ActionFreeItemsReordered     = "menu.free_items_reordered"
	ActionItemAdded              = "menu.item_added"
	ActionItemSectionChanged     = "menu.item_section_changed"
	ActionItemDescriptionChanged = "menu.item_description_changed"
	ActionItemRemoved            = "menu.item_removed"

	ActionEventCreated    = "event.created"
	ActionEventModified   = "event.modified"
	ActionEventDeleted    = "event.deleted"
	ActionServiceCreated  = "event.service_created"
	ActionServiceModified = "event.service_modified"
	ActionServiceDeleted  = "event.service_deleted"
	ActionMenuAssigned    = "event.menu_assigned"
	ActionMenuUnassigned  = "event.menu_removed"

	ActionSheetGenerated    = "kitchen.sheet_generated"
	ActionTaskAdded         = "kitchen.task_added"
	ActionTasksReordered    = "kitchen.tasks_reordered"
	ActionTaskChanged       = "kitchen.task_changed"
	ActionAssignmentAdded   = "kitchen.assignment_added"
	ActionAssignmentChanged = "kitchen.assignment_changed"
	ActionAssignmentDeleted = "kitchen.assignment_deleted"
)

// Recorder appends one audit entry per mutation it observes.
type Recorder struct {
	store   storage.AuditStore
	session user.Session
	now     func() time.Time
}

// NewRecorder creates a Recorder writing to store. session resolves the
// acting user; a nil session leaves the actor blank.
func NewRecorder(store storage.AuditStore, session user.Session) *Recorder {
	return &Recorder{store: store, session: session, now: time.Now}
}

// SetClock overrides the entry timestamp source. Used by tests.
func (r *Recorder) SetClock(now func() time.Time) { r.now = now }

func (r *Recorder) record(ctx context.Context, action, entityKind string, entityID int64, detail string) error {
	entryID, err := id.NewID()
	if err != nil {
		return fmt.Errorf("audit entry id: %w", err)
	}
	entry := storage.AuditEntry{
		ID:         entryID,
		Timestamp:  r.now(),
		Actor:      r.actor(ctx),
		Action:     action,
		EntityKind: entityKind,
		EntityID:   entityID,
		Detail:     detail,
	}
	if err := r.store.AppendAuditEntry(ctx, entry); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

// actor resolves the acting username, blank when no user is logged in.
func (r *Recorder) actor(ctx context.Context) string {
	if r.session == nil {
		return ""
	}
	u, err := r.session.CurrentUser(ctx)
	if err != nil || u == nil {
		return ""
	}
	return u.Username()
}
