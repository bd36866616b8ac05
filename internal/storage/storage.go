// Package storage defines the contracts between the domain and its
// persistence. The write direction is covered by the per-aggregate
// receiver interfaces (menu.Receiver, kitchen.Receiver, event.Receiver)
// and the inline stores (shift.Store); this package holds the read
// direction — loaders reconstructing aggregates into their in-memory
// shapes — plus the audit write contract.
//
// Loaders are synchronous and total: absence yields a nil aggregate (or an
// empty slice) and a nil error. Errors are reserved for real failures.
package storage

import (
	"context"
	"time"

	"github.com/mportesi/catering/internal/event"
	"github.com/mportesi/catering/internal/kitchen"
	"github.com/mportesi/catering/internal/menu"
	"github.com/mportesi/catering/internal/recipe"
	"github.com/mportesi/catering/internal/shift"
	"github.com/mportesi/catering/internal/user"
)

// MenuLoader reconstructs menu aggregates, sections and items included.
type MenuLoader interface {
	LoadMenu(ctx context.Context, id int64) (*menu.Menu, error)
	LoadAllMenus(ctx context.Context) ([]*menu.Menu, error)
}

// RecipeLoader reconstructs recipes with their preparations.
type RecipeLoader interface {
	LoadRecipe(ctx context.Context, id int64) (*recipe.Recipe, error)
	LoadAllRecipes(ctx context.Context) ([]*recipe.Recipe, error)
}

// EventLoader reconstructs events with their services and any approved
// menus.
type EventLoader interface {
	LoadEvent(ctx context.Context, id int64) (*event.Event, error)
	LoadAllEvents(ctx context.Context) ([]*event.Event, error)
}

// SheetLoader reconstructs summary sheets with tasks and assignments.
type SheetLoader interface {
	LoadSheet(ctx context.Context, id int64) (*kitchen.SummarySheet, error)
	LoadSheetsByService(ctx context.Context, serviceID int64) ([]*kitchen.SummarySheet, error)
}

// ShiftLoader reconstructs shifts with their booked users.
type ShiftLoader interface {
	LoadShift(ctx context.Context, id int64) (*shift.Shift, error)
	LoadAllShifts(ctx context.Context) ([]*shift.Shift, error)
}

// UserStore looks up and creates users. Lookups return nil on absence.
type UserStore interface {
	LoadUser(ctx context.Context, id int64) (*user.User, error)
	LoadUserByUsername(ctx context.Context, username string) (*user.User, error)
	CreateUser(ctx context.Context, u *user.User) error
}

// AuditEntry is one line of the durable operational history, appended by
// the audit receiver after each domain mutation.
type AuditEntry struct {
	// ID is a URL-safe identifier assigned by the emitter.
	ID string
	// Timestamp is when the mutation was recorded.
	Timestamp time.Time
	// Actor is the username behind the mutation, empty when unknown.
	Actor string
	// Action names the mutation kind, e.g. "menu.section_added".
	Action string
	// EntityKind and EntityID locate the affected entity.
	EntityKind string
	EntityID   int64
	// Detail carries free-text context for the entry.
	Detail string
}

// AuditStore appends and reads back audit entries.
type AuditStore interface {
	AppendAuditEntry(ctx context.Context, entry AuditEntry) error
	ListAuditEntries(ctx context.Context, limit int) ([]AuditEntry, error)
}
