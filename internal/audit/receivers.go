package audit

import (
	"context"
	"fmt"

	"github.com/mportesi/catering/internal/event"
	"github.com/mportesi/catering/internal/kitchen"
	"github.com/mportesi/catering/internal/menu"
)

const (
	kindMenu       = "menu"
	kindSection    = "section"
	kindItem       = "item"
	kindEvent      = "event"
	kindService    = "service"
	kindSheet      = "sheet"
	kindTask       = "task"
	kindAssignment = "assignment"
)

// MenuCreated implements menu.Receiver.
func (r *Recorder) MenuCreated(ctx context.Context, m *menu.Menu) error {
	return r.record(ctx, ActionMenuCreated, kindMenu, m.ID(), m.Title())
}

func (r *Recorder) MenuDeleted(ctx context.Context, m *menu.Menu) error {
	return r.record(ctx, ActionMenuDeleted, kindMenu, m.ID(), m.Title())
}

func (r *Recorder) TitleChanged(ctx context.Context, m *menu.Menu) error {
	return r.record(ctx, ActionMenuTitleChanged, kindMenu, m.ID(), m.Title())
}

func (r *Recorder) PublishedChanged(ctx context.Context, m *menu.Menu) error {
	return r.record(ctx, ActionMenuPublishedChanged, kindMenu, m.ID(), fmt.Sprintf("published=%t", m.Published()))
}

func (r *Recorder) FeaturesChanged(ctx context.Context, m *menu.Menu) error {
	return r.record(ctx, ActionMenuFeaturesChanged, kindMenu, m.ID(), "")
}

func (r *Recorder) SectionAdded(ctx context.Context, m *menu.Menu, sec *menu.Section) error {
	return r.record(ctx, ActionSectionAdded, kindSection, sec.ID(), sec.Name())
}

func (r *Recorder) SectionRemoved(ctx context.Context, m *menu.Menu, sec *menu.Section, itemsDeleted bool) error {
	return r.record(ctx, ActionSectionRemoved, kindSection, sec.ID(), fmt.Sprintf("items_deleted=%t", itemsDeleted))
}

func (r *Recorder) SectionRenamed(ctx context.Context, m *menu.Menu, sec *menu.Section) error {
	return r.record(ctx, ActionSectionRenamed, kindSection, sec.ID(), sec.Name())
}

func (r *Recorder) SectionsReordered(ctx context.Context, m *menu.Menu) error {
	return r.record(ctx, ActionSectionsReordered, kindMenu, m.ID(), "")
}

func (r *Recorder) SectionItemsReordered(ctx context.Context, m *menu.Menu, sec *menu.Section) error {
	return r.record(ctx, ActionSectionItemsReordered, kindSection, sec.ID(), "")
}

func (r *Recorder) FreeItemsReordered(ctx context.Context, m *menu.Menu) error {
	return r.record(ctx, ActionFreeItemsReordered, kindMenu, m.ID(), "")
}

func (r *Recorder) ItemAdded(ctx context.Context, m *menu.Menu, it *menu.MenuItem, sec *menu.Section) error {
	return r.record(ctx, ActionItemAdded, kindItem, it.ID(), it.Description())
}

func (r *Recorder) ItemSectionChanged(ctx context.Context, m *menu.Menu, it *menu.MenuItem, sec *menu.Section) error {
	detail := "free list"
	if sec != nil {
		detail = sec.Name()
	}
	return r.record(ctx, ActionItemSectionChanged, kindItem, it.ID(), detail)
}

func (r *Recorder) ItemDescriptionChanged(ctx context.Context, m *menu.Menu, it *menu.MenuItem) error {
	return r.record(ctx, ActionItemDescriptionChanged, kindItem, it.ID(), it.Description())
}

func (r *Recorder) ItemRemoved(ctx context.Context, m *menu.Menu, sec *menu.Section, it *menu.MenuItem) error {
	return r.record(ctx, ActionItemRemoved, kindItem, it.ID(), it.Description())
}

// EventCreated implements event.Receiver.
func (r *Recorder) EventCreated(ctx context.Context, ev *event.Event) error {
	return r.record(ctx, ActionEventCreated, kindEvent, ev.ID(), ev.Name())
}

func (r *Recorder) EventModified(ctx context.Context, ev *event.Event) error {
	return r.record(ctx, ActionEventModified, kindEvent, ev.ID(), ev.Name())
}

func (r *Recorder) EventDeleted(ctx context.Context, ev *event.Event) error {
	return r.record(ctx, ActionEventDeleted, kindEvent, ev.ID(), ev.Name())
}

func (r *Recorder) ServiceCreated(ctx context.Context, ev *event.Event, svc *event.Service) error {
	return r.record(ctx, ActionServiceCreated, kindService, svc.ID(), svc.Name())
}

func (r *Recorder) ServiceModified(ctx context.Context, svc *event.Service) error {
	return r.record(ctx, ActionServiceModified, kindService, svc.ID(), svc.Name())
}

func (r *Recorder) ServiceDeleted(ctx context.Context, svc *event.Service) error {
	return r.record(ctx, ActionServiceDeleted, kindService, svc.ID(), svc.Name())
}

func (r *Recorder) MenuAssigned(ctx context.Context, svc *event.Service, m *menu.Menu) error {
	return r.record(ctx, ActionMenuAssigned, kindService, svc.ID(), m.Title())
}

func (r *Recorder) MenuRemoved(ctx context.Context, svc *event.Service) error {
	return r.record(ctx, ActionMenuUnassigned, kindService, svc.ID(), "")
}

// SheetGenerated implements kitchen.Receiver.
func (r *Recorder) SheetGenerated(ctx context.Context, sh *kitchen.SummarySheet) error {
	return r.record(ctx, ActionSheetGenerated, kindSheet, sh.ID(), fmt.Sprintf("tasks=%d", sh.TaskCount()))
}

func (r *Recorder) TaskAdded(ctx context.Context, sh *kitchen.SummarySheet, t *kitchen.KitchenTask) error {
	return r.record(ctx, ActionTaskAdded, kindTask, t.ID(), t.Description())
}

func (r *Recorder) TasksReordered(ctx context.Context, sh *kitchen.SummarySheet) error {
	return r.record(ctx, ActionTasksReordered, kindSheet, sh.ID(), "")
}

func (r *Recorder) TaskChanged(ctx context.Context, t *kitchen.KitchenTask) error {
	return r.record(ctx, ActionTaskChanged, kindTask, t.ID(), fmt.Sprintf("quantity=%d portions=%d ready=%t", t.Quantity(), t.Portions(), t.Ready()))
}

func (r *Recorder) AssignmentAdded(ctx context.Context, sh *kitchen.SummarySheet, a *kitchen.Assignment) error {
	return r.record(ctx, ActionAssignmentAdded, kindAssignment, a.ID(), "")
}

func (r *Recorder) AssignmentChanged(ctx context.Context, a *kitchen.Assignment) error {
	return r.record(ctx, ActionAssignmentChanged, kindAssignment, a.ID(), "")
}

func (r *Recorder) AssignmentDeleted(ctx context.Context, a *kitchen.Assignment) error {
	return r.record(ctx, ActionAssignmentDeleted, kindAssignment, a.ID(), "")
}
