package menu

import (
	"context"

	"github.com/mportesi/catering/internal/notify"
	"github.com/mportesi/catering/internal/recipe"
	"github.com/mportesi/catering/internal/user"
)

// Manager exposes the only mutation entry points for menu aggregates. Every
// operation validates its preconditions, applies the mutation in memory,
// then notifies each subscribed receiver exactly once, in subscription
// order. The caller passes the menu handle explicitly; there is no hidden
// "currently selected menu".
type Manager struct {
	session   user.Session
	receivers []Receiver
}

// NewManager creates a Manager resolving role preconditions through the
// given session.
func NewManager(session user.Session) *Manager {
	return &Manager{session: session}
}

// Subscribe appends a receiver to the notification list. Order of
// subscription is order of invocation.
func (mgr *Manager) Subscribe(r Receiver) {
	mgr.receivers = append(mgr.receivers, r)
}

// Unsubscribe removes a receiver from the notification list.
func (mgr *Manager) Unsubscribe(r Receiver) {
	for i, existing := range mgr.receivers {
		if existing == r {
			mgr.receivers = append(mgr.receivers[:i], mgr.receivers[i+1:]...)
			return
		}
	}
}

func (mgr *Manager) notify(op string, fn func(Receiver) error) error {
	for _, r := range mgr.receivers {
		if err := fn(r); err != nil {
			return &notify.DesyncError{Op: op, Err: err}
		}
	}
	return nil
}

func (mgr *Manager) currentChef(ctx context.Context) (*user.User, error) {
	u, err := mgr.session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !u.IsChef() {
		return nil, user.ErrNotChef
	}
	return u, nil
}

// CreateMenu creates a new menu owned by the current user, who must be a
// chef.
func (mgr *Manager) CreateMenu(ctx context.Context, title string) (*Menu, error) {
	chef, err := mgr.currentChef(ctx)
	if err != nil {
		return nil, err
	}
	m := New(chef, title)
	if err := mgr.notify("menu: create", func(r Receiver) error {
		return r.MenuCreated(ctx, m)
	}); err != nil {
		return m, err
	}
	return m, nil
}

// CopyMenu creates an independent copy of src owned by the current user.
// Sections and items get fresh identities; recipes are shared.
func (mgr *Manager) CopyMenu(ctx context.Context, src *Menu) (*Menu, error) {
	chef, err := mgr.currentChef(ctx)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrNoMenu
	}
	cp := src.DeepCopy()
	cp.SetOwner(chef)
	if err := mgr.notify("menu: copy", func(r Receiver) error {
		return r.MenuCreated(ctx, cp)
	}); err != nil {
		return cp, err
	}
	return cp, nil
}

// DeleteMenu removes a menu. The current user must be a chef owning the
// menu, and the menu must not be in use by any service.
func (mgr *Manager) DeleteMenu(ctx context.Context, m *Menu) error {
	chef, err := mgr.currentChef(ctx)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrNoMenu
	}
	if m.InUse() {
		return ErrMenuInUse
	}
	if !m.IsOwner(chef) {
		return ErrNotOwner
	}
	return mgr.notify("menu: delete", func(r Receiver) error {
		return r.MenuDeleted(ctx, m)
	})
}

// AddSection appends a new empty section to the menu and returns it.
func (mgr *Manager) AddSection(ctx context.Context, m *Menu, name string) (*Section, error) {
	if m == nil {
		return nil, ErrNoMenu
	}
	sec := m.AddSection(name)
	if err := mgr.notify("menu: add section", func(r Receiver) error {
		return r.SectionAdded(ctx, m, sec)
	}); err != nil {
		return sec, err
	}
	return sec, nil
}

// AddItem creates an item bound to rec and places it in sec, or on the
// free list when sec is nil. The section must belong to the menu.
func (mgr *Manager) AddItem(ctx context.Context, m *Menu, rec *recipe.Recipe, sec *Section, description string) (*MenuItem, error) {
	if m == nil {
		return nil, ErrNoMenu
	}
	if sec != nil && !m.HasSection(sec) {
		return nil, ErrSectionNotInMenu
	}
	it := m.AddItem(rec, sec, description)
	if err := mgr.notify("menu: add item", func(r Receiver) error {
		return r.ItemAdded(ctx, m, it, sec)
	}); err != nil {
		return it, err
	}
	return it, nil
}

// MoveSection repositions a section. The position must satisfy
// 0 <= position < SectionCount.
func (mgr *Manager) MoveSection(ctx context.Context, m *Menu, sec *Section, position int) error {
	if m == nil {
		return ErrNoMenu
	}
	if !m.HasSection(sec) {
		return ErrSectionNotInMenu
	}
	if position < 0 || position >= m.SectionCount() {
		return ErrPositionOutOfRange
	}
	m.MoveSection(sec, position)
	return mgr.notify("menu: move section", func(r Receiver) error {
		return r.SectionsReordered(ctx, m)
	})
}

// MoveFreeItem repositions an item on the free list. The position must
// satisfy 0 <= position < FreeItemCount.
func (mgr *Manager) MoveFreeItem(ctx context.Context, m *Menu, it *MenuItem, position int) error {
	if m == nil {
		return ErrNoMenu
	}
	if m.FreeItemPosition(it) < 0 {
		return ErrItemNotInMenu
	}
	if position < 0 || position >= m.FreeItemCount() {
		return ErrPositionOutOfRange
	}
	m.MoveFreeItem(it, position)
	return mgr.notify("menu: move free item", func(r Receiver) error {
		return r.FreeItemsReordered(ctx, m)
	})
}

// MoveSectionItem repositions an item within its section. The position
// must satisfy 0 <= position < the section's item count.
func (mgr *Manager) MoveSectionItem(ctx context.Context, m *Menu, sec *Section, it *MenuItem, position int) error {
	if m == nil {
		return ErrNoMenu
	}
	if !m.HasSection(sec) {
		return ErrSectionNotInMenu
	}
	if sec.ItemPosition(it) < 0 {
		return ErrItemNotInSection
	}
	if position < 0 || position >= sec.ItemCount() {
		return ErrPositionOutOfRange
	}
	sec.MoveItem(it, position)
	return mgr.notify("menu: move section item", func(r Receiver) error {
		return r.SectionItemsReordered(ctx, m, sec)
	})
}

// ChangeItemSection relocates an item to sec, or to the free list when sec
// is nil. Relocating an item onto its current container is a no-op and
// emits no notification.
func (mgr *Manager) ChangeItemSection(ctx context.Context, m *Menu, it *MenuItem, sec *Section) error {
	if m == nil {
		return ErrNoMenu
	}
	if sec != nil && !m.HasSection(sec) {
		return ErrSectionNotInMenu
	}
	oldSec, ok := m.SectionOf(it)
	if !ok {
		return ErrItemNotInMenu
	}
	if sec == oldSec {
		return nil
	}
	m.ChangeItemSection(it, oldSec, sec)
	return mgr.notify("menu: change item section", func(r Receiver) error {
		return r.ItemSectionChanged(ctx, m, it, sec)
	})
}

// RemoveSection discards a section. When deleteItems is false the
// section's items are reparented onto the free list first.
func (mgr *Manager) RemoveSection(ctx context.Context, m *Menu, sec *Section, deleteItems bool) error {
	if m == nil {
		return ErrNoMenu
	}
	if !m.HasSection(sec) {
		return ErrSectionNotInMenu
	}
	m.RemoveSection(sec, deleteItems)
	return mgr.notify("menu: remove section", func(r Receiver) error {
		return r.SectionRemoved(ctx, m, sec, deleteItems)
	})
}

// RemoveItem discards an item from whichever container holds it.
func (mgr *Manager) RemoveItem(ctx context.Context, m *Menu, it *MenuItem) error {
	if m == nil {
		return ErrNoMenu
	}
	sec, ok := m.SectionOf(it)
	if !ok {
		return ErrItemNotInMenu
	}
	m.RemoveItem(it)
	return mgr.notify("menu: remove item", func(r Receiver) error {
		return r.ItemRemoved(ctx, m, sec, it)
	})
}

// SetItemDescription replaces an item's display description.
func (mgr *Manager) SetItemDescription(ctx context.Context, m *Menu, it *MenuItem, description string) error {
	if m == nil {
		return ErrNoMenu
	}
	if _, ok := m.SectionOf(it); !ok {
		return ErrItemNotInMenu
	}
	it.SetDescription(description)
	return mgr.notify("menu: set item description", func(r Receiver) error {
		return r.ItemDescriptionChanged(ctx, m, it)
	})
}

// RenameSection replaces a section's name.
func (mgr *Manager) RenameSection(ctx context.Context, m *Menu, sec *Section, name string) error {
	if m == nil {
		return ErrNoMenu
	}
	if !m.HasSection(sec) {
		return ErrSectionNotInMenu
	}
	sec.SetName(name)
	return mgr.notify("menu: rename section", func(r Receiver) error {
		return r.SectionRenamed(ctx, m, sec)
	})
}

// SetTitle replaces the menu title.
func (mgr *Manager) SetTitle(ctx context.Context, m *Menu, title string) error {
	if m == nil {
		return ErrNoMenu
	}
	m.SetTitle(title)
	return mgr.notify("menu: set title", func(r Receiver) error {
		return r.TitleChanged(ctx, m)
	})
}

// Publish marks the menu published.
func (mgr *Manager) Publish(ctx context.Context, m *Menu) error {
	if m == nil {
		return ErrNoMenu
	}
	m.SetPublished(true)
	return mgr.notify("menu: publish", func(r Receiver) error {
		return r.PublishedChanged(ctx, m)
	})
}

// SetFeatures applies a batch of feature-flag values. Unknown names are
// silently ignored. One notification covers the whole batch.
func (mgr *Manager) SetFeatures(ctx context.Context, m *Menu, features map[string]bool) error {
	if m == nil {
		return ErrNoMenu
	}
	for name, value := range features {
		m.SetFeature(name, value)
	}
	return mgr.notify("menu: set features", func(r Receiver) error {
		return r.FeaturesChanged(ctx, m)
	})
}
