// Package menu models the menu aggregate: a titled, owned collection of
// sections and free items with feature flags. A menu item lives in exactly
// one container — a section or the free list — and references its recipe by
// shared, non-owning reference. All mutations go through the Manager, which
// notifies subscribed receivers once per mutation.
package menu

import (
	"github.com/mportesi/catering/internal/recipe"
	"github.com/mportesi/catering/internal/user"
)

// Feature flag names carried by every menu.
const (
	FeatureNeedsCook    = "needsCook"
	FeatureFingerFood   = "fingerFood"
	FeatureBuffet       = "buffet"
	FeatureWarmDishes   = "warmDishes"
	FeatureNeedsKitchen = "needsKitchen"
)

// DefaultFeatures is the feature set every new menu starts with, all false.
var DefaultFeatures = []string{
	FeatureNeedsCook,
	FeatureFingerFood,
	FeatureBuffet,
	FeatureWarmDishes,
	FeatureNeedsKitchen,
}

// Menu is a titled collection of sections and free items owned by a chef.
type Menu struct {
	id        int64
	title     string
	owner     *user.User
	published bool
	inUse     bool
	features  map[string]bool
	sections  []*Section
	freeItems []*MenuItem
}

// New creates an unsaved, unpublished menu with the default feature set.
func New(owner *user.User, title string) *Menu {
	m := &Menu{
		title:    title,
		owner:    owner,
		features: make(map[string]bool, len(DefaultFeatures)),
	}
	for _, f := range DefaultFeatures {
		m.features[f] = false
	}
	return m
}

// ID returns the storage identity, 0 for an unsaved menu.
func (m *Menu) ID() int64 { return m.id }

// SetID assigns the storage identity.
func (m *Menu) SetID(id int64) { m.id = id }

// Title returns the menu title.
func (m *Menu) Title() string { return m.title }

// SetTitle replaces the menu title.
func (m *Menu) SetTitle(title string) { m.title = title }

// Owner returns the owning chef. The menu does not own the user.
func (m *Menu) Owner() *user.User { return m.owner }

// SetOwner reassigns the owning chef.
func (m *Menu) SetOwner(owner *user.User) { m.owner = owner }

// IsOwner reports whether the given user owns this menu.
func (m *Menu) IsOwner(u *user.User) bool {
	return m.owner != nil && m.owner.Equal(u)
}

// Published reports whether the menu has been published.
func (m *Menu) Published() bool { return m.published }

// SetPublished flips the published flag.
func (m *Menu) SetPublished(published bool) { m.published = published }

// InUse reports whether any service currently references this menu. The
// flag is derived at load time, not owned state.
func (m *Menu) InUse() bool { return m.inUse }

// SetInUse records the derived in-use flag. Called by loaders.
func (m *Menu) SetInUse(inUse bool) { m.inUse = inUse }

// AddSection appends a new empty section and returns it.
func (m *Menu) AddSection(name string) *Section {
	sec := NewSection(name)
	m.sections = append(m.sections, sec)
	return sec
}

// Sections returns the ordered sections.
func (m *Menu) Sections() []*Section {
	sections := make([]*Section, len(m.sections))
	copy(sections, m.sections)
	return sections
}

// SectionCount returns the number of sections.
func (m *Menu) SectionCount() int { return len(m.sections) }

// SectionPosition returns the index of the section, or -1 when the section
// does not belong to this menu.
func (m *Menu) SectionPosition(sec *Section) int {
	for i, s := range m.sections {
		if s == sec {
			return i
		}
	}
	return -1
}

// HasSection reports whether the section belongs to this menu.
func (m *Menu) HasSection(sec *Section) bool { return m.SectionPosition(sec) >= 0 }

// SectionByID returns the section with the given identity, or nil.
func (m *Menu) SectionByID(id int64) *Section {
	for _, s := range m.sections {
		if s.ID() == id {
			return s
		}
	}
	return nil
}

// SectionByName returns the first section with the given name, or nil.
func (m *Menu) SectionByName(name string) *Section {
	for _, s := range m.sections {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// SectionOf returns the section containing the item, or nil when the item
// is on the free list. The second result reports whether the item belongs
// to this menu at all.
func (m *Menu) SectionOf(it *MenuItem) (*Section, bool) {
	for _, s := range m.sections {
		if s.ItemPosition(it) >= 0 {
			return s, true
		}
	}
	if m.FreeItemPosition(it) >= 0 {
		return nil, true
	}
	return nil, false
}

// MoveSection repositions a section using remove-then-insert-at-index.
// Callers validate membership and range.
func (m *Menu) MoveSection(sec *Section, position int) {
	pos := m.SectionPosition(sec)
	if pos < 0 {
		return
	}
	m.sections = append(m.sections[:pos], m.sections[pos+1:]...)
	m.sections = append(m.sections[:position], append([]*Section{sec}, m.sections[position:]...)...)
}

// RemoveSection discards a section. When deleteItems is false the section's
// items are reparented onto the free list first.
func (m *Menu) RemoveSection(sec *Section, deleteItems bool) {
	pos := m.SectionPosition(sec)
	if pos < 0 {
		return
	}
	if !deleteItems {
		m.freeItems = append(m.freeItems, sec.Items()...)
	}
	m.sections = append(m.sections[:pos], m.sections[pos+1:]...)
}

// AddItem creates a menu item bound to the recipe and places it in the
// given section, or on the free list when sec is nil.
func (m *Menu) AddItem(rec *recipe.Recipe, sec *Section, description string) *MenuItem {
	it := NewMenuItem(rec, description)
	if sec != nil {
		sec.AddItem(it)
	} else {
		m.freeItems = append(m.freeItems, it)
	}
	return it
}

// FreeItems returns the ordered unsectioned items.
func (m *Menu) FreeItems() []*MenuItem {
	items := make([]*MenuItem, len(m.freeItems))
	copy(items, m.freeItems)
	return items
}

// FreeItemCount returns the number of unsectioned items.
func (m *Menu) FreeItemCount() int { return len(m.freeItems) }

// FreeItemPosition returns the index of the item on the free list, or -1.
func (m *Menu) FreeItemPosition(it *MenuItem) int {
	for i, existing := range m.freeItems {
		if existing == it {
			return i
		}
	}
	return -1
}

// MoveFreeItem repositions a free item using remove-then-insert-at-index.
// Callers validate membership and range.
func (m *Menu) MoveFreeItem(it *MenuItem, position int) {
	pos := m.FreeItemPosition(it)
	if pos < 0 {
		return
	}
	m.freeItems = append(m.freeItems[:pos], m.freeItems[pos+1:]...)
	m.freeItems = append(m.freeItems[:position], append([]*MenuItem{it}, m.freeItems[position:]...)...)
}

// ChangeItemSection relocates an item between containers. A nil section
// denotes the free list.
func (m *Menu) ChangeItemSection(it *MenuItem, oldSec, newSec *Section) {
	if oldSec == nil {
		if pos := m.FreeItemPosition(it); pos >= 0 {
			m.freeItems = append(m.freeItems[:pos], m.freeItems[pos+1:]...)
		}
	} else {
		oldSec.RemoveItem(it)
	}
	if newSec == nil {
		m.freeItems = append(m.freeItems, it)
	} else {
		newSec.AddItem(it)
	}
}

// RemoveItem discards an item from whichever container holds it.
func (m *Menu) RemoveItem(it *MenuItem) {
	sec, ok := m.SectionOf(it)
	if !ok {
		return
	}
	if sec == nil {
		pos := m.FreeItemPosition(it)
		m.freeItems = append(m.freeItems[:pos], m.freeItems[pos+1:]...)
		return
	}
	sec.RemoveItem(it)
}

// Items returns every item in display order: free items first in stored
// order, then each section's items in stored order.
func (m *Menu) Items() []*MenuItem {
	items := make([]*MenuItem, 0, len(m.freeItems))
	items = append(items, m.freeItems...)
	for _, sec := range m.sections {
		items = append(items, sec.Items()...)
	}
	return items
}

// KitchenProcesses returns, for every item in display order, the item's
// recipe followed by that recipe's preparations in child order.
func (m *Menu) KitchenProcesses() []recipe.Process {
	var processes []recipe.Process
	for _, it := range m.Items() {
		rec := it.Recipe()
		if rec == nil {
			continue
		}
		processes = append(processes, rec)
		for _, prep := range rec.Preparations() {
			processes = append(processes, prep)
		}
	}
	return processes
}

// Feature returns the value of a feature flag, false for unknown names.
func (m *Menu) Feature(name string) bool { return m.features[name] }

// SetFeature sets a feature flag. Names not already present in the feature
// map are silently ignored; this quirk is part of the observed contract.
func (m *Menu) SetFeature(name string, value bool) {
	if _, ok := m.features[name]; ok {
		m.features[name] = value
	}
}

// Features returns a copy of the feature map.
func (m *Menu) Features() map[string]bool {
	features := make(map[string]bool, len(m.features))
	for name, value := range m.features {
		features[name] = value
	}
	return features
}

// RestoreFeature installs a feature flag regardless of the default set.
// Called by loaders reconstructing persisted state.
func (m *Menu) RestoreFeature(name string, value bool) {
	m.features[name] = value
}

// RequiresKitchenPreparation reports whether serving this menu needs a
// kitchen on site.
func (m *Menu) RequiresKitchenPreparation() bool {
	return m.Feature(FeatureNeedsKitchen) || m.Feature(FeatureNeedsCook) || m.Feature(FeatureWarmDishes)
}

// DeepCopy produces a fully independent menu with fresh section and item
// identities and id reset to unsaved. Recipes are shared domain nouns and
// are not copied.
func (m *Menu) DeepCopy() *Menu {
	cp := New(m.owner, m.title)
	cp.published = m.published
	cp.inUse = m.inUse
	for name, value := range m.features {
		cp.features[name] = value
	}
	for _, sec := range m.sections {
		cp.sections = append(cp.sections, sec.DeepCopy())
	}
	for _, it := range m.freeItems {
		cp.freeItems = append(cp.freeItems, it.DeepCopy())
	}
	return cp
}
