package menu

import "context"

// Receiver is notified synchronously after each menu mutation, once per
// mutation, in subscription order. Each callback carries the minimal delta
// needed to replay the mutation in storage; positions are read from the
// aggregate, which has already been updated when the callback runs.
//
// Create callbacks may assign storage identities to the passed entities in
// place (the generated-key flow). A callback error aborts propagation to
// later receivers.
type Receiver interface {
	// MenuCreated records a new menu with its full current contents.
	MenuCreated(ctx context.Context, m *Menu) error
	// MenuDeleted records the removal of a menu and everything it owns.
	MenuDeleted(ctx context.Context, m *Menu) error
	// TitleChanged records a title update.
	TitleChanged(ctx context.Context, m *Menu) error
	// PublishedChanged records a publish-state update.
	PublishedChanged(ctx context.Context, m *Menu) error
	// FeaturesChanged records a feature-flag update.
	FeaturesChanged(ctx context.Context, m *Menu) error
	// SectionAdded records a new section appended to the menu.
	SectionAdded(ctx context.Context, m *Menu, sec *Section) error
	// SectionRemoved records a discarded section. When itemsDeleted is
	// false the section's items were reparented onto the free list.
	SectionRemoved(ctx context.Context, m *Menu, sec *Section, itemsDeleted bool) error
	// SectionRenamed records a section name update.
	SectionRenamed(ctx context.Context, m *Menu, sec *Section) error
	// SectionsReordered records a new section order.
	SectionsReordered(ctx context.Context, m *Menu) error
	// SectionItemsReordered records a new item order within one section.
	SectionItemsReordered(ctx context.Context, m *Menu, sec *Section) error
	// FreeItemsReordered records a new free-list order.
	FreeItemsReordered(ctx context.Context, m *Menu) error
	// ItemAdded records a new item placed in sec, or on the free list when
	// sec is nil.
	ItemAdded(ctx context.Context, m *Menu, it *MenuItem, sec *Section) error
	// ItemSectionChanged records an item relocated to sec, or to the free
	// list when sec is nil.
	ItemSectionChanged(ctx context.Context, m *Menu, it *MenuItem, sec *Section) error
	// ItemDescriptionChanged records an item description update.
	ItemDescriptionChanged(ctx context.Context, m *Menu, it *MenuItem) error
	// ItemRemoved records a discarded item; sec is the container it was
	// removed from, nil for the free list.
	ItemRemoved(ctx context.Context, m *Menu, sec *Section, it *MenuItem) error
}
