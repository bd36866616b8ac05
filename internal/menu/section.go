package menu

// Section is a named, ordered group of menu items owned by exactly one
// menu.
type Section struct {
	id    int64
	name  string
	items []*MenuItem
}

// NewSection creates an unsaved empty section.
func NewSection(name string) *Section {
	return &Section{name: name}
}

// ID returns the storage identity, 0 for an unsaved section.
func (s *Section) ID() int64 { return s.id }

// SetID assigns the storage identity.
func (s *Section) SetID(id int64) { s.id = id }

// Name returns the section name.
func (s *Section) Name() string { return s.name }

// SetName renames the section.
func (s *Section) SetName(name string) { s.name = name }

// AddItem appends an item to the section.
func (s *Section) AddItem(it *MenuItem) {
	s.items = append(s.items, it)
}

// RemoveItem removes an item by reference. It reports whether the item was
// present.
func (s *Section) RemoveItem(it *MenuItem) bool {
	pos := s.ItemPosition(it)
	if pos < 0 {
		return false
	}
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	return true
}

// ItemPosition returns the index of the item, or -1 when absent.
func (s *Section) ItemPosition(it *MenuItem) int {
	for i, existing := range s.items {
		if existing == it {
			return i
		}
	}
	return -1
}

// MoveItem repositions an item using remove-then-insert-at-index. Callers
// validate membership and range.
func (s *Section) MoveItem(it *MenuItem, position int) {
	pos := s.ItemPosition(it)
	if pos < 0 {
		return
	}
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	s.items = append(s.items[:position], append([]*MenuItem{it}, s.items[position:]...)...)
}

// Items returns the ordered items.
func (s *Section) Items() []*MenuItem {
	items := make([]*MenuItem, len(s.items))
	copy(items, s.items)
	return items
}

// ItemCount returns the number of items.
func (s *Section) ItemCount() int { return len(s.items) }

// DeepCopy produces an independent section with fresh item identities.
func (s *Section) DeepCopy() *Section {
	cp := NewSection(s.name)
	for _, it := range s.items {
		cp.items = append(cp.items, it.DeepCopy())
	}
	return cp
}
