package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mportesi/catering/internal/menu"
	"github.com/mportesi/catering/internal/recipe"
)

// MenuCreated inserts the menu with its full current contents and assigns
// identities to the menu, its sections, and its items.
func (s *Store) MenuCreated(ctx context.Context, m *menu.Menu) error {
	var ownerID int64
	if m.Owner() != nil {
		ownerID = m.Owner().ID()
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO menus (title, owner_id, published) VALUES (?, ?, ?)",
		m.Title(), ownerID, boolInt(m.Published()))
	if err != nil {
		return fmt.Errorf("insert menu: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("menu id: %w", err)
	}
	m.SetID(id)

	if err := s.writeFeatures(ctx, m); err != nil {
		return err
	}
	for pos, sec := range m.Sections() {
		if err := s.insertSection(ctx, m, sec, pos); err != nil {
			return err
		}
		for itemPos, it := range sec.Items() {
			if err := s.insertItem(ctx, m, it, sec.ID(), itemPos); err != nil {
				return err
			}
		}
	}
	for pos, it := range m.FreeItems() {
		if err := s.insertItem(ctx, m, it, 0, pos); err != nil {
			return err
		}
	}
	return nil
}

// MenuDeleted removes the menu and everything it owns.
func (s *Store) MenuDeleted(ctx context.Context, m *menu.Menu) error {
	for _, stmt := range []string{
		"DELETE FROM menu_items WHERE menu_id = ?",
		"DELETE FROM menu_sections WHERE menu_id = ?",
		"DELETE FROM menu_features WHERE menu_id = ?",
		"DELETE FROM menus WHERE id = ?",
	} {
		if _, err := s.db.ExecContext(ctx, stmt, m.ID()); err != nil {
			return fmt.Errorf("delete menu: %w", err)
		}
	}
	return nil
}

// TitleChanged updates the stored title.
func (s *Store) TitleChanged(ctx context.Context, m *menu.Menu) error {
	if _, err := s.db.ExecContext(ctx,
		"UPDATE menus SET title = ? WHERE id = ?", m.Title(), m.ID()); err != nil {
		return fmt.Errorf("update menu title: %w", err)
	}
	return nil
}

// PublishedChanged updates the stored publish state.
func (s *Store) PublishedChanged(ctx context.Context, m *menu.Menu) error {
	if _, err := s.db.ExecContext(ctx,
		"UPDATE menus SET published = ? WHERE id = ?", boolInt(m.Published()), m.ID()); err != nil {
		return fmt.Errorf("update menu published: %w", err)
	}
	return nil
}

// FeaturesChanged rewrites the stored feature flags.
func (s *Store) FeaturesChanged(ctx context.Context, m *menu.Menu) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM menu_features WHERE menu_id = ?", m.ID()); err != nil {
		return fmt.Errorf("clear menu features: %w", err)
	}
	return s.writeFeatures(ctx, m)
}

// SectionAdded inserts the new section and assigns its identity.
func (s *Store) SectionAdded(ctx context.Context, m *menu.Menu, sec *menu.Section) error {
	return s.insertSection(ctx, m, sec, m.SectionPosition(sec))
}

// SectionRemoved removes the section row. Its items are deleted or moved
// onto the free list to match the in-memory mutation.
func (s *Store) SectionRemoved(ctx context.Context, m *menu.Menu, sec *menu.Section, itemsDeleted bool) error {
	if itemsDeleted {
		if _, err := s.db.ExecContext(ctx,
			"DELETE FROM menu_items WHERE menu_id = ? AND section_id = ?", m.ID(), sec.ID()); err != nil {
			return fmt.Errorf("delete section items: %w", err)
		}
	} else {
		if _, err := s.db.ExecContext(ctx,
			"UPDATE menu_items SET section_id = 0 WHERE menu_id = ? AND section_id = ?", m.ID(), sec.ID()); err != nil {
			return fmt.Errorf("reparent section items: %w", err)
		}
		if err := s.rewriteFreeItemPositions(ctx, m); err != nil {
			return err
		}
	}
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM menu_sections WHERE id = ?", sec.ID()); err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	return s.SectionsReordered(ctx, m)
}

// SectionRenamed updates the stored section name.
func (s *Store) SectionRenamed(ctx context.Context, m *menu.Menu, sec *menu.Section) error {
	if _, err := s.db.ExecContext(ctx,
		"UPDATE menu_sections SET name = ? WHERE id = ?", sec.Name(), sec.ID()); err != nil {
		return fmt.Errorf("rename section: %w", err)
	}
	return nil
}

// SectionsReordered rewrites stored section positions from the aggregate.
func (s *Store) SectionsReordered(ctx context.Context, m *menu.Menu) error {
	for pos, sec := range m.Sections() {
		if _, err := s.db.ExecContext(ctx,
			"UPDATE menu_sections SET position = ? WHERE id = ?", pos, sec.ID()); err != nil {
			return fmt.Errorf("update section position: %w", err)
		}
	}
	return nil
}

// SectionItemsReordered rewrites stored item positions within one section.
func (s *Store) SectionItemsReordered(ctx context.Context, m *menu.Menu, sec *menu.Section) error {
	for pos, it := range sec.Items() {
		if _, err := s.db.ExecContext(ctx,
			"UPDATE menu_items SET position = ? WHERE id = ?", pos, it.ID()); err != nil {
			return fmt.Errorf("update item position: %w", err)
		}
	}
	return nil
}

// FreeItemsReordered rewrites stored free-list positions.
func (s *Store) FreeItemsReordered(ctx context.Context, m *menu.Menu) error {
	return s.rewriteFreeItemPositions(ctx, m)
}

// ItemAdded inserts the new item and assigns its identity.
func (s *Store) ItemAdded(ctx context.Context, m *menu.Menu, it *menu.MenuItem, sec *menu.Section) error {
	var sectionID int64
	var position int
	if sec != nil {
		sectionID = sec.ID()
		position = sec.ItemPosition(it)
	} else {
		position = m.FreeItemPosition(it)
	}
	return s.insertItem(ctx, m, it, sectionID, position)
}

// ItemSectionChanged moves the stored item into its new container.
func (s *Store) ItemSectionChanged(ctx context.Context, m *menu.Menu, it *menu.MenuItem, sec *menu.Section) error {
	var sectionID int64
	var position int
	if sec != nil {
		sectionID = sec.ID()
		position = sec.ItemPosition(it)
	} else {
		position = m.FreeItemPosition(it)
	}
	if _, err := s.db.ExecContext(ctx,
		"UPDATE menu_items SET section_id = ?, position = ? WHERE id = ?",
		sectionID, position, it.ID()); err != nil {
		return fmt.Errorf("move item: %w", err)
	}
	return nil
}

// ItemDescriptionChanged updates the stored item description.
func (s *Store) ItemDescriptionChanged(ctx context.Context, m *menu.Menu, it *menu.MenuItem) error {
	if _, err := s.db.ExecContext(ctx,
		"UPDATE menu_items SET description = ? WHERE id = ?", it.Description(), it.ID()); err != nil {
		return fmt.Errorf("update item description: %w", err)
	}
	return nil
}

// ItemRemoved removes the stored item.
func (s *Store) ItemRemoved(ctx context.Context, m *menu.Menu, sec *menu.Section, it *menu.MenuItem) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM menu_items WHERE id = ?", it.ID()); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// LoadMenu reconstructs a menu with sections, items, features, and the
// derived in-use flag, nil when absent. Items within one menu share recipe
// instances.
func (s *Store) LoadMenu(ctx context.Context, id int64) (*menu.Menu, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, title, owner_id, published FROM menus WHERE id = ?", id)
	var menuID, ownerID int64
	var title string
	var published int
	if err := row.Scan(&menuID, &title, &ownerID, &published); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan menu: %w", err)
	}

	owner, err := s.LoadUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	m := menu.New(owner, title)
	m.SetID(menuID)
	m.SetPublished(published != 0)

	if err := s.loadFeatures(ctx, m); err != nil {
		return nil, err
	}

	recipes := make(map[int64]*recipe.Recipe)

	sections, err := s.db.QueryContext(ctx,
		"SELECT id, name FROM menu_sections WHERE menu_id = ? ORDER BY position, id", menuID)
	if err != nil {
		return nil, fmt.Errorf("query sections: %w", err)
	}
	defer sections.Close()
	type sectionRow struct {
		id   int64
		name string
	}
	var sectionRows []sectionRow
	for sections.Next() {
		var sr sectionRow
		if err := sections.Scan(&sr.id, &sr.name); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sectionRows = append(sectionRows, sr)
	}
	if err := sections.Err(); err != nil {
		return nil, fmt.Errorf("iterate sections: %w", err)
	}

	if err := s.loadItems(ctx, m, nil, menuID, 0, recipes); err != nil {
		return nil, err
	}
	for _, sr := range sectionRows {
		sec := m.AddSection(sr.name)
		sec.SetID(sr.id)
		if err := s.loadItems(ctx, m, sec, menuID, sr.id, recipes); err != nil {
			return nil, err
		}
	}

	var inUse int
	row = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM services WHERE approved_menu_id = ?", menuID)
	if err := row.Scan(&inUse); err != nil {
		return nil, fmt.Errorf("count menu references: %w", err)
	}
	m.SetInUse(inUse > 0)
	return m, nil
}

// LoadAllMenus reconstructs every stored menu ordered by identity.
func (s *Store) LoadAllMenus(ctx context.Context) ([]*menu.Menu, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id FROM menus ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query menus: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan menu id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menus: %w", err)
	}

	menus := make([]*menu.Menu, 0, len(ids))
	for _, id := range ids {
		m, err := s.LoadMenu(ctx, id)
		if err != nil {
			return nil, err
		}
		if m != nil {
			menus = append(menus, m)
		}
	}
	return menus, nil
}

func (s *Store) writeFeatures(ctx context.Context, m *menu.Menu) error {
	for name, value := range m.Features() {
		if _, err := s.db.ExecContext(ctx,
			"INSERT INTO menu_features (menu_id, name, value) VALUES (?, ?, ?)",
			m.ID(), name, boolInt(value)); err != nil {
			return fmt.Errorf("insert menu feature: %w", err)
		}
	}
	return nil
}

func (s *Store) loadFeatures(ctx context.Context, m *menu.Menu) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, value FROM menu_features WHERE menu_id = ?", m.ID())
	if err != nil {
		return fmt.Errorf("query menu features: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var value int
		if err := rows.Scan(&name, &value); err != nil {
			return fmt.Errorf("scan menu feature: %w", err)
		}
		m.RestoreFeature(name, value != 0)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate menu features: %w", err)
	}
	return nil
}

func (s *Store) insertSection(ctx context.Context, m *menu.Menu, sec *menu.Section, position int) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO menu_sections (menu_id, name, position) VALUES (?, ?, ?)",
		m.ID(), sec.Name(), position)
	if err != nil {
		return fmt.Errorf("insert section: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("section id: %w", err)
	}
	sec.SetID(id)
	return nil
}

func (s *Store) insertItem(ctx context.Context, m *menu.Menu, it *menu.MenuItem, sectionID int64, position int) error {
	var recipeID int64
	if it.Recipe() != nil {
		recipeID = it.Recipe().ID()
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO menu_items (menu_id, section_id, recipe_id, description, position) VALUES (?, ?, ?, ?, ?)",
		m.ID(), sectionID, recipeID, it.Description(), position)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("item id: %w", err)
	}
	it.SetID(id)
	return nil
}

// loadItems loads one container's items in position order into the menu.
// sec nil targets the free list (section_id 0).
func (s *Store) loadItems(ctx context.Context, m *menu.Menu, sec *menu.Section, menuID, sectionID int64, recipes map[int64]*recipe.Recipe) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, recipe_id, description FROM menu_items WHERE menu_id = ? AND section_id = ? ORDER BY position, id",
		menuID, sectionID)
	if err != nil {
		return fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	type itemRow struct {
		id       int64
		recipeID int64
		desc     string
	}
	var itemRows []itemRow
	for rows.Next() {
		var ir itemRow
		if err := rows.Scan(&ir.id, &ir.recipeID, &ir.desc); err != nil {
			return fmt.Errorf("scan item: %w", err)
		}
		itemRows = append(itemRows, ir)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate items: %w", err)
	}

	for _, ir := range itemRows {
		rec, ok := recipes[ir.recipeID]
		if !ok {
			rec, err = s.LoadRecipe(ctx, ir.recipeID)
			if err != nil {
				return err
			}
			recipes[ir.recipeID] = rec
		}
		it := m.AddItem(rec, sec, ir.desc)
		it.SetID(ir.id)
	}
	return nil
}

func (s *Store) rewriteFreeItemPositions(ctx context.Context, m *menu.Menu) error {
	for pos, it := range m.FreeItems() {
		if _, err := s.db.ExecContext(ctx,
			"UPDATE menu_items SET position = ? WHERE id = ?", pos, it.ID()); err != nil {
			return fmt.Errorf("update free item position: %w", err)
		}
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
