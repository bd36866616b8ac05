package menu

import "github.com/mportesi/catering/internal/recipe"

// MenuItem is one entry on a menu. It references its recipe by shared,
// non-owning reference: many items across menus may point at the same
// recipe.
type MenuItem struct {
	id          int64
	description string
	recipe      *recipe.Recipe
}

// NewMenuItem creates an unsaved item bound to the given recipe.
func NewMenuItem(rec *recipe.Recipe, description string) *MenuItem {
	return &MenuItem{recipe: rec, description: description}
}

// ID returns the storage identity, 0 for an unsaved item.
func (it *MenuItem) ID() int64 { return it.id }

// SetID assigns the storage identity.
func (it *MenuItem) SetID(id int64) { it.id = id }

// Description returns the item's display description.
func (it *MenuItem) Description() string { return it.description }

// SetDescription replaces the display description.
func (it *MenuItem) SetDescription(desc string) { it.description = desc }

// Recipe returns the referenced recipe.
func (it *MenuItem) Recipe() *recipe.Recipe { return it.recipe }

// SetRecipe rebinds the item to another recipe.
func (it *MenuItem) SetRecipe(rec *recipe.Recipe) { it.recipe = rec }

// DeepCopy produces an unsaved item referencing the same recipe.
func (it *MenuItem) DeepCopy() *MenuItem {
	return NewMenuItem(it.recipe, it.description)
}
