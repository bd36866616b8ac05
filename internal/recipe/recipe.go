// Package recipe models food-preparation processes as a two-variant
// composite: a Recipe is built from ordered Preparation steps, and a
// Preparation is always a leaf. The leaf invariant is structural — a
// Preparation has no child list at all — so a recipe tree is never more
// than two levels deep.
package recipe

import "errors"

// ErrInvalidComposition indicates an attempt to nest a recipe inside a
// recipe. Only preparations may be added as children.
var ErrInvalidComposition = errors.New("a recipe may only contain preparations")

// Process is a food-preparation activity: either a *Recipe or a
// *Preparation.
type Process interface {
	// ID returns the storage identity, 0 for an unsaved process.
	ID() int64
	// Name returns the display name.
	Name() string
	// Description returns the free-text description.
	Description() string
	// IsRecipe reports whether the process is a composite recipe.
	IsRecipe() bool
	// Equal reports whether two processes denote the same activity. Saved
	// processes compare by identity; unsaved ones by name, description, and
	// (for recipes) child set, ignoring child order.
	Equal(Process) bool
}

// Recipe is a complete dish composed of ordered preparation steps.
type Recipe struct {
	id           int64
	name         string
	description  string
	preparations []*Preparation
}

// NewRecipe creates an unsaved recipe with no preparations.
func NewRecipe(name string) *Recipe {
	return &Recipe{name: name}
}

// ID returns the storage identity, 0 for an unsaved recipe.
func (r *Recipe) ID() int64 { return r.id }

// SetID assigns the storage identity.
func (r *Recipe) SetID(id int64) { r.id = id }

// Name returns the recipe name.
func (r *Recipe) Name() string { return r.name }

// SetName renames the recipe.
func (r *Recipe) SetName(name string) { r.name = name }

// Description returns the free-text description.
func (r *Recipe) Description() string { return r.description }

// SetDescription replaces the free-text description.
func (r *Recipe) SetDescription(desc string) { r.description = desc }

// IsRecipe reports true.
func (r *Recipe) IsRecipe() bool { return true }

// Add appends a child process. Only preparations are accepted; adding a
// recipe fails with ErrInvalidComposition. Adding a preparation that is
// already a child is a no-op.
func (r *Recipe) Add(p Process) error {
	prep, ok := p.(*Preparation)
	if !ok {
		return ErrInvalidComposition
	}
	r.AddPreparation(prep)
	return nil
}

// AddPreparation appends a preparation step unless it is already present.
func (r *Recipe) AddPreparation(p *Preparation) {
	for _, existing := range r.preparations {
		if existing == p {
			return
		}
	}
	r.preparations = append(r.preparations, p)
}

// Remove removes a child by reference. It reports whether the child was
// present.
func (r *Recipe) Remove(p Process) bool {
	for i, existing := range r.preparations {
		if Process(existing) == p {
			r.preparations = append(r.preparations[:i], r.preparations[i+1:]...)
			return true
		}
	}
	return false
}

// Children returns the ordered child processes. The slice is never nil.
func (r *Recipe) Children() []Process {
	children := make([]Process, 0, len(r.preparations))
	for _, p := range r.preparations {
		children = append(children, p)
	}
	return children
}

// Preparations returns the ordered preparation steps.
func (r *Recipe) Preparations() []*Preparation {
	preps := make([]*Preparation, len(r.preparations))
	copy(preps, r.preparations)
	return preps
}

// IsLeaf reports whether the recipe has no preparations.
func (r *Recipe) IsLeaf() bool { return len(r.preparations) == 0 }

// Equal implements Process equality.
func (r *Recipe) Equal(other Process) bool {
	o, ok := other.(*Recipe)
	if !ok || o == nil {
		return false
	}
	if r.id > 0 && o.id > 0 {
		return r.id == o.id
	}
	if r.name != o.name || r.description != o.description {
		return false
	}
	return samePreparationSet(r.preparations, o.preparations)
}

func (r *Recipe) String() string { return r.name }

// samePreparationSet compares two child lists ignoring order.
func samePreparationSet(a, b []*Preparation) bool {
	if len(a) != len(b) {
		return false
	}
	matched := make([]bool, len(b))
	for _, pa := range a {
		found := false
		for i, pb := range b {
			if !matched[i] && pa.Equal(pb) {
				matched[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
