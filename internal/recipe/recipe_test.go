package recipe

import (
	"errors"
	"testing"
)

func TestRecipeAddRejectsRecipe(t *testing.T) {
	r := NewRecipe("Lasagna")
	child := NewRecipe("Ragu")

	if err := r.Add(child); !errors.Is(err, ErrInvalidComposition) {
		t.Fatalf("Add(recipe) error = %v, want ErrInvalidComposition", err)
	}
	if got := len(r.Children()); got != 0 {
		t.Fatalf("children after rejected add = %d, want 0", got)
	}
}

func TestRecipeAddPreparation(t *testing.T) {
	r := NewRecipe("Lasagna")
	prep := NewPreparation("Prepare ragu")

	if err := r.Add(prep); err != nil {
		t.Fatalf("Add(preparation) error = %v", err)
	}
	if got := len(r.Preparations()); got != 1 {
		t.Fatalf("preparations = %d, want 1", got)
	}

	// Re-adding the same step is a no-op.
	r.AddPreparation(prep)
	if got := len(r.Preparations()); got != 1 {
		t.Fatalf("preparations after duplicate add = %d, want 1", got)
	}
}

func TestRecipeRemove(t *testing.T) {
	r := NewRecipe("Lasagna")
	first := NewPreparation("Prepare ragu")
	second := NewPreparation("Assemble")
	r.AddPreparation(first)
	r.AddPreparation(second)

	if !r.Remove(first) {
		t.Fatalf("Remove(first) = false, want true")
	}
	if r.Remove(first) {
		t.Fatalf("Remove(first) twice = true, want false")
	}
	preps := r.Preparations()
	if len(preps) != 1 || preps[0] != second {
		t.Fatalf("preparations after remove = %v, want [second]", preps)
	}
}

func TestPreparationIsStructuralLeaf(t *testing.T) {
	prep := NewPreparation("Chop")
	if prep.IsRecipe() {
		t.Fatalf("IsRecipe() = true, want false")
	}
	if !prep.IsLeaf() {
		t.Fatalf("IsLeaf() = false, want true")
	}
}

func TestRecipeEqualByIdentity(t *testing.T) {
	a := NewRecipe("Lasagna")
	a.SetID(7)
	b := NewRecipe("Completely different")
	b.SetID(7)
	c := NewRecipe("Lasagna")
	c.SetID(8)

	if !a.Equal(b) {
		t.Fatalf("saved recipes with same id should be equal")
	}
	if a.Equal(c) {
		t.Fatalf("saved recipes with different ids should not be equal")
	}
}

func TestRecipeEqualStructural(t *testing.T) {
	build := func(steps ...string) *Recipe {
		r := NewRecipe("Lasagna")
		for _, s := range steps {
			r.AddPreparation(NewPreparation(s))
		}
		return r
	}

	tests := []struct {
		name string
		a, b *Recipe
		want bool
	}{
		{"same steps same order", build("ragu", "bake"), build("ragu", "bake"), true},
		{"same steps different order", build("ragu", "bake"), build("bake", "ragu"), true},
		{"different steps", build("ragu"), build("bake"), false},
		{"different step count", build("ragu", "bake"), build("ragu"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Fatalf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPreparationEqual(t *testing.T) {
	a := NewPreparation("Chop")
	b := NewPreparation("Chop")
	if !a.Equal(b) {
		t.Fatalf("unsaved preparations with same name should be equal")
	}
	a.SetID(1)
	b.SetID(2)
	if a.Equal(b) {
		t.Fatalf("saved preparations with different ids should not be equal")
	}
}
