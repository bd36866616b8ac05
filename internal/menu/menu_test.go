package menu

import (
	"testing"

	"github.com/mportesi/catering/internal/recipe"
	"github.com/mportesi/catering/internal/user"
)

func testChef() *user.User {
	u := user.New("marianna", user.RoleChef)
	u.SetID(1)
	return u
}

func TestNewMenuHasDefaultFeatures(t *testing.T) {
	m := New(testChef(), "Spring Gala")
	features := m.Features()
	if len(features) != len(DefaultFeatures) {
		t.Fatalf("features = %d, want %d", len(features), len(DefaultFeatures))
	}
	for _, name := range DefaultFeatures {
		value, ok := features[name]
		if !ok {
			t.Fatalf("missing default feature %q", name)
		}
		if value {
			t.Fatalf("feature %q starts true, want false", name)
		}
	}
}

func TestSetFeatureIgnoresUnknownNames(t *testing.T) {
	m := New(testChef(), "Spring Gala")
	m.SetFeature("glutenFree", true)
	if m.Feature("glutenFree") {
		t.Fatalf("unknown feature was stored")
	}
	if _, ok := m.Features()["glutenFree"]; ok {
		t.Fatalf("unknown feature appears in Features()")
	}

	m.SetFeature(FeatureBuffet, true)
	if !m.Feature(FeatureBuffet) {
		t.Fatalf("known feature was not stored")
	}
}

func TestRequiresKitchenPreparation(t *testing.T) {
	tests := []struct {
		name    string
		feature string
		want    bool
	}{
		{"needs kitchen", FeatureNeedsKitchen, true},
		{"needs cook", FeatureNeedsCook, true},
		{"warm dishes", FeatureWarmDishes, true},
		{"buffet only", FeatureBuffet, false},
		{"finger food only", FeatureFingerFood, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(testChef(), "Spring Gala")
			m.SetFeature(tt.feature, true)
			if got := m.RequiresKitchenPreparation(); got != tt.want {
				t.Fatalf("RequiresKitchenPreparation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestItemsOrderFreeListFirst(t *testing.T) {
	m := New(testChef(), "Spring Gala")
	rec := recipe.NewRecipe("Lasagna")

	free := m.AddItem(rec, nil, "free item")
	starters := m.AddSection("Starters")
	inStarters := m.AddItem(rec, starters, "starter item")
	mains := m.AddSection("Mains")
	inMains := m.AddItem(rec, mains, "main item")

	items := m.Items()
	want := []*MenuItem{free, inStarters, inMains}
	if len(items) != len(want) {
		t.Fatalf("items = %d, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("items[%d] = %q, want %q", i, items[i].Description(), want[i].Description())
		}
	}
}

func TestMoveSection(t *testing.T) {
	m := New(testChef(), "Spring Gala")
	a := m.AddSection("A")
	b := m.AddSection("B")
	c := m.AddSection("C")

	m.MoveSection(c, 0)

	got := m.Sections()
	want := []*Section{c, a, b}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sections[%d] = %q, want %q", i, got[i].Name(), want[i].Name())
		}
	}

	// Moving the section back restores the original order.
	m.MoveSection(c, 2)
	got = m.Sections()
	want = []*Section{a, b, c}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after restoring move, sections[%d] = %q, want %q", i, got[i].Name(), want[i].Name())
		}
	}
}

func TestRemoveSectionReparentsItems(t *testing.T) {
	m := New(testChef(), "Spring Gala")
	rec := recipe.NewRecipe("Lasagna")
	sec := m.AddSection("Starters")
	it := m.AddItem(rec, sec, "starter")

	m.RemoveSection(sec, false)

	if m.SectionCount() != 0 {
		t.Fatalf("sections = %d, want 0", m.SectionCount())
	}
	if m.FreeItemPosition(it) < 0 {
		t.Fatalf("item was not reparented onto the free list")
	}
}

func TestRemoveSectionDeletesItems(t *testing.T) {
	m := New(testChef(), "Spring Gala")
	rec := recipe.NewRecipe("Lasagna")
	sec := m.AddSection("Starters")
	it := m.AddItem(rec, sec, "starter")

	m.RemoveSection(sec, true)

	if _, ok := m.SectionOf(it); ok {
		t.Fatalf("deleted item still belongs to the menu")
	}
	if m.FreeItemCount() != 0 {
		t.Fatalf("free items = %d, want 0", m.FreeItemCount())
	}
}

func TestChangeItemSection(t *testing.T) {
	m := New(testChef(), "Spring Gala")
	rec := recipe.NewRecipe("Lasagna")
	sec := m.AddSection("Starters")
	it := m.AddItem(rec, nil, "roaming item")

	m.ChangeItemSection(it, nil, sec)
	if got, _ := m.SectionOf(it); got != sec {
		t.Fatalf("item not relocated into section")
	}
	if m.FreeItemCount() != 0 {
		t.Fatalf("item still on free list after relocation")
	}

	m.ChangeItemSection(it, sec, nil)
	if got, _ := m.SectionOf(it); got != nil {
		t.Fatalf("item not relocated back to free list")
	}
	if sec.ItemCount() != 0 {
		t.Fatalf("item still in section after relocation")
	}
}

func TestKitchenProcessesExpandsPreparations(t *testing.T) {
	m := New(testChef(), "Spring Gala")
	rec := recipe.NewRecipe("Lasagna")
	ragu := recipe.NewPreparation("Prepare ragu")
	bake := recipe.NewPreparation("Bake")
	rec.AddPreparation(ragu)
	rec.AddPreparation(bake)
	m.AddItem(rec, nil, "lasagna")

	processes := m.KitchenProcesses()
	if len(processes) != 3 {
		t.Fatalf("processes = %d, want 3", len(processes))
	}
	if processes[0] != recipe.Process(rec) {
		t.Fatalf("processes[0] is not the recipe")
	}
	if processes[1] != recipe.Process(ragu) || processes[2] != recipe.Process(bake) {
		t.Fatalf("preparations not in child order")
	}
}

func TestDeepCopySharesRecipes(t *testing.T) {
	m := New(testChef(), "Spring Gala")
	m.SetID(4)
	rec := recipe.NewRecipe("Lasagna")
	rec.SetID(9)
	sec := m.AddSection("Starters")
	sec.SetID(5)
	it := m.AddItem(rec, sec, "lasagna")
	it.SetID(6)
	m.SetPublished(true)

	cp := m.DeepCopy()

	if cp.ID() != 0 {
		t.Fatalf("copy id = %d, want 0", cp.ID())
	}
	if !cp.Published() {
		t.Fatalf("copy lost published flag")
	}
	cpSec := cp.Sections()[0]
	if cpSec == sec {
		t.Fatalf("copy shares section instance")
	}
	if cpSec.ID() != 0 {
		t.Fatalf("copied section id = %d, want 0", cpSec.ID())
	}
	cpItem := cpSec.Items()[0]
	if cpItem == it {
		t.Fatalf("copy shares item instance")
	}
	if cpItem.Recipe() != rec {
		t.Fatalf("copied item does not share the recipe")
	}
}
