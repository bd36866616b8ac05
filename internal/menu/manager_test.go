package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/mportesi/catering/internal/notify"
	"github.com/mportesi/catering/internal/recipe"
	"github.com/mportesi/catering/internal/user"
)

// recorder logs every callback it receives and can fail on demand.
type recorder struct {
	calls []string
	fail  error
}

func (r *recorder) record(name string) error {
	r.calls = append(r.calls, name)
	return r.fail
}

func (r *recorder) MenuCreated(ctx context.Context, m *Menu) error    { return r.record("MenuCreated") }
func (r *recorder) MenuDeleted(ctx context.Context, m *Menu) error    { return r.record("MenuDeleted") }
func (r *recorder) TitleChanged(ctx context.Context, m *Menu) error   { return r.record("TitleChanged") }
func (r *recorder) PublishedChanged(ctx context.Context, m *Menu) error {
	return r.record("PublishedChanged")
}
func (r *recorder) FeaturesChanged(ctx context.Context, m *Menu) error {
	return r.record("FeaturesChanged")
}
func (r *recorder) SectionAdded(ctx context.Context, m *Menu, sec *Section) error {
	return r.record("SectionAdded")
}
func (r *recorder) SectionRemoved(ctx context.Context, m *Menu, sec *Section, itemsDeleted bool) error {
	return r.record("SectionRemoved")
}
func (r *recorder) SectionRenamed(ctx context.Context, m *Menu, sec *Section) error {
	return r.record("SectionRenamed")
}
func (r *recorder) SectionsReordered(ctx context.Context, m *Menu) error {
	return r.record("SectionsReordered")
}
func (r *recorder) SectionItemsReordered(ctx context.Context, m *Menu, sec *Section) error {
	return r.record("SectionItemsReordered")
}
func (r *recorder) FreeItemsReordered(ctx context.Context, m *Menu) error {
	return r.record("FreeItemsReordered")
}
func (r *recorder) ItemAdded(ctx context.Context, m *Menu, it *MenuItem, sec *Section) error {
	return r.record("ItemAdded")
}
func (r *recorder) ItemSectionChanged(ctx context.Context, m *Menu, it *MenuItem, sec *Section) error {
	return r.record("ItemSectionChanged")
}
func (r *recorder) ItemDescriptionChanged(ctx context.Context, m *Menu, it *MenuItem) error {
	return r.record("ItemDescriptionChanged")
}
func (r *recorder) ItemRemoved(ctx context.Context, m *Menu, sec *Section, it *MenuItem) error {
	return r.record("ItemRemoved")
}

func newTestManager(t *testing.T, u *user.User) (*Manager, *recorder) {
	t.Helper()
	session := user.NewSingleSession()
	session.SetCurrentUser(u)
	mgr := NewManager(session)
	rec := &recorder{}
	mgr.Subscribe(rec)
	return mgr, rec
}

func TestCreateMenuRequiresChef(t *testing.T) {
	mgr, rec := newTestManager(t, user.New("tony", user.RoleCook))
	if _, err := mgr.CreateMenu(context.Background(), "Spring Gala"); !errors.Is(err, user.ErrNotChef) {
		t.Fatalf("CreateMenu error = %v, want ErrNotChef", err)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("receiver notified despite failed precondition: %v", rec.calls)
	}
}

func TestCreateMenuRequiresCurrentUser(t *testing.T) {
	mgr := NewManager(user.NewSingleSession())
	if _, err := mgr.CreateMenu(context.Background(), "Spring Gala"); !errors.Is(err, user.ErrNoCurrentUser) {
		t.Fatalf("CreateMenu error = %v, want ErrNoCurrentUser", err)
	}
}

func TestCreateMenuNotifiesOnce(t *testing.T) {
	mgr, rec := newTestManager(t, testChef())
	m, err := mgr.CreateMenu(context.Background(), "Spring Gala")
	if err != nil {
		t.Fatalf("CreateMenu error = %v", err)
	}
	if m.Owner() != nil && !m.Owner().IsChef() {
		t.Fatalf("menu owner is not the chef")
	}
	if len(rec.calls) != 1 || rec.calls[0] != "MenuCreated" {
		t.Fatalf("calls = %v, want [MenuCreated]", rec.calls)
	}
}

func TestReceiversNotifiedInSubscriptionOrder(t *testing.T) {
	mgr, first := newTestManager(t, testChef())
	second := &recorder{}
	mgr.Subscribe(second)

	if _, err := mgr.CreateMenu(context.Background(), "Spring Gala"); err != nil {
		t.Fatalf("CreateMenu error = %v", err)
	}
	if len(first.calls) != 1 || len(second.calls) != 1 {
		t.Fatalf("first = %v, second = %v, want one call each", first.calls, second.calls)
	}
}

func TestReceiverErrorBecomesDesync(t *testing.T) {
	mgr, rec := newTestManager(t, testChef())
	boom := errors.New("disk full")
	rec.fail = boom
	later := &recorder{}
	mgr.Subscribe(later)

	_, err := mgr.CreateMenu(context.Background(), "Spring Gala")
	var desync *notify.DesyncError
	if !errors.As(err, &desync) {
		t.Fatalf("CreateMenu error = %v, want DesyncError", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("DesyncError does not wrap the receiver error")
	}
	if len(later.calls) != 0 {
		t.Fatalf("later receiver notified after failure: %v", later.calls)
	}
}

func TestOperationsRejectNilMenu(t *testing.T) {
	mgr, rec := newTestManager(t, testChef())
	ctx := context.Background()

	if _, err := mgr.AddSection(ctx, nil, "Starters"); !errors.Is(err, ErrNoMenu) {
		t.Fatalf("AddSection error = %v, want ErrNoMenu", err)
	}
	if err := mgr.SetTitle(ctx, nil, "New"); !errors.Is(err, ErrNoMenu) {
		t.Fatalf("SetTitle error = %v, want ErrNoMenu", err)
	}
	if err := mgr.Publish(ctx, nil); !errors.Is(err, ErrNoMenu) {
		t.Fatalf("Publish error = %v, want ErrNoMenu", err)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("receiver notified despite nil menu: %v", rec.calls)
	}
}

func TestDeleteMenuPreconditions(t *testing.T) {
	chef := testChef()
	mgr, _ := newTestManager(t, chef)
	ctx := context.Background()

	inUse := New(chef, "Booked")
	inUse.SetInUse(true)
	if err := mgr.DeleteMenu(ctx, inUse); !errors.Is(err, ErrMenuInUse) {
		t.Fatalf("DeleteMenu(in use) error = %v, want ErrMenuInUse", err)
	}

	other := user.New("other", user.RoleChef)
	other.SetID(99)
	notMine := New(other, "Someone else's")
	if err := mgr.DeleteMenu(ctx, notMine); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("DeleteMenu(not owner) error = %v, want ErrNotOwner", err)
	}
}

func TestChangeItemSectionSameContainerIsNoop(t *testing.T) {
	mgr, rec := newTestManager(t, testChef())
	ctx := context.Background()
	m := New(testChef(), "Spring Gala")
	sec := m.AddSection("Starters")
	it := m.AddItem(recipe.NewRecipe("Lasagna"), sec, "lasagna")
	rec.calls = nil

	if err := mgr.ChangeItemSection(ctx, m, it, sec); err != nil {
		t.Fatalf("ChangeItemSection error = %v", err)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("no-op relocation emitted notifications: %v", rec.calls)
	}
	if got, _ := m.SectionOf(it); got != sec {
		t.Fatalf("item moved out of its container")
	}
}

func TestMoveSectionRange(t *testing.T) {
	mgr, rec := newTestManager(t, testChef())
	ctx := context.Background()
	m := New(testChef(), "Spring Gala")
	sec := m.AddSection("Starters")
	m.AddSection("Mains")
	rec.calls = nil

	tests := []struct {
		name     string
		position int
		wantErr  error
	}{
		{"negative", -1, ErrPositionOutOfRange},
		{"past end", 2, ErrPositionOutOfRange},
		{"valid", 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mgr.MoveSection(ctx, m, sec, tt.position)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("MoveSection error = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if len(rec.calls) != 1 || rec.calls[0] != "SectionsReordered" {
		t.Fatalf("calls = %v, want one SectionsReordered", rec.calls)
	}
}

func TestSetFeaturesSingleNotification(t *testing.T) {
	mgr, rec := newTestManager(t, testChef())
	ctx := context.Background()
	m := New(testChef(), "Spring Gala")
	rec.calls = nil

	err := mgr.SetFeatures(ctx, m, map[string]bool{
		FeatureBuffet:     true,
		FeatureWarmDishes: true,
		"unknownFlag":     true,
	})
	if err != nil {
		t.Fatalf("SetFeatures error = %v", err)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "FeaturesChanged" {
		t.Fatalf("calls = %v, want one FeaturesChanged", rec.calls)
	}
	if !m.Feature(FeatureBuffet) || !m.Feature(FeatureWarmDishes) {
		t.Fatalf("known features not applied")
	}
	if m.Feature("unknownFlag") {
		t.Fatalf("unknown feature applied")
	}
}

func TestMoveFreeItem(t *testing.T) {
	mgr, rec := newTestManager(t, testChef())
	ctx := context.Background()
	m := New(testChef(), "Spring Gala")
	rec0 := recipe.NewRecipe("Lasagna")
	first := m.AddItem(rec0, nil, "first")
	second := m.AddItem(rec0, nil, "second")
	sec := m.AddSection("Starters")
	sectioned := m.AddItem(rec0, sec, "sectioned")
	rec.calls = nil

	if err := mgr.MoveFreeItem(ctx, m, sectioned, 0); !errors.Is(err, ErrItemNotInMenu) {
		t.Fatalf("MoveFreeItem(sectioned item) error = %v, want ErrItemNotInMenu", err)
	}
	if err := mgr.MoveFreeItem(ctx, m, first, 2); !errors.Is(err, ErrPositionOutOfRange) {
		t.Fatalf("MoveFreeItem(past end) error = %v, want ErrPositionOutOfRange", err)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("receiver notified despite failed preconditions: %v", rec.calls)
	}

	if err := mgr.MoveFreeItem(ctx, m, second, 0); err != nil {
		t.Fatalf("MoveFreeItem error = %v", err)
	}
	free := m.FreeItems()
	if free[0] != second || free[1] != first {
		t.Fatalf("free list order = %q, %q", free[0].Description(), free[1].Description())
	}
	if len(rec.calls) != 1 || rec.calls[0] != "FreeItemsReordered" {
		t.Fatalf("calls = %v, want [FreeItemsReordered]", rec.calls)
	}
}

func TestMoveSectionItem(t *testing.T) {
	mgr, rec := newTestManager(t, testChef())
	ctx := context.Background()
	m := New(testChef(), "Spring Gala")
	rec0 := recipe.NewRecipe("Lasagna")
	sec := m.AddSection("Starters")
	first := m.AddItem(rec0, sec, "first")
	second := m.AddItem(rec0, sec, "second")
	free := m.AddItem(rec0, nil, "free")
	rec.calls = nil

	if err := mgr.MoveSectionItem(ctx, m, sec, free, 0); !errors.Is(err, ErrItemNotInSection) {
		t.Fatalf("MoveSectionItem(free item) error = %v, want ErrItemNotInSection", err)
	}
	other := NewSection("elsewhere")
	if err := mgr.MoveSectionItem(ctx, m, other, first, 0); !errors.Is(err, ErrSectionNotInMenu) {
		t.Fatalf("MoveSectionItem(stray section) error = %v, want ErrSectionNotInMenu", err)
	}
	if err := mgr.MoveSectionItem(ctx, m, sec, first, 2); !errors.Is(err, ErrPositionOutOfRange) {
		t.Fatalf("MoveSectionItem(past end) error = %v, want ErrPositionOutOfRange", err)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("receiver notified despite failed preconditions: %v", rec.calls)
	}

	if err := mgr.MoveSectionItem(ctx, m, sec, second, 0); err != nil {
		t.Fatalf("MoveSectionItem error = %v", err)
	}
	items := sec.Items()
	if items[0] != second || items[1] != first {
		t.Fatalf("section order = %q, %q", items[0].Description(), items[1].Description())
	}
	if len(rec.calls) != 1 || rec.calls[0] != "SectionItemsReordered" {
		t.Fatalf("calls = %v, want [SectionItemsReordered]", rec.calls)
	}
}

func TestRemoveItem(t *testing.T) {
	mgr, rec := newTestManager(t, testChef())
	ctx := context.Background()
	m := New(testChef(), "Spring Gala")
	rec0 := recipe.NewRecipe("Lasagna")
	sec := m.AddSection("Starters")
	it := m.AddItem(rec0, sec, "starter")
	rec.calls = nil

	if err := mgr.RemoveItem(ctx, m, it); err != nil {
		t.Fatalf("RemoveItem error = %v", err)
	}
	if _, ok := m.SectionOf(it); ok {
		t.Fatalf("item still belongs to the menu")
	}
	if err := mgr.RemoveItem(ctx, m, it); !errors.Is(err, ErrItemNotInMenu) {
		t.Fatalf("RemoveItem twice error = %v, want ErrItemNotInMenu", err)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "ItemRemoved" {
		t.Fatalf("calls = %v, want one ItemRemoved", rec.calls)
	}
}

func TestRenameSection(t *testing.T) {
	mgr, rec := newTestManager(t, testChef())
	ctx := context.Background()
	m := New(testChef(), "Spring Gala")
	sec := m.AddSection("Starters")
	rec.calls = nil

	if err := mgr.RenameSection(ctx, m, sec, "Antipasti"); err != nil {
		t.Fatalf("RenameSection error = %v", err)
	}
	if sec.Name() != "Antipasti" {
		t.Fatalf("name = %q, want Antipasti", sec.Name())
	}
	stray := NewSection("elsewhere")
	if err := mgr.RenameSection(ctx, m, stray, "x"); !errors.Is(err, ErrSectionNotInMenu) {
		t.Fatalf("RenameSection(stray) error = %v, want ErrSectionNotInMenu", err)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "SectionRenamed" {
		t.Fatalf("calls = %v, want one SectionRenamed", rec.calls)
	}
}

func TestSetItemDescription(t *testing.T) {
	mgr, rec := newTestManager(t, testChef())
	ctx := context.Background()
	m := New(testChef(), "Spring Gala")
	it := m.AddItem(recipe.NewRecipe("Lasagna"), nil, "plain")
	rec.calls = nil

	if err := mgr.SetItemDescription(ctx, m, it, "lasagna della casa"); err != nil {
		t.Fatalf("SetItemDescription error = %v", err)
	}
	if it.Description() != "lasagna della casa" {
		t.Fatalf("description = %q", it.Description())
	}
	stray := NewMenuItem(recipe.NewRecipe("Tiramisu"), "stray")
	if err := mgr.SetItemDescription(ctx, m, stray, "x"); !errors.Is(err, ErrItemNotInMenu) {
		t.Fatalf("SetItemDescription(stray) error = %v, want ErrItemNotInMenu", err)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "ItemDescriptionChanged" {
		t.Fatalf("calls = %v, want one ItemDescriptionChanged", rec.calls)
	}
}

func TestCopyMenuProducesUnsavedCopy(t *testing.T) {
	chef := testChef()
	mgr, rec := newTestManager(t, chef)
	ctx := context.Background()

	other := user.New("other", user.RoleChef)
	other.SetID(99)
	src := New(other, "Original")
	src.SetID(12)
	src.AddItem(recipe.NewRecipe("Lasagna"), nil, "lasagna")
	rec.calls = nil

	cp, err := mgr.CopyMenu(ctx, src)
	if err != nil {
		t.Fatalf("CopyMenu error = %v", err)
	}
	if cp.ID() != 0 {
		t.Fatalf("copy id = %d, want 0 before persistence assigns one", cp.ID())
	}
	if !cp.IsOwner(chef) {
		t.Fatalf("copy not owned by the current chef")
	}
	if len(rec.calls) != 1 || rec.calls[0] != "MenuCreated" {
		t.Fatalf("calls = %v, want [MenuCreated]", rec.calls)
	}
}
