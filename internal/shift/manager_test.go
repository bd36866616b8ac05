package shift

import (
	"context"
	"testing"
	"time"

	"github.com/mportesi/catering/internal/user"
)

// fakeStore counts persistence calls.
type fakeStore struct {
	created int64
	creates int
	books   int
	removes int
}

func (f *fakeStore) CreateShift(ctx context.Context, s *Shift) error {
	f.creates++
	f.created++
	s.SetID(f.created)
	return nil
}

func (f *fakeStore) AddShiftBooking(ctx context.Context, s *Shift, u *user.User) error {
	f.books++
	return nil
}

func (f *fakeStore) RemoveShiftBooking(ctx context.Context, s *Shift, u *user.User) error {
	f.removes++
	return nil
}

func testCook() *user.User {
	u := user.New("tony", user.RoleCook)
	u.SetID(2)
	return u
}

func TestAvailabilityMeansBooked(t *testing.T) {
	mgr := NewManager(nil, nil)
	cook := testCook()
	s := New(time.Now(), time.Time{}, time.Time{})

	if mgr.IsAvailable(cook, s) {
		t.Fatalf("unbooked cook reported available")
	}
	s.AddBooking(cook)
	if !mgr.IsAvailable(cook, s) {
		t.Fatalf("booked cook reported unavailable")
	}
	if mgr.IsAvailable(cook, nil) {
		t.Fatalf("nil shift reported available")
	}
}

func TestCreateShiftPersists(t *testing.T) {
	store := &fakeStore{}
	mgr := NewManager(store, nil)

	s, err := mgr.CreateShift(context.Background(), time.Now(), time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("CreateShift error = %v", err)
	}
	if s.ID() == 0 {
		t.Fatalf("shift id not assigned")
	}
	if store.creates != 1 {
		t.Fatalf("creates = %d, want 1", store.creates)
	}
	if len(mgr.Shifts()) != 1 {
		t.Fatalf("shift table = %d, want 1", len(mgr.Shifts()))
	}
}

func TestBookUserIsIdempotent(t *testing.T) {
	store := &fakeStore{}
	mgr := NewManager(store, nil)
	cook := testCook()
	ctx := context.Background()
	s, _ := mgr.CreateShift(ctx, time.Now(), time.Time{}, time.Time{})

	if err := mgr.BookUser(ctx, s, cook); err != nil {
		t.Fatalf("BookUser error = %v", err)
	}
	if err := mgr.BookUser(ctx, s, cook); err != nil {
		t.Fatalf("BookUser twice error = %v", err)
	}
	if store.books != 1 {
		t.Fatalf("store bookings = %d, want 1 (second book is a no-op)", store.books)
	}
	if !s.IsBooked(cook) {
		t.Fatalf("cook not booked")
	}
}

func TestRemoveBooking(t *testing.T) {
	store := &fakeStore{}
	mgr := NewManager(store, nil)
	cook := testCook()
	ctx := context.Background()
	s, _ := mgr.CreateShift(ctx, time.Now(), time.Time{}, time.Time{})
	_ = mgr.BookUser(ctx, s, cook)

	removed, err := mgr.RemoveBooking(ctx, s, cook)
	if err != nil {
		t.Fatalf("RemoveBooking error = %v", err)
	}
	if removed != cook {
		t.Fatalf("removed = %v, want the cook", removed)
	}
	removed, err = mgr.RemoveBooking(ctx, s, cook)
	if err != nil || removed != nil {
		t.Fatalf("RemoveBooking twice = (%v, %v), want (nil, nil)", removed, err)
	}
	if store.removes != 1 {
		t.Fatalf("store removes = %d, want 1", store.removes)
	}
}

func TestShiftsOn(t *testing.T) {
	mgr := NewManager(nil, nil)
	ctx := context.Background()
	day := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	other := day.AddDate(0, 0, 1)
	s1, _ := mgr.CreateShift(ctx, day, time.Time{}, time.Time{})
	_, _ = mgr.CreateShift(ctx, other, time.Time{}, time.Time{})

	got := mgr.ShiftsOn(day)
	if len(got) != 1 || got[0] != s1 {
		t.Fatalf("ShiftsOn = %v, want [s1]", got)
	}
}
