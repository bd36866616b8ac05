package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/mportesi/catering/internal/user"
)

// Store persists shifts and bookings. Unlike the menu, kitchen, and event
// aggregates, shifts are persisted inline rather than through a receiver
// bus: booking is a scheduling concern with no multi-step edit protocol.
type Store interface {
	// CreateShift persists a new shift and assigns its identity.
	CreateShift(ctx context.Context, s *Shift) error
	// AddShiftBooking records a booking.
	AddShiftBooking(ctx context.Context, s *Shift, u *user.User) error
	// RemoveShiftBooking removes a booking.
	RemoveShiftBooking(ctx context.Context, s *Shift, u *user.User) error
}

// Manager coordinates shift creation, booking, and the availability policy.
type Manager struct {
	store  Store
	shifts []*Shift
}

// NewManager creates a Manager over the given store and the shifts already
// loaded from it.
func NewManager(store Store, shifts []*Shift) *Manager {
	return &Manager{store: store, shifts: shifts}
}

// Shifts returns the known shift table.
func (m *Manager) Shifts() []*Shift {
	table := make([]*Shift, len(m.shifts))
	copy(table, m.shifts)
	return table
}

// ShiftsOn returns the shifts scheduled on the given date.
func (m *Manager) ShiftsOn(date time.Time) []*Shift {
	y, mo, d := date.Date()
	var result []*Shift
	for _, s := range m.shifts {
		sy, smo, sd := s.Date().Date()
		if sy == y && smo == mo && sd == d {
			result = append(result, s)
		}
	}
	return result
}

// IsAvailable reports whether the user is available for the shift. Per the
// house policy a user is available exactly when already booked on the shift.
func (m *Manager) IsAvailable(u *user.User, s *Shift) bool {
	if s == nil {
		return false
	}
	return s.IsBooked(u)
}

// CreateShift creates and persists a new shift.
func (m *Manager) CreateShift(ctx context.Context, date, startTime, endTime time.Time) (*Shift, error) {
	s := New(date, startTime, endTime)
	if m.store != nil {
		if err := m.store.CreateShift(ctx, s); err != nil {
			return nil, fmt.Errorf("create shift: %w", err)
		}
	}
	m.shifts = append(m.shifts, s)
	return s, nil
}

// BookUser books a user on a shift. Booking an already-booked user is a
// no-op.
func (m *Manager) BookUser(ctx context.Context, s *Shift, u *user.User) error {
	if s == nil {
		return ErrNoShift
	}
	if !s.AddBooking(u) {
		return nil
	}
	if m.store != nil {
		if err := m.store.AddShiftBooking(ctx, s, u); err != nil {
			return fmt.Errorf("book user for shift: %w", err)
		}
	}
	return nil
}

// RemoveBooking removes a user's booking from a shift. It returns the
// removed user, or nil when the user was not booked.
func (m *Manager) RemoveBooking(ctx context.Context, s *Shift, u *user.User) (*user.User, error) {
	if s == nil {
		return nil, ErrNoShift
	}
	removed := s.RemoveBooking(u)
	if removed == nil {
		return nil, nil
	}
	if m.store != nil {
		if err := m.store.RemoveShiftBooking(ctx, s, u); err != nil {
			return nil, fmt.Errorf("remove shift booking: %w", err)
		}
	}
	return removed, nil
}
