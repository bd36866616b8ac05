// Package shift models work shifts and user bookings. Booking a user on a
// shift is a scheduling act only; it does not assign any kitchen task.
//
// Availability follows the house policy: a cook is available for a shift
// exactly when the cook is already booked on it. Booking is a prerequisite
// for task assignment, not a conflict.
package shift

import (
	"errors"
	"sort"
	"time"

	"github.com/mportesi/catering/internal/user"
)

// ErrNoShift indicates a nil shift handle was passed to an operation.
var ErrNoShift = errors.New("no shift given")

// Shift is a bounded working period on a given date.
type Shift struct {
	id        int64
	date      time.Time
	startTime time.Time
	endTime   time.Time
	booked    map[int64]*user.User
}

// New creates an unsaved shift with no bookings.
func New(date, startTime, endTime time.Time) *Shift {
	return &Shift{
		date:      date,
		startTime: startTime,
		endTime:   endTime,
		booked:    make(map[int64]*user.User),
	}
}

// ID returns the storage identity, 0 for an unsaved shift.
func (s *Shift) ID() int64 { return s.id }

// SetID assigns the storage identity.
func (s *Shift) SetID(id int64) { s.id = id }

// Date returns the shift date.
func (s *Shift) Date() time.Time { return s.date }

// StartTime returns when the shift begins.
func (s *Shift) StartTime() time.Time { return s.startTime }

// EndTime returns when the shift ends.
func (s *Shift) EndTime() time.Time { return s.endTime }

// IsBooked reports whether the user is booked on this shift.
func (s *Shift) IsBooked(u *user.User) bool {
	if u == nil {
		return false
	}
	_, ok := s.booked[u.ID()]
	return ok
}

// AddBooking books a user on the shift. It reports whether the booking was
// newly added.
func (s *Shift) AddBooking(u *user.User) bool {
	if u == nil || s.IsBooked(u) {
		return false
	}
	s.booked[u.ID()] = u
	return true
}

// RemoveBooking removes a user's booking. It returns the removed user, or
// nil when the user was not booked.
func (s *Shift) RemoveBooking(u *user.User) *user.User {
	if u == nil {
		return nil
	}
	booked, ok := s.booked[u.ID()]
	if !ok {
		return nil
	}
	delete(s.booked, u.ID())
	return booked
}

// BookedUsers returns the booked users ordered by identity.
func (s *Shift) BookedUsers() []*user.User {
	users := make([]*user.User, 0, len(s.booked))
	for _, u := range s.booked {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID() < users[j].ID() })
	return users
}
