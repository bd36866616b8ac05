package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mportesi/catering/internal/shift"
	"github.com/mportesi/catering/internal/user"
)

// CreateShift persists a new shift and assigns its identity.
func (s *Store) CreateShift(ctx context.Context, sh *shift.Shift) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO shifts (date, time_start, time_end) VALUES (?, ?, ?)",
		formatDate(sh.Date()), formatTime(sh.StartTime()), formatTime(sh.EndTime()))
	if err != nil {
		return fmt.Errorf("insert shift: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("shift id: %w", err)
	}
	sh.SetID(id)
	return nil
}

// AddShiftBooking records a booking.
func (s *Store) AddShiftBooking(ctx context.Context, sh *shift.Shift, u *user.User) error {
	if _, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO shift_bookings (shift_id, user_id) VALUES (?, ?)",
		sh.ID(), u.ID()); err != nil {
		return fmt.Errorf("insert shift booking: %w", err)
	}
	return nil
}

// RemoveShiftBooking removes a booking.
func (s *Store) RemoveShiftBooking(ctx context.Context, sh *shift.Shift, u *user.User) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM shift_bookings WHERE shift_id = ? AND user_id = ?",
		sh.ID(), u.ID()); err != nil {
		return fmt.Errorf("delete shift booking: %w", err)
	}
	return nil
}

// LoadShift reconstructs a shift with its booked users, nil when absent.
func (s *Store) LoadShift(ctx context.Context, id int64) (*shift.Shift, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, date, time_start, time_end FROM shifts WHERE id = ?", id)
	var shiftID int64
	var date, timeStart, timeEnd string
	if err := row.Scan(&shiftID, &date, &timeStart, &timeEnd); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan shift: %w", err)
	}

	sh := shift.New(parseDate(date), parseTime(timeStart), parseTime(timeEnd))
	sh.SetID(shiftID)

	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM shift_bookings WHERE shift_id = ? ORDER BY user_id", shiftID)
	if err != nil {
		return nil, fmt.Errorf("query shift bookings: %w", err)
	}
	defer rows.Close()
	var userIDs []int64
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("scan shift booking: %w", err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shift bookings: %w", err)
	}

	for _, userID := range userIDs {
		u, err := s.LoadUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if u != nil {
			sh.AddBooking(u)
		}
	}
	return sh, nil
}

// LoadAllShifts reconstructs the full shift table ordered by date.
func (s *Store) LoadAllShifts(ctx context.Context) ([]*shift.Shift, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id FROM shifts ORDER BY date, time_start, id")
	if err != nil {
		return nil, fmt.Errorf("query shifts: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan shift id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shifts: %w", err)
	}

	shifts := make([]*shift.Shift, 0, len(ids))
	for _, id := range ids {
		sh, err := s.LoadShift(ctx, id)
		if err != nil {
			return nil, err
		}
		if sh != nil {
			shifts = append(shifts, sh)
		}
	}
	return shifts, nil
}

// loadOptionalUser treats id 0 as absent.
func (s *Store) loadOptionalUser(ctx context.Context, id int64) (*user.User, error) {
	if id <= 0 {
		return nil, nil
	}
	return s.LoadUser(ctx, id)
}
