package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mportesi/catering/internal/event"
	"github.com/mportesi/catering/internal/menu"
)

// EventCreated inserts the event and assigns its identity.
func (s *Store) EventCreated(ctx context.Context, ev *event.Event) error {
	var chefID int64
	if ev.Chef() != nil {
		chefID = ev.Chef().ID()
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO events (name, date_start, date_end, chef_id) VALUES (?, ?, ?, ?)",
		ev.Name(), formatDate(ev.DateStart()), formatDate(ev.DateEnd()), chefID)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("event id: %w", err)
	}
	ev.SetID(id)
	return nil
}

// EventModified updates the stored event metadata.
func (s *Store) EventModified(ctx context.Context, ev *event.Event) error {
	var chefID int64
	if ev.Chef() != nil {
		chefID = ev.Chef().ID()
	}
	if _, err := s.db.ExecContext(ctx,
		"UPDATE events SET name = ?, date_start = ?, date_end = ?, chef_id = ? WHERE id = ?",
		ev.Name(), formatDate(ev.DateStart()), formatDate(ev.DateEnd()), chefID, ev.ID()); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// EventDeleted removes the event and cascades to its services.
func (s *Store) EventDeleted(ctx context.Context, ev *event.Event) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM services WHERE event_id = ?", ev.ID()); err != nil {
		return fmt.Errorf("delete event services: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM events WHERE id = ?", ev.ID()); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// ServiceCreated inserts the service and assigns its identity.
func (s *Store) ServiceCreated(ctx context.Context, ev *event.Event, svc *event.Service) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO services (event_id, name, date, time_start, time_end, location, approved_menu_id) VALUES (?, ?, ?, ?, ?, ?, ?)",
		ev.ID(), svc.Name(), formatDate(svc.Date()), formatTime(svc.TimeStart()), formatTime(svc.TimeEnd()),
		svc.Location(), approvedMenuID(svc))
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("service id: %w", err)
	}
	svc.SetID(id)
	svc.SetEventID(ev.ID())
	return nil
}

// ServiceModified updates the stored service metadata.
func (s *Store) ServiceModified(ctx context.Context, svc *event.Service) error {
	if _, err := s.db.ExecContext(ctx,
		"UPDATE services SET name = ?, date = ?, time_start = ?, time_end = ?, location = ? WHERE id = ?",
		svc.Name(), formatDate(svc.Date()), formatTime(svc.TimeStart()), formatTime(svc.TimeEnd()),
		svc.Location(), svc.ID()); err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// ServiceDeleted removes the stored service.
func (s *Store) ServiceDeleted(ctx context.Context, svc *event.Service) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM services WHERE id = ?", svc.ID()); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

// MenuAssigned records the approved menu on the stored service.
func (s *Store) MenuAssigned(ctx context.Context, svc *event.Service, m *menu.Menu) error {
	if _, err := s.db.ExecContext(ctx,
		"UPDATE services SET approved_menu_id = ? WHERE id = ?", m.ID(), svc.ID()); err != nil {
		return fmt.Errorf("assign service menu: %w", err)
	}
	return nil
}

// MenuRemoved clears the approved menu on the stored service.
func (s *Store) MenuRemoved(ctx context.Context, svc *event.Service) error {
	if _, err := s.db.ExecContext(ctx,
		"UPDATE services SET approved_menu_id = 0 WHERE id = ?", svc.ID()); err != nil {
		return fmt.Errorf("clear service menu: %w", err)
	}
	return nil
}

// LoadEvent reconstructs an event with its services and any approved
// menus, nil when absent.
func (s *Store) LoadEvent(ctx context.Context, id int64) (*event.Event, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, date_start, date_end, chef_id FROM events WHERE id = ?", id)
	var eventID, chefID int64
	var name, dateStart, dateEnd string
	if err := row.Scan(&eventID, &name, &dateStart, &dateEnd, &chefID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	chef, err := s.LoadUser(ctx, chefID)
	if err != nil {
		return nil, err
	}
	ev := event.NewEvent(name, parseDate(dateStart), parseDate(dateEnd), chef)
	ev.SetID(eventID)

	rows, err := s.db.QueryContext(ctx,
		"SELECT id FROM services WHERE event_id = ? ORDER BY id", eventID)
	if err != nil {
		return nil, fmt.Errorf("query event services: %w", err)
	}
	defer rows.Close()
	var serviceIDs []int64
	for rows.Next() {
		var svcID int64
		if err := rows.Scan(&svcID); err != nil {
			return nil, fmt.Errorf("scan service id: %w", err)
		}
		serviceIDs = append(serviceIDs, svcID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event services: %w", err)
	}

	for _, svcID := range serviceIDs {
		svc, err := s.loadService(ctx, svcID)
		if err != nil {
			return nil, err
		}
		if svc != nil {
			ev.AddService(svc)
		}
	}
	return ev, nil
}

// LoadAllEvents reconstructs every stored event ordered by identity.
func (s *Store) LoadAllEvents(ctx context.Context) ([]*event.Event, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id FROM events ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan event id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	events := make([]*event.Event, 0, len(ids))
	for _, id := range ids {
		ev, err := s.LoadEvent(ctx, id)
		if err != nil {
			return nil, err
		}
		if ev != nil {
			events = append(events, ev)
		}
	}
	return events, nil
}

// loadService reconstructs one service with its approved menu, nil when
// absent. Summary sheets reference services directly.
func (s *Store) loadService(ctx context.Context, id int64) (*event.Service, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, event_id, name, date, time_start, time_end, location, approved_menu_id FROM services WHERE id = ?", id)
	var svcID, eventID, menuID int64
	var name, date, timeStart, timeEnd, location string
	if err := row.Scan(&svcID, &eventID, &name, &date, &timeStart, &timeEnd, &location, &menuID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan service: %w", err)
	}

	svc := event.NewService(name, parseDate(date), parseTime(timeStart), parseTime(timeEnd), location)
	svc.SetID(svcID)
	svc.SetEventID(eventID)
	if menuID > 0 {
		m, err := s.LoadMenu(ctx, menuID)
		if err != nil {
			return nil, err
		}
		if m != nil {
			svc.AssignMenu(m)
		}
	}
	return svc, nil
}

func approvedMenuID(svc *event.Service) int64 {
	if svc.Menu() == nil {
		return 0
	}
	return svc.Menu().ID()
}
