package event

import (
	"context"
	"time"

	"github.com/mportesi/catering/internal/menu"
	"github.com/mportesi/catering/internal/notify"
	"github.com/mportesi/catering/internal/user"
)

// Manager exposes the only mutation entry points for event aggregates.
// Every operation validates its preconditions, applies the mutation in
// memory, then notifies each subscribed receiver exactly once, in
// subscription order. The caller passes aggregate handles explicitly.
type Manager struct {
	receivers []Receiver
}

// NewManager creates an event Manager with no subscribers.
func NewManager() *Manager {
	return &Manager{}
}

// Subscribe appends a receiver to the notification list. Order of
// subscription is order of invocation.
func (mgr *Manager) Subscribe(r Receiver) {
	mgr.receivers = append(mgr.receivers, r)
}

// Unsubscribe removes a receiver from the notification list.
func (mgr *Manager) Unsubscribe(r Receiver) {
	for i, existing := range mgr.receivers {
		if existing == r {
			mgr.receivers = append(mgr.receivers[:i], mgr.receivers[i+1:]...)
			return
		}
	}
}

func (mgr *Manager) notify(op string, fn func(Receiver) error) error {
	for _, r := range mgr.receivers {
		if err := fn(r); err != nil {
			return &notify.DesyncError{Op: op, Err: err}
		}
	}
	return nil
}

// CreateEvent creates a new event assigned to the given chef.
func (mgr *Manager) CreateEvent(ctx context.Context, name string, dateStart, dateEnd time.Time, chef *user.User) (*Event, error) {
	ev := NewEvent(name, dateStart, dateEnd, chef)
	if err := mgr.notify("event: create", func(r Receiver) error {
		return r.EventCreated(ctx, ev)
	}); err != nil {
		return ev, err
	}
	return ev, nil
}

// ModifyEvent updates an event's name and start date.
func (mgr *Manager) ModifyEvent(ctx context.Context, ev *Event, name string, dateStart time.Time) error {
	if ev == nil {
		return ErrNoEvent
	}
	ev.SetName(name)
	ev.SetDateStart(dateStart)
	return mgr.notify("event: modify", func(r Receiver) error {
		return r.EventModified(ctx, ev)
	})
}

// DeleteEvent removes an event. Its services are removed with it.
func (mgr *Manager) DeleteEvent(ctx context.Context, ev *Event) error {
	if ev == nil {
		return ErrNoEvent
	}
	return mgr.notify("event: delete", func(r Receiver) error {
		return r.EventDeleted(ctx, ev)
	})
}

// AddService creates a service and appends it to the event.
func (mgr *Manager) AddService(ctx context.Context, ev *Event, name string, date, timeStart, timeEnd time.Time, location string) (*Service, error) {
	if ev == nil {
		return nil, ErrNoEvent
	}
	svc := NewService(name, date, timeStart, timeEnd, location)
	svc.SetEventID(ev.ID())
	ev.AddService(svc)
	if err := mgr.notify("event: add service", func(r Receiver) error {
		return r.ServiceCreated(ctx, ev, svc)
	}); err != nil {
		return svc, err
	}
	return svc, nil
}

// ModifyService updates a service's name, date, and location.
func (mgr *Manager) ModifyService(ctx context.Context, ev *Event, svc *Service, name string, date time.Time, location string) error {
	if ev == nil {
		return ErrNoEvent
	}
	if svc == nil {
		return ErrNoService
	}
	if !ev.ContainsService(svc) {
		return ErrServiceNotInEvent
	}
	svc.SetName(name)
	svc.SetDate(date)
	svc.SetLocation(location)
	return mgr.notify("event: modify service", func(r Receiver) error {
		return r.ServiceModified(ctx, svc)
	})
}

// DeleteService removes a service from its event.
func (mgr *Manager) DeleteService(ctx context.Context, ev *Event, svc *Service) error {
	if ev == nil {
		return ErrNoEvent
	}
	if svc == nil {
		return ErrNoService
	}
	if !ev.RemoveService(svc) {
		return ErrServiceNotInEvent
	}
	return mgr.notify("event: delete service", func(r Receiver) error {
		return r.ServiceDeleted(ctx, svc)
	})
}

// AssignMenu approves a published menu for a service.
func (mgr *Manager) AssignMenu(ctx context.Context, ev *Event, svc *Service, m *menu.Menu) error {
	if ev == nil {
		return ErrNoEvent
	}
	if svc == nil {
		return ErrNoService
	}
	if !ev.ContainsService(svc) {
		return ErrServiceNotInEvent
	}
	if m == nil {
		return menu.ErrNoMenu
	}
	if !m.Published() {
		return ErrMenuNotPublished
	}
	svc.AssignMenu(m)
	m.SetInUse(true)
	return mgr.notify("event: assign menu", func(r Receiver) error {
		return r.MenuAssigned(ctx, svc, m)
	})
}

// RemoveMenu clears a service's approved menu.
func (mgr *Manager) RemoveMenu(ctx context.Context, svc *Service) error {
	if svc == nil {
		return ErrNoService
	}
	svc.RemoveMenu()
	return mgr.notify("event: remove menu", func(r Receiver) error {
		return r.MenuRemoved(ctx, svc)
	})
}
