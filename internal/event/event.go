// Package event models catering events and the services they comprise. An
// event owns its ordered services; deleting an event cascades to them. A
// service may later acquire an approved menu, which is what the kitchen
// derives its summary sheet from.
package event

import (
	"time"

	"github.com/mportesi/catering/internal/user"
)

// Event is a catering engagement spanning one or more services.
type Event struct {
	id        int64
	name      string
	dateStart time.Time
	dateEnd   time.Time
	chef      *user.User
	services  []*Service
}

// NewEvent creates an unsaved event assigned to the given chef.
func NewEvent(name string, dateStart, dateEnd time.Time, chef *user.User) *Event {
	return &Event{name: name, dateStart: dateStart, dateEnd: dateEnd, chef: chef}
}

// ID returns the storage identity, 0 for an unsaved event.
func (e *Event) ID() int64 { return e.id }

// SetID assigns the storage identity.
func (e *Event) SetID(id int64) { e.id = id }

// Name returns the event name.
func (e *Event) Name() string { return e.name }

// SetName renames the event.
func (e *Event) SetName(name string) { e.name = name }

// DateStart returns the first day of the event.
func (e *Event) DateStart() time.Time { return e.dateStart }

// SetDateStart moves the first day of the event.
func (e *Event) SetDateStart(d time.Time) { e.dateStart = d }

// DateEnd returns the last day of the event.
func (e *Event) DateEnd() time.Time { return e.dateEnd }

// SetDateEnd moves the last day of the event.
func (e *Event) SetDateEnd(d time.Time) { e.dateEnd = d }

// Chef returns the chef assigned to the event.
func (e *Event) Chef() *user.User { return e.chef }

// SetChef reassigns the event's chef.
func (e *Event) SetChef(chef *user.User) { e.chef = chef }

// Services returns the ordered services of the event.
func (e *Event) Services() []*Service {
	services := make([]*Service, len(e.services))
	copy(services, e.services)
	return services
}

// AddService appends a service to the event.
func (e *Event) AddService(svc *Service) {
	e.services = append(e.services, svc)
}

// RemoveService removes a service by reference. It reports whether the
// service was present.
func (e *Event) RemoveService(svc *Service) bool {
	for i, existing := range e.services {
		if existing == svc {
			e.services = append(e.services[:i], e.services[i+1:]...)
			return true
		}
	}
	return false
}

// ContainsService reports whether the service belongs to this event.
func (e *Event) ContainsService(svc *Service) bool {
	for _, existing := range e.services {
		if existing == svc {
			return true
		}
	}
	return false
}

// ServiceByID returns the service with the given identity, or nil.
func (e *Event) ServiceByID(id int64) *Service {
	for _, svc := range e.services {
		if svc.ID() == id {
			return svc
		}
	}
	return nil
}
