package event

import (
	"time"

	"github.com/mportesi/catering/internal/menu"
)

// Service is a single catered occasion within an event: one date, one
// time window, one location, and optionally one approved menu.
type Service struct {
	id        int64
	eventID   int64
	name      string
	date      time.Time
	timeStart time.Time
	timeEnd   time.Time
	location  string
	menu      *menu.Menu
}

// NewService creates an unsaved service.
func NewService(name string, date, timeStart, timeEnd time.Time, location string) *Service {
	return &Service{name: name, date: date, timeStart: timeStart, timeEnd: timeEnd, location: location}
}

// ID returns the storage identity, 0 for an unsaved service.
func (s *Service) ID() int64 { return s.id }

// SetID assigns the storage identity.
func (s *Service) SetID(id int64) { s.id = id }

// EventID returns the owning event's identity.
func (s *Service) EventID() int64 { return s.eventID }

// SetEventID records the owning event's identity.
func (s *Service) SetEventID(id int64) { s.eventID = id }

// Name returns the service name.
func (s *Service) Name() string { return s.name }

// SetName renames the service.
func (s *Service) SetName(name string) { s.name = name }

// Date returns the service date.
func (s *Service) Date() time.Time { return s.date }

// SetDate moves the service date.
func (s *Service) SetDate(d time.Time) { s.date = d }

// TimeStart returns when the service begins.
func (s *Service) TimeStart() time.Time { return s.timeStart }

// SetTimeStart moves the service start.
func (s *Service) SetTimeStart(t time.Time) { s.timeStart = t }

// TimeEnd returns when the service ends.
func (s *Service) TimeEnd() time.Time { return s.timeEnd }

// SetTimeEnd moves the service end.
func (s *Service) SetTimeEnd(t time.Time) { s.timeEnd = t }

// Location returns where the service takes place.
func (s *Service) Location() string { return s.location }

// SetLocation moves the service.
func (s *Service) SetLocation(location string) { s.location = location }

// Menu returns the approved menu, or nil when none is assigned.
func (s *Service) Menu() *menu.Menu { return s.menu }

// AssignMenu approves a menu for this service.
func (s *Service) AssignMenu(m *menu.Menu) { s.menu = m }

// RemoveMenu clears the approved menu.
func (s *Service) RemoveMenu() { s.menu = nil }

// MenuItems returns every item of the approved menu in display order, or
// nil when no menu is assigned.
func (s *Service) MenuItems() []*menu.MenuItem {
	if s.menu == nil {
		return nil
	}
	return s.menu.Items()
}
