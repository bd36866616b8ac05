package event

import (
	"context"

	"github.com/mportesi/catering/internal/menu"
)

// Receiver is notified synchronously after each event mutation, once per
// mutation, in subscription order. Create callbacks may assign storage
// identities in place. A callback error aborts propagation to later
// receivers.
type Receiver interface {
	// EventCreated records a new event.
	EventCreated(ctx context.Context, ev *Event) error
	// EventModified records updated event metadata.
	EventModified(ctx context.Context, ev *Event) error
	// EventDeleted records the removal of an event and, by cascade, its
	// services.
	EventDeleted(ctx context.Context, ev *Event) error
	// ServiceCreated records a new service appended to the event.
	ServiceCreated(ctx context.Context, ev *Event, svc *Service) error
	// ServiceModified records updated service metadata.
	ServiceModified(ctx context.Context, svc *Service) error
	// ServiceDeleted records the removal of one service.
	ServiceDeleted(ctx context.Context, svc *Service) error
	// MenuAssigned records a menu approved for a service.
	MenuAssigned(ctx context.Context, svc *Service, m *menu.Menu) error
	// MenuRemoved records a service losing its approved menu.
	MenuRemoved(ctx context.Context, svc *Service) error
}
