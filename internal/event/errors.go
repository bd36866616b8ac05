package event

import "errors"

var (
	// ErrNoEvent indicates an operation was invoked without an event handle.
	ErrNoEvent = errors.New("no event selected")
	// ErrNoService indicates an operation was invoked without a service
	// handle.
	ErrNoService = errors.New("no service selected")
	// ErrServiceNotInEvent indicates the service does not belong to the
	// event.
	ErrServiceNotInEvent = errors.New("service is not part of this event")
	// ErrMenuNotPublished indicates a menu must be published before it can
	// be approved for a service.
	ErrMenuNotPublished = errors.New("menu is not published")
)
