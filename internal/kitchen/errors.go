package kitchen

import "errors"

var (
	// ErrNoSheet indicates an operation was invoked without a sheet handle.
	ErrNoSheet = errors.New("no summary sheet selected")
	// ErrNotSheetOwner indicates the current user did not generate the
	// sheet.
	ErrNotSheetOwner = errors.New("current user does not own the summary sheet")
	// ErrTaskNotInSheet indicates the task is not part of the sheet.
	ErrTaskNotInSheet = errors.New("task is not part of this summary sheet")
	// ErrInvalidAssignment indicates the assignment is not part of the
	// sheet.
	ErrInvalidAssignment = errors.New("assignment is not part of this summary sheet")
	// ErrPositionOutOfRange indicates a reorder target outside
	// [0, taskCount). This is a contract violation by the caller.
	ErrPositionOutOfRange = errors.New("position out of range")
	// ErrNegativeTaskInfo indicates quantity, portions, or minutes below
	// zero. This is a contract violation by the caller.
	ErrNegativeTaskInfo = errors.New("quantity, portions, and minutes must not be negative")
	// ErrCookNotAvailable indicates the cook is not available for the
	// shift. Per the house policy, available means already booked on it.
	ErrCookNotAvailable = errors.New("cook is not booked on the shift")
	// ErrEventWithoutService indicates the service does not belong to the
	// given event.
	ErrEventWithoutService = errors.New("event does not include this service")
	// ErrNotEventChef indicates the current user is not the chef assigned
	// to the event.
	ErrNotEventChef = errors.New("current user is not the event's assigned chef")
	// ErrServiceWithoutMenu indicates the service has no approved menu to
	// derive tasks from.
	ErrServiceWithoutMenu = errors.New("service has no approved menu")
)
