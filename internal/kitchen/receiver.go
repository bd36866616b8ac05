package kitchen

import "context"

// Receiver is notified synchronously after each summary-sheet mutation,
// once per mutation, in subscription order. Create callbacks may assign
// storage identities in place. A callback error aborts propagation to
// later receivers.
type Receiver interface {
	// SheetGenerated records a newly derived sheet with its full task list.
	SheetGenerated(ctx context.Context, sh *SummarySheet) error
	// TaskAdded records a task appended to the sheet.
	TaskAdded(ctx context.Context, sh *SummarySheet, t *KitchenTask) error
	// TasksReordered records a new task order.
	TasksReordered(ctx context.Context, sh *SummarySheet) error
	// TaskChanged records updated task info (quantity, portions, ready).
	TaskChanged(ctx context.Context, t *KitchenTask) error
	// AssignmentAdded records a new assignment on the sheet.
	AssignmentAdded(ctx context.Context, sh *SummarySheet, a *Assignment) error
	// AssignmentChanged records a rescheduled or restaffed assignment.
	AssignmentChanged(ctx context.Context, a *Assignment) error
	// AssignmentDeleted records a removed assignment.
	AssignmentDeleted(ctx context.Context, a *Assignment) error
}
