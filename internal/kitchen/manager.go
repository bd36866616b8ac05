package kitchen

import (
	"context"

	"github.com/mportesi/catering/internal/event"
	"github.com/mportesi/catering/internal/notify"
	"github.com/mportesi/catering/internal/recipe"
	"github.com/mportesi/catering/internal/shift"
	"github.com/mportesi/catering/internal/user"
)

// Availability answers whether a cook may be assigned to a shift. The
// house policy — implemented by shift.Manager — is that a cook is
// available exactly when already booked on the shift.
type Availability interface {
	IsAvailable(u *user.User, s *shift.Shift) bool
}

// Manager exposes the only mutation entry points for summary sheets. Every
// operation validates its preconditions, applies the mutation in memory,
// then notifies each subscribed receiver exactly once, in subscription
// order. The caller passes the sheet handle explicitly.
type Manager struct {
	session      user.Session
	availability Availability
	receivers    []Receiver
}

// NewManager creates a kitchen Manager resolving role preconditions
// through session and assignment availability through availability.
func NewManager(session user.Session, availability Availability) *Manager {
	return &Manager{session: session, availability: availability}
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

func (mgr *Manager) currentChef(ctx context.Context) (*user.User, error) {
	u, err := mgr.session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !u.IsChef() {
		return nil, user.ErrNotChef
	}
	return u, nil
}

// GenerateSummarySheet derives a new sheet from the service's approved
// menu. The caller must be a chef, must be the event's assigned chef, the
// event must contain the service, and the service must have a menu; each
// violation yields a distinct error.
func (mgr *Manager) GenerateSummarySheet(ctx context.Context, ev *event.Event, svc *event.Service) (*SummarySheet, error) {
	chef, err := mgr.currentChef(ctx)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, event.ErrNoEvent
	}
	if svc == nil {
		return nil, event.ErrNoService
	}
	if !ev.ContainsService(svc) {
		return nil, ErrEventWithoutService
	}
	if !chef.Equal(ev.Chef()) {
		return nil, ErrNotEventChef
	}
	if svc.Menu() == nil {
		return nil, ErrServiceWithoutMenu
	}
	sh := NewSummarySheet(svc, chef)
	if err := mgr.notify("kitchen: generate sheet", func(r Receiver) error {
		return r.SheetGenerated(ctx, sh)
	}); err != nil {
		return sh, err
	}
	return sh, nil
}

// OpenSheet verifies the current user may work on the sheet: a chef who
// generated it.
func (mgr *Manager) OpenSheet(ctx context.Context, sh *SummarySheet) error {
	chef, err := mgr.currentChef(ctx)
	if err != nil {
		return err
	}
	if sh == nil {
		return ErrNoSheet
	}
	if !sh.IsOwner(chef) {
		return ErrNotSheetOwner
	}
	return nil
}

// AddTask appends an extra task wrapping the given process.
func (mgr *Manager) AddTask(ctx context.Context, sh *SummarySheet, process recipe.Process, description string) (*KitchenTask, error) {
	if sh == nil {
		return nil, ErrNoSheet
	}
	t := sh.AddTask(NewTask(process, description))
	if err := mgr.notify("kitchen: add task", func(r Receiver) error {
		return r.TaskAdded(ctx, sh, t)
	}); err != nil {
		return t, err
	}
	return t, nil
}

// MoveTask repositions a task within the sheet. The position must satisfy
// 0 <= position < TaskCount.
func (mgr *Manager) MoveTask(ctx context.Context, sh *SummarySheet, t *KitchenTask, position int) error {
	if sh == nil {
		return ErrNoSheet
	}
	if sh.TaskPosition(t) < 0 {
		return ErrTaskNotInSheet
	}
	if position < 0 || position >= sh.TaskCount() {
		return ErrPositionOutOfRange
	}
	sh.MoveTask(t, position)
	return mgr.notify("kitchen: move task", func(r Receiver) error {
		return r.TasksReordered(ctx, sh)
	})
}

// AddTaskInformation records quantity and portions for a task. minutes is
// a duration estimate that is validated alongside them but not retained.
// All three values must be non-negative.
func (mgr *Manager) AddTaskInformation(ctx context.Context, sh *SummarySheet, t *KitchenTask, quantity, portions int, minutes int64) error {
	if sh == nil {
		return ErrNoSheet
	}
	if sh.TaskPosition(t) < 0 {
		return ErrTaskNotInSheet
	}
	if quantity < 0 || portions < 0 || minutes < 0 {
		return ErrNegativeTaskInfo
	}
	t.SetQuantity(quantity)
	t.SetPortions(portions)
	return mgr.notify("kitchen: add task information", func(r Receiver) error {
		return r.TaskChanged(ctx, t)
	})
}

// SetTaskReady marks a task completed. Marking an already-ready task is
// idempotent; nothing ever resets the flag.
func (mgr *Manager) SetTaskReady(ctx context.Context, sh *SummarySheet, t *KitchenTask) error {
	if sh == nil {
		return ErrNoSheet
	}
	if sh.TaskPosition(t) < 0 {
		return ErrTaskNotInSheet
	}
	t.SetReady()
	return mgr.notify("kitchen: set task ready", func(r Receiver) error {
		return r.TaskChanged(ctx, t)
	})
}

// AssignTask binds a task to a shift and, optionally, to a cook. The shift
// is required. A named cook must be available for the shift, which per the
// house policy means already booked on it.
func (mgr *Manager) AssignTask(ctx context.Context, sh *SummarySheet, t *KitchenTask, s *shift.Shift, cook *user.User) (*Assignment, error) {
	if sh == nil {
		return nil, ErrNoSheet
	}
	if sh.TaskPosition(t) < 0 {
		return nil, ErrTaskNotInSheet
	}
	if s == nil {
		return nil, shift.ErrNoShift
	}
	if cook != nil && !mgr.availability.IsAvailable(cook, s) {
		return nil, ErrCookNotAvailable
	}
	a := sh.AddAssignment(NewAssignment(t, s, cook))
	if err := mgr.notify("kitchen: assign task", func(r Receiver) error {
		return r.AssignmentAdded(ctx, sh, a)
	}); err != nil {
		return a, err
	}
	return a, nil
}

// ModifyAssignment reschedules and restaffs an assignment. The same
// availability policy applies to a named cook.
func (mgr *Manager) ModifyAssignment(ctx context.Context, sh *SummarySheet, a *Assignment, s *shift.Shift, cook *user.User) error {
	if sh == nil {
		return ErrNoSheet
	}
	if !sh.HasAssignment(a) {
		return ErrInvalidAssignment
	}
	if s == nil {
		return shift.ErrNoShift
	}
	if cook != nil && !mgr.availability.IsAvailable(cook, s) {
		return ErrCookNotAvailable
	}
	a.SetShift(s)
	a.SetCook(cook)
	return mgr.notify("kitchen: modify assignment", func(r Receiver) error {
		return r.AssignmentChanged(ctx, a)
	})
}

// DeleteAssignment removes an assignment from the sheet.
func (mgr *Manager) DeleteAssignment(ctx context.Context, sh *SummarySheet, a *Assignment) error {
	if sh == nil {
		return ErrNoSheet
	}
	if !sh.RemoveAssignment(a) {
		return ErrInvalidAssignment
	}
	return mgr.notify("kitchen: delete assignment", func(r Receiver) error {
		return r.AssignmentDeleted(ctx, a)
	})
}
