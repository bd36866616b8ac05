package kitchen

import (
	"github.com/mportesi/catering/internal/event"
	"github.com/mportesi/catering/internal/user"
)

// SummarySheet is the kitchen's work list for one service, generated by
// one chef. Its task list starts as the flattened expansion of the
// service's approved menu: for each menu item in display order, one task
// for the item's recipe followed by one task per preparation in child
// order.
type SummarySheet struct {
	id          int64
	service     *event.Service
	owner       *user.User
	tasks       []*KitchenTask
	assignments []*Assignment
}

// NewSummarySheet derives a sheet from the service's approved menu. The
// derivation happens here, exactly once; the resulting list is reorderable
// but never re-derived.
func NewSummarySheet(svc *event.Service, owner *user.User) *SummarySheet {
	sh := &SummarySheet{service: svc, owner: owner}
	for _, it := range svc.MenuItems() {
		rec := it.Recipe()
		if rec == nil {
			continue
		}
		sh.tasks = append(sh.tasks, NewTask(rec, it.Description()))
		for _, prep := range rec.Preparations() {
			sh.tasks = append(sh.tasks, NewTask(prep, prep.Name()))
		}
	}
	return sh
}

// Restore reconstructs a sheet from persisted state. Used by loaders.
func Restore(id int64, svc *event.Service, owner *user.User, tasks []*KitchenTask, assignments []*Assignment) *SummarySheet {
	return &SummarySheet{id: id, service: svc, owner: owner, tasks: tasks, assignments: assignments}
}

// ID returns the storage identity, 0 for an unsaved sheet.
func (sh *SummarySheet) ID() int64 { return sh.id }

// SetID assigns the storage identity.
func (sh *SummarySheet) SetID(id int64) { sh.id = id }

// Service returns the service this sheet supports.
func (sh *SummarySheet) Service() *event.Service { return sh.service }

// Owner returns the chef who generated the sheet.
func (sh *SummarySheet) Owner() *user.User { return sh.owner }

// IsOwner reports whether the given user generated this sheet.
func (sh *SummarySheet) IsOwner(u *user.User) bool {
	return sh.owner != nil && sh.owner.Equal(u)
}

// Tasks returns the ordered task list.
func (sh *SummarySheet) Tasks() []*KitchenTask {
	tasks := make([]*KitchenTask, len(sh.tasks))
	copy(tasks, sh.tasks)
	return tasks
}

// TaskCount returns the number of tasks.
func (sh *SummarySheet) TaskCount() int { return len(sh.tasks) }

// TaskPosition returns the index of the task, or -1 when the task is not
// part of this sheet.
func (sh *SummarySheet) TaskPosition(t *KitchenTask) int {
	for i, existing := range sh.tasks {
		if existing == t {
			return i
		}
	}
	return -1
}

// AddTask appends a task to the sheet.
func (sh *SummarySheet) AddTask(t *KitchenTask) *KitchenTask {
	sh.tasks = append(sh.tasks, t)
	return t
}

// MoveTask repositions a task using remove-then-insert-at-index. Callers
// validate membership and range.
func (sh *SummarySheet) MoveTask(t *KitchenTask, position int) {
	pos := sh.TaskPosition(t)
	if pos < 0 {
		return
	}
	sh.tasks = append(sh.tasks[:pos], sh.tasks[pos+1:]...)
	sh.tasks = append(sh.tasks[:position], append([]*KitchenTask{t}, sh.tasks[position:]...)...)
}

// Assignments returns the assignment list.
func (sh *SummarySheet) Assignments() []*Assignment {
	assignments := make([]*Assignment, len(sh.assignments))
	copy(assignments, sh.assignments)
	return assignments
}

// HasAssignment reports whether the assignment belongs to this sheet.
func (sh *SummarySheet) HasAssignment(a *Assignment) bool {
	for _, existing := range sh.assignments {
		if existing == a {
			return true
		}
	}
	return false
}

// AddAssignment creates an assignment and appends it to the sheet.
func (sh *SummarySheet) AddAssignment(a *Assignment) *Assignment {
	sh.assignments = append(sh.assignments, a)
	return a
}

// RemoveAssignment removes an assignment by reference. It reports whether
// the assignment was present.
func (sh *SummarySheet) RemoveAssignment(a *Assignment) bool {
	for i, existing := range sh.assignments {
		if existing == a {
			sh.assignments = append(sh.assignments[:i], sh.assignments[i+1:]...)
			return true
		}
	}
	return false
}
