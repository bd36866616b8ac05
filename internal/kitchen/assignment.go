package kitchen

import (
	"github.com/mportesi/catering/internal/shift"
	"github.com/mportesi/catering/internal/user"
)

// Assignment binds a kitchen task to a shift and, optionally, to a cook.
// An assignment belongs to exactly one summary sheet.
type Assignment struct {
	id    int64
	task  *KitchenTask
	shift *shift.Shift
	cook  *user.User
}

// NewAssignment creates an unsaved assignment. cook may be nil.
func NewAssignment(task *KitchenTask, sh *shift.Shift, cook *user.User) *Assignment {
	return &Assignment{task: task, shift: sh, cook: cook}
}

// ID returns the storage identity, 0 for an unsaved assignment.
func (a *Assignment) ID() int64 { return a.id }

// SetID assigns the storage identity.
func (a *Assignment) SetID(id int64) { a.id = id }

// Task returns the assigned task.
func (a *Assignment) Task() *KitchenTask { return a.task }

// Shift returns the shift the task is scheduled into.
func (a *Assignment) Shift() *shift.Shift { return a.shift }

// SetShift reschedules the assignment.
func (a *Assignment) SetShift(sh *shift.Shift) { a.shift = sh }

// Cook returns the assigned cook, nil when the task is unstaffed.
func (a *Assignment) Cook() *user.User { return a.cook }

// SetCook restaffs the assignment. nil leaves the task unstaffed.
func (a *Assignment) SetCook(cook *user.User) { a.cook = cook }
