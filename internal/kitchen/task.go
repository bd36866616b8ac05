// Package kitchen models the summary sheet a chef works from: the ordered
// kitchen tasks derived from a service's approved menu, and the assignments
// binding tasks to shifts and cooks. The task list is derived exactly once
// at sheet generation and never re-derived; the chef is free to reorder it
// afterwards.
package kitchen

import "github.com/mportesi/catering/internal/recipe"

// KitchenTask is one unit of kitchen work, wrapping the recipe or
// preparation it originates from. The ready flag is one-way: once set it
// never resets.
type KitchenTask struct {
	id          int64
	description string
	process     recipe.Process
	quantity    int
	portions    int
	ready       bool
}

// NewTask creates an unsaved task wrapping the given process.
func NewTask(process recipe.Process, description string) *KitchenTask {
	return &KitchenTask{process: process, description: description}
}

// ID returns the storage identity, 0 for an unsaved task.
func (t *KitchenTask) ID() int64 { return t.id }

// SetID assigns the storage identity.
func (t *KitchenTask) SetID(id int64) { t.id = id }

// Description returns the task's display description.
func (t *KitchenTask) Description() string { return t.description }

// SetDescription replaces the display description.
func (t *KitchenTask) SetDescription(desc string) { t.description = desc }

// Process returns the originating kitchen process.
func (t *KitchenTask) Process() recipe.Process { return t.process }

// Quantity returns the quantity to prepare.
func (t *KitchenTask) Quantity() int { return t.quantity }

// SetQuantity records the quantity to prepare.
func (t *KitchenTask) SetQuantity(q int) { t.quantity = q }

// Portions returns the number of portions.
func (t *KitchenTask) Portions() int { return t.portions }

// SetPortions records the number of portions.
func (t *KitchenTask) SetPortions(p int) { t.portions = p }

// Ready reports whether the task has been completed.
func (t *KitchenTask) Ready() bool { return t.ready }

// SetReady marks the task completed. There is no way back.
func (t *KitchenTask) SetReady() { t.ready = true }
