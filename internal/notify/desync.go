// Package notify carries the shared pieces of the change-notification
// protocol that every domain manager follows: after an in-memory mutation
// succeeds, each subscribed receiver runs synchronously, in subscription
// order, exactly once. There is no compensating transaction — once the
// aggregate has changed in memory the notification cannot be retracted, so
// a failing receiver leaves memory and storage out of sync.
package notify

import "fmt"

// DesyncError reports that an aggregate was mutated in memory but a
// receiver failed while persisting (or otherwise reacting to) the mutation.
// Receivers registered after the failing one were not invoked. The caller
// must treat the aggregate as possibly desynchronized from storage.
type DesyncError struct {
	// Op names the mutation that was applied, e.g. "menu: add section".
	Op string
	// Err is the receiver's failure.
	Err error
}

func (e *DesyncError) Error() string {
	return fmt.Sprintf("%s: mutated in memory but not persisted: %v", e.Op, e.Err)
}

func (e *DesyncError) Unwrap() error { return e.Err }
