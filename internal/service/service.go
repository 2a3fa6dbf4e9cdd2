package service

// Service defines the operations a front end may issue against the task list.
// All mutation goes through these methods; values returned by the queries are
// copies and may be modified freely by the caller.
type Service interface {
	// Add trims text and inserts a new open task at the head of the list.
	// Returns a *ValidationError with CodeEmptyText if nothing is left
	// after trimming.
	Add(text string) (Task, error)

	// Toggle flips the completion flag of the task with the given ID.
	// Reports false if no such task exists.
	Toggle(id string) (Task, bool)

	// Delete removes the task with the given ID.
	// Reports false if no such task exists.
	Delete(id string) bool

	// ClearCompleted removes every completed task in one batch and returns
	// how many were removed.
	ClearCompleted() int

	// Get returns the task with the given ID.
	Get(id string) (Task, bool)

	// All returns the tasks newest-first.
	All() []Task

	// RemainingCount returns the number of open tasks.
	RemainingCount() int

	// HasCompleted reports whether at least one task is completed.
	HasCompleted() bool

	// Snapshot returns the tasks together with the derived counters.
	Snapshot() Snapshot
}
