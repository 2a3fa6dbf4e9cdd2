// Package service defines the task model and the command surface shared by
// the task list and its front ends.
package service

// Task represents a single to-do item.
//
// The JSON field names are the persisted record layout and must stay stable.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"` // milliseconds since epoch
}

// Snapshot is a read-only view of the list plus the counters a front end
// needs to decide what to draw.
type Snapshot struct {
	Tasks        []Task
	Remaining    int
	HasCompleted bool
}

// Empty reports whether the snapshot holds no tasks.
func (s Snapshot) Empty() bool {
	return len(s.Tasks) == 0
}
