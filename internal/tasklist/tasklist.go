// Package tasklist implements the authoritative in-memory task list.
//
// A TaskList owns an ordered, newest-first slice of tasks. Every mutation is
// written through to the store before the method returns. Storage failures
// are absorbed by the store; the in-memory list stays authoritative for the
// rest of the session.
//
// A TaskList is not safe for concurrent use.
package tasklist

import (
	"io"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"vibelist/internal/service"
	"vibelist/internal/store"
)

// Store is the persistence the task list writes through.
type Store interface {
	Load() store.LoadResult
	Save(tasks []service.Task) store.SaveResult
}

// Option configures a TaskList.
type Option func(*TaskList)

// WithClock sets the time source used for creation times and ids.
func WithClock(now func() time.Time) Option {
	return func(l *TaskList) {
		if now != nil {
			l.now = now
		}
	}
}

// WithRand sets the random source used for ids.
func WithRand(r *rand.Rand) Option {
	return func(l *TaskList) {
		l.rand = r
	}
}

// WithLogger sets the logger for warnings about restored data.
func WithLogger(logger *log.Logger) Option {
	return func(l *TaskList) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// TaskList is the session's task collection.
type TaskList struct {
	store  Store
	tasks  []service.Task
	now    func() time.Time
	rand   *rand.Rand
	logger *log.Logger

	loaded   store.LoadResult
	lastSave store.SaveResult

	observers map[int]func(service.Snapshot)
	nextObsID int
}

var _ service.Service = (*TaskList)(nil)

// New creates a TaskList and restores its contents from st.
func New(st Store, opts ...Option) *TaskList {
	l := &TaskList{
		store:     st,
		now:       time.Now,
		logger:    log.New(io.Discard, "", 0),
		observers: make(map[int]func(service.Snapshot)),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.loaded = st.Load()
	l.tasks = l.restore(l.loaded.Tasks)
	return l
}

// restore drops records that would break the list invariants: a missing id,
// blank text or an id seen earlier in the list.
func (l *TaskList) restore(tasks []service.Task) []service.Task {
	seen := make(map[string]bool, len(tasks))
	kept := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		switch {
		case t.ID == "":
			l.logger.Printf("warning: dropping stored task without id: %q", t.Text)
			continue
		case strings.TrimSpace(t.Text) == "":
			l.logger.Printf("warning: dropping stored task %s with empty text", t.ID)
			continue
		case seen[t.ID]:
			l.logger.Printf("warning: dropping duplicate stored task %s", t.ID)
			continue
		}
		seen[t.ID] = true
		kept = append(kept, t)
	}
	return kept
}

// Loaded returns the outcome of the startup load.
func (l *TaskList) Loaded() store.LoadResult {
	return l.loaded
}

// LastSave returns the outcome of the most recent write. It is the zero
// SaveResult (SaveOK) before the first mutation.
func (l *TaskList) LastSave() store.SaveResult {
	return l.lastSave
}

// Add implements service.Service.
func (l *TaskList) Add(text string) (service.Task, error) {
	// Invalid UTF-8 cannot survive the JSON encoding, so it is replaced
	// up front and the in-memory text matches what gets stored.
	text = strings.ToValidUTF8(strings.TrimSpace(text), "\uFFFD")
	if text == "" {
		return service.Task{}, service.ErrEmptyText
	}

	now := l.now()
	task := service.Task{
		ID:        newID(now, l.rand),
		Text:      text,
		Completed: false,
		CreatedAt: now.UnixMilli(),
	}

	l.tasks = append([]service.Task{task}, l.tasks...)
	l.commit()
	return task, nil
}

// Toggle implements service.Service.
func (l *TaskList) Toggle(id string) (service.Task, bool) {
	i := l.index(id)
	if i < 0 {
		return service.Task{}, false
	}
	l.tasks[i].Completed = !l.tasks[i].Completed
	task := l.tasks[i]
	l.commit()
	return task, true
}

// Delete implements service.Service.
func (l *TaskList) Delete(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks = append(l.tasks[:i:i], l.tasks[i+1:]...)
	l.commit()
	return true
}

// ClearCompleted implements service.Service. Nothing is written when no
// task is completed.
func (l *TaskList) ClearCompleted() int {
	kept := make([]service.Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(l.tasks) - len(kept)
	if removed == 0 {
		return 0
	}
	l.tasks = kept
	l.commit()
	return removed
}

// Get implements service.Service.
func (l *TaskList) Get(id string) (service.Task, bool) {
	i := l.index(id)
	if i < 0 {
		return service.Task{}, false
	}
	return l.tasks[i], true
}

// All implements service.Service.
func (l *TaskList) All() []service.Task {
	out := make([]service.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// RemainingCount implements service.Service.
func (l *TaskList) RemainingCount() int {
	n := 0
	for _, t := range l.tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// HasCompleted implements service.Service.
func (l *TaskList) HasCompleted() bool {
	for _, t := range l.tasks {
		if t.Completed {
			return true
		}
	}
	return false
}

// Snapshot implements service.Service.
func (l *TaskList) Snapshot() service.Snapshot {
	return service.Snapshot{
		Tasks:        l.All(),
		Remaining:    l.RemainingCount(),
		HasCompleted: l.HasCompleted(),
	}
}

// Subscribe registers fn to be called with a fresh snapshot after every
// change to the list. Observers run synchronously, in no particular order.
// The returned function removes the observer.
func (l *TaskList) Subscribe(fn func(service.Snapshot)) (cancel func()) {
	id := l.nextObsID
	l.nextObsID++
	l.observers[id] = fn
	return func() { delete(l.observers, id) }
}

func (l *TaskList) index(id string) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// commit persists the full list and notifies observers.
func (l *TaskList) commit() {
	l.lastSave = l.store.Save(l.All())
	if len(l.observers) == 0 {
		return
	}
	snap := l.Snapshot()
	for _, fn := range l.observers {
		fn(snap)
	}
}
