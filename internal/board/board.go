// Package board implements the task list engine: an ordered, in-memory task
// collection with create/update/delete, manual reordering, cross-group drops,
// filtering and grouping.
//
// A Board wraps a domain.BoardState and mutates it in place. It performs no
// I/O; callers load and persist the state around a session.
package board

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/runoshun/git-board/internal/domain"
)

// ClonePrefix is prepended to the title of cloned tasks.
const ClonePrefix = "Copy of "

// Options configures a Board.
type Options struct {
	Clock     domain.Clock
	IDs       domain.IDGenerator
	KeyPrefix string // Prefix for task ids (default: domain.DefaultKeyPrefix)
}

// Board is the task list engine.
// Fields are ordered to minimize memory padding.
type Board struct {
	state     *domain.BoardState
	clock     domain.Clock
	ids       domain.IDGenerator
	keyPrefix string
	drag      Drag
	journal   []Recorded
}

// Recorded is an activity entry appended to a task through a Board.
type Recorded struct {
	TaskID string
	Entry  domain.ActivityEntry
}

// New creates a Board over state. A nil state starts an empty board.
func New(state *domain.BoardState, opts Options) *Board {
	if state == nil {
		state = domain.NewBoardState()
	}
	state.Normalize()
	if opts.Clock == nil {
		opts.Clock = domain.RealClock{}
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = domain.DefaultKeyPrefix
	}
	if opts.IDs == nil {
		opts.IDs = &sequentialIDs{}
	}
	return &Board{
		state:     state,
		clock:     opts.Clock,
		ids:       opts.IDs,
		keyPrefix: opts.KeyPrefix,
	}
}

// State returns the underlying state.
func (b *Board) State() *domain.BoardState {
	return b.state
}

// Tasks returns the backing sequence in rank order. The slice is a copy;
// the tasks are shared.
func (b *Board) Tasks() []*domain.Task {
	return slices.Clone(b.state.Tasks)
}

// Len returns the number of tasks.
func (b *Board) Len() int {
	return len(b.state.Tasks)
}

// Get returns the task with the id, or nil.
func (b *Board) Get(id string) *domain.Task {
	if i := b.index(id); i >= 0 {
		return b.state.Tasks[i]
	}
	return nil
}

func (b *Board) index(id string) int {
	return slices.IndexFunc(b.state.Tasks, func(t *domain.Task) bool {
		return t.ID == id
	})
}

// nextTaskID returns an id that does not collide with any live task.
func (b *Board) nextTaskID() string {
	for {
		id := fmt.Sprintf("%s%d", b.keyPrefix, b.state.Meta.NextTaskID)
		b.state.Meta.NextTaskID++
		if b.index(id) < 0 {
			return id
		}
	}
}

// Create adds a task built from fields and returns it. Fields other than the
// title default to todo, medium, task and Unassigned. New tasks are prepended
// so they show first in rank order.
func (b *Board) Create(fields domain.TaskPatch) (*domain.Task, error) {
	if fields.Title == nil || strings.TrimSpace(*fields.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	task := &domain.Task{
		ID:       b.nextTaskID(),
		Status:   domain.StatusTodo,
		Priority: domain.PriorityMedium,
		Type:     domain.TypeTask,
		Assignee: domain.Unassigned,
		Created:  b.clock.Now(),
	}
	apply(task, fields)

	b.state.Tasks = slices.Insert(b.state.Tasks, 0, task)
	return task, nil
}

// Update merges patch into the task with id. It does not write activity.
func (b *Board) Update(id string, patch domain.TaskPatch) (*domain.Task, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	task := b.Get(id)
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	apply(task, patch)
	return task, nil
}

// apply merges patch into task and spells an empty assignee as Unassigned.
func apply(task *domain.Task, patch domain.TaskPatch) {
	patch.Apply(task)
	if task.Assignee == "" {
		task.Assignee = domain.Unassigned
	}
}

// BulkUpdate merges patch into every listed task. Unknown ids are ignored.
// It returns the ids that were updated, in board order.
func (b *Board) BulkUpdate(ids []string, patch domain.TaskPatch) ([]string, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var updated []string
	for _, t := range b.state.Tasks {
		if want[t.ID] {
			apply(t, patch)
			updated = append(updated, t.ID)
		}
	}
	return updated, nil
}

// Delete removes the task with id and strips links to it from other tasks.
func (b *Board) Delete(id string) (*domain.Task, error) {
	i := b.index(id)
	if i < 0 {
		return nil, domain.ErrTaskNotFound
	}
	removed := b.state.Tasks[i]
	b.state.Tasks = slices.Delete(b.state.Tasks, i, i+1)
	for _, t := range b.state.Tasks {
		t.RemoveLinksTo(id)
	}
	if b.drag.TaskID() == id {
		b.drag.clear()
	}
	return removed, nil
}

// Clone copies the task with id under a new id, prefixes the title, resets
// the status to todo and appends the copy to the end of the sequence.
func (b *Board) Clone(id string) (*domain.Task, error) {
	src := b.Get(id)
	if src == nil {
		return nil, domain.ErrTaskNotFound
	}
	c := src.Copy()
	c.ID = b.nextTaskID()
	c.Title = ClonePrefix + src.Title
	c.Status = domain.StatusTodo
	c.Created = b.clock.Now()
	b.state.Tasks = append(b.state.Tasks, c)
	return c, nil
}

// Reorder moves the dragged task to the position the target currently holds,
// shifting the target back by one. It reports whether anything moved.
func (b *Board) Reorder(draggedID, targetID string) bool {
	if draggedID == targetID {
		return false
	}
	from := b.index(draggedID)
	if from < 0 || b.index(targetID) < 0 {
		return false
	}
	task := b.state.Tasks[from]
	tasks := slices.Delete(b.state.Tasks, from, from+1)
	to := slices.IndexFunc(tasks, func(t *domain.Task) bool { return t.ID == targetID })
	b.state.Tasks = slices.Insert(tasks, to, task)
	return from != to
}

// moveToEnd moves the task at index i to the end of the sequence.
func (b *Board) moveToEnd(i int) {
	task := b.state.Tasks[i]
	b.state.Tasks = append(slices.Delete(b.state.Tasks, i, i+1), task)
}

// Filter returns the tasks matching f in rank order. It never mutates the board.
func (b *Board) Filter(f domain.TaskFilter) []*domain.Task {
	return f.Apply(b.state.Tasks)
}

// Group filters then groups the board.
func (b *Board) Group(d domain.Dimension, f domain.TaskFilter) []domain.Group {
	return domain.GroupBy(d, b.Filter(f))
}

// Advance moves the task one step along the status cycle and returns it with
// its previous status. It refuses to run while a drag is in progress.
func (b *Board) Advance(id string) (*domain.Task, domain.Status, error) {
	if b.drag.Active() {
		return nil, "", domain.ErrDragInProgress
	}
	task := b.Get(id)
	if task == nil {
		return nil, "", domain.ErrTaskNotFound
	}
	prev := task.Status
	task.Status = prev.Next()
	return task, prev, nil
}

// AppendActivity records an activity entry on the task.
func (b *Board) AppendActivity(id string, event domain.ActivityEvent, author, details string) (*domain.ActivityEntry, error) {
	task := b.Get(id)
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	entry := domain.ActivityEntry{
		ID:        b.ids.NewID(),
		Event:     event,
		Author:    author,
		Timestamp: b.clock.Now(),
		Details:   details,
	}
	task.Activity = append(task.Activity, entry)
	b.journal = append(b.journal, Recorded{TaskID: id, Entry: entry})
	return &task.Activity[len(task.Activity)-1], nil
}

// Journal returns the activity entries appended since the board was opened,
// oldest first.
func (b *Board) Journal() []Recorded {
	return slices.Clone(b.journal)
}

// NewID returns a fresh id for a nested item.
func (b *Board) NewID() string {
	return b.ids.NewID()
}

// Now returns the board clock's time.
func (b *Board) Now() time.Time {
	return b.clock.Now()
}

// sequentialIDs is the fallback id source when none is configured.
type sequentialIDs struct {
	n int
}

func (s *sequentialIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}
