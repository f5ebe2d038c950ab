package board

import (
	"github.com/runoshun/git-board/internal/domain"
)

// DragPhase is the state of a drag gesture.
type DragPhase int

const (
	DragIdle     DragPhase = iota // No task is being dragged
	DragDragging                  // A task is held
)

// String returns the string representation of the phase.
func (p DragPhase) String() string {
	switch p {
	case DragIdle:
		return "idle"
	case DragDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Drag tracks the task being dragged across begin/over/drop events.
// The zero value is Idle.
type Drag struct {
	taskID string
}

// Phase returns the current phase.
func (d Drag) Phase() DragPhase {
	if d.taskID == "" {
		return DragIdle
	}
	return DragDragging
}

// Active reports whether a task is being dragged.
func (d Drag) Active() bool {
	return d.taskID != ""
}

// TaskID returns the dragged task id, or "" when idle.
func (d Drag) TaskID() string {
	return d.taskID
}

func (d *Drag) clear() {
	d.taskID = ""
}

// Drag returns the board's drag state.
func (b *Board) Drag() Drag {
	return b.drag
}

// BeginDrag picks up the task with id. Starting a new drag while one is in
// progress is rejected.
func (b *Board) BeginDrag(id string) error {
	if b.drag.Active() {
		return domain.ErrDragInProgress
	}
	if b.Get(id) == nil {
		return domain.ErrTaskNotFound
	}
	b.drag.taskID = id
	return nil
}

// DragOver handles the dragged task entering a sibling: the backing sequence
// is reordered immediately. It reports whether the order changed.
func (b *Board) DragOver(targetID string) bool {
	if !b.drag.Active() {
		return false
	}
	return b.Reorder(b.drag.taskID, targetID)
}

// DropDrag drops the dragged task onto a group and ends the drag. The marker
// is cleared whether or not the drop succeeds.
func (b *Board) DropDrag(drop Drop) (*domain.Task, error) {
	if !b.drag.Active() {
		return nil, domain.ErrNotDragging
	}
	id := b.drag.taskID
	defer b.drag.clear()
	return b.Move(id, drop)
}

// CancelDrag ends the drag without a drop. Reorders already applied by
// DragOver are kept.
func (b *Board) CancelDrag() {
	b.drag.clear()
}
