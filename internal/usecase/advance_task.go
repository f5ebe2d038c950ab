package usecase

import (
	"context"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// AdvanceTaskInput contains the parameters for advancing a task.
type AdvanceTaskInput struct {
	TaskID string
	Author string
}

// AdvanceTaskOutput contains the result of advancing a task.
type AdvanceTaskOutput struct {
	Task     *domain.Task
	Previous domain.Status
}

// AdvanceTask moves a task one step along the status cycle
// (todo → in progress → review → done → todo; blocked → todo).
type AdvanceTask struct {
	engine shared.Engine
}

// NewAdvanceTask creates a new AdvanceTask use case.
func NewAdvanceTask(engine shared.Engine) *AdvanceTask {
	return &AdvanceTask{engine: engine}
}

// Execute advances the task and records the status change.
func (uc *AdvanceTask) Execute(_ context.Context, in AdvanceTaskInput) (*AdvanceTaskOutput, error) {
	author := uc.engine.Author(in.Author)

	out := &AdvanceTaskOutput{}
	err := uc.engine.Update(func(b *board.Board) error {
		task, prev, err := b.Advance(in.TaskID)
		if err != nil {
			return err
		}
		out.Task, out.Previous = task, prev
		return uc.engine.Record(b, task.ID, domain.EventStatusChanged, author, task.Status.Display())
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
