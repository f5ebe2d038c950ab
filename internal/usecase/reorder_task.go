package usecase

import (
	"context"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// ReorderTaskInput contains the parameters for reordering a task.
type ReorderTaskInput struct {
	TaskID   string // Task to move
	TargetID string // Task it is placed before
}

// ReorderTaskOutput contains the result of reordering a task.
type ReorderTaskOutput struct {
	Order []string // Task ids in rank order after the move
	Moved bool     // False when the task already sat before the target
}

// ReorderTask is the use case for changing a task's rank.
type ReorderTask struct {
	engine shared.Engine
}

// NewReorderTask creates a new ReorderTask use case.
func NewReorderTask(engine shared.Engine) *ReorderTask {
	return &ReorderTask{engine: engine}
}

// Execute places the task immediately before the target.
func (uc *ReorderTask) Execute(_ context.Context, in ReorderTaskInput) (*ReorderTaskOutput, error) {
	out := &ReorderTaskOutput{}
	err := uc.engine.Update(func(b *board.Board) error {
		if _, err := shared.GetTask(b, in.TaskID); err != nil {
			return err
		}
		if _, err := shared.GetTask(b, in.TargetID); err != nil {
			return err
		}
		out.Moved = b.Reorder(in.TaskID, in.TargetID)
		out.Order = taskIDs(b.Tasks())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func taskIDs(tasks []*domain.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
