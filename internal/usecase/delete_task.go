package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID string
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task *domain.Task // The removed task
}

// DeleteTask is the use case for deleting a task.
// Links from other tasks to the deleted task are removed.
type DeleteTask struct {
	engine shared.Engine
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(engine shared.Engine) *DeleteTask {
	return &DeleteTask{engine: engine}
}

// Execute removes the task from the board.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	var removed *domain.Task
	err := uc.engine.Update(func(b *board.Board) error {
		t, err := b.Delete(in.TaskID)
		removed = t
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.engine.Log(removed.ID, fmt.Sprintf("deleted: %q", removed.Title))
	return &DeleteTaskOutput{Task: removed}, nil
}
