package usecase

import (
	"context"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// CloneTaskInput contains the parameters for cloning a task.
type CloneTaskInput struct {
	TaskID string
	Author string
}

// CloneTaskOutput contains the result of cloning a task.
type CloneTaskOutput struct {
	Task *domain.Task // The copy
}

// CloneTask is the use case for duplicating a task.
type CloneTask struct {
	engine shared.Engine
}

// NewCloneTask creates a new CloneTask use case.
func NewCloneTask(engine shared.Engine) *CloneTask {
	return &CloneTask{engine: engine}
}

// Execute appends a copy of the task to the end of the board.
func (uc *CloneTask) Execute(_ context.Context, in CloneTaskInput) (*CloneTaskOutput, error) {
	author := uc.engine.Author(in.Author)

	var clone *domain.Task
	err := uc.engine.Update(func(b *board.Board) error {
		c, err := b.Clone(in.TaskID)
		if err != nil {
			return err
		}
		clone = c
		return uc.engine.Record(b, c.ID, domain.EventCloned, author, in.TaskID)
	})
	if err != nil {
		return nil, err
	}
	return &CloneTaskOutput{Task: clone}, nil
}
