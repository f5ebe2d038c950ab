package usecase

import (
	"context"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// NewTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type NewTaskInput struct {
	Fields domain.TaskPatch // Title is required; other nil fields take defaults
	Author string           // Recorded on the creation activity (empty = configured author)
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	Task *domain.Task // The created task
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	engine shared.Engine
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(engine shared.Engine) *NewTask {
	return &NewTask{engine: engine}
}

// Execute creates a task at the top of the board.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	if err := in.Fields.Validate(); err != nil {
		return nil, err
	}
	author := uc.engine.Author(in.Author)

	var created *domain.Task
	err := uc.engine.Update(func(b *board.Board) error {
		if err := shared.ValidateRefs(b.State(), uc.engine.Settings(), in.Fields, ""); err != nil {
			return err
		}
		task, err := b.Create(in.Fields)
		if err != nil {
			return err
		}
		if err := uc.engine.Record(b, task.ID, domain.EventCreated, author); err != nil {
			return err
		}
		created = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &NewTaskOutput{Task: created}, nil
}
