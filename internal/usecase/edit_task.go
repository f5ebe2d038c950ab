package usecase

import (
	"context"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// EditTaskInput contains the parameters for editing a task.
type EditTaskInput struct {
	Patch  domain.TaskPatch // Fields to change
	TaskID string
	Author string // Recorded on activity entries (empty = configured author)
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task *domain.Task
}

// EditTask is the use case for editing a task.
type EditTask struct {
	engine shared.Engine
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(engine shared.Engine) *EditTask {
	return &EditTask{engine: engine}
}

// Execute applies the patch and records one activity entry per changed field.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if in.Patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if err := in.Patch.Validate(); err != nil {
		return nil, err
	}
	author := uc.engine.Author(in.Author)

	var edited *domain.Task
	err := uc.engine.Update(func(b *board.Board) error {
		if _, err := shared.GetTask(b, in.TaskID); err != nil {
			return err
		}
		if err := shared.ValidateRefs(b.State(), uc.engine.Settings(), in.Patch, in.TaskID); err != nil {
			return err
		}
		task, err := b.Update(in.TaskID, in.Patch)
		if err != nil {
			return err
		}
		if err := recordChanges(uc.engine, b, task.ID, in.Patch, author); err != nil {
			return err
		}
		edited = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &EditTaskOutput{Task: edited}, nil
}

// recordChanges appends the activity entries a patch implies.
func recordChanges(engine shared.Engine, b *board.Board, taskID string, patch domain.TaskPatch, author string) error {
	for _, c := range patch.Changes() {
		arg := c.Arg
		if c.Event == domain.EventEpicChanged {
			if e := b.State().FindEpic(arg); e != nil {
				arg = e.Name
			}
		}
		if err := engine.Record(b, taskID, c.Event, author, arg); err != nil {
			return err
		}
	}
	return nil
}
