package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// CreateTasksFromFileInput contains the parameters for creating tasks from a file.
type CreateTasksFromFileInput struct {
	Content []byte // YAML drafts
	Author  string // Recorded on the creation activity (empty = configured author)
	DryRun  bool   // Parse and validate only
}

// CreateTasksFromFileOutput contains the result of creating tasks from a file.
type CreateTasksFromFileOutput struct {
	Drafts []domain.TaskDraft // Parsed drafts, in file order
	Tasks  []*domain.Task     // Created tasks, in file order (nil on dry run)
}

// CreateTasksFromFile creates every task described in a YAML drafts file.
// Either all tasks are created or none.
type CreateTasksFromFile struct {
	engine shared.Engine
}

// NewCreateTasksFromFile creates a new CreateTasksFromFile use case.
func NewCreateTasksFromFile(engine shared.Engine) *CreateTasksFromFile {
	return &CreateTasksFromFile{engine: engine}
}

// Execute parses the drafts and creates them so that they appear at the
// top of the board in file order.
func (uc *CreateTasksFromFile) Execute(_ context.Context, in CreateTasksFromFileInput) (*CreateTasksFromFileOutput, error) {
	drafts, err := domain.ParseTaskDrafts(in.Content)
	if err != nil {
		return nil, err
	}
	patches := make([]domain.TaskPatch, len(drafts))
	for i, d := range drafts {
		if patches[i], err = d.Patch(); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
	}
	if in.DryRun {
		return &CreateTasksFromFileOutput{Drafts: drafts}, nil
	}

	tasks, err := createAll(uc.engine, patches, uc.engine.Author(in.Author))
	if err != nil {
		return nil, err
	}
	return &CreateTasksFromFileOutput{Drafts: drafts, Tasks: tasks}, nil
}

// createAll creates the tasks in one board update. Ids are assigned in
// patch order and the new tasks end up at the top of the board in that order.
func createAll(engine shared.Engine, patches []domain.TaskPatch, author string) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(patches))
	err := engine.Update(func(b *board.Board) error {
		for i, p := range patches {
			if err := shared.ValidateRefs(b.State(), engine.Settings(), p, ""); err != nil {
				return fmt.Errorf("task %d: %w", i+1, err)
			}
		}
		for _, p := range patches {
			task, err := b.Create(p)
			if err != nil {
				return err
			}
			if err := engine.Record(b, task.ID, domain.EventCreated, author); err != nil {
				return err
			}
			tasks = append(tasks, task)
		}
		// Creation prepends, leaving the batch reversed on top.
		for i := len(tasks) - 2; i >= 0; i-- {
			b.Reorder(tasks[i].ID, tasks[i+1].ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}
