package usecase

import (
	"context"
	"slices"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// BulkEditTasksInput contains the parameters for editing several tasks.
type BulkEditTasksInput struct {
	Patch   domain.TaskPatch
	Author  string
	TaskIDs []string
}

// BulkEditTasksOutput contains the result of a bulk edit.
type BulkEditTasksOutput struct {
	Updated []string // Ids that were updated, in board order
	Missing []string // Requested ids not on the board
}

// BulkEditTasks applies one patch to several tasks.
// Ids not on the board are reported and skipped.
type BulkEditTasks struct {
	engine shared.Engine
}

// NewBulkEditTasks creates a new BulkEditTasks use case.
func NewBulkEditTasks(engine shared.Engine) *BulkEditTasks {
	return &BulkEditTasks{engine: engine}
}

// Execute applies the patch to every listed task.
func (uc *BulkEditTasks) Execute(_ context.Context, in BulkEditTasksInput) (*BulkEditTasksOutput, error) {
	if in.Patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	author := uc.engine.Author(in.Author)

	out := &BulkEditTasksOutput{}
	err := uc.engine.Update(func(b *board.Board) error {
		if err := shared.ValidateRefs(b.State(), uc.engine.Settings(), in.Patch, ""); err != nil {
			return err
		}
		updated, err := b.BulkUpdate(in.TaskIDs, in.Patch)
		if err != nil {
			return err
		}
		for _, id := range updated {
			if err := recordChanges(uc.engine, b, id, in.Patch, author); err != nil {
				return err
			}
		}
		out.Updated = updated
		out.Missing = missing(in.TaskIDs, updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BulkDeleteTasksInput contains the parameters for deleting several tasks.
type BulkDeleteTasksInput struct {
	TaskIDs []string
}

// BulkDeleteTasksOutput contains the result of a bulk delete.
type BulkDeleteTasksOutput struct {
	Deleted []string // Ids that were removed, in request order
	Missing []string // Requested ids not on the board
}

// BulkDeleteTasks removes several tasks in one update.
type BulkDeleteTasks struct {
	engine shared.Engine
}

// NewBulkDeleteTasks creates a new BulkDeleteTasks use case.
func NewBulkDeleteTasks(engine shared.Engine) *BulkDeleteTasks {
	return &BulkDeleteTasks{engine: engine}
}

// Execute removes every listed task that exists.
func (uc *BulkDeleteTasks) Execute(_ context.Context, in BulkDeleteTasksInput) (*BulkDeleteTasksOutput, error) {
	out := &BulkDeleteTasksOutput{}
	err := uc.engine.Update(func(b *board.Board) error {
		for _, id := range in.TaskIDs {
			if slices.Contains(out.Deleted, id) {
				continue
			}
			if _, err := b.Delete(id); err != nil {
				out.Missing = append(out.Missing, id)
				continue
			}
			out.Deleted = append(out.Deleted, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, id := range out.Deleted {
		uc.engine.Log(id, "deleted (bulk)")
	}
	return out, nil
}

func missing(requested, found []string) []string {
	var out []string
	for _, id := range requested {
		if !slices.Contains(found, id) && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
