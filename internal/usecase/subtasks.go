package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// AddSubtaskInput contains the parameters for adding a subtask.
type AddSubtaskInput struct {
	TaskID string
	Title  string
	Author string
}

// SubtaskOutput contains the affected subtask and its task.
type SubtaskOutput struct {
	Task    *domain.Task
	Subtask domain.Subtask
}

// AddSubtask appends a checklist item to a task.
type AddSubtask struct {
	engine shared.Engine
}

// NewAddSubtask creates a new AddSubtask use case.
func NewAddSubtask(engine shared.Engine) *AddSubtask {
	return &AddSubtask{engine: engine}
}

// Execute adds the subtask.
func (uc *AddSubtask) Execute(_ context.Context, in AddSubtaskInput) (*SubtaskOutput, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	author := uc.engine.Author(in.Author)

	out := &SubtaskOutput{}
	err := uc.engine.Update(func(b *board.Board) error {
		task, err := shared.GetTask(b, in.TaskID)
		if err != nil {
			return err
		}
		sub := domain.Subtask{ID: b.NewID(), Title: title}
		subtasks := append(slices.Clone(task.Subtasks), sub)
		if _, err := b.Update(task.ID, domain.TaskPatch{Subtasks: &subtasks}); err != nil {
			return err
		}
		out.Task, out.Subtask = task, sub
		return uc.engine.Record(b, task.ID, domain.EventSubtaskAdded, author, title)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SubtaskRefInput identifies a subtask by id or 1-based position.
type SubtaskRefInput struct {
	TaskID    string
	SubtaskID string // Subtask id, or its 1-based position in the checklist
	Author    string
}

// ToggleSubtask flips a subtask between open and completed.
type ToggleSubtask struct {
	engine shared.Engine
}

// NewToggleSubtask creates a new ToggleSubtask use case.
func NewToggleSubtask(engine shared.Engine) *ToggleSubtask {
	return &ToggleSubtask{engine: engine}
}

// Execute toggles the subtask.
func (uc *ToggleSubtask) Execute(_ context.Context, in SubtaskRefInput) (*SubtaskOutput, error) {
	author := uc.engine.Author(in.Author)

	out := &SubtaskOutput{}
	err := uc.engine.Update(func(b *board.Board) error {
		task, err := shared.GetTask(b, in.TaskID)
		if err != nil {
			return err
		}
		i := findSubtask(task.Subtasks, in.SubtaskID)
		if i < 0 {
			return domain.ErrSubtaskNotFound
		}
		subtasks := slices.Clone(task.Subtasks)
		subtasks[i].Completed = !subtasks[i].Completed
		if _, err := b.Update(task.ID, domain.TaskPatch{Subtasks: &subtasks}); err != nil {
			return err
		}
		out.Task, out.Subtask = task, subtasks[i]
		state := "open"
		if subtasks[i].Completed {
			state = "done"
		}
		return uc.engine.Record(b, task.ID, domain.EventSubtaskToggled, author, subtasks[i].Title, state)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveSubtask deletes a subtask.
type RemoveSubtask struct {
	engine shared.Engine
}

// NewRemoveSubtask creates a new RemoveSubtask use case.
func NewRemoveSubtask(engine shared.Engine) *RemoveSubtask {
	return &RemoveSubtask{engine: engine}
}

// Execute removes the subtask.
func (uc *RemoveSubtask) Execute(_ context.Context, in SubtaskRefInput) (*SubtaskOutput, error) {
	author := uc.engine.Author(in.Author)

	out := &SubtaskOutput{}
	err := uc.engine.Update(func(b *board.Board) error {
		task, err := shared.GetTask(b, in.TaskID)
		if err != nil {
			return err
		}
		i := findSubtask(task.Subtasks, in.SubtaskID)
		if i < 0 {
			return domain.ErrSubtaskNotFound
		}
		removed := task.Subtasks[i]
		subtasks := slices.Delete(slices.Clone(task.Subtasks), i, i+1)
		if _, err := b.Update(task.ID, domain.TaskPatch{Subtasks: &subtasks}); err != nil {
			return err
		}
		out.Task, out.Subtask = task, removed
		return uc.engine.Record(b, task.ID, domain.EventSubtaskRemoved, author, removed.Title)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// findSubtask resolves ref as an id first, then as a 1-based position.
func findSubtask(subtasks []domain.Subtask, ref string) int {
	if i := slices.IndexFunc(subtasks, func(s domain.Subtask) bool { return s.ID == ref }); i >= 0 {
		return i
	}
	return position(ref, len(subtasks))
}
