package usecase

import (
	"context"
	"slices"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// LinkInput contains the parameters for adding or removing a link.
type LinkInput struct {
	Type     domain.LinkType // Ignored on removal
	TaskID   string
	TargetID string
	Author   string
}

// LinkOutput contains the task after the change.
type LinkOutput struct {
	Task    *domain.Task
	Changed bool // False when the link already existed (add) or was absent (remove)
}

// AddLink relates a task to another task.
type AddLink struct {
	engine shared.Engine
}

// NewAddLink creates a new AddLink use case.
func NewAddLink(engine shared.Engine) *AddLink {
	return &AddLink{engine: engine}
}

// Execute adds the link unless an identical one exists.
func (uc *AddLink) Execute(_ context.Context, in LinkInput) (*LinkOutput, error) {
	if !in.Type.IsValid() {
		return nil, domain.ErrInvalidLinkType
	}
	if in.TaskID == in.TargetID {
		return nil, domain.ErrSelfLink
	}
	author := uc.engine.Author(in.Author)

	out := &LinkOutput{}
	err := uc.engine.Update(func(b *board.Board) error {
		task, err := shared.GetTask(b, in.TaskID)
		if err != nil {
			return err
		}
		if _, err := shared.GetTask(b, in.TargetID); err != nil {
			return err
		}
		out.Task = task
		link := domain.Link{Type: in.Type, Target: in.TargetID}
		if slices.Contains(task.Links, link) {
			return nil
		}
		links := append(slices.Clone(task.Links), link)
		if _, err := b.Update(task.ID, domain.TaskPatch{Links: &links}); err != nil {
			return err
		}
		out.Changed = true
		return uc.engine.Record(b, task.ID, domain.EventLinkAdded, author, in.Type.Display(), in.TargetID)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveLink drops every link from a task to the target.
type RemoveLink struct {
	engine shared.Engine
}

// NewRemoveLink creates a new RemoveLink use case.
func NewRemoveLink(engine shared.Engine) *RemoveLink {
	return &RemoveLink{engine: engine}
}

// Execute removes the links.
func (uc *RemoveLink) Execute(_ context.Context, in LinkInput) (*LinkOutput, error) {
	author := uc.engine.Author(in.Author)

	out := &LinkOutput{}
	err := uc.engine.Update(func(b *board.Board) error {
		task, err := shared.GetTask(b, in.TaskID)
		if err != nil {
			return err
		}
		out.Task = task
		if !task.RemoveLinksTo(in.TargetID) {
			return domain.ErrLinkNotFound
		}
		out.Changed = true
		return uc.engine.Record(b, task.ID, domain.EventLinkRemoved, author, in.TargetID)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
