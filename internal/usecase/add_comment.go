package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// AddCommentInput contains the parameters for adding a comment.
type AddCommentInput struct {
	TaskID  string
	Message string // Comment text (required)
	Author  string
}

// AddCommentOutput contains the result of adding a comment.
type AddCommentOutput struct {
	Comment domain.Comment // The created comment
}

// AddComment is the use case for adding a comment to a task.
type AddComment struct {
	engine shared.Engine
}

// NewAddComment creates a new AddComment use case.
func NewAddComment(engine shared.Engine) *AddComment {
	return &AddComment{engine: engine}
}

// Execute adds a comment to a task.
func (uc *AddComment) Execute(_ context.Context, in AddCommentInput) (*AddCommentOutput, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, domain.ErrEmptyMessage
	}
	author := uc.engine.Author(in.Author)

	var comment domain.Comment
	err := uc.engine.Update(func(b *board.Board) error {
		task, err := shared.GetTask(b, in.TaskID)
		if err != nil {
			return err
		}
		comment = domain.Comment{
			ID:        b.NewID(),
			Text:      message,
			Author:    author,
			CreatedAt: b.Now(),
		}
		comments := append(slices.Clone(task.Comments), comment)
		if _, err := b.Update(task.ID, domain.TaskPatch{Comments: &comments}); err != nil {
			return err
		}
		return uc.engine.Record(b, task.ID, domain.EventCommentAdded, author)
	})
	if err != nil {
		return nil, err
	}
	return &AddCommentOutput{Comment: comment}, nil
}
