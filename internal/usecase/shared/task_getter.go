package shared

import (
	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
)

// GetTask returns the task with id, or domain.ErrTaskNotFound.
// This centralizes the common pattern of:
//
//	task := b.Get(id)
//	if task == nil { return nil, domain.ErrTaskNotFound }
func GetTask(b *board.Board, id string) (*domain.Task, error) {
	task := b.Get(id)
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}
