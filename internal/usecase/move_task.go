package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// MoveTaskInput contains the parameters for moving a task into a group.
// Fields are ordered to minimize memory padding.
type MoveTaskInput struct {
	Dimension domain.Dimension // Group classification (status for kanban columns)
	Key       string           // Target group key
	TaskID    string
	TargetID  string // Task to place before; "" appends to the end
	Author    string
}

// MoveTaskOutput contains the result of moving a task.
type MoveTaskOutput struct {
	Task *domain.Task
}

// MoveTask is the use case behind a drop onto a column or group: it
// repositions the task and reclassifies it into the target group.
type MoveTask struct {
	engine shared.Engine
}

// NewMoveTask creates a new MoveTask use case.
func NewMoveTask(engine shared.Engine) *MoveTask {
	return &MoveTask{engine: engine}
}

// Execute moves the task.
func (uc *MoveTask) Execute(_ context.Context, in MoveTaskInput) (*MoveTaskOutput, error) {
	if in.Dimension == domain.GroupAssignee && !uc.engine.Settings().HasMember(in.Key) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMemberNotFound, in.Key)
	}
	author := uc.engine.Author(in.Author)

	var moved *domain.Task
	err := uc.engine.Update(func(b *board.Board) error {
		t, err := b.Move(in.TaskID, board.Drop{
			Dimension: in.Dimension,
			Key:       in.Key,
			TargetID:  in.TargetID,
			Author:    author,
		})
		moved = t
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.engine.Log(moved.ID, fmt.Sprintf("moved to %s %s", in.Dimension, in.Key))
	return &MoveTaskOutput{Task: moved}, nil
}
