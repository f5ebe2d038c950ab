package usecase

import (
	"context"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// NewEpicInput contains the parameters for creating an epic.
type NewEpicInput struct {
	Name        string
	Description string
	Color       string
}

// NewEpicOutput contains the created epic.
type NewEpicOutput struct {
	Epic *domain.Epic
}

// NewEpic is the use case for creating an epic.
type NewEpic struct {
	engine shared.Engine
}

// NewNewEpic creates a new NewEpic use case.
func NewNewEpic(engine shared.Engine) *NewEpic {
	return &NewEpic{engine: engine}
}

// Execute creates the epic.
func (uc *NewEpic) Execute(_ context.Context, in NewEpicInput) (*NewEpicOutput, error) {
	var epic *domain.Epic
	err := uc.engine.Update(func(b *board.Board) error {
		e, err := b.CreateEpic(in.Name, in.Description, in.Color)
		epic = e
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.engine.Log("", "created epic "+epic.ID+" "+epic.Name)
	return &NewEpicOutput{Epic: epic}, nil
}

// EpicSummary is an epic with the progress of its tasks.
type EpicSummary struct {
	Epic     *domain.Epic
	Progress board.Progress
}

// ListEpicsOutput contains the epics in creation order.
type ListEpicsOutput struct {
	Epics []EpicSummary
}

// ListEpics is the use case for listing epics with progress.
type ListEpics struct {
	engine shared.Engine
}

// NewListEpics creates a new ListEpics use case.
func NewListEpics(engine shared.Engine) *ListEpics {
	return &ListEpics{engine: engine}
}

// Execute lists the epics.
func (uc *ListEpics) Execute(_ context.Context) (*ListEpicsOutput, error) {
	b, err := uc.engine.View()
	if err != nil {
		return nil, err
	}
	out := &ListEpicsOutput{}
	for _, e := range b.Epics() {
		out.Epics = append(out.Epics, EpicSummary{Epic: e, Progress: b.EpicProgress(e.ID)})
	}
	return out, nil
}
