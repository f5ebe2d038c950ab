package usecase

import (
	"context"
	"time"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// NewSprintInput contains the parameters for creating a sprint.
type NewSprintInput struct {
	Start *time.Time
	End   *time.Time
	Name  string
	Goal  string
}

// NewSprintOutput contains the created sprint.
type NewSprintOutput struct {
	Sprint *domain.Sprint
}

// NewSprint is the use case for creating a sprint.
type NewSprint struct {
	engine shared.Engine
}

// NewNewSprint creates a new NewSprint use case.
func NewNewSprint(engine shared.Engine) *NewSprint {
	return &NewSprint{engine: engine}
}

// Execute creates the sprint.
func (uc *NewSprint) Execute(_ context.Context, in NewSprintInput) (*NewSprintOutput, error) {
	if in.Start != nil && in.End != nil && in.End.Before(*in.Start) {
		return nil, domain.ErrInvalidDate
	}
	var sprint *domain.Sprint
	err := uc.engine.Update(func(b *board.Board) error {
		s, err := b.CreateSprint(in.Name, in.Goal, in.Start, in.End)
		sprint = s
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.engine.Log("", "created sprint "+sprint.ID+" "+sprint.Name)
	return &NewSprintOutput{Sprint: sprint}, nil
}

// SprintSummary is a sprint with the progress of its tasks.
type SprintSummary struct {
	Sprint   *domain.Sprint
	Progress board.Progress
}

// ListSprintsOutput contains the stored sprints followed by the logical
// "current" and "next" sprints.
type ListSprintsOutput struct {
	Sprints []SprintSummary
}

// ListSprints is the use case for listing sprints with progress.
type ListSprints struct {
	engine shared.Engine
}

// NewListSprints creates a new ListSprints use case.
func NewListSprints(engine shared.Engine) *ListSprints {
	return &ListSprints{engine: engine}
}

// Execute lists the sprints.
func (uc *ListSprints) Execute(_ context.Context) (*ListSprintsOutput, error) {
	b, err := uc.engine.View()
	if err != nil {
		return nil, err
	}
	out := &ListSprintsOutput{}
	for _, s := range b.Sprints() {
		out.Sprints = append(out.Sprints, SprintSummary{Sprint: s, Progress: b.SprintProgress(s.ID)})
	}
	for _, id := range []string{domain.SprintCurrent, domain.SprintNext} {
		s := &domain.Sprint{ID: id, Name: id}
		out.Sprints = append(out.Sprints, SprintSummary{Sprint: s, Progress: b.SprintProgress(id)})
	}
	return out, nil
}
