package usecase

import (
	"context"

	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Filter  domain.TaskFilter // Criteria; the zero value matches every task
	GroupBy domain.Dimension  // Grouping; "" or none returns a flat list
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks  []*domain.Task // Matching tasks in rank order
	Groups []domain.Group // Partition of Tasks (nil when not grouped)
	Epics  []*domain.Epic // Epics for naming group headers
	Total  int            // Number of tasks on the board
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	engine shared.Engine
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(engine shared.Engine) *ListTasks {
	return &ListTasks{engine: engine}
}

// Execute returns the filtered, optionally grouped, task list.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	b, err := uc.engine.View()
	if err != nil {
		return nil, err
	}

	out := &ListTasksOutput{
		Tasks: b.Filter(in.Filter),
		Epics: b.Epics(),
		Total: b.Len(),
	}
	if in.GroupBy != "" && in.GroupBy != domain.GroupNone {
		out.Groups = domain.GroupBy(in.GroupBy, out.Tasks)
	}
	return out, nil
}
