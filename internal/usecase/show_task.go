package usecase

import (
	"context"

	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskID string
}

// ShowTaskOutput contains the task and the records it references.
type ShowTaskOutput struct {
	Task   *domain.Task
	Epic   *domain.Epic   // nil when the task has no epic
	Sprint *domain.Sprint // nil when unplanned or in a logical sprint
	Linked []*domain.Task // Link targets, in link order
}

// ShowTask is the use case for displaying a task.
type ShowTask struct {
	engine shared.Engine
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(engine shared.Engine) *ShowTask {
	return &ShowTask{engine: engine}
}

// Execute returns the task with its epic, sprint and link targets.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	b, err := uc.engine.View()
	if err != nil {
		return nil, err
	}
	task, err := shared.GetTask(b, in.TaskID)
	if err != nil {
		return nil, err
	}

	st := b.State()
	out := &ShowTaskOutput{Task: task}
	if task.EpicID != "" {
		out.Epic = st.FindEpic(task.EpicID)
	}
	if task.SprintID != "" {
		out.Sprint = st.FindSprint(task.SprintID)
	}
	for _, l := range task.Links {
		if t := b.Get(l.Target); t != nil {
			out.Linked = append(out.Linked, t)
		}
	}
	return out, nil
}
