package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// TaskURLInput contains the parameters for building a task URL.
type TaskURLInput struct {
	TaskID string
	Copy   bool // Also write the URL to the clipboard
}

// TaskURLOutput contains the URL.
type TaskURLOutput struct {
	URL    string
	Copied bool
}

// TaskURL builds the shareable URL of a task: origin + "/task/" + id.
type TaskURL struct {
	engine    shared.Engine
	clipboard domain.Clipboard
}

// NewTaskURL creates a new TaskURL use case.
func NewTaskURL(engine shared.Engine, clipboard domain.Clipboard) *TaskURL {
	return &TaskURL{engine: engine, clipboard: clipboard}
}

// Execute builds the URL and optionally copies it.
func (uc *TaskURL) Execute(_ context.Context, in TaskURLInput) (*TaskURLOutput, error) {
	b, err := uc.engine.View()
	if err != nil {
		return nil, err
	}
	task, err := shared.GetTask(b, in.TaskID)
	if err != nil {
		return nil, err
	}

	origin := strings.TrimRight(uc.engine.Settings().Board.Origin, "/")
	out := &TaskURLOutput{URL: origin + "/task/" + task.ID}
	if !in.Copy {
		return out, nil
	}
	if uc.clipboard == nil {
		return nil, fmt.Errorf("clipboard is not available")
	}
	if err := uc.clipboard.WriteAll(out.URL); err != nil {
		return nil, err
	}
	out.Copied = true
	return out, nil
}
