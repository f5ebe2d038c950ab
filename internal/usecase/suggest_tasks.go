package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// SuggestFailedNotice is shown when the assistant could not produce suggestions.
const SuggestFailedNotice = "Failed to generate suggestions"

// SuggestTasksInput contains the parameters for requesting suggestions.
type SuggestTasksInput struct {
	Prompt string
	Author string
	Create bool // Add every suggestion to the board
}

// SuggestTasksOutput contains the suggestions. On assistant failure Drafts
// is empty and Notice is set; the board is untouched.
type SuggestTasksOutput struct {
	Notice  string
	Drafts  []domain.TaskDraft
	Created []*domain.Task
}

// SuggestTasks asks the assistant for task drafts.
type SuggestTasks struct {
	engine    shared.Engine
	assistant domain.Assistant
}

// NewSuggestTasks creates a new SuggestTasks use case.
func NewSuggestTasks(engine shared.Engine, assistant domain.Assistant) *SuggestTasks {
	return &SuggestTasks{engine: engine, assistant: assistant}
}

// Execute requests suggestions and optionally creates them.
func (uc *SuggestTasks) Execute(ctx context.Context, in SuggestTasksInput) (*SuggestTasksOutput, error) {
	prompt := strings.TrimSpace(in.Prompt)
	if prompt == "" {
		return nil, domain.ErrEmptyPrompt
	}
	if uc.assistant == nil {
		return nil, domain.ErrAssistantDisabled
	}

	b, err := uc.engine.View()
	if err != nil {
		return nil, err
	}

	drafts, err := uc.assistant.SuggestTasks(ctx, prompt, b.Tasks())
	if err != nil {
		if uc.engine.Logger != nil {
			uc.engine.Logger.Warn("", "assistant", fmt.Sprintf("suggest failed: %v", err))
		}
		return &SuggestTasksOutput{Notice: SuggestFailedNotice}, nil
	}

	out := &SuggestTasksOutput{Drafts: drafts}
	if !in.Create || len(drafts) == 0 {
		return out, nil
	}

	patches := make([]domain.TaskPatch, 0, len(drafts))
	for _, d := range drafts {
		p, err := d.Patch()
		if err != nil {
			return nil, err
		}
		// Suggestions never carry references to board records.
		p.EpicID, p.SprintID, p.Assignee = nil, nil, nil
		patches = append(patches, p)
	}
	out.Created, err = createAll(uc.engine, patches, uc.engine.Author(in.Author))
	if err != nil {
		return nil, err
	}
	return out, nil
}
