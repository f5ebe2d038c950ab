package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// SummaryFallback is returned when the assistant is not configured or could
// not summarize the board.
const SummaryFallback = "Unable to generate insights right now."

// SummarizeBoardInput contains the parameters for summarizing the board.
type SummarizeBoardInput struct {
	Filter domain.TaskFilter // Summarize only matching tasks
}

// SummarizeBoardOutput contains the insight.
type SummarizeBoardOutput struct {
	Summary  string
	Fallback bool // True when Summary is the fallback text
}

// SummarizeBoard asks the assistant for a short insight about the board.
type SummarizeBoard struct {
	engine    shared.Engine
	assistant domain.Assistant
}

// NewSummarizeBoard creates a new SummarizeBoard use case.
func NewSummarizeBoard(engine shared.Engine, assistant domain.Assistant) *SummarizeBoard {
	return &SummarizeBoard{engine: engine, assistant: assistant}
}

// Execute returns the insight, or the fallback text when no assistant is
// configured or it fails.
func (uc *SummarizeBoard) Execute(ctx context.Context, in SummarizeBoardInput) (*SummarizeBoardOutput, error) {
	if uc.assistant == nil {
		if uc.engine.Logger != nil {
			uc.engine.Logger.Debug("", "assistant", domain.ErrAssistantDisabled.Error())
		}
		return &SummarizeBoardOutput{Summary: SummaryFallback, Fallback: true}, nil
	}
	b, err := uc.engine.View()
	if err != nil {
		return nil, err
	}

	summary, err := uc.assistant.SummarizeBoard(ctx, b.Filter(in.Filter))
	if err != nil {
		if uc.engine.Logger != nil {
			uc.engine.Logger.Warn("", "assistant", fmt.Sprintf("summarize failed: %v", err))
		}
		return &SummarizeBoardOutput{Summary: SummaryFallback, Fallback: true}, nil
	}
	return &SummarizeBoardOutput{Summary: summary}, nil
}
