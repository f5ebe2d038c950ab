// Package assistant talks to an OpenAI-compatible model through langchaingo
// to propose tasks and summarize the board.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/runoshun/git-board/internal/domain"
)

// maxContextTasks bounds how many tasks are quoted in a prompt.
const maxContextTasks = 50

// ErrNoSuggestions is returned when the model answer holds no usable drafts.
var ErrNoSuggestions = errors.New("model returned no task suggestions")

// ErrEmptyAnswer is returned when the model answer is blank.
var ErrEmptyAnswer = errors.New("model returned an empty answer")

// Client implements domain.Assistant.
type Client struct {
	model   llms.Model
	timeout time.Duration
}

// New creates a Client for an OpenAI-compatible endpoint.
func New(cfg domain.AIConfig, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, domain.ErrAssistantDisabled
	}

	opts := []openai.Option{
		openai.WithModel(cfg.Model),
		openai.WithToken(apiKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OpenAI client: %w", err)
	}
	return NewWithModel(llm, cfg.Timeout), nil
}

// NewWithModel creates a Client over any langchaingo model.
func NewWithModel(model llms.Model, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = domain.DefaultAITimeout
	}
	return &Client{model: model, timeout: timeout}
}

// SuggestTasks asks the model for task drafts matching prompt.
// Drafts that fail validation are dropped.
func (c *Client) SuggestTasks(ctx context.Context, prompt string, tasks []*domain.Task) ([]domain.TaskDraft, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, domain.ErrEmptyPrompt
	}

	answer, err := c.generate(ctx, suggestPrompt(prompt, tasks), 0.4)
	if err != nil {
		return nil, err
	}

	drafts, err := parseDrafts(answer)
	if err != nil {
		return nil, err
	}
	valid := drafts[:0]
	for _, d := range drafts {
		if d.Validate() == nil {
			valid = append(valid, d)
		}
	}
	if len(valid) == 0 {
		return nil, ErrNoSuggestions
	}
	return valid, nil
}

// SummarizeBoard asks the model for a short insight about the tasks.
func (c *Client) SummarizeBoard(ctx context.Context, tasks []*domain.Task) (string, error) {
	answer, err := c.generate(ctx, summaryPrompt(tasks), 0.2)
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	return answer, nil
}

func (c *Client) generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	answer, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt, llms.WithTemperature(temperature))
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	return answer, nil
}

func suggestPrompt(request string, tasks []*domain.Task) string {
	var b strings.Builder
	b.WriteString("You help plan work on a software project board.\n")
	b.WriteString("Propose tasks for the request below. Answer with a JSON array only, no prose.\n")
	b.WriteString("Each element has: \"title\" (string, required), \"description\" (string), ")
	b.WriteString("\"priority\" (low|medium|high|critical), \"type\" (task|bug|story|spike|tech_debt), ")
	b.WriteString("\"tags\" (array of strings), \"points\" (integer).\n")
	b.WriteString("Do not repeat tasks that already exist.\n\n")
	writeTasks(&b, tasks)
	b.WriteString("\nRequest: ")
	b.WriteString(request)
	b.WriteString("\n")
	return b.String()
}

func summaryPrompt(tasks []*domain.Task) string {
	var b strings.Builder
	b.WriteString("You review a software project board.\n")
	b.WriteString("In two or three sentences, summarize progress and name the biggest risk or bottleneck. ")
	b.WriteString("Plain text only.\n\n")

	counts := make(map[domain.Status]int)
	for _, t := range tasks {
		counts[t.Status]++
	}
	b.WriteString("Status counts:")
	for _, s := range domain.AllStatuses() {
		fmt.Fprintf(&b, " %s=%d", s.Display(), counts[s])
	}
	b.WriteString("\n\n")
	writeTasks(&b, tasks)
	return b.String()
}

func writeTasks(b *strings.Builder, tasks []*domain.Task) {
	if len(tasks) == 0 {
		b.WriteString("The board is empty.\n")
		return
	}
	b.WriteString("Existing tasks:\n")
	for i, t := range tasks {
		if i == maxContextTasks {
			fmt.Fprintf(b, "... and %d more\n", len(tasks)-maxContextTasks)
			break
		}
		fmt.Fprintf(b, "- %s [%s, %s, %s] %s\n", t.ID, t.Status.Display(), t.Priority.Display(), t.AssigneeKey(), t.Title)
	}
}

// parseDrafts decodes drafts from a model answer. The answer may wrap the
// JSON in a markdown fence or surrounding prose, and may be a bare array or
// an object with a "tasks" array.
func parseDrafts(answer string) ([]domain.TaskDraft, error) {
	raw := extractJSON(answer)
	if raw == "" {
		return nil, ErrNoSuggestions
	}

	var drafts []domain.TaskDraft
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &drafts); err != nil {
			return nil, fmt.Errorf("decode suggestions: %w", err)
		}
		return drafts, nil
	}

	var wrapped struct {
		Tasks []domain.TaskDraft `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapped); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	return wrapped.Tasks, nil
}

func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "```"); i >= 0 {
		rest := s[i+3:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[nl+1:]
		}
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		s = strings.TrimSpace(rest)
	}

	start := strings.IndexAny(s, "[{")
	if start < 0 {
		return ""
	}
	closer := byte(']')
	if s[start] == '{' {
		closer = '}'
	}
	end := strings.LastIndexByte(s, closer)
	if end < start {
		return ""
	}
	return s[start : end+1]
}

// Ensure Client implements domain.Assistant interface.
var _ domain.Assistant = (*Client)(nil)
