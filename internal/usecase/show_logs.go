package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/git-board/internal/domain"
)

// ShowLogsInput contains the parameters for showing logs.
type ShowLogsInput struct {
	TaskID string // Task to show logs for ("" = global log)
	Lines  int    // Number of lines to display from the end (0 = all)
}

// ShowLogsOutput contains the result of showing logs.
type ShowLogsOutput struct {
	LogPath string // Path to the log file
	Content string // Log file content
}

// ShowLogs is the use case for viewing board logs.
type ShowLogs struct {
	boardDir string
}

// NewShowLogs creates a new ShowLogs use case.
func NewShowLogs(boardDir string) *ShowLogs {
	return &ShowLogs{boardDir: boardDir}
}

// Execute reads and returns the log content.
func (uc *ShowLogs) Execute(_ context.Context, in ShowLogsInput) (*ShowLogsOutput, error) {
	logPath := domain.GlobalLogPath(uc.boardDir)
	if in.TaskID != "" {
		logPath = domain.TaskLogPath(uc.boardDir, in.TaskID)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &ShowLogsOutput{LogPath: logPath}, nil
		}
		return nil, fmt.Errorf("read log file: %w", err)
	}

	// If lines is specified, get only the last N lines
	result := string(content)
	if in.Lines > 0 {
		lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
		if len(lines) > in.Lines {
			lines = lines[len(lines)-in.Lines:]
		}
		result = strings.Join(lines, "\n") + "\n"
	}

	return &ShowLogsOutput{
		LogPath: logPath,
		Content: result,
	}, nil
}
