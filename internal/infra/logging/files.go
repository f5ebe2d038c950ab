package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/runoshun/git-board/internal/domain"
)

// fileSet lazily opens board.log and the per-task files in append mode.
type fileSet struct {
	global *os.File
	tasks  map[string]*os.File
	dir    string
	mu     sync.Mutex
}

func newFileSet(boardDir string) *fileSet {
	return &fileSet{dir: boardDir, tasks: make(map[string]*os.File)}
}

func (s *fileSet) enabled() bool {
	return s.dir != ""
}

// write appends line to board.log and, when taskID is set, to the task file.
func (s *fileSet) write(taskID, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.global == nil {
		f, err := s.open(domain.GlobalLogPath(s.dir))
		if err != nil {
			return err
		}
		s.global = f
	}
	if _, err := io.WriteString(s.global, line); err != nil {
		return fmt.Errorf("write board log: %w", err)
	}

	if taskID == "" {
		return nil
	}
	f, ok := s.tasks[taskID]
	if !ok {
		var err error
		if f, err = s.open(domain.TaskLogPath(s.dir, taskID)); err != nil {
			return err
		}
		s.tasks[taskID] = f
	}
	if _, err := io.WriteString(f, line); err != nil {
		return fmt.Errorf("write task log: %w", err)
	}
	return nil
}

func (s *fileSet) open(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Close closes every open file.
func (s *fileSet) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if s.global != nil {
		errs = append(errs, s.global.Close())
		s.global = nil
	}
	for id, f := range s.tasks {
		errs = append(errs, f.Close())
		delete(s.tasks, id)
	}
	return errors.Join(errs...)
}
