// Package shared contains helpers used by several use cases.
package shared

import (
	"fmt"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
)

// Engine opens the task list engine over the persisted board.
// Fields are ordered to minimize memory padding.
type Engine struct {
	Repo   domain.BoardRepository
	Clock  domain.Clock
	IDs    domain.IDGenerator
	Logger domain.Logger
	Config *domain.Config
}

func (e Engine) options() board.Options {
	opts := board.Options{Clock: e.Clock, IDs: e.IDs}
	if e.Config != nil {
		opts.KeyPrefix = e.Config.Board.KeyPrefix
	}
	return opts
}

// Update runs fn against the engine while the store holds its exclusive
// lock. The board is saved only if fn returns nil. Activity recorded by fn
// reaches the task logs once the save succeeds.
func (e Engine) Update(fn func(b *board.Board) error) error {
	var opened *board.Board
	err := e.Repo.Update(func(st *domain.BoardState) error {
		opened = board.New(st, e.options())
		return fn(opened)
	})
	if err != nil || opened == nil {
		return err
	}
	for _, r := range opened.Journal() {
		e.Log(r.TaskID, fmt.Sprintf("%s %s", r.Entry.Author, r.Entry.Details))
	}
	return nil
}

// View loads the board for reading.
func (e Engine) View() (*board.Board, error) {
	st, err := e.Repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}
	return board.New(st, e.options()), nil
}

// Settings returns the configuration, or defaults when none is set.
func (e Engine) Settings() *domain.Config {
	if e.Config == nil {
		return domain.NewDefaultConfig()
	}
	return e.Config
}

// Author returns name, or the configured author when name is empty.
func (e Engine) Author(name string) string {
	if name != "" {
		return name
	}
	if a := e.Settings().Board.Author; a != "" {
		return a
	}
	return domain.DefaultAuthor
}

// Log writes an info entry to the task log.
func (e Engine) Log(taskID, msg string) {
	if e.Logger != nil {
		e.Logger.Info(taskID, "task", msg)
	}
}

// Record appends an activity entry. It is logged under the task when the
// surrounding Update commits.
func (e Engine) Record(b *board.Board, taskID string, event domain.ActivityEvent, author string, args ...string) error {
	_, err := b.AppendActivity(taskID, event, author, domain.ActivityMessage(event, args...))
	return err
}
