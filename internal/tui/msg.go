package tui

import (
	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgBoardLoaded is sent when the board is read from the store.
type MsgBoardLoaded struct {
	Board *board.Board
}

func (MsgBoardLoaded) sealed() {}

// MsgTaskCreated is sent when a new task is created.
type MsgTaskCreated struct {
	TaskID string
}

func (MsgTaskCreated) sealed() {}

// MsgTaskCloned is sent when a task is copied.
type MsgTaskCloned struct {
	TaskID   string
	SourceID string
}

func (MsgTaskCloned) sealed() {}

// MsgTaskDeleted is sent when a task is deleted.
type MsgTaskDeleted struct {
	TaskID string
}

func (MsgTaskDeleted) sealed() {}

// MsgTaskAdvanced is sent when a task moves to its next status.
type MsgTaskAdvanced struct {
	TaskID string
	Status domain.Status
}

func (MsgTaskAdvanced) sealed() {}

// MsgTaskMoved is sent when a dropped or reordered card has been saved.
type MsgTaskMoved struct {
	TaskID string
}

func (MsgTaskMoved) sealed() {}

// MsgNotice carries an informational line for the footer.
type MsgNotice struct {
	Text string
}

func (MsgNotice) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
