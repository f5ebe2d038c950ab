package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrEpicNotFound       = errors.New("epic not found")
	ErrSprintNotFound     = errors.New("sprint not found")
	ErrMemberNotFound     = errors.New("member not found")
	ErrSubtaskNotFound    = errors.New("subtask not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrLinkNotFound       = errors.New("link not found")
	ErrAlreadyInitialized = errors.New("board already initialized")
	ErrNotInitialized     = errors.New("board not initialized (run 'board init' first)")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrEmptyMessage       = errors.New("message cannot be empty")
	ErrEmptyPrompt        = errors.New("prompt cannot be empty")
	ErrNotGitRepository   = errors.New("not a git repository (or any of the parent directories)")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidTaskType    = errors.New("invalid task type")
	ErrInvalidLinkType    = errors.New("invalid link type")
	ErrInvalidDimension   = errors.New("invalid group dimension")
	ErrInvalidDate        = errors.New("invalid date (want YYYY-MM-DD)")
	ErrSelfLink           = errors.New("task cannot link to itself")
	ErrDragInProgress     = errors.New("a drag is in progress")
	ErrNotDragging        = errors.New("no drag in progress")
	ErrSnapshotNotFound   = errors.New("snapshot not found")
	ErrEmptyFile          = errors.New("file is empty")
	ErrNoTasksInFile      = errors.New("no tasks found in file")
	ErrAssistantDisabled  = errors.New("assistant is not configured")
	ErrConfirmRequired    = errors.New("confirmation required (use --yes)")
	ErrUnsupportedStore   = errors.New("operation not supported by the configured store")
	ErrConfigExists       = errors.New("config file already exists")
)
