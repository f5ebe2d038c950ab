// Package tui provides the terminal user interface for git-board.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Default navigation mode
	ModeSearch              // Search text input mode
	ModeConfirm             // Confirmation dialog mode
	ModeNewTask             // Title input mode for a new task
	ModeDrag                // Keyboard drag of the selected card
	ModeHelp                // Help overlay mode
	ModeDetail              // Task detail view mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSearch:
		return "search"
	case ModeConfirm:
		return "confirm"
	case ModeNewTask:
		return "new_task"
	case ModeDrag:
		return "drag"
	case ModeHelp:
		return "help"
	case ModeDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeSearch, ModeNewTask:
		return true
	case ModeNormal, ModeConfirm, ModeDrag, ModeHelp, ModeDetail:
		return false
	}
	return false
}

// ViewKind selects between the two board layouts.
type ViewKind int

const (
	ViewBacklog ViewKind = iota // Vertical list, optionally grouped
	ViewKanban                  // One column per status
)

// String returns the string representation of the view.
func (v ViewKind) String() string {
	if v == ViewKanban {
		return "kanban"
	}
	return "backlog"
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmDelete               // Delete task
)
