package domain

// Status represents the workflow column a task sits in.
type Status string

const (
	StatusTodo       Status = "todo"        // Not started
	StatusInProgress Status = "in_progress" // Being worked on
	StatusReview     Status = "review"      // Awaiting review
	StatusDone       Status = "done"        // Finished
	StatusBlocked    Status = "blocked"     // Waiting on something else
)

// AllStatuses returns all valid status values in board column order.
func AllStatuses() []Status {
	return []Status{
		StatusTodo,
		StatusInProgress,
		StatusReview,
		StatusDone,
		StatusBlocked,
	}
}

// next defines the single-step advance cycle.
// Flow: todo → in_progress → review → done → todo
//
//	blocked ──────────────────────────────────┘
var next = map[Status]Status{
	StatusTodo:       StatusInProgress,
	StatusInProgress: StatusReview,
	StatusReview:     StatusDone,
	StatusDone:       StatusTodo,
	StatusBlocked:    StatusTodo,
}

// Next returns the status a single "advance" moves to.
// Unknown statuses advance to todo.
func (s Status) Next() Status {
	if n, ok := next[s]; ok {
		return n
	}
	return StatusTodo
}

// IsTerminal returns true if the status is a terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusDone
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusReview:
		return "Review"
	case StatusDone:
		return "Done"
	case StatusBlocked:
		return "Blocked"
	default:
		return string(s)
	}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusDone, StatusBlocked:
		return true
	default:
		return false
	}
}

// ParseStatus parses a status from its stored or display form.
func ParseStatus(s string) (Status, error) {
	for _, st := range AllStatuses() {
		if string(st) == s || equalFold(st.Display(), s) {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}
