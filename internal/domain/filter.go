package domain

import (
	"slices"
	"strings"
	"time"
)

// DateLayout is the format used for due dates on the command line and in drafts.
const DateLayout = "2006-01-02"

// TaskFilter specifies criteria for listing tasks.
// Dimensions are AND-combined; a set with no members places no constraint.
// Fields are ordered to minimize memory padding.
type TaskFilter struct {
	DueFrom    *time.Time // Inclusive lower bound by date (nil = open)
	DueTo      *time.Time // Inclusive upper bound by date (nil = open)
	Search     string     // Case-insensitive substring of title, description, id or any tag
	SprintID   string     // Exact sprint id (including logical sprints); "" = any
	Statuses   []Status
	Priorities []Priority
	Types      []TaskType
	Assignees  []string // Unassigned matches tasks without an assignee
	Tags       []string // Matches if the task carries any of these tags
}

// IsEmpty returns true if the filter places no constraint.
func (f TaskFilter) IsEmpty() bool {
	return f.Search == "" && f.SprintID == "" && f.DueFrom == nil && f.DueTo == nil &&
		len(f.Statuses) == 0 && len(f.Priorities) == 0 && len(f.Types) == 0 &&
		len(f.Assignees) == 0 && len(f.Tags) == 0
}

// Matches reports whether the task satisfies every active criterion.
// It never modifies the task.
func (f TaskFilter) Matches(t *Task) bool {
	if !f.matchesSearch(t) {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, t.Status) {
		return false
	}
	if len(f.Priorities) > 0 && !slices.Contains(f.Priorities, t.Priority) {
		return false
	}
	if len(f.Types) > 0 && !slices.Contains(f.Types, t.Type) {
		return false
	}
	if len(f.Assignees) > 0 && !f.matchesAssignee(t) {
		return false
	}
	if len(f.Tags) > 0 && !slices.ContainsFunc(f.Tags, t.HasTag) {
		return false
	}
	if !f.matchesDue(t) {
		return false
	}
	if f.SprintID != "" && t.SprintID != f.SprintID {
		return false
	}
	return true
}

// Apply returns the matching tasks in their original order.
func (f TaskFilter) Apply(tasks []*Task) []*Task {
	out := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func (f TaskFilter) matchesSearch(t *Task) bool {
	if f.Search == "" {
		return true
	}
	q := strings.ToLower(f.Search)
	if strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q) ||
		strings.Contains(strings.ToLower(t.ID), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func (f TaskFilter) matchesAssignee(t *Task) bool {
	for _, a := range f.Assignees {
		if a == Unassigned {
			if t.IsUnassigned() {
				return true
			}
			continue
		}
		if t.Assignee == a {
			return true
		}
	}
	return false
}

// matchesDue applies the closed date range. A task without a due date only
// matches when both bounds are unset.
func (f TaskFilter) matchesDue(t *Task) bool {
	if f.DueFrom == nil && f.DueTo == nil {
		return true
	}
	if t.DueDate == nil {
		return false
	}
	due := DateOnly(*t.DueDate)
	if f.DueFrom != nil && due.Before(DateOnly(*f.DueFrom)) {
		return false
	}
	if f.DueTo != nil && due.After(DateOnly(*f.DueTo)) {
		return false
	}
	return true
}

// DateOnly truncates t to its calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
