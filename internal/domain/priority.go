package domain

import "strings"

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// AllPriorities returns all priorities from lowest to highest.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

// Display returns the capitalized priority name.
func (p Priority) Display() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// ParsePriority parses a priority case-insensitively.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// TaskType classifies the kind of work.
type TaskType string

const (
	TypeTask     TaskType = "task"
	TypeBug      TaskType = "bug"
	TypeStory    TaskType = "story"
	TypeSpike    TaskType = "spike"
	TypeTechDebt TaskType = "tech_debt"
)

// AllTaskTypes returns all task types.
func AllTaskTypes() []TaskType {
	return []TaskType{TypeTask, TypeBug, TypeStory, TypeSpike, TypeTechDebt}
}

// IsValid returns true if the type is a known value.
func (t TaskType) IsValid() bool {
	switch t {
	case TypeTask, TypeBug, TypeStory, TypeSpike, TypeTechDebt:
		return true
	default:
		return false
	}
}

// Display returns a human-readable type name.
func (t TaskType) Display() string {
	switch t {
	case TypeTask:
		return "Task"
	case TypeBug:
		return "Bug"
	case TypeStory:
		return "Story"
	case TypeSpike:
		return "Spike"
	case TypeTechDebt:
		return "Tech Debt"
	default:
		return string(t)
	}
}

// ParseTaskType parses a task type from its stored or display form.
func ParseTaskType(s string) (TaskType, error) {
	for _, t := range AllTaskTypes() {
		if string(t) == s || equalFold(t.Display(), s) {
			return t, nil
		}
	}
	return "", ErrInvalidTaskType
}

// LinkType describes how two tasks relate.
type LinkType string

const (
	LinkBlocks    LinkType = "blocks"
	LinkBlockedBy LinkType = "blocked_by"
	LinkRelatesTo LinkType = "relates_to"
	LinkDuplicate LinkType = "duplicate"
)

// IsValid returns true if the link type is a known value.
func (l LinkType) IsValid() bool {
	switch l {
	case LinkBlocks, LinkBlockedBy, LinkRelatesTo, LinkDuplicate:
		return true
	default:
		return false
	}
}

// Display returns the link type as a phrase ("blocked by").
func (l LinkType) Display() string {
	return strings.ReplaceAll(string(l), "_", " ")
}

// ParseLinkType accepts "blocked_by", "blocked-by" and "blocked by".
func ParseLinkType(s string) (LinkType, error) {
	norm := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(s)))
	l := LinkType(norm)
	if !l.IsValid() {
		return "", ErrInvalidLinkType
	}
	return l, nil
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.ReplaceAll(a, " ", ""), strings.ReplaceAll(b, " ", ""))
}
