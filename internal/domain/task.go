// Package domain contains core business entities and interfaces.
package domain

import (
	"slices"
	"strings"
	"time"
)

// Unassigned is the sentinel used for tasks without an assignee, epic or sprint
// when they are displayed or grouped.
const Unassigned = "Unassigned"

// Task represents a unit of work tracked by the board.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created     time.Time       `json:"created" yaml:"created"`
	DueDate     *time.Time      `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	StoryPoints *int            `json:"storyPoints,omitempty" yaml:"storyPoints,omitempty"`
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Status      Status          `json:"status" yaml:"status"`
	Priority    Priority        `json:"priority" yaml:"priority"`
	Type        TaskType        `json:"type" yaml:"type"`
	Assignee    string          `json:"assignee" yaml:"assignee"`
	EpicID      string          `json:"epicId,omitempty" yaml:"epicId,omitempty"`
	SprintID    string          `json:"sprintId,omitempty" yaml:"sprintId,omitempty"`
	Tags        []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	Links       []Link          `json:"links,omitempty" yaml:"links,omitempty"`
	Subtasks    []Subtask       `json:"subtasks,omitempty" yaml:"subtasks,omitempty"`
	Comments    []Comment       `json:"comments,omitempty" yaml:"comments,omitempty"`
	Attachments []Attachment    `json:"attachments,omitempty" yaml:"attachments,omitempty"`
	Activity    []ActivityEntry `json:"activity,omitempty" yaml:"activity,omitempty"`
}

// Link points from one task to another.
type Link struct {
	Type   LinkType `json:"type" yaml:"type"`
	Target string   `json:"target" yaml:"target"`
}

// Subtask is a checklist item owned by a task.
type Subtask struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Comment represents a note attached to a task.
// Fields are ordered to minimize memory padding.
type Comment struct {
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	ID        string    `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	Author    string    `json:"author" yaml:"author"`
}

// Attachment describes a file attached to a task. Only metadata is kept.
// Fields are ordered to minimize memory padding.
type Attachment struct {
	UploadedAt time.Time `json:"uploadedAt" yaml:"uploadedAt"`
	ID         string    `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Type       string    `json:"type" yaml:"type"`
	Uploader   string    `json:"uploader" yaml:"uploader"`
	Size       int64     `json:"size" yaml:"size"`
}

// ActivityEntry is an append-only record of a change made to a task.
// Fields are ordered to minimize memory padding.
type ActivityEntry struct {
	Timestamp time.Time     `json:"timestamp" yaml:"timestamp"`
	ID        string        `json:"id" yaml:"id"`
	Event     ActivityEvent `json:"event" yaml:"event"`
	Author    string        `json:"author" yaml:"author"`
	Details   string        `json:"details" yaml:"details"`
}

// IsUnassigned reports whether the task has no assignee.
func (t *Task) IsUnassigned() bool {
	return t.Assignee == "" || t.Assignee == Unassigned
}

// AssigneeKey returns the assignee or the Unassigned sentinel.
func (t *Task) AssigneeKey() string {
	if t.IsUnassigned() {
		return Unassigned
	}
	return t.Assignee
}

// EpicKey returns the epic id or the Unassigned sentinel.
func (t *Task) EpicKey() string {
	if t.EpicID == "" {
		return Unassigned
	}
	return t.EpicID
}

// Points returns the story points, treating absent points as zero.
func (t *Task) Points() int {
	if t.StoryPoints == nil {
		return 0
	}
	return *t.StoryPoints
}

// HasTag reports whether the task carries the tag (case-insensitive).
func (t *Task) HasTag(tag string) bool {
	return slices.ContainsFunc(t.Tags, func(s string) bool {
		return strings.EqualFold(s, tag)
	})
}

// CompletedSubtasks returns the number of completed subtasks.
func (t *Task) CompletedSubtasks() int {
	n := 0
	for _, s := range t.Subtasks {
		if s.Completed {
			n++
		}
	}
	return n
}

// Copy returns a deep copy of the task. Nested collections are never shared
// between the original and the copy.
func (t *Task) Copy() *Task {
	c := *t
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	if t.StoryPoints != nil {
		p := *t.StoryPoints
		c.StoryPoints = &p
	}
	c.Tags = slices.Clone(t.Tags)
	c.Links = slices.Clone(t.Links)
	c.Subtasks = slices.Clone(t.Subtasks)
	c.Comments = slices.Clone(t.Comments)
	c.Attachments = slices.Clone(t.Attachments)
	c.Activity = slices.Clone(t.Activity)
	return &c
}

// RemoveLinksTo drops every link targeting id and reports whether any were removed.
func (t *Task) RemoveLinksTo(id string) bool {
	before := len(t.Links)
	t.Links = slices.DeleteFunc(t.Links, func(l Link) bool {
		return l.Target == id
	})
	if len(t.Links) == 0 {
		t.Links = nil
	}
	return len(t.Links) != before
}
