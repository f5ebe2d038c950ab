package domain

import (
	"slices"
	"strings"
	"time"
)

// TaskPatch is a partial update merged shallowly into a task.
// nil fields are left unchanged. Collection fields fully replace the
// corresponding collection on the task.
type TaskPatch struct {
	Title            *string
	Description      *string
	Status           *Status
	Priority         *Priority
	Type             *TaskType
	Assignee         *string
	EpicID           *string // "" clears the epic
	SprintID         *string // "" clears the sprint
	StoryPoints      *int
	DueDate          *time.Time
	Tags             *[]string
	Links            *[]Link
	Subtasks         *[]Subtask
	Comments         *[]Comment
	Attachments      *[]Attachment
	ClearStoryPoints bool
	ClearDueDate     bool
}

// IsEmpty returns true if the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.Type == nil && p.Assignee == nil &&
		p.EpicID == nil && p.SprintID == nil && p.StoryPoints == nil &&
		p.DueDate == nil && p.Tags == nil && p.Links == nil &&
		p.Subtasks == nil && p.Comments == nil && p.Attachments == nil &&
		!p.ClearStoryPoints && !p.ClearDueDate
}

// Validate checks enum values and the title. A blank title is rejected.
func (p TaskPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrEmptyTitle
	}
	if p.Status != nil && !p.Status.IsValid() {
		return ErrInvalidStatus
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return ErrInvalidPriority
	}
	if p.Type != nil && !p.Type.IsValid() {
		return ErrInvalidTaskType
	}
	if p.Links != nil {
		for _, l := range *p.Links {
			if !l.Type.IsValid() {
				return ErrInvalidLinkType
			}
		}
	}
	return nil
}

// Apply merges the patch into t. Collections are copied so the task never
// shares backing arrays with the caller.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.EpicID != nil {
		t.EpicID = *p.EpicID
	}
	if p.SprintID != nil {
		t.SprintID = *p.SprintID
	}
	if p.StoryPoints != nil {
		v := *p.StoryPoints
		t.StoryPoints = &v
	}
	if p.ClearStoryPoints {
		t.StoryPoints = nil
	}
	if p.DueDate != nil {
		v := *p.DueDate
		t.DueDate = &v
	}
	if p.ClearDueDate {
		t.DueDate = nil
	}
	if p.Tags != nil {
		t.Tags = slices.Clone(*p.Tags)
	}
	if p.Links != nil {
		t.Links = slices.Clone(*p.Links)
	}
	if p.Subtasks != nil {
		t.Subtasks = slices.Clone(*p.Subtasks)
	}
	if p.Comments != nil {
		t.Comments = slices.Clone(*p.Comments)
	}
	if p.Attachments != nil {
		t.Attachments = slices.Clone(*p.Attachments)
	}
}

// Changes lists the activity entries a caller should log for the patch,
// as (event, argument) pairs. Classification changes carry the new value.
func (p TaskPatch) Changes() []PatchChange {
	var out []PatchChange
	if p.Status != nil {
		out = append(out, PatchChange{Event: EventStatusChanged, Arg: p.Status.Display()})
	}
	if p.Assignee != nil {
		name := *p.Assignee
		if name == "" {
			name = Unassigned
		}
		out = append(out, PatchChange{Event: EventAssigneeChanged, Arg: name})
	}
	if p.Priority != nil {
		out = append(out, PatchChange{Event: EventPriorityChanged, Arg: p.Priority.Display()})
	}
	if p.EpicID != nil {
		epic := *p.EpicID
		if epic == "" {
			epic = Unassigned
		}
		out = append(out, PatchChange{Event: EventEpicChanged, Arg: epic})
	}
	field := func(set bool, name string) {
		if set {
			out = append(out, PatchChange{Event: EventFieldUpdated, Arg: name})
		}
	}
	field(p.Title != nil, "title")
	field(p.Description != nil, "description")
	field(p.Type != nil, "type")
	field(p.SprintID != nil, "sprint")
	field(p.StoryPoints != nil || p.ClearStoryPoints, "story points")
	field(p.DueDate != nil || p.ClearDueDate, "due date")
	field(p.Tags != nil, "tags")
	field(p.Links != nil, "links")
	field(p.Subtasks != nil, "subtasks")
	field(p.Comments != nil, "comments")
	field(p.Attachments != nil, "attachments")
	return out
}

// PatchChange is one loggable change produced by a patch.
type PatchChange struct {
	Event ActivityEvent
	Arg   string
}

// Message renders the change with the activity template.
func (c PatchChange) Message() string {
	return ActivityMessage(c.Event, c.Arg)
}
