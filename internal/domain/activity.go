package domain

import "fmt"

// ActivityEvent identifies what kind of change an activity entry records.
type ActivityEvent string

const (
	EventCreated           ActivityEvent = "created"
	EventCloned            ActivityEvent = "cloned"
	EventStatusChanged     ActivityEvent = "status_changed"
	EventAssigneeChanged   ActivityEvent = "assignee_changed"
	EventPriorityChanged   ActivityEvent = "priority_changed"
	EventEpicChanged       ActivityEvent = "epic_changed"
	EventFieldUpdated      ActivityEvent = "field_updated"
	EventSubtaskAdded      ActivityEvent = "subtask_added"
	EventSubtaskToggled    ActivityEvent = "subtask_toggled"
	EventSubtaskRemoved    ActivityEvent = "subtask_removed"
	EventCommentAdded      ActivityEvent = "comment_added"
	EventAttachmentAdded   ActivityEvent = "attachment_added"
	EventAttachmentRemoved ActivityEvent = "attachment_removed"
	EventLinkAdded         ActivityEvent = "link_added"
	EventLinkRemoved       ActivityEvent = "link_removed"
)

// ActivityMessage renders the fixed message template for an event.
// args depend on the event: the new value for classification changes,
// the field name for field edits, the item name for collection changes.
func ActivityMessage(event ActivityEvent, args ...string) string {
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}
	switch event {
	case EventCreated:
		return "created the task"
	case EventCloned:
		return fmt.Sprintf("cloned from %s", arg(0))
	case EventStatusChanged:
		return fmt.Sprintf("changed status to %s", arg(0))
	case EventAssigneeChanged:
		return fmt.Sprintf("assigned to %s", arg(0))
	case EventPriorityChanged:
		return fmt.Sprintf("changed priority to %s", arg(0))
	case EventEpicChanged:
		return fmt.Sprintf("moved to epic %s", arg(0))
	case EventFieldUpdated:
		return fmt.Sprintf("updated %s", arg(0))
	case EventSubtaskAdded:
		return fmt.Sprintf("added subtask %q", arg(0))
	case EventSubtaskToggled:
		return fmt.Sprintf("marked subtask %q as %s", arg(0), arg(1))
	case EventSubtaskRemoved:
		return fmt.Sprintf("removed subtask %q", arg(0))
	case EventCommentAdded:
		return "added a comment"
	case EventAttachmentAdded:
		return fmt.Sprintf("attached %s", arg(0))
	case EventAttachmentRemoved:
		return fmt.Sprintf("removed attachment %s", arg(0))
	case EventLinkAdded:
		return fmt.Sprintf("linked %s %s", arg(0), arg(1))
	case EventLinkRemoved:
		return fmt.Sprintf("removed link to %s", arg(0))
	default:
		return string(event)
	}
}
