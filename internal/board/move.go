package board

import (
	"github.com/runoshun/git-board/internal/domain"
)

// Drop describes where a dragged task lands.
// Fields are ordered to minimize memory padding.
type Drop struct {
	Dimension domain.Dimension // Classification of the target group (status for kanban columns)
	Key       string           // Group key of the target (status, epic id, priority or assignee)
	TargetID  string           // Task under the drop point; "" for an empty group or a group header
	Author    string           // Recorded on the activity entry
}

// Move places the task before the drop target and reclassifies it into the
// target group. Without a target (an empty group, or the space below the
// last card) the task is moved to the end of the sequence. A classification
// change is recorded as one activity entry naming the new value.
func (b *Board) Move(id string, drop Drop) (*domain.Task, error) {
	task := b.Get(id)
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	change, err := b.reclassify(task, drop)
	if err != nil {
		return nil, err
	}

	switch {
	case drop.TargetID == id:
	case drop.TargetID != "" && b.Get(drop.TargetID) != nil:
		b.Reorder(id, drop.TargetID)
	default:
		b.moveToEnd(b.index(id))
	}

	if change == nil {
		return task, nil
	}
	apply(task, change.patch)
	if _, err := b.AppendActivity(id, change.event, drop.Author, domain.ActivityMessage(change.event, change.display)); err != nil {
		return nil, err
	}
	return task, nil
}

type classification struct {
	patch   domain.TaskPatch
	event   domain.ActivityEvent
	display string
}

// reclassify computes the field change a drop implies, or nil when the task
// already belongs to the target group.
func (b *Board) reclassify(task *domain.Task, drop Drop) (*classification, error) {
	if drop.Key == "" && (drop.Dimension == domain.GroupEpic || drop.Dimension == domain.GroupAssignee) {
		drop.Key = domain.Unassigned
	}
	if drop.Dimension.Key(task) == drop.Key {
		return nil, nil
	}
	switch drop.Dimension {
	case domain.GroupStatus:
		s := domain.Status(drop.Key)
		if !s.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
		return &classification{
			patch:   domain.TaskPatch{Status: &s},
			event:   domain.EventStatusChanged,
			display: s.Display(),
		}, nil
	case domain.GroupPriority:
		p := domain.Priority(drop.Key)
		if !p.IsValid() {
			return nil, domain.ErrInvalidPriority
		}
		return &classification{
			patch:   domain.TaskPatch{Priority: &p},
			event:   domain.EventPriorityChanged,
			display: p.Display(),
		}, nil
	case domain.GroupEpic:
		epicID := drop.Key
		display := drop.Key
		if epicID == domain.Unassigned {
			epicID = ""
		} else if e := b.state.FindEpic(epicID); e == nil {
			return nil, domain.ErrEpicNotFound
		} else {
			display = e.Name
		}
		return &classification{
			patch:   domain.TaskPatch{EpicID: &epicID},
			event:   domain.EventEpicChanged,
			display: display,
		}, nil
	case domain.GroupAssignee:
		assignee := drop.Key
		if assignee == "" {
			assignee = domain.Unassigned
		}
		return &classification{
			patch:   domain.TaskPatch{Assignee: &assignee},
			event:   domain.EventAssigneeChanged,
			display: assignee,
		}, nil
	case domain.GroupNone:
		return nil, nil
	default:
		return nil, domain.ErrInvalidDimension
	}
}
