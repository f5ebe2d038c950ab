package domain

import "strings"

// Dimension is the field a task list is grouped by.
type Dimension string

const (
	GroupNone     Dimension = "none"
	GroupEpic     Dimension = "epic"
	GroupPriority Dimension = "priority"
	GroupAssignee Dimension = "assignee"
	GroupStatus   Dimension = "status" // kanban columns
)

// AllDimensions returns the backlog grouping dimensions in cycle order.
func AllDimensions() []Dimension {
	return []Dimension{GroupNone, GroupEpic, GroupPriority, GroupAssignee}
}

// ParseDimension parses a grouping dimension; "" means none.
func ParseDimension(s string) (Dimension, error) {
	d := Dimension(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case "":
		return GroupNone, nil
	case GroupNone, GroupEpic, GroupPriority, GroupAssignee, GroupStatus:
		return d, nil
	}
	return "", ErrInvalidDimension
}

// Key returns the group key of t for the dimension.
func (d Dimension) Key(t *Task) string {
	switch d {
	case GroupEpic:
		return t.EpicKey()
	case GroupPriority:
		return string(t.Priority)
	case GroupAssignee:
		return t.AssigneeKey()
	case GroupStatus:
		return string(t.Status)
	default:
		return ""
	}
}

// Group is one partition of a grouped task list.
type Group struct {
	Key    string
	Tasks  []*Task
	Count  int
	Points int
}

// GroupBy partitions tasks by the dimension. Groups appear in the order their
// keys are first seen; tasks keep their input order within a group.
func GroupBy(d Dimension, tasks []*Task) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, t := range tasks {
		key := d.Key(t)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		g := &groups[i]
		g.Tasks = append(g.Tasks, t)
		g.Count++
		g.Points += t.Points()
	}
	return groups
}

// Columns groups tasks by status with one column per status, in board order,
// including empty columns.
func Columns(tasks []*Task) []Group {
	cols := make([]Group, 0, len(AllStatuses()))
	byKey := make(map[string]int)
	for i, s := range AllStatuses() {
		cols = append(cols, Group{Key: string(s)})
		byKey[string(s)] = i
	}
	for _, g := range GroupBy(GroupStatus, tasks) {
		if i, ok := byKey[g.Key]; ok {
			cols[i] = g
		}
	}
	return cols
}
