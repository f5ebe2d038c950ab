package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskPatch_Validate(t *testing.T) {
	empty := ""
	blank := " \t "
	badStatus := Status("archived")
	badPriority := Priority("urgent")
	badType := TaskType("epic")
	badLinks := []Link{{Type: "parent", Target: "T1"}}

	assert.NoError(t, TaskPatch{}.Validate())
	assert.ErrorIs(t, TaskPatch{Title: &empty}.Validate(), ErrEmptyTitle)
	assert.ErrorIs(t, TaskPatch{Title: &blank}.Validate(), ErrEmptyTitle)
	assert.ErrorIs(t, TaskPatch{Status: &badStatus}.Validate(), ErrInvalidStatus)
	assert.ErrorIs(t, TaskPatch{Priority: &badPriority}.Validate(), ErrInvalidPriority)
	assert.ErrorIs(t, TaskPatch{Type: &badType}.Validate(), ErrInvalidTaskType)
	assert.ErrorIs(t, TaskPatch{Links: &badLinks}.Validate(), ErrInvalidLinkType)
}

func TestTaskPatch_IsEmpty(t *testing.T) {
	title := "x"
	assert.True(t, TaskPatch{}.IsEmpty())
	assert.False(t, TaskPatch{Title: &title}.IsEmpty())
	assert.False(t, TaskPatch{ClearDueDate: true}.IsEmpty())
}

func TestTaskPatch_Apply(t *testing.T) {
	// Setup
	task := &Task{ID: "T1", Title: "Old", Status: StatusTodo, Assignee: "sam", Tags: []string{"a"}}
	title := "New"
	points := 5
	tags := []string{"b", "c"}

	// Execute
	TaskPatch{Title: &title, StoryPoints: &points, Tags: &tags}.Apply(task)

	// Assert
	assert.Equal(t, "New", task.Title)
	assert.Equal(t, 5, task.Points())
	assert.Equal(t, []string{"b", "c"}, task.Tags)
	assert.Equal(t, StatusTodo, task.Status)
	assert.Equal(t, "sam", task.Assignee)

	points = 8
	tags[0] = "z"
	assert.Equal(t, 5, task.Points())
	assert.Equal(t, "b", task.Tags[0])
}

func TestTaskPatch_Changes(t *testing.T) {
	status := StatusDone
	assignee := ""
	title := "New"
	epic := "E2"

	changes := TaskPatch{Status: &status, Assignee: &assignee, Title: &title, EpicID: &epic, ClearDueDate: true}.Changes()

	msgs := make([]string, len(changes))
	for i, c := range changes {
		msgs[i] = c.Message()
	}
	assert.Equal(t, []string{
		"changed status to Done",
		"assigned to Unassigned",
		"moved to epic E2",
		"updated title",
		"updated due date",
	}, msgs)
}
