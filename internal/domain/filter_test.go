package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &t
}

func filterFixture() []*Task {
	return []*Task{
		{ID: "T1", Title: "Fix bug", Status: StatusTodo, Priority: PriorityHigh, Type: TypeBug,
			Assignee: "sam", Tags: []string{"backend"}, DueDate: date("2025-03-10"), SprintID: "S1"},
		{ID: "T2", Title: "Add login", Description: "OAuth flow", Status: StatusInProgress, Priority: PriorityMedium,
			Type: TypeStory, Assignee: Unassigned, Tags: []string{"auth", "frontend"}},
		{ID: "T3", Title: "Write docs", Status: StatusDone, Priority: PriorityLow, Type: TypeTask,
			Assignee: "alex", DueDate: date("2025-03-20"), SprintID: SprintCurrent},
	}
}

func TestTaskFilter_Apply(t *testing.T) {
	tests := []struct {
		name   string
		filter TaskFilter
		want   []string
	}{
		{"empty filter keeps all", TaskFilter{}, []string{"T1", "T2", "T3"}},
		{"search title", TaskFilter{Search: "fix"}, []string{"T1"}},
		{"search is case-insensitive", TaskFilter{Search: "LOGIN"}, []string{"T2"}},
		{"search description", TaskFilter{Search: "oauth"}, []string{"T2"}},
		{"search id", TaskFilter{Search: "t3"}, []string{"T3"}},
		{"search tag", TaskFilter{Search: "front"}, []string{"T2"}},
		{"status set", TaskFilter{Statuses: []Status{StatusTodo, StatusDone}}, []string{"T1", "T3"}},
		{"priority", TaskFilter{Priorities: []Priority{PriorityHigh}}, []string{"T1"}},
		{"type", TaskFilter{Types: []TaskType{TypeStory, TypeTask}}, []string{"T2", "T3"}},
		{"assignee", TaskFilter{Assignees: []string{"alex"}}, []string{"T3"}},
		{"unassigned sentinel", TaskFilter{Assignees: []string{Unassigned}}, []string{"T2"}},
		{"tags any", TaskFilter{Tags: []string{"auth", "backend"}}, []string{"T1", "T2"}},
		{"tag mismatch", TaskFilter{Tags: []string{"frontend"}, Search: "fix"}, []string{}},
		{"due from", TaskFilter{DueFrom: date("2025-03-15")}, []string{"T3"}},
		{"due to inclusive", TaskFilter{DueTo: date("2025-03-10")}, []string{"T1"}},
		{"due range", TaskFilter{DueFrom: date("2025-03-10"), DueTo: date("2025-03-20")}, []string{"T1", "T3"}},
		{"sprint", TaskFilter{SprintID: SprintCurrent}, []string{"T3"}},
		{"and across dimensions", TaskFilter{Statuses: []Status{StatusTodo}, Assignees: []string{"alex"}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(filterFixture())

			ids := make([]string, 0, len(got))
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestTaskFilter_DueIgnoresTimeOfDay(t *testing.T) {
	due := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	task := &Task{ID: "T1", DueDate: &due}

	assert.True(t, TaskFilter{DueTo: date("2025-03-10")}.Matches(task))
}

func TestTaskFilter_IsEmpty(t *testing.T) {
	assert.True(t, TaskFilter{}.IsEmpty())
	assert.False(t, TaskFilter{Search: "x"}.IsEmpty())
	assert.False(t, TaskFilter{DueTo: date("2025-01-01")}.IsEmpty())
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("10/03/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
