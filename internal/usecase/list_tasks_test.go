package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/git-board/internal/domain"
)

func listFixture() *testEnv {
	t1 := newTask("T1", "Fix bug")
	t1.Priority = domain.PriorityHigh
	t1.Tags = []string{"backend"}
	t2 := newTask("T2", "Write docs")
	t2.Assignee = "sam"
	t3 := newTask("T3", "Fix layout")
	t3.Priority = domain.PriorityHigh
	t3.Status = domain.StatusDone
	return newTestEnv(t1, t2, t3)
}

func TestListTasks_Execute(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.TaskFilter
		want   []string
	}{
		{name: "no filter", want: []string{"T1", "T2", "T3"}},
		{name: "search", filter: domain.TaskFilter{Search: "fix"}, want: []string{"T1", "T3"}},
		{name: "search missing", filter: domain.TaskFilter{Search: "missing"}, want: []string{}},
		{name: "priority and tag", filter: domain.TaskFilter{Priorities: []domain.Priority{domain.PriorityHigh}, Tags: []string{"frontend"}}, want: []string{}},
		{name: "status", filter: domain.TaskFilter{Statuses: []domain.Status{domain.StatusDone}}, want: []string{"T3"}},
		{name: "assignee", filter: domain.TaskFilter{Assignees: []string{"sam"}}, want: []string{"T2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := listFixture()
			uc := NewListTasks(env.engine)

			out, err := uc.Execute(context.Background(), ListTasksInput{Filter: tt.filter})

			require.NoError(t, err)
			assert.Equal(t, tt.want, taskIDs(out.Tasks))
			assert.Equal(t, 3, out.Total)
			assert.Nil(t, out.Groups)
		})
	}
}

func TestListTasks_Execute_Grouped(t *testing.T) {
	env := listFixture()
	uc := NewListTasks(env.engine)

	out, err := uc.Execute(context.Background(), ListTasksInput{GroupBy: domain.GroupPriority})

	require.NoError(t, err)
	require.Len(t, out.Groups, 2)
	assert.Equal(t, string(domain.PriorityHigh), out.Groups[0].Key)
	assert.Equal(t, []string{"T1", "T3"}, taskIDs(out.Groups[0].Tasks))
	assert.Equal(t, string(domain.PriorityMedium), out.Groups[1].Key)
	assert.Equal(t, []string{"T2"}, taskIDs(out.Groups[1].Tasks))
}

func TestListTasks_Execute_LoadError(t *testing.T) {
	env := listFixture()
	env.repo.LoadErr = domain.ErrNotInitialized
	uc := NewListTasks(env.engine)

	_, err := uc.Execute(context.Background(), ListTasksInput{})

	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestShowTask_Execute(t *testing.T) {
	// Setup
	t1 := newTask("T1", "Fix bug")
	t1.EpicID = "E1"
	t1.SprintID = "S1"
	t1.Links = []domain.Link{{Type: domain.LinkBlocks, Target: "T2"}}
	env := newTestEnv(t1, newTask("T2", "Deploy"))
	env.repo.State.Epics = []*domain.Epic{{ID: "E1", Name: "Auth"}}
	env.repo.State.Sprints = []*domain.Sprint{{ID: "S1", Name: "Sprint 1"}}
	uc := NewShowTask(env.engine)

	// Execute
	out, err := uc.Execute(context.Background(), ShowTaskInput{TaskID: "T1"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Fix bug", out.Task.Title)
	require.NotNil(t, out.Epic)
	assert.Equal(t, "Auth", out.Epic.Name)
	require.NotNil(t, out.Sprint)
	assert.Equal(t, "Sprint 1", out.Sprint.Name)
	assert.Equal(t, []string{"T2"}, taskIDs(out.Linked))
}

func TestShowTask_Execute_NotFound(t *testing.T) {
	env := newTestEnv()
	uc := NewShowTask(env.engine)

	_, err := uc.Execute(context.Background(), ShowTaskInput{TaskID: "T9"})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
