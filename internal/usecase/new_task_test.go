package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/git-board/internal/domain"
)

func TestNewTask_Execute_Success(t *testing.T) {
	// Setup
	env := newTestEnv(newTask("T1", "Existing"))
	uc := NewNewTask(env.engine)

	// Execute
	out, err := uc.Execute(context.Background(), NewTaskInput{
		Fields: domain.TaskPatch{
			Title:    ptr("Add login"),
			Priority: ptr(domain.PriorityHigh),
			Tags:     &[]string{"auth"},
		},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "T2", out.Task.ID)
	assert.Equal(t, []string{"T2", "T1"}, env.repo.TaskIDs())

	task := env.repo.Task("T2")
	require.NotNil(t, task)
	assert.Equal(t, "Add login", task.Title)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, domain.StatusTodo, task.Status)
	assert.Equal(t, domain.Unassigned, task.Assignee)
	assert.Equal(t, testNow, task.Created)
	require.Len(t, task.Activity, 1)
	assert.Equal(t, domain.EventCreated, task.Activity[0].Event)
	assert.Equal(t, domain.DefaultAuthor, task.Activity[0].Author)
	assert.Equal(t, "id1", task.Activity[0].ID)

	require.Len(t, env.logger.Entries, 1)
	assert.Equal(t, "T2", env.logger.Entries[0].TaskID)
	assert.Equal(t, "You created the task", env.logger.Entries[0].Msg)
}

func TestNewTask_Execute_ExplicitAuthor(t *testing.T) {
	env := newTestEnv()
	uc := NewNewTask(env.engine)

	out, err := uc.Execute(context.Background(), NewTaskInput{
		Fields: domain.TaskPatch{Title: ptr("x")},
		Author: "Sam",
	})

	require.NoError(t, err)
	assert.Equal(t, "Sam", env.repo.Task(out.Task.ID).Activity[0].Author)
}

func TestNewTask_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		fields  domain.TaskPatch
		members []domain.Member
	}{
		{
			name:    "missing title",
			fields:  domain.TaskPatch{},
			wantErr: domain.ErrEmptyTitle,
		},
		{
			name:    "empty title",
			fields:  domain.TaskPatch{Title: ptr("")},
			wantErr: domain.ErrEmptyTitle,
		},
		{
			name:    "invalid priority",
			fields:  domain.TaskPatch{Title: ptr("x"), Priority: ptr(domain.Priority("urgent"))},
			wantErr: domain.ErrInvalidPriority,
		},
		{
			name:    "unknown epic",
			fields:  domain.TaskPatch{Title: ptr("x"), EpicID: ptr("E9")},
			wantErr: domain.ErrEpicNotFound,
		},
		{
			name:    "unknown sprint",
			fields:  domain.TaskPatch{Title: ptr("x"), SprintID: ptr("S9")},
			wantErr: domain.ErrSprintNotFound,
		},
		{
			name:    "unknown member",
			fields:  domain.TaskPatch{Title: ptr("x"), Assignee: ptr("kim")},
			members: []domain.Member{{ID: "sam", Name: "Sam"}},
			wantErr: domain.ErrMemberNotFound,
		},
		{
			name:    "link to missing task",
			fields:  domain.TaskPatch{Title: ptr("x"), Links: &[]domain.Link{{Type: domain.LinkBlocks, Target: "T9"}}},
			wantErr: domain.ErrTaskNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(newTask("T1", "Existing"))
			env.config.Members = tt.members
			uc := NewNewTask(env.engine)

			_, err := uc.Execute(context.Background(), NewTaskInput{Fields: tt.fields})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []string{"T1"}, env.repo.TaskIDs())
			assert.Zero(t, env.repo.Updates)
		})
	}
}

func TestNewTask_Execute_LogicalSprintAccepted(t *testing.T) {
	env := newTestEnv()
	uc := NewNewTask(env.engine)

	out, err := uc.Execute(context.Background(), NewTaskInput{
		Fields: domain.TaskPatch{Title: ptr("x"), SprintID: ptr(domain.SprintCurrent)},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SprintCurrent, out.Task.SprintID)
}

func TestNewTask_Execute_StoreError(t *testing.T) {
	env := newTestEnv()
	env.repo.UpdateErr = errors.New("locked")
	uc := NewNewTask(env.engine)

	_, err := uc.Execute(context.Background(), NewTaskInput{Fields: domain.TaskPatch{Title: ptr("x")}})

	assert.ErrorContains(t, err, "locked")
}

func TestCreateTasksFromFile_Execute(t *testing.T) {
	// Setup
	env := newTestEnv(newTask("T1", "Existing"))
	uc := NewCreateTasksFromFile(env.engine)
	content := []byte(`
- title: First
  priority: high
- title: Second
  tags: [docs]
- title: Third
`)

	// Execute
	out, err := uc.Execute(context.Background(), CreateTasksFromFileInput{Content: content})

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Tasks, 3)
	assert.Equal(t, "T2", out.Tasks[0].ID)
	assert.Equal(t, "First", out.Tasks[0].Title)
	assert.Equal(t, "T4", out.Tasks[2].ID)
	assert.Equal(t, []string{"T2", "T3", "T4", "T1"}, env.repo.TaskIDs())
	assert.Equal(t, domain.PriorityHigh, env.repo.Task("T2").Priority)
	assert.Equal(t, []string{"docs"}, env.repo.Task("T3").Tags)
	assert.Equal(t, 1, env.repo.Updates)
}

func TestCreateTasksFromFile_Execute_DryRun(t *testing.T) {
	env := newTestEnv()
	uc := NewCreateTasksFromFile(env.engine)

	out, err := uc.Execute(context.Background(), CreateTasksFromFileInput{
		Content: []byte("title: Only\n"),
		DryRun:  true,
	})

	require.NoError(t, err)
	require.Len(t, out.Drafts, 1)
	assert.Nil(t, out.Tasks)
	assert.Zero(t, env.repo.Updates)
}

func TestCreateTasksFromFile_Execute_AllOrNothing(t *testing.T) {
	env := newTestEnv()
	uc := NewCreateTasksFromFile(env.engine)

	_, err := uc.Execute(context.Background(), CreateTasksFromFileInput{
		Content: []byte("- title: Good\n- title: Bad\n  epic: E7\n"),
	})

	require.ErrorIs(t, err, domain.ErrEpicNotFound)
	assert.Contains(t, err.Error(), "task 2")
	assert.Empty(t, env.repo.TaskIDs())
}

func TestCreateTasksFromFile_Execute_ParseError(t *testing.T) {
	env := newTestEnv()
	uc := NewCreateTasksFromFile(env.engine)

	_, err := uc.Execute(context.Background(), CreateTasksFromFileInput{Content: []byte("  ")})

	assert.ErrorIs(t, err, domain.ErrEmptyFile)
}
