package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/git-board/internal/domain"
)

func TestAddComment_Execute(t *testing.T) {
	// Setup
	env := newTestEnv(newTask("T1", "Fix bug"))
	uc := NewAddComment(env.engine)

	// Execute
	out, err := uc.Execute(context.Background(), AddCommentInput{TaskID: "T1", Message: "  Looks good  ", Author: "Sam"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Looks good", out.Comment.Text)
	assert.Equal(t, "Sam", out.Comment.Author)
	assert.Equal(t, testNow, out.Comment.CreatedAt)

	task := env.repo.Task("T1")
	require.Len(t, task.Comments, 1)
	assert.Equal(t, "id1", task.Comments[0].ID)
	require.Len(t, task.Activity, 1)
	assert.Equal(t, "added a comment", task.Activity[0].Details)
}

func TestAddComment_Execute_Errors(t *testing.T) {
	env := newTestEnv(newTask("T1", "Fix bug"))
	uc := NewAddComment(env.engine)

	_, err := uc.Execute(context.Background(), AddCommentInput{TaskID: "T1", Message: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)

	_, err = uc.Execute(context.Background(), AddCommentInput{TaskID: "T9", Message: "hi"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestSubtasks_Lifecycle(t *testing.T) {
	// Setup
	env := newTestEnv(newTask("T1", "Fix bug"))
	add := NewAddSubtask(env.engine)
	toggle := NewToggleSubtask(env.engine)
	remove := NewRemoveSubtask(env.engine)
	ctx := context.Background()

	// Execute & Assert: add two
	first, err := add.Execute(ctx, AddSubtaskInput{TaskID: "T1", Title: "Reproduce"})
	require.NoError(t, err)
	_, err = add.Execute(ctx, AddSubtaskInput{TaskID: "T1", Title: "Write test"})
	require.NoError(t, err)
	assert.Len(t, env.repo.Task("T1").Subtasks, 2)

	// toggle by id
	out, err := toggle.Execute(ctx, SubtaskRefInput{TaskID: "T1", SubtaskID: first.Subtask.ID})
	require.NoError(t, err)
	assert.True(t, out.Subtask.Completed)
	assert.Equal(t, 1, env.repo.Task("T1").CompletedSubtasks())

	// remove by position
	out, err = remove.Execute(ctx, SubtaskRefInput{TaskID: "T1", SubtaskID: "2"})
	require.NoError(t, err)
	assert.Equal(t, "Write test", out.Subtask.Title)

	task := env.repo.Task("T1")
	require.Len(t, task.Subtasks, 1)
	assert.Equal(t, "Reproduce", task.Subtasks[0].Title)

	var details []string
	for _, a := range task.Activity {
		details = append(details, a.Details)
	}
	assert.Equal(t, []string{
		`added subtask "Reproduce"`,
		`added subtask "Write test"`,
		`marked subtask "Reproduce" as done`,
		`removed subtask "Write test"`,
	}, details)
}

func TestSubtasks_Errors(t *testing.T) {
	env := newTestEnv(newTask("T1", "Fix bug"))
	ctx := context.Background()

	_, err := NewAddSubtask(env.engine).Execute(ctx, AddSubtaskInput{TaskID: "T1", Title: " "})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = NewToggleSubtask(env.engine).Execute(ctx, SubtaskRefInput{TaskID: "T1", SubtaskID: "1"})
	assert.ErrorIs(t, err, domain.ErrSubtaskNotFound)

	_, err = NewRemoveSubtask(env.engine).Execute(ctx, SubtaskRefInput{TaskID: "T1", SubtaskID: "nope"})
	assert.ErrorIs(t, err, domain.ErrSubtaskNotFound)
}

func TestAttachments_AddAndRemove(t *testing.T) {
	// Setup
	env := newTestEnv(newTask("T1", "Fix bug"))
	ctx := context.Background()

	// Execute
	out, err := NewAddAttachment(env.engine).Execute(ctx, AddAttachmentInput{
		TaskID: "T1",
		Name:   "/tmp/screens/crash.png",
		Size:   2048,
		Author: "Sam",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "crash.png", out.Attachment.Name)
	assert.Equal(t, "image/png", out.Attachment.Type)
	assert.Equal(t, int64(2048), out.Attachment.Size)
	assert.Equal(t, "Sam", out.Attachment.Uploader)
	assert.Equal(t, testNow, out.Attachment.UploadedAt)

	removed, err := NewRemoveAttachment(env.engine).Execute(ctx, RemoveAttachmentInput{TaskID: "T1", AttachmentID: "crash.png"})
	require.NoError(t, err)
	assert.Equal(t, out.Attachment.ID, removed.Attachment.ID)

	task := env.repo.Task("T1")
	assert.Empty(t, task.Attachments)
	require.Len(t, task.Activity, 2)
	assert.Equal(t, "attached crash.png", task.Activity[0].Details)
	assert.Equal(t, "removed attachment crash.png", task.Activity[1].Details)
}

func TestAttachments_Errors(t *testing.T) {
	env := newTestEnv(newTask("T1", "Fix bug"))
	ctx := context.Background()

	_, err := NewAddAttachment(env.engine).Execute(ctx, AddAttachmentInput{TaskID: "T1"})
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = NewRemoveAttachment(env.engine).Execute(ctx, RemoveAttachmentInput{TaskID: "T1", AttachmentID: "1"})
	assert.ErrorIs(t, err, domain.ErrAttachmentNotFound)
}

func TestLinks_AddAndRemove(t *testing.T) {
	// Setup
	env := newTestEnv(newTask("T1", "Fix bug"), newTask("T2", "Deploy"))
	ctx := context.Background()
	add := NewAddLink(env.engine)

	// Execute
	out, err := add.Execute(ctx, LinkInput{TaskID: "T1", TargetID: "T2", Type: domain.LinkBlocks})
	require.NoError(t, err)
	assert.True(t, out.Changed)

	again, err := add.Execute(ctx, LinkInput{TaskID: "T1", TargetID: "T2", Type: domain.LinkBlocks})
	require.NoError(t, err)
	assert.False(t, again.Changed)

	// Assert
	task := env.repo.Task("T1")
	assert.Equal(t, []domain.Link{{Type: domain.LinkBlocks, Target: "T2"}}, task.Links)
	require.Len(t, task.Activity, 1)
	assert.Equal(t, "linked blocks T2", task.Activity[0].Details)

	_, err = NewRemoveLink(env.engine).Execute(ctx, LinkInput{TaskID: "T1", TargetID: "T2"})
	require.NoError(t, err)
	assert.Empty(t, env.repo.Task("T1").Links)
}

func TestLinks_Errors(t *testing.T) {
	env := newTestEnv(newTask("T1", "Fix bug"))
	ctx := context.Background()
	add := NewAddLink(env.engine)

	_, err := add.Execute(ctx, LinkInput{TaskID: "T1", TargetID: "T1", Type: domain.LinkBlocks})
	assert.ErrorIs(t, err, domain.ErrSelfLink)

	_, err = add.Execute(ctx, LinkInput{TaskID: "T1", TargetID: "T2", Type: "depends"})
	assert.ErrorIs(t, err, domain.ErrInvalidLinkType)

	_, err = add.Execute(ctx, LinkInput{TaskID: "T1", TargetID: "T2", Type: domain.LinkBlocks})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = NewRemoveLink(env.engine).Execute(ctx, LinkInput{TaskID: "T1", TargetID: "T2"})
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}
