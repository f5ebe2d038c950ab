package board

import (
	"fmt"
	"testing"
	"time"

	"github.com/runoshun/git-board/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type counterIDs struct {
	n int
}

func (c *counterIDs) NewID() string {
	c.n++
	return fmt.Sprintf("n%d", c.n)
}

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// newTestBoard builds a board whose sequence is exactly tasks, in order.
func newTestBoard(tasks ...*domain.Task) *Board {
	state := domain.NewBoardState()
	state.Tasks = append(state.Tasks, tasks...)
	state.Meta.NextTaskID = len(tasks) + 1
	return New(state, Options{Clock: fixedClock{now: testNow}, IDs: &counterIDs{}})
}

func task(id string) *domain.Task {
	return &domain.Task{
		ID:       id,
		Title:    "Task " + id,
		Status:   domain.StatusTodo,
		Priority: domain.PriorityMedium,
		Type:     domain.TypeTask,
		Assignee: domain.Unassigned,
	}
}

func ids(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

// =============================================================================
// Create
// =============================================================================

func TestBoard_Create_Defaults(t *testing.T) {
	b := newTestBoard()

	created, err := b.Create(domain.TaskPatch{Title: ptr("Fix bug")})

	require.NoError(t, err)
	assert.Equal(t, "T1", created.ID)
	assert.Equal(t, "Fix bug", created.Title)
	assert.Equal(t, domain.StatusTodo, created.Status)
	assert.Equal(t, domain.PriorityMedium, created.Priority)
	assert.Equal(t, domain.TypeTask, created.Type)
	assert.Equal(t, domain.Unassigned, created.Assignee)
	assert.Equal(t, testNow, created.Created)
	assert.Empty(t, created.Tags)
	assert.Empty(t, created.Subtasks)
	assert.Empty(t, created.Comments)
	assert.Empty(t, created.Attachments)
	assert.Empty(t, created.Activity)
}

func TestBoard_Create_Prepends(t *testing.T) {
	b := newTestBoard(task("T1"), task("T2"))

	created, err := b.Create(domain.TaskPatch{Title: ptr("New")})

	require.NoError(t, err)
	assert.Equal(t, []string{created.ID, "T1", "T2"}, ids(b.Tasks()))
}

func TestBoard_Create_SkipsCollidingIDs(t *testing.T) {
	b := newTestBoard(task("T1"), task("T2"))
	b.State().Meta.NextTaskID = 1

	created, err := b.Create(domain.TaskPatch{Title: ptr("New")})

	require.NoError(t, err)
	assert.Equal(t, "T3", created.ID)
}

func TestBoard_Create_EmptyTitle(t *testing.T) {
	b := newTestBoard()

	_, err := b.Create(domain.TaskPatch{Title: ptr("   ")})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = b.Create(domain.TaskPatch{})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	assert.Equal(t, 0, b.Len())
}

func TestBoard_Create_WithFields(t *testing.T) {
	b := newTestBoard()
	tags := []string{"backend", "auth"}

	created, err := b.Create(domain.TaskPatch{
		Title:       ptr("Login"),
		Priority:    ptr(domain.PriorityHigh),
		Type:        ptr(domain.TypeBug),
		Tags:        &tags,
		StoryPoints: ptr(3),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, created.Priority)
	assert.Equal(t, domain.TypeBug, created.Type)
	assert.Equal(t, []string{"backend", "auth"}, created.Tags)
	assert.Equal(t, 3, created.Points())

	tags[0] = "changed"
	assert.Equal(t, "backend", created.Tags[0], "tags must not share the caller's array")
}

func TestBoard_Create_InvalidPriority(t *testing.T) {
	b := newTestBoard()

	_, err := b.Create(domain.TaskPatch{Title: ptr("x"), Priority: ptr(domain.Priority("urgent"))})

	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

// =============================================================================
// Update
// =============================================================================

func TestBoard_Update_ChangesOnlyPatchedField(t *testing.T) {
	b := newTestBoard(task("T1"))
	before := *b.Get("T1")

	updated, err := b.Update("T1", domain.TaskPatch{Priority: ptr(domain.PriorityCritical)})

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityCritical, updated.Priority)
	before.Priority = domain.PriorityCritical
	assert.Equal(t, before, *b.Get("T1"))
}

func TestBoard_Update_ReplacesCollections(t *testing.T) {
	b := newTestBoard(task("T1"))
	b.Get("T1").Subtasks = []domain.Subtask{{ID: "a", Title: "old"}}

	subtasks := []domain.Subtask{{ID: "b", Title: "new"}, {ID: "c", Title: "newer"}}
	_, err := b.Update("T1", domain.TaskPatch{Subtasks: &subtasks})

	require.NoError(t, err)
	assert.Equal(t, subtasks, b.Get("T1").Subtasks)
}

func TestBoard_Update_DoesNotLogActivity(t *testing.T) {
	b := newTestBoard(task("T1"))

	_, err := b.Update("T1", domain.TaskPatch{Status: ptr(domain.StatusDone)})

	require.NoError(t, err)
	assert.Empty(t, b.Get("T1").Activity)
}

func TestBoard_Update_NotFound(t *testing.T) {
	b := newTestBoard(task("T1"))

	_, err := b.Update("T9", domain.TaskPatch{Title: ptr("x")})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestBoard_Update_RejectsBlankTitle(t *testing.T) {
	b := newTestBoard(task("T1"))
	title := b.Get("T1").Title

	_, err := b.Update("T1", domain.TaskPatch{Title: ptr("   ")})

	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Equal(t, title, b.Get("T1").Title)
}

func TestBoard_Update_EmptyAssigneeIsUnassigned(t *testing.T) {
	b := newTestBoard(task("T1"))
	b.Get("T1").Assignee = "Sam"

	updated, err := b.Update("T1", domain.TaskPatch{Assignee: ptr("")})

	require.NoError(t, err)
	assert.Equal(t, domain.Unassigned, updated.Assignee)
}

func TestBoard_Update_ClearsOptionalFields(t *testing.T) {
	b := newTestBoard(task("T1"))
	due := testNow
	b.Get("T1").StoryPoints = ptr(5)
	b.Get("T1").DueDate = &due

	_, err := b.Update("T1", domain.TaskPatch{ClearStoryPoints: true, ClearDueDate: true})

	require.NoError(t, err)
	assert.Nil(t, b.Get("T1").StoryPoints)
	assert.Nil(t, b.Get("T1").DueDate)
}

// =============================================================================
// BulkUpdate
// =============================================================================

func TestBoard_BulkUpdate(t *testing.T) {
	b := newTestBoard(task("T1"), task("T2"), task("T3"))

	updated, err := b.BulkUpdate([]string{"T1", "T2", "T404"}, domain.TaskPatch{Assignee: ptr("Sam")})

	require.NoError(t, err)
	assert.Equal(t, []string{"T1", "T2"}, updated)
	assert.Equal(t, "Sam", b.Get("T1").Assignee)
	assert.Equal(t, "Sam", b.Get("T2").Assignee)
	assert.Equal(t, domain.Unassigned, b.Get("T3").Assignee)
}

func TestBoard_BulkUpdate_EmptyAssigneeIsUnassigned(t *testing.T) {
	b := newTestBoard(task("T1"), task("T2"))
	b.Get("T1").Assignee = "Sam"
	b.Get("T2").Assignee = "Alex"

	_, err := b.BulkUpdate([]string{"T1", "T2"}, domain.TaskPatch{Assignee: ptr("")})

	require.NoError(t, err)
	assert.Equal(t, domain.Unassigned, b.Get("T1").Assignee)
	assert.Equal(t, domain.Unassigned, b.Get("T2").Assignee)
}

func TestBoard_BulkUpdate_NoMatches(t *testing.T) {
	b := newTestBoard(task("T1"))

	updated, err := b.BulkUpdate([]string{"T9"}, domain.TaskPatch{Assignee: ptr("Sam")})

	require.NoError(t, err)
	assert.Empty(t, updated)
}

// =============================================================================
// Delete
// =============================================================================

func TestBoard_Delete(t *testing.T) {
	b := newTestBoard(task("T1"), task("T2"), task("T3"))

	removed, err := b.Delete("T2")

	require.NoError(t, err)
	assert.Equal(t, "T2", removed.ID)
	assert.Equal(t, []string{"T1", "T3"}, ids(b.Tasks()))
}

func TestBoard_Delete_NotFoundLeavesBoard(t *testing.T) {
	b := newTestBoard(task("T1"), task("T2"))

	_, err := b.Delete("T9")

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Equal(t, []string{"T1", "T2"}, ids(b.Tasks()))
}

func TestBoard_Delete_CascadesLinks(t *testing.T) {
	t1, t2, t3 := task("T1"), task("T2"), task("T3")
	t1.Links = []domain.Link{{Type: domain.LinkBlocks, Target: "T2"}, {Type: domain.LinkRelatesTo, Target: "T3"}}
	t3.Links = []domain.Link{{Type: domain.LinkBlockedBy, Target: "T2"}}
	b := newTestBoard(t1, t2, t3)

	_, err := b.Delete("T2")

	require.NoError(t, err)
	assert.Equal(t, []domain.Link{{Type: domain.LinkRelatesTo, Target: "T3"}}, b.Get("T1").Links)
	assert.Empty(t, b.Get("T3").Links)
}

// =============================================================================
// Clone
// =============================================================================

func TestBoard_Clone(t *testing.T) {
	src := task("T1")
	src.Status = domain.StatusReview
	src.Tags = []string{"api"}
	src.Subtasks = []domain.Subtask{{ID: "s1", Title: "write"}}
	b := newTestBoard(src, task("T2"))

	c, err := b.Clone("T1")

	require.NoError(t, err)
	assert.Equal(t, "T3", c.ID)
	assert.Equal(t, "Copy of Task T1", c.Title)
	assert.Equal(t, domain.StatusTodo, c.Status)
	assert.Equal(t, []string{"api"}, c.Tags)
	assert.Equal(t, []string{"T1", "T2", "T3"}, ids(b.Tasks()), "clones are appended")

	c.Subtasks[0].Title = "changed"
	c.Tags[0] = "changed"
	assert.Equal(t, "write", src.Subtasks[0].Title)
	assert.Equal(t, "api", src.Tags[0])
}

func TestBoard_Clone_NotFound(t *testing.T) {
	b := newTestBoard()

	_, err := b.Clone("T1")

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

// =============================================================================
// Reorder
// =============================================================================

func TestBoard_Reorder(t *testing.T) {
	tests := []struct {
		name    string
		dragged string
		target  string
		want    []string
		moved   bool
	}{
		{"down before last", "X", "Z", []string{"Y", "X", "Z"}, true},
		{"up to first", "Z", "X", []string{"Z", "X", "Y"}, true},
		{"onto next sibling", "X", "Y", []string{"X", "Y", "Z"}, false},
		{"onto itself", "Y", "Y", []string{"X", "Y", "Z"}, false},
		{"unknown dragged", "Q", "Y", []string{"X", "Y", "Z"}, false},
		{"unknown target", "X", "Q", []string{"X", "Y", "Z"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(task("X"), task("Y"), task("Z"))

			moved := b.Reorder(tt.dragged, tt.target)

			assert.Equal(t, tt.moved, moved)
			assert.Equal(t, tt.want, ids(b.Tasks()))
		})
	}
}

func TestBoard_Reorder_RoundTripRestoresRelativeOrder(t *testing.T) {
	b := newTestBoard(task("A"), task("B"), task("C"))

	b.Reorder("C", "A")
	b.Reorder("A", "C")

	order := ids(b.Tasks())
	assert.Less(t, indexOf(order, "A"), indexOf(order, "C"))
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// =============================================================================
// Advance
// =============================================================================

func TestBoard_Advance(t *testing.T) {
	b := newTestBoard(task("T1"))

	var seen []domain.Status
	for range 4 {
		got, _, err := b.Advance("T1")
		require.NoError(t, err)
		seen = append(seen, got.Status)
	}

	assert.Equal(t, []domain.Status{
		domain.StatusInProgress,
		domain.StatusReview,
		domain.StatusDone,
		domain.StatusTodo,
	}, seen)
}

func TestBoard_Advance_Blocked(t *testing.T) {
	b := newTestBoard(task("T1"))
	b.Get("T1").Status = domain.StatusBlocked

	got, prev, err := b.Advance("T1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusBlocked, prev)
	assert.Equal(t, domain.StatusTodo, got.Status)
}

func TestBoard_Advance_RefusedWhileDragging(t *testing.T) {
	b := newTestBoard(task("T1"), task("T2"))
	require.NoError(t, b.BeginDrag("T2"))

	_, _, err := b.Advance("T1")

	assert.ErrorIs(t, err, domain.ErrDragInProgress)
	assert.Equal(t, domain.StatusTodo, b.Get("T1").Status)
}

// =============================================================================
// Epics and sprints
// =============================================================================

func TestBoard_CreateEpic(t *testing.T) {
	b := newTestBoard()

	e1, err := b.CreateEpic("Auth", "Login and sessions", "#ff0000")
	require.NoError(t, err)
	e2, err := b.CreateEpic("Billing", "", "")
	require.NoError(t, err)

	assert.Equal(t, "E1", e1.ID)
	assert.Equal(t, "E2", e2.ID)
	assert.Len(t, b.Epics(), 2)

	_, err = b.CreateEpic(" ", "", "")
	assert.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestBoard_CreateSprint(t *testing.T) {
	b := newTestBoard()
	start := testNow
	end := testNow.AddDate(0, 0, 14)

	s, err := b.CreateSprint("Sprint 1", "Ship login", &start, &end)

	require.NoError(t, err)
	assert.Equal(t, "S1", s.ID)
	assert.Equal(t, "Ship login", s.Goal)
	assert.True(t, b.State().HasSprint("S1"))
	assert.True(t, b.State().HasSprint(domain.SprintCurrent))
	assert.False(t, b.State().HasSprint("S9"))
}

func TestBoard_EpicProgress(t *testing.T) {
	t1, t2, t3 := task("T1"), task("T2"), task("T3")
	t1.EpicID, t2.EpicID = "E1", "E1"
	t1.Status = domain.StatusDone
	t1.StoryPoints, t2.StoryPoints = ptr(3), ptr(5)
	b := newTestBoard(t1, t2, t3)

	p := b.EpicProgress("E1")

	assert.Equal(t, Progress{Total: 2, Done: 1, Points: 8, DonePoints: 3}, p)
	assert.Equal(t, 50, p.Percent())
	assert.Equal(t, 0, b.EpicProgress("E2").Percent())
}

func TestBoard_Journal(t *testing.T) {
	b := newTestBoard(task("T1"), task("T2"))

	_, err := b.AppendActivity("T2", domain.EventCommentAdded, "Sam", "added a comment")
	require.NoError(t, err)
	_, err = b.AppendActivity("T9", domain.EventCommentAdded, "Sam", "added a comment")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	_, err = b.Move("T1", Drop{Dimension: domain.GroupStatus, Key: string(domain.StatusDone), Author: "Alex"})
	require.NoError(t, err)

	journal := b.Journal()
	require.Len(t, journal, 2)
	assert.Equal(t, "T2", journal[0].TaskID)
	assert.Equal(t, "added a comment", journal[0].Entry.Details)
	assert.Equal(t, "T1", journal[1].TaskID)
	assert.Equal(t, "Alex", journal[1].Entry.Author)
}
