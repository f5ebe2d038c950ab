package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupBy(t *testing.T) {
	p3, p5 := 3, 5
	tasks := []*Task{
		{ID: "T1", Priority: PriorityHigh, Assignee: "sam", EpicID: "E1", StoryPoints: &p3},
		{ID: "T2", Priority: PriorityLow, Assignee: Unassigned},
		{ID: "T3", Priority: PriorityHigh, Assignee: "", EpicID: "E1", StoryPoints: &p5},
	}

	t.Run("priority", func(t *testing.T) {
		groups := GroupBy(GroupPriority, tasks)

		require.Len(t, groups, 2)
		assert.Equal(t, "high", groups[0].Key)
		assert.Equal(t, 2, groups[0].Count)
		assert.Equal(t, 8, groups[0].Points)
		assert.Equal(t, "T1", groups[0].Tasks[0].ID)
		assert.Equal(t, "T3", groups[0].Tasks[1].ID)
		assert.Equal(t, "low", groups[1].Key)
	})

	t.Run("assignee folds empty into Unassigned", func(t *testing.T) {
		groups := GroupBy(GroupAssignee, tasks)

		require.Len(t, groups, 2)
		assert.Equal(t, "sam", groups[0].Key)
		assert.Equal(t, Unassigned, groups[1].Key)
		assert.Equal(t, 2, groups[1].Count)
	})

	t.Run("epic", func(t *testing.T) {
		groups := GroupBy(GroupEpic, tasks)

		require.Len(t, groups, 2)
		assert.Equal(t, "E1", groups[0].Key)
		assert.Equal(t, Unassigned, groups[1].Key)
	})

	t.Run("none is a single group", func(t *testing.T) {
		groups := GroupBy(GroupNone, tasks)

		require.Len(t, groups, 1)
		assert.Equal(t, 3, groups[0].Count)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, GroupBy(GroupPriority, nil))
	})
}

func TestColumns(t *testing.T) {
	tasks := []*Task{
		{ID: "T1", Status: StatusDone},
		{ID: "T2", Status: StatusTodo},
		{ID: "T3", Status: StatusDone},
	}

	cols := Columns(tasks)

	require.Len(t, cols, len(AllStatuses()))
	for i, s := range AllStatuses() {
		assert.Equal(t, string(s), cols[i].Key)
	}
	assert.Equal(t, 1, cols[0].Count)
	assert.Equal(t, 0, cols[1].Count)
	assert.Equal(t, 2, cols[3].Count)
	assert.Equal(t, "T1", cols[3].Tasks[0].ID)
}

func TestParseDimension(t *testing.T) {
	d, err := ParseDimension("")
	require.NoError(t, err)
	assert.Equal(t, GroupNone, d)

	d, err = ParseDimension("Epic")
	require.NoError(t, err)
	assert.Equal(t, GroupEpic, d)

	_, err = ParseDimension("color")
	assert.ErrorIs(t, err, ErrInvalidDimension)
}
