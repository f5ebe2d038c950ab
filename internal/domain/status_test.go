package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Next(t *testing.T) {
	tests := []struct {
		from Status
		want Status
	}{
		{StatusTodo, StatusInProgress},
		{StatusInProgress, StatusReview},
		{StatusReview, StatusDone},
		{StatusDone, StatusTodo},
		{StatusBlocked, StatusTodo},
		{Status("archived"), StatusTodo},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Next())
		})
	}
}

func TestStatus_NextCycleReturnsToStart(t *testing.T) {
	s := StatusTodo
	for range 4 {
		s = s.Next()
	}
	assert.Equal(t, StatusTodo, s)
}

func TestStatus_Display(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusTodo, "To Do"},
		{StatusInProgress, "In Progress"},
		{StatusReview, "Review"},
		{StatusDone, "Done"},
		{StatusBlocked, "Blocked"},
		{Status("custom"), "custom"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Display())
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("closed").IsValid())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusDone.IsTerminal())
	assert.False(t, StatusReview.IsTerminal())
	assert.False(t, StatusBlocked.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		wantErr error
		input   string
		want    Status
	}{
		{input: "todo", want: StatusTodo},
		{input: "in_progress", want: StatusInProgress},
		{input: "In Progress", want: StatusInProgress},
		{input: "to do", want: StatusTodo},
		{input: "DONE", want: StatusDone},
		{input: "closed", wantErr: ErrInvalidStatus},
		{input: "", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePriority(t *testing.T) {
	got, err := ParsePriority(" High ")
	assert.NoError(t, err)
	assert.Equal(t, PriorityHigh, got)
	assert.Equal(t, "High", got.Display())

	_, err = ParsePriority("urgent")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestParseTaskType(t *testing.T) {
	got, err := ParseTaskType("Tech Debt")
	assert.NoError(t, err)
	assert.Equal(t, TypeTechDebt, got)

	got, err = ParseTaskType("bug")
	assert.NoError(t, err)
	assert.Equal(t, TypeBug, got)

	_, err = ParseTaskType("epic")
	assert.ErrorIs(t, err, ErrInvalidTaskType)
}

func TestParseLinkType(t *testing.T) {
	for _, in := range []string{"blocked_by", "blocked-by", "Blocked By"} {
		got, err := ParseLinkType(in)
		assert.NoError(t, err, in)
		assert.Equal(t, LinkBlockedBy, got, in)
	}
	assert.Equal(t, "relates to", LinkRelatesTo.Display())

	_, err := ParseLinkType("parent")
	assert.ErrorIs(t, err, ErrInvalidLinkType)
}
