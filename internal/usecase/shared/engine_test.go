package shared

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/git-board/internal/board"
	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/testutil"
)

func newTestEngine() (Engine, *testutil.MockBoardRepository, *testutil.MockLogger) {
	repo := testutil.NewMockBoardRepository(&domain.Task{
		ID:       "T1",
		Title:    "Add login",
		Status:   domain.StatusTodo,
		Priority: domain.PriorityMedium,
		Type:     domain.TypeTask,
		Assignee: domain.Unassigned,
	})
	logger := &testutil.MockLogger{}
	engine := Engine{
		Repo:   repo,
		Clock:  &testutil.MockClock{NowTime: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)},
		IDs:    &testutil.SeqIDs{},
		Logger: logger,
	}
	return engine, repo, logger
}

func TestEngine_Update_LogsRecordedActivityAfterSave(t *testing.T) {
	// Setup
	engine, repo, logger := newTestEngine()

	// Execute
	err := engine.Update(func(b *board.Board) error {
		if err := engine.Record(b, "T1", domain.EventCommentAdded, "Sam"); err != nil {
			return err
		}
		return engine.Record(b, "T1", domain.EventStatusChanged, "Sam", "Review")
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Updates)
	assert.Len(t, repo.Task("T1").Activity, 2)
	require.Len(t, logger.Entries, 2)
	assert.Equal(t, "T1", logger.Entries[0].TaskID)
	assert.Equal(t, "Sam "+domain.ActivityMessage(domain.EventCommentAdded), logger.Entries[0].Msg)
	assert.Equal(t, "Sam "+domain.ActivityMessage(domain.EventStatusChanged, "Review"), logger.Entries[1].Msg)
}

func TestEngine_Update_NothingLoggedWhenNotSaved(t *testing.T) {
	tests := []struct {
		storeErr error
		fnErr    error
		name     string
	}{
		{name: "callback fails after recording", fnErr: errors.New("later step failed")},
		{name: "store fails", storeErr: errors.New("disk full")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			engine, repo, logger := newTestEngine()
			repo.UpdateErr = tt.storeErr

			// Execute
			err := engine.Update(func(b *board.Board) error {
				if err := engine.Record(b, "T1", domain.EventCommentAdded, "Sam"); err != nil {
					return err
				}
				return tt.fnErr
			})

			// Assert
			require.Error(t, err)
			assert.Zero(t, repo.Updates)
			assert.Empty(t, repo.Task("T1").Activity)
			assert.Empty(t, logger.Entries)
		})
	}
}
