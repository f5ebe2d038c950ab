package usecase

import (
	"time"

	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/testutil"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// testEnv wires a use case engine over an in-memory board.
type testEnv struct {
	repo   *testutil.MockBoardRepository
	logger *testutil.MockLogger
	config *domain.Config
	engine shared.Engine
}

func newTestEnv(tasks ...*domain.Task) *testEnv {
	repo := testutil.NewMockBoardRepository(tasks...)
	logger := &testutil.MockLogger{}
	cfg := domain.NewDefaultConfig()
	return &testEnv{
		repo:   repo,
		logger: logger,
		config: cfg,
		engine: shared.Engine{
			Repo:   repo,
			Clock:  &testutil.MockClock{NowTime: testNow},
			IDs:    &testutil.SeqIDs{},
			Logger: logger,
			Config: cfg,
		},
	}
}

func newTask(id, title string) *domain.Task {
	return &domain.Task{
		ID:       id,
		Title:    title,
		Status:   domain.StatusTodo,
		Priority: domain.PriorityMedium,
		Type:     domain.TypeTask,
		Assignee: domain.Unassigned,
	}
}

func ptr[T any](v T) *T {
	return &v
}
