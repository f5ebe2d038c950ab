// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/runoshun/git-board/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// SeqIDs is a test double for domain.IDGenerator returning "id1", "id2", ...
type SeqIDs struct {
	N int
}

// NewID returns the next sequential id.
func (s *SeqIDs) NewID() string {
	s.N++
	return fmt.Sprintf("id%d", s.N)
}

// MockBoardRepository is an in-memory domain.BoardRepository.
// Update works on a copy and commits it only when fn succeeds.
// Fields are ordered to minimize memory padding.
type MockBoardRepository struct {
	State     *domain.BoardState
	LoadErr   error
	UpdateErr error
	Updates   int // Successful updates
}

// NewMockBoardRepository creates a repository holding the given tasks in order.
func NewMockBoardRepository(tasks ...*domain.Task) *MockBoardRepository {
	st := domain.NewBoardState()
	st.Tasks = append(st.Tasks, tasks...)
	st.Meta.NextTaskID = len(tasks) + 1
	return &MockBoardRepository{State: st}
}

// Load returns a copy of the state.
func (m *MockBoardRepository) Load() (*domain.BoardState, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return CloneState(m.State), nil
}

// Update runs fn on a copy of the state and keeps it if fn returns nil.
func (m *MockBoardRepository) Update(fn func(*domain.BoardState) error) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	st := CloneState(m.State)
	if err := fn(st); err != nil {
		return err
	}
	m.State = st
	m.Updates++
	return nil
}

// Task returns the stored task with id, or nil.
func (m *MockBoardRepository) Task(id string) *domain.Task {
	for _, t := range m.State.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// TaskIDs returns the stored task ids in rank order.
func (m *MockBoardRepository) TaskIDs() []string {
	ids := make([]string, len(m.State.Tasks))
	for i, t := range m.State.Tasks {
		ids[i] = t.ID
	}
	return ids
}

// CloneState deep-copies a board state.
func CloneState(st *domain.BoardState) *domain.BoardState {
	c := &domain.BoardState{
		Tasks:   make([]*domain.Task, len(st.Tasks)),
		Epics:   make([]*domain.Epic, len(st.Epics)),
		Sprints: make([]*domain.Sprint, len(st.Sprints)),
		Meta:    st.Meta,
	}
	for i, t := range st.Tasks {
		c.Tasks[i] = t.Copy()
	}
	for i, e := range st.Epics {
		ec := *e
		c.Epics[i] = &ec
	}
	for i, s := range st.Sprints {
		sc := *s
		c.Sprints[i] = &sc
	}
	return c
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	InitErr     error
	Initialized bool
}

// Initialize marks the store initialized.
func (m *MockStoreInitializer) Initialize() error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.Initialized = true
	return nil
}

// IsInitialized returns the initialized flag.
func (m *MockStoreInitializer) IsInitialized() bool {
	return m.Initialized
}

// MockSnapshotStore is a test double for domain.SnapshotStore.
type MockSnapshotStore struct {
	ListErr    error
	RestoreErr error
	Restored   string
	Snapshots  []domain.SnapshotInfo
}

// ListSnapshots returns the configured snapshots.
func (m *MockSnapshotStore) ListSnapshots() ([]domain.SnapshotInfo, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Snapshots, nil
}

// RestoreSnapshot records the restored ref.
func (m *MockSnapshotStore) RestoreSnapshot(ref string) error {
	if m.RestoreErr != nil {
		return m.RestoreErr
	}
	m.Restored = ref
	return nil
}

// LogEntry is one call recorded by MockLogger.
type LogEntry struct {
	Level    string
	TaskID   string
	Category string
	Msg      string
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) add(level, taskID, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(taskID, category, msg string) { m.add("INFO", taskID, category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID, category, msg string) { m.add("DEBUG", taskID, category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(taskID, category, msg string) { m.add("WARN", taskID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(taskID, category, msg string) { m.add("ERROR", taskID, category, msg) }

// MockAssistant is a test double for domain.Assistant.
// Fields are ordered to minimize memory padding.
type MockAssistant struct {
	SuggestErr error
	SummaryErr error
	Summary    string
	Prompts    []string
	Drafts     []domain.TaskDraft
}

// SuggestTasks returns the configured drafts.
func (m *MockAssistant) SuggestTasks(_ context.Context, prompt string, _ []*domain.Task) ([]domain.TaskDraft, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.SuggestErr != nil {
		return nil, m.SuggestErr
	}
	return m.Drafts, nil
}

// SummarizeBoard returns the configured summary.
func (m *MockAssistant) SummarizeBoard(_ context.Context, _ []*domain.Task) (string, error) {
	if m.SummaryErr != nil {
		return "", m.SummaryErr
	}
	return m.Summary, nil
}

// MockClipboard is a test double for domain.Clipboard.
type MockClipboard struct {
	WriteErr error
	Text     string
}

// WriteAll records the text.
func (m *MockClipboard) WriteAll(text string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Text = text
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config       *domain.Config
	GlobalConfig *domain.Config
	LoadErr      error
}

// NewMockConfigLoader creates a loader returning default configs.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config:       domain.NewDefaultConfig(),
		GlobalConfig: domain.NewDefaultConfig(),
	}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured global config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.GlobalConfig, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitRepoErr      error
	InitGlobalErr    error
	RepoConfigInfo   domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitRepoCalled   bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a manager with fixed paths.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		RepoConfigInfo:   domain.ConfigInfo{Path: "/repo/.git/board/config.toml"},
		GlobalConfigInfo: domain.ConfigInfo{Path: "/home/user/.config/git-board/config.toml"},
	}
}

// GetRepoConfigInfo returns the repository config info.
func (m *MockConfigManager) GetRepoConfigInfo() domain.ConfigInfo {
	return m.RepoConfigInfo
}

// GetGlobalConfigInfo returns the global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitRepoConfig records a repository config init.
func (m *MockConfigManager) InitRepoConfig(_ *domain.Config) error {
	m.InitRepoCalled = true
	return m.InitRepoErr
}

// InitGlobalConfig records a global config init.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

// MockGit is a test double for domain.Git.
type MockGit struct {
	BranchErr error
	Root      string
	Dir       string
	Branch    string
	User      string
}

// RepoRoot returns the configured root.
func (m *MockGit) RepoRoot() string { return m.Root }

// GitDir returns the configured git dir.
func (m *MockGit) GitDir() string { return m.Dir }

// CurrentBranch returns the configured branch.
func (m *MockGit) CurrentBranch() (string, error) {
	if m.BranchErr != nil {
		return "", m.BranchErr
	}
	return m.Branch, nil
}

// UserName returns the configured user name.
func (m *MockGit) UserName() string { return m.User }

// Ensure mocks implement their interfaces.
var (
	_ domain.BoardRepository  = (*MockBoardRepository)(nil)
	_ domain.StoreInitializer = (*MockStoreInitializer)(nil)
	_ domain.SnapshotStore    = (*MockSnapshotStore)(nil)
	_ domain.Logger           = (*MockLogger)(nil)
	_ domain.Assistant        = (*MockAssistant)(nil)
	_ domain.Clipboard        = (*MockClipboard)(nil)
	_ domain.ConfigLoader     = (*MockConfigLoader)(nil)
	_ domain.ConfigManager    = (*MockConfigManager)(nil)
	_ domain.Git              = (*MockGit)(nil)
	_ domain.IDGenerator      = (*SeqIDs)(nil)
)

// MockEditor is a test double for domain.Editor. Edit replaces the file
// content with Content.
type MockEditor struct {
	EditErr error
	Content string
	Paths   []string
}

// Edit records the path and writes Content to it.
func (m *MockEditor) Edit(path string) error {
	m.Paths = append(m.Paths, path)
	if m.EditErr != nil {
		return m.EditErr
	}
	return os.WriteFile(path, []byte(m.Content), 0o600)
}
