package domain

import (
	"context"
	"time"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error

	// IsInitialized reports whether the store exists.
	IsInitialized() bool
}

// BoardRepository manages board persistence.
type BoardRepository interface {
	// Load returns the current board state.
	Load() (*BoardState, error)

	// Update runs fn against the current state while holding an exclusive
	// lock and persists the state if fn returns nil.
	Update(fn func(*BoardState) error) error
}

// SnapshotInfo describes a saved board snapshot.
type SnapshotInfo struct {
	Created time.Time
	Ref     string
	Tasks   int
	Seq     int
}

// SnapshotStore is implemented by stores that keep board history.
type SnapshotStore interface {
	// ListSnapshots returns snapshots, newest first.
	ListSnapshots() ([]SnapshotInfo, error)

	// RestoreSnapshot replaces the current board with the snapshot.
	RestoreSnapshot(ref string) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// IDGenerator produces ids for subtasks, comments, attachments and activity entries.
type IDGenerator interface {
	NewID() string
}

// Logger writes to the board log files.
type Logger interface {
	Info(taskID, category, msg string)
	Debug(taskID, category, msg string)
	Warn(taskID, category, msg string)
	Error(taskID, category, msg string)
}

// Assistant is the generative-text collaborator used for suggestions and
// board summaries. Both calls may fail; callers degrade to defaults.
type Assistant interface {
	// SuggestTasks proposes task drafts for a free-form prompt.
	SuggestTasks(ctx context.Context, prompt string, tasks []*Task) ([]TaskDraft, error)

	// SummarizeBoard returns a short natural-language insight about the tasks.
	SummarizeBoard(ctx context.Context, tasks []*Task) (string, error)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Editor opens a file in the user's editor and waits for it to close.
type Editor interface {
	Edit(path string) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (repo + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager reads and creates config files.
type ConfigManager interface {
	GetRepoConfigInfo() ConfigInfo
	GetGlobalConfigInfo() ConfigInfo

	// InitRepoConfig writes the commented template to the repository config.
	InitRepoConfig(cfg *Config) error

	// InitGlobalConfig writes the commented template to the global config.
	InitGlobalConfig(cfg *Config) error
}

// Git describes the repository the board is stored in.
type Git interface {
	RepoRoot() string
	GitDir() string
	CurrentBranch() (string, error)

	// UserName returns the configured git user name, or "".
	UserName() string
}
