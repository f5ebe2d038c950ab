// Package app provides the dependency injection container for the application.
package app

import (
	"os"
	"path/filepath"

	"github.com/runoshun/git-board/internal/domain"
	"github.com/runoshun/git-board/internal/infra/assistant"
	"github.com/runoshun/git-board/internal/infra/clipboard"
	"github.com/runoshun/git-board/internal/infra/config"
	"github.com/runoshun/git-board/internal/infra/executor"
	"github.com/runoshun/git-board/internal/infra/git"
	"github.com/runoshun/git-board/internal/infra/gitstore"
	"github.com/runoshun/git-board/internal/infra/ids"
	"github.com/runoshun/git-board/internal/infra/jsonstore"
	"github.com/runoshun/git-board/internal/infra/logging"
	"github.com/runoshun/git-board/internal/usecase"
	"github.com/runoshun/git-board/internal/usecase/shared"
)

// Config holds the application configuration paths.
type Config struct {
	RepoRoot  string // Root directory of the git repository
	GitDir    string // Path to .git directory
	BoardDir  string // Path to .git/board directory
	StorePath string // Path to board.json
}

// newConfig creates a new Config from the git client.
func newConfig(gitClient *git.Client) Config {
	boardDir := domain.RepoBoardDir(gitClient.GitDir())
	return Config{
		RepoRoot:  gitClient.RepoRoot(),
		GitDir:    gitClient.GitDir(),
		BoardDir:  boardDir,
		StorePath: filepath.Join(boardDir, domain.StoreFileName),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Board            domain.BoardRepository
	StoreInitializer domain.StoreInitializer
	Snapshots        domain.SnapshotStore // nil for the json backend
	Clock            domain.Clock
	IDs              domain.IDGenerator
	Git              domain.Git
	Logger           domain.Logger
	Assistant        domain.Assistant // nil when no API key is configured
	Clipboard        domain.Clipboard
	Editor           domain.Editor
	ConfigLoader     domain.ConfigLoader
	ConfigManager    domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config

	// Configuration
	Config Config
}

// New creates a new Container by detecting the git repository from the given directory.
func New(dir string) (*Container, error) {
	// Detect git repository
	gitClient, err := git.NewClient(dir)
	if err != nil {
		return nil, err
	}

	// Create configuration from git client
	cfg := newConfig(gitClient)

	// Load app config; a broken file falls back to defaults
	configLoader := config.NewLoader(cfg.BoardDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		appConfig = domain.NewDefaultConfig()
		appConfig.Warnings = append(appConfig.Warnings, "config: "+err.Error())
	}
	if appConfig.Board.Author == domain.DefaultAuthor {
		if name := gitClient.UserName(); name != "" {
			appConfig.Board.Author = name
		}
	}

	clock := domain.RealClock{}

	// Create board repository based on config
	// Default is "json" store; use "git" only if explicitly specified
	var (
		boardRepo domain.BoardRepository
		storeInit domain.StoreInitializer
		snapshots domain.SnapshotStore
	)
	if appConfig.Store.Backend == domain.StoreGit {
		gitStore := gitstore.NewWithRepo(gitClient.Repository(), appConfig.Store.Namespace)
		gitStore.SetClock(clock)
		boardRepo = gitStore
		storeInit = gitStore
		snapshots = gitStore
	} else {
		jsonStore := jsonstore.New(cfg.StorePath)
		boardRepo = jsonStore
		storeInit = jsonStore
	}

	// Create assistant; suggestions are disabled without an API key
	var ai domain.Assistant
	if client, err := assistant.New(appConfig.AI, os.Getenv(appConfig.AI.APIKeyEnv)); err == nil {
		ai = client
	}

	return &Container{
		Board:            boardRepo,
		StoreInitializer: storeInit,
		Snapshots:        snapshots,
		Clock:            clock,
		IDs:              ids.New(),
		Git:              gitClient,
		Logger:           logging.New(cfg.BoardDir, logging.ParseLevel(appConfig.Log.Level)),
		Assistant:        ai,
		Clipboard:        clipboard.New(),
		Editor:           executor.NewClient(),
		ConfigLoader:     configLoader,
		ConfigManager:    config.NewManager(cfg.BoardDir),
		AppConfig:        appConfig,
		Config:           cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, board domain.BoardRepository, storeInit domain.StoreInitializer, clock domain.Clock, ids domain.IDGenerator, logger domain.Logger) *Container {
	return &Container{
		Board:            board,
		StoreInitializer: storeInit,
		Clock:            clock,
		IDs:              ids,
		Logger:           logger,
		AppConfig:        domain.NewDefaultConfig(),
		Config:           cfg,
	}
}

// Engine returns the shared dependencies of the board use cases.
func (c *Container) Engine() shared.Engine {
	return shared.Engine{
		Repo:   c.Board,
		Clock:  c.Clock,
		IDs:    c.IDs,
		Logger: c.Logger,
		Config: c.AppConfig,
	}
}

// Close releases open log files.
func (c *Container) Close() error {
	if l, ok := c.Logger.(*logging.Logger); ok {
		return l.Close()
	}
	return nil
}

// UseCase factory methods

// InitBoardUseCase returns a new InitBoard use case.
func (c *Container) InitBoardUseCase() *usecase.InitBoard {
	return usecase.NewInitBoard(c.StoreInitializer, c.Logger)
}

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Engine())
}

// CreateTasksFromFileUseCase returns a new CreateTasksFromFile use case.
func (c *Container) CreateTasksFromFileUseCase() *usecase.CreateTasksFromFile {
	return usecase.NewCreateTasksFromFile(c.Engine())
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Engine())
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Engine())
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Engine())
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Engine())
}

// BulkEditTasksUseCase returns a new BulkEditTasks use case.
func (c *Container) BulkEditTasksUseCase() *usecase.BulkEditTasks {
	return usecase.NewBulkEditTasks(c.Engine())
}

// BulkDeleteTasksUseCase returns a new BulkDeleteTasks use case.
func (c *Container) BulkDeleteTasksUseCase() *usecase.BulkDeleteTasks {
	return usecase.NewBulkDeleteTasks(c.Engine())
}

// CloneTaskUseCase returns a new CloneTask use case.
func (c *Container) CloneTaskUseCase() *usecase.CloneTask {
	return usecase.NewCloneTask(c.Engine())
}

// ReorderTaskUseCase returns a new ReorderTask use case.
func (c *Container) ReorderTaskUseCase() *usecase.ReorderTask {
	return usecase.NewReorderTask(c.Engine())
}

// MoveTaskUseCase returns a new MoveTask use case.
func (c *Container) MoveTaskUseCase() *usecase.MoveTask {
	return usecase.NewMoveTask(c.Engine())
}

// AdvanceTaskUseCase returns a new AdvanceTask use case.
func (c *Container) AdvanceTaskUseCase() *usecase.AdvanceTask {
	return usecase.NewAdvanceTask(c.Engine())
}

// AddCommentUseCase returns a new AddComment use case.
func (c *Container) AddCommentUseCase() *usecase.AddComment {
	return usecase.NewAddComment(c.Engine())
}

// AddSubtaskUseCase returns a new AddSubtask use case.
func (c *Container) AddSubtaskUseCase() *usecase.AddSubtask {
	return usecase.NewAddSubtask(c.Engine())
}

// ToggleSubtaskUseCase returns a new ToggleSubtask use case.
func (c *Container) ToggleSubtaskUseCase() *usecase.ToggleSubtask {
	return usecase.NewToggleSubtask(c.Engine())
}

// RemoveSubtaskUseCase returns a new RemoveSubtask use case.
func (c *Container) RemoveSubtaskUseCase() *usecase.RemoveSubtask {
	return usecase.NewRemoveSubtask(c.Engine())
}

// AddAttachmentUseCase returns a new AddAttachment use case.
func (c *Container) AddAttachmentUseCase() *usecase.AddAttachment {
	return usecase.NewAddAttachment(c.Engine())
}

// RemoveAttachmentUseCase returns a new RemoveAttachment use case.
func (c *Container) RemoveAttachmentUseCase() *usecase.RemoveAttachment {
	return usecase.NewRemoveAttachment(c.Engine())
}

// AddLinkUseCase returns a new AddLink use case.
func (c *Container) AddLinkUseCase() *usecase.AddLink {
	return usecase.NewAddLink(c.Engine())
}

// RemoveLinkUseCase returns a new RemoveLink use case.
func (c *Container) RemoveLinkUseCase() *usecase.RemoveLink {
	return usecase.NewRemoveLink(c.Engine())
}

// NewEpicUseCase returns a new NewEpic use case.
func (c *Container) NewEpicUseCase() *usecase.NewEpic {
	return usecase.NewNewEpic(c.Engine())
}

// ListEpicsUseCase returns a new ListEpics use case.
func (c *Container) ListEpicsUseCase() *usecase.ListEpics {
	return usecase.NewListEpics(c.Engine())
}

// NewSprintUseCase returns a new NewSprint use case.
func (c *Container) NewSprintUseCase() *usecase.NewSprint {
	return usecase.NewNewSprint(c.Engine())
}

// ListSprintsUseCase returns a new ListSprints use case.
func (c *Container) ListSprintsUseCase() *usecase.ListSprints {
	return usecase.NewListSprints(c.Engine())
}

// SuggestTasksUseCase returns a new SuggestTasks use case.
func (c *Container) SuggestTasksUseCase() *usecase.SuggestTasks {
	return usecase.NewSuggestTasks(c.Engine(), c.Assistant)
}

// SummarizeBoardUseCase returns a new SummarizeBoard use case.
func (c *Container) SummarizeBoardUseCase() *usecase.SummarizeBoard {
	return usecase.NewSummarizeBoard(c.Engine(), c.Assistant)
}

// TaskURLUseCase returns a new TaskURL use case.
func (c *Container) TaskURLUseCase() *usecase.TaskURL {
	return usecase.NewTaskURL(c.Engine(), c.Clipboard)
}

// ListSnapshotsUseCase returns a new ListSnapshots use case.
func (c *Container) ListSnapshotsUseCase() *usecase.ListSnapshots {
	return usecase.NewListSnapshots(c.Snapshots)
}

// RestoreSnapshotUseCase returns a new RestoreSnapshot use case.
func (c *Container) RestoreSnapshotUseCase() *usecase.RestoreSnapshot {
	return usecase.NewRestoreSnapshot(c.Snapshots, c.Logger)
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Config.BoardDir)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
