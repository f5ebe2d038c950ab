package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"
	"unicode"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Members  []Member    `toml:"members"`
	Warnings []string    `toml:"-"`
	Board    BoardConfig `toml:"board"`
	Store    StoreConfig `toml:"store"`
	AI       AIConfig    `toml:"ai"`
	TUI      TUIConfig   `toml:"tui"`
	Log      LogConfig   `toml:"log"`
}

// BoardConfig holds settings from the [board] section.
type BoardConfig struct {
	KeyPrefix string `toml:"key_prefix,omitempty"` // Prefix for task ids (default: "T")
	Origin    string `toml:"origin,omitempty"`     // Origin used for task URLs
	Author    string `toml:"author,omitempty"`     // Author recorded on comments and activity
}

// StoreConfig holds settings from the [store] section.
type StoreConfig struct {
	Backend   string `toml:"backend,omitempty"`   // "json" (default) or "git"
	Namespace string `toml:"namespace,omitempty"` // Ref namespace for the git backend (default: "board")
}

// AIConfig holds settings from the [ai] section.
type AIConfig struct {
	BaseURL   string        `toml:"base_url,omitempty"`    // OpenAI-compatible endpoint
	Model     string        `toml:"model,omitempty"`       // Model name
	APIKeyEnv string        `toml:"api_key_env,omitempty"` // Environment variable holding the API key
	Timeout   time.Duration `toml:"-"`                     // Request timeout
}

// TUIConfig holds settings from the [tui] section.
type TUIConfig struct {
	DefaultView string `toml:"default_view,omitempty"` // "backlog" (default) or "kanban"
	GroupBy     string `toml:"group_by,omitempty"`     // Initial backlog grouping
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// Default configuration values.
const (
	DefaultLogLevel     = "info"
	DefaultKeyPrefix    = "T"
	DefaultOrigin       = "http://localhost:3000"
	DefaultAuthor       = "You"
	DefaultStoreBackend = "json"
	DefaultNamespace    = "board"
	DefaultAIModel      = "gpt-4o-mini"
	DefaultAPIKeyEnv    = "OPENAI_API_KEY"
	DefaultAITimeout    = 30 * time.Second
	DefaultView         = "backlog"
)

// Store backends.
const (
	StoreJSON = "json"
	StoreGit  = "git"
)

// NewDefaultConfig returns a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Board: BoardConfig{
			KeyPrefix: DefaultKeyPrefix,
			Origin:    DefaultOrigin,
			Author:    DefaultAuthor,
		},
		Store: StoreConfig{
			Backend:   DefaultStoreBackend,
			Namespace: DefaultNamespace,
		},
		AI: AIConfig{
			Model:     DefaultAIModel,
			APIKeyEnv: DefaultAPIKeyEnv,
			Timeout:   DefaultAITimeout,
		},
		TUI: TUIConfig{
			DefaultView: DefaultView,
			GroupBy:     string(GroupNone),
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// MemberName returns the display name of a member id, or the id itself.
func (c *Config) MemberName(id string) string {
	for _, m := range c.Members {
		if m.ID == id {
			return m.Name
		}
	}
	return id
}

// HasMember reports whether id is a configured member. With no members
// configured every assignee is accepted.
func (c *Config) HasMember(id string) bool {
	if len(c.Members) == 0 || id == "" || id == Unassigned {
		return true
	}
	for _, m := range c.Members {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Config file locations.
const (
	BoardDirName   = "board"       // Directory under .git
	ConfigFileName = "config.toml" // Config file name
	StoreFileName  = "board.json"  // JSON store file name
)

// RepoBoardDir returns the board directory for a repository's git dir.
func RepoBoardDir(gitDir string) string {
	return filepath.Join(gitDir, BoardDirName)
}

// GlobalBoardDir returns the global config directory under configHome.
func GlobalBoardDir(configHome string) string {
	return filepath.Join(configHome, "git-board")
}

// GlobalLogPath returns the path of the global log file.
func GlobalLogPath(boardDir string) string {
	return filepath.Join(boardDir, "logs", "board.log")
}

// TaskLogPath returns the path of a task's log file. Characters other than
// letters, digits, '-' and '_' in the id become '_'.
func TaskLogPath(boardDir, taskID string) string {
	safe := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, taskID)
	return filepath.Join(boardDir, "logs", fmt.Sprintf("task-%s.log", safe))
}

// RenderConfigTemplate renders the commented config file written by init.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
