package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/runoshun/git-board/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	boardDir      string // Path to .git/board directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/git-board)
}

// NewManager creates a new Manager.
func NewManager(boardDir string) *Manager {
	return &Manager{
		boardDir:      boardDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(boardDir, globalConfDir string) *Manager {
	return &Manager{
		boardDir:      boardDir,
		globalConfDir: globalConfDir,
	}
}

// GetRepoConfigInfo returns information about the repository config file.
func (m *Manager) GetRepoConfigInfo() domain.ConfigInfo {
	return readConfigInfo(m.repoPath())
}

// GetGlobalConfigInfo returns information about the global config file.
// The zero value is returned when no global config directory is known.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return readConfigInfo(m.globalPath())
}

// InitRepoConfig writes the commented template into .git/board/config.toml.
func (m *Manager) InitRepoConfig(cfg *domain.Config) error {
	return writeTemplate(m.repoPath(), 0o750, cfg)
}

// InitGlobalConfig writes the commented template into the user config directory.
func (m *Manager) InitGlobalConfig(cfg *domain.Config) error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}
	return writeTemplate(m.globalPath(), 0o700, cfg)
}

func (m *Manager) repoPath() string {
	return filepath.Join(m.boardDir, domain.ConfigFileName)
}

func (m *Manager) globalPath() string {
	return filepath.Join(m.globalConfDir, domain.ConfigFileName)
}

func readConfigInfo(path string) domain.ConfigInfo {
	info := domain.ConfigInfo{Path: path}
	content, err := os.ReadFile(path) //nolint:gosec // path is built from known config locations
	if err != nil {
		return info
	}
	info.Content = string(content)
	info.Exists = true
	return info
}

// writeTemplate creates path exclusively so an existing file is never touched.
func writeTemplate(path string, dirPerm os.FileMode, cfg *domain.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600) //nolint:gosec // see readConfigInfo
	if errors.Is(err, fs.ErrExist) {
		return domain.ErrConfigExists
	}
	if err != nil {
		return err
	}
	if _, err := f.WriteString(domain.RenderConfigTemplate(cfg)); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
