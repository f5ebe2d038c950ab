// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/git-board/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	boardDir      string // Path to .git/board directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/git-board)
}

// NewLoader creates a new Loader.
func NewLoader(boardDir string) *Loader {
	return &Loader{
		boardDir:      boardDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(boardDir, globalConfDir string) *Loader {
	return &Loader{
		boardDir:      boardDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalBoardDir(configHome)
}

// Load returns the merged configuration (repo + global).
// Repository config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	repo, err := l.LoadRepo()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Merge: default <- global <- repo (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if repo != nil {
		base = mergeConfigs(base, repo)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadRepo returns only the repository configuration.
func (l *Loader) LoadRepo() (*domain.Config, error) {
	if l.boardDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.boardDir, domain.ConfigFileName))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "board":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "key_prefix":
						if s, ok := v.(string); ok {
							res.Board.KeyPrefix = s
						}
					case "origin":
						if s, ok := v.(string); ok {
							res.Board.Origin = s
						}
					case "author":
						if s, ok := v.(string); ok {
							res.Board.Author = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [board]: %s", k))
					}
				}
			}
		case "store":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "backend":
						if s, ok := v.(string); ok {
							if s != domain.StoreJSON && s != domain.StoreGit {
								warnings = append(warnings, fmt.Sprintf("invalid [store] backend %q (want json or git)", s))
								continue
							}
							res.Store.Backend = s
						}
					case "namespace":
						if s, ok := v.(string); ok {
							res.Store.Namespace = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
					}
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							res.Log.Level = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		case "tui":
			if m, ok := value.(map[string]any); ok {
				warnings = append(warnings, parseTUISection(m, &res.TUI)...)
			}
		case "ai":
			if m, ok := value.(map[string]any); ok {
				warnings = append(warnings, parseAISection(m, &res.AI)...)
			}
		case "members":
			members, memberWarnings := parseMembers(value)
			res.Members = members
			warnings = append(warnings, memberWarnings...)
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parseAISection fills the [ai] settings and returns warnings.
func parseAISection(m map[string]any, ai *domain.AIConfig) []string {
	var warnings []string
	for k, v := range m {
		switch k {
		case "base_url":
			if s, ok := v.(string); ok {
				ai.BaseURL = s
			}
		case "model":
			if s, ok := v.(string); ok {
				ai.Model = s
			}
		case "api_key_env":
			if s, ok := v.(string); ok {
				ai.APIKeyEnv = s
			}
		case "timeout":
			s, ok := v.(string)
			if !ok {
				warnings = append(warnings, "invalid [ai] timeout: want a duration string such as \"30s\"")
				continue
			}
			d, err := time.ParseDuration(s)
			if err != nil || d <= 0 {
				warnings = append(warnings, fmt.Sprintf("invalid [ai] timeout %q", s))
				continue
			}
			ai.Timeout = d
		default:
			warnings = append(warnings, fmt.Sprintf("unknown key in [ai]: %s", k))
		}
	}
	return warnings
}

// parseTUISection fills the [tui] settings and returns warnings.
func parseTUISection(m map[string]any, tui *domain.TUIConfig) []string {
	var warnings []string
	for k, v := range m {
		s, _ := v.(string)
		switch k {
		case "default_view":
			if s != "backlog" && s != "kanban" {
				warnings = append(warnings, fmt.Sprintf("invalid [tui] default_view %q (want backlog or kanban)", s))
				continue
			}
			tui.DefaultView = s
		case "group_by":
			d, err := domain.ParseDimension(s)
			if err != nil || d == domain.GroupStatus {
				warnings = append(warnings, fmt.Sprintf("invalid [tui] group_by %q", s))
				continue
			}
			tui.GroupBy = string(d)
		default:
			warnings = append(warnings, fmt.Sprintf("unknown key in [tui]: %s", k))
		}
	}
	return warnings
}

// parseMembers parses the [[members]] array of tables.
func parseMembers(value any) ([]domain.Member, []string) {
	list, ok := value.([]any)
	if !ok {
		return nil, []string{"invalid [[members]]: want an array of tables"}
	}

	var members []domain.Member
	var warnings []string
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("invalid member #%d", i+1))
			continue
		}
		var member domain.Member
		for k, v := range m {
			switch k {
			case "id":
				if s, ok := v.(string); ok {
					member.ID = s
				}
			case "name":
				if s, ok := v.(string); ok {
					member.Name = s
				}
			default:
				warnings = append(warnings, fmt.Sprintf("unknown key in [[members]]: %s", k))
			}
		}
		if member.ID == "" {
			warnings = append(warnings, fmt.Sprintf("member #%d has no id", i+1))
			continue
		}
		if member.Name == "" {
			member.Name = member.ID
		}
		members = append(members, member)
	}
	return members, warnings
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Board:    base.Board,
		Store:    base.Store,
		AI:       base.AI,
		TUI:      base.TUI,
		Log:      base.Log,
		Members:  append([]domain.Member{}, base.Members...),
		Warnings: append([]string{}, base.Warnings...),
	}

	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Board.KeyPrefix != "" {
		result.Board.KeyPrefix = override.Board.KeyPrefix
	}
	if override.Board.Origin != "" {
		result.Board.Origin = override.Board.Origin
	}
	if override.Board.Author != "" {
		result.Board.Author = override.Board.Author
	}
	if override.Store.Backend != "" {
		result.Store.Backend = override.Store.Backend
	}
	if override.Store.Namespace != "" {
		result.Store.Namespace = override.Store.Namespace
	}
	if override.AI.BaseURL != "" {
		result.AI.BaseURL = override.AI.BaseURL
	}
	if override.AI.Model != "" {
		result.AI.Model = override.AI.Model
	}
	if override.AI.APIKeyEnv != "" {
		result.AI.APIKeyEnv = override.AI.APIKeyEnv
	}
	if override.AI.Timeout != 0 {
		result.AI.Timeout = override.AI.Timeout
	}
	if override.TUI.DefaultView != "" {
		result.TUI.DefaultView = override.TUI.DefaultView
	}
	if override.TUI.GroupBy != "" {
		result.TUI.GroupBy = override.TUI.GroupBy
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	// Members merge by id; override entries replace base entries
	for _, m := range override.Members {
		replaced := false
		for i := range result.Members {
			if result.Members[i].ID == m.ID {
				result.Members[i] = m
				replaced = true
				break
			}
		}
		if !replaced {
			result.Members = append(result.Members, m)
		}
	}

	return result
}
