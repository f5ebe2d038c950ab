// Package git provides repository discovery on top of go-git.
package git

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/storage/filesystem"

	"github.com/runoshun/git-board/internal/domain"
)

// Client locates the repository the board lives in.
type Client struct {
	repo     *git.Repository
	repoRoot string // Repository root (parent of .git)
	gitDir   string // .git directory
}

// NewClient opens the repository containing dir, searching parent
// directories the way git does.
func NewClient(dir string) (*Client, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}

	st, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return nil, domain.ErrNotGitRepository
	}
	gitDir := filepath.Clean(st.Filesystem().Root())

	repoRoot := gitDir
	if wt, wtErr := repo.Worktree(); wtErr == nil {
		repoRoot = filepath.Clean(wt.Filesystem.Root())
	}

	return &Client{
		repo:     repo,
		repoRoot: repoRoot,
		gitDir:   gitDir,
	}, nil
}

// RepoRoot returns the repository root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// GitDir returns the .git directory path.
func (c *Client) GitDir() string {
	return c.gitDir
}

// Repository returns the opened repository.
func (c *Client) Repository() *git.Repository {
	return c.repo
}

// CurrentBranch returns the short name of the checked-out branch.
func (c *Client) CurrentBranch() (string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return head.Name().Short(), nil
}

// UserName returns user.name from the repository, global or system config,
// or "" when unset.
func (c *Client) UserName() string {
	cfg, err := c.repo.ConfigScoped(config.SystemScope)
	if err != nil {
		return ""
	}
	return cfg.User.Name
}

// Ensure Client implements domain.Git interface.
var _ domain.Git = (*Client)(nil)
