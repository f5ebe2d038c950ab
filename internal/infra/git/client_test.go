package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/git-board/internal/domain"
)

// setupGitRepo creates a temporary git repository with one commit.
func setupGitRepo(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	cfg, err := repo.Config()
	require.NoError(t, err)
	cfg.User.Name = "Test User"
	cfg.User.Email = "test@example.com"
	require.NoError(t, repo.SetConfig(cfg))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Test\n"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir
}

// =============================================================================
// NewClient Tests
// =============================================================================

func TestNewClient_Success(t *testing.T) {
	dir := setupGitRepo(t)

	client, err := NewClient(dir)

	require.NoError(t, err)
	assert.Equal(t, dir, client.RepoRoot())
	assert.Equal(t, filepath.Join(dir, ".git"), client.GitDir())
	assert.NotNil(t, client.Repository())
}

func TestNewClient_FromSubdirectory(t *testing.T) {
	dir := setupGitRepo(t)
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	client, err := NewClient(sub)

	require.NoError(t, err)
	assert.Equal(t, dir, client.RepoRoot())
}

func TestNewClient_NotARepository(t *testing.T) {
	_, err := NewClient(t.TempDir())

	assert.ErrorIs(t, err, domain.ErrNotGitRepository)
}

func TestClient_CurrentBranch(t *testing.T) {
	dir := setupGitRepo(t)
	client, err := NewClient(dir)
	require.NoError(t, err)

	branch, err := client.CurrentBranch()

	require.NoError(t, err)
	assert.Equal(t, "master", branch)
}

func TestClient_UserName(t *testing.T) {
	dir := setupGitRepo(t)
	client, err := NewClient(dir)
	require.NoError(t, err)

	assert.Equal(t, "Test User", client.UserName())
}
