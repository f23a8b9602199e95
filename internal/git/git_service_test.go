package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/mischief/internal/errors"
)

func setupTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	for _, args := range [][]string{
		{"init", "--quiet"},
		{"config", "user.email", "test@example.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v: %s", args, err, out)
		}
	}

	return dir
}

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err, "git %v", args)
	return strings.TrimSpace(string(out))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestGitService(t *testing.T) {
	ctx := context.Background()

	t.Run("IsRepository", func(t *testing.T) {
		repo := setupTestRepo(t)

		assert.True(t, NewGitService(repo).IsRepository(ctx))
		assert.False(t, NewGitService(t.TempDir()).IsRepository(ctx))
	})

	t.Run("HeadCommit on unborn branch is empty", func(t *testing.T) {
		// Arrange
		service := NewGitService(setupTestRepo(t))

		// Act
		head, err := service.HeadCommit(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Empty(t, head)
	})

	t.Run("HeadCommit outside a repository", func(t *testing.T) {
		_, err := NewGitService(t.TempDir()).HeadCommit(ctx)

		assert.True(t, errors.Is(err, domainErrors.ErrNotInGitRepo))
	})

	t.Run("CommitFileAt backdates author and committer", func(t *testing.T) {
		// Arrange
		repo := setupTestRepo(t)
		service := NewGitService(repo)
		writeFile(t, repo, ".alibi/work-1.txt", "feat: add health check endpoint\n")
		when := time.Date(2026, 1, 24, 9, 17, 42, 0, time.UTC)

		// Act
		require.NoError(t, service.AddFileToStaging(ctx, ".alibi/work-1.txt"))
		err := service.CommitFileAt(ctx, ".alibi/work-1.txt", "feat: add health check endpoint", when)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "feat: add health check endpoint", gitOutput(t, repo, "log", "-1", "--format=%s"))
		assert.Equal(t, "1769246262", gitOutput(t, repo, "log", "-1", "--format=%at"))
		assert.Equal(t, "1769246262", gitOutput(t, repo, "log", "-1", "--format=%ct"))
		head, err := service.HeadCommit(ctx)
		require.NoError(t, err)
		assert.Len(t, head, 40)
	})

	t.Run("CommitFileAt leaves other staged changes alone", func(t *testing.T) {
		// Arrange
		repo := setupTestRepo(t)
		service := NewGitService(repo)
		writeFile(t, repo, "unrelated.txt", "wip")
		writeFile(t, repo, "work.txt", "chore: update dependencies")
		require.NoError(t, service.AddFileToStaging(ctx, "unrelated.txt"))
		require.NoError(t, service.AddFileToStaging(ctx, "work.txt"))

		// Act
		err := service.CommitFileAt(ctx, "work.txt", "chore: update dependencies", time.Now())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "work.txt", gitOutput(t, repo, "show", "--name-only", "--format=", "HEAD"))
		assert.Equal(t, "unrelated.txt", gitOutput(t, repo, "diff", "--cached", "--name-only"))
	})

	t.Run("AddFileToStaging missing file", func(t *testing.T) {
		// Arrange
		service := NewGitService(setupTestRepo(t))

		// Act
		err := service.AddFileToStaging(ctx, "ghost.txt")

		// Assert
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrAddFile))
		var appErr *domainErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "ghost.txt", appErr.Context["file"])
	})

	t.Run("CommitFileAt with nothing staged fails", func(t *testing.T) {
		repo := setupTestRepo(t)
		writeFile(t, repo, "untracked.txt", "x")

		err := NewGitService(repo).CommitFileAt(ctx, "untracked.txt", "fix: nothing", time.Now())

		assert.True(t, errors.Is(err, domainErrors.ErrCreateCommit))
	})

	t.Run("ResetMixed restores HEAD", func(t *testing.T) {
		// Arrange
		repo := setupTestRepo(t)
		service := NewGitService(repo)
		writeFile(t, repo, "a.txt", "a")
		require.NoError(t, service.AddFileToStaging(ctx, "a.txt"))
		require.NoError(t, service.CommitFileAt(ctx, "a.txt", "feat: a", time.Now()))
		start, err := service.HeadCommit(ctx)
		require.NoError(t, err)
		writeFile(t, repo, "b.txt", "b")
		require.NoError(t, service.AddFileToStaging(ctx, "b.txt"))
		require.NoError(t, service.CommitFileAt(ctx, "b.txt", "feat: b", time.Now()))

		// Act
		err = service.ResetMixed(ctx, start)

		// Assert
		require.NoError(t, err)
		head, err := service.HeadCommit(ctx)
		require.NoError(t, err)
		assert.Equal(t, start, head)
		assert.FileExists(t, filepath.Join(repo, "b.txt"))
	})

	t.Run("DeleteHead and RemoveFromIndex undo the first commit", func(t *testing.T) {
		// Arrange
		repo := setupTestRepo(t)
		service := NewGitService(repo)
		writeFile(t, repo, "a.txt", "a")
		require.NoError(t, service.AddFileToStaging(ctx, "a.txt"))
		require.NoError(t, service.CommitFileAt(ctx, "a.txt", "feat: a", time.Now()))

		// Act
		require.NoError(t, service.DeleteHead(ctx))
		require.NoError(t, service.RemoveFromIndex(ctx, []string{"a.txt", "never-added.txt"}))

		// Assert
		head, err := service.HeadCommit(ctx)
		require.NoError(t, err)
		assert.Empty(t, head)
		assert.Empty(t, gitOutput(t, repo, "ls-files"))
		count, err := service.CommitCount(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("CommitCount", func(t *testing.T) {
		repo := setupTestRepo(t)
		service := NewGitService(repo)
		for _, name := range []string{"a.txt", "b.txt"} {
			writeFile(t, repo, name, name)
			require.NoError(t, service.AddFileToStaging(ctx, name))
			require.NoError(t, service.CommitFileAt(ctx, name, "test: "+name, time.Now()))
		}

		count, err := service.CommitCount(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("RepoRoot", func(t *testing.T) {
		repo := setupTestRepo(t)
		require.NoError(t, os.MkdirAll(filepath.Join(repo, "sub"), 0755))

		root, err := NewGitService(filepath.Join(repo, "sub")).RepoRoot(ctx)

		require.NoError(t, err)
		expected, _ := filepath.EvalSymlinks(repo)
		actual, _ := filepath.EvalSymlinks(root)
		assert.Equal(t, expected, actual)
	})

	t.Run("ValidateGitConfig", func(t *testing.T) {
		repo := setupTestRepo(t)

		assert.NoError(t, NewGitService(repo).ValidateGitConfig(ctx))
	})
}

func TestGitDate(t *testing.T) {
	when := time.Date(2026, 1, 24, 10, 0, 0, 0, time.FixedZone("ART", -3*3600))

	assert.Equal(t, "1769259600 +0000", gitDate(when))
}
