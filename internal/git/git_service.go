package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/thomas-vilte/mischief/internal/errors"
)

// GitService runs git in dir. An empty dir means the current working
// directory.
type GitService struct {
	dir string
}

func NewGitService(dir string) *GitService {
	return &GitService{dir: dir}
}

func (s *GitService) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.dir
	return cmd
}

// run executes git and returns trimmed stdout. Stderr is kept so callers can
// attach it to the error context.
func (s *GitService) run(ctx context.Context, cmd *exec.Cmd) (string, string, error) {
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()), err
}

// IsRepository reports whether dir is inside a git work tree.
func (s *GitService) IsRepository(ctx context.Context) bool {
	_, _, err := s.run(ctx, s.command(ctx, "rev-parse", "--git-dir"))
	return err == nil
}

// RepoRoot returns the absolute path of the top of the work tree.
func (s *GitService) RepoRoot(ctx context.Context) (string, error) {
	out, stderr, err := s.run(ctx, s.command(ctx, "rev-parse", "--show-toplevel"))
	if err != nil {
		return "", errors.ErrGetRepoRoot.WithError(err).WithContext("stderr", stderr)
	}
	return out, nil
}

// HeadCommit returns the hash HEAD points to, or "" on an unborn branch.
func (s *GitService) HeadCommit(ctx context.Context) (string, error) {
	if !s.IsRepository(ctx) {
		return "", errors.ErrNotInGitRepo
	}

	out, _, err := s.run(ctx, s.command(ctx, "rev-parse", "--verify", "--quiet", "HEAD"))
	if err != nil {
		// --verify --quiet exits 1 without output when HEAD does not resolve yet.
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 && out == "" {
			return "", nil
		}
		return "", errors.ErrGetHead.WithError(err)
	}
	return out, nil
}

func (s *GitService) AddFileToStaging(ctx context.Context, file string) error {
	_, stderr, err := s.run(ctx, s.command(ctx, "add", "--", file))
	if err != nil {
		return errors.ErrAddFile.WithError(err).
			WithContext("file", file).
			WithContext("stderr", stderr)
	}
	return nil
}

// CommitFileAt commits only file with both author and committer dates set to
// when. The dates are set on the child process, never on this process.
func (s *GitService) CommitFileAt(ctx context.Context, file, message string, when time.Time) error {
	cmd := s.command(ctx, "commit", "--quiet", "-m", message, "--", file)
	stamp := gitDate(when)
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_DATE="+stamp,
		"GIT_COMMITTER_DATE="+stamp,
	)

	_, stderr, err := s.run(ctx, cmd)
	if err != nil {
		return errors.ErrCreateCommit.WithError(err).
			WithContext("file", file).
			WithContext("stderr", stderr)
	}
	return nil
}

// ResetMixed moves HEAD and the index to ref, leaving the work tree alone.
func (s *GitService) ResetMixed(ctx context.Context, ref string) error {
	_, stderr, err := s.run(ctx, s.command(ctx, "reset", "--quiet", "--mixed", ref))
	if err != nil {
		return errors.ErrRollback.WithError(err).
			WithContext("ref", ref).
			WithContext("stderr", stderr)
	}
	return nil
}

// DeleteHead turns the current branch back into an unborn one.
func (s *GitService) DeleteHead(ctx context.Context) error {
	_, stderr, err := s.run(ctx, s.command(ctx, "update-ref", "-d", "HEAD"))
	if err != nil {
		return errors.ErrRollback.WithError(err).WithContext("stderr", stderr)
	}
	return nil
}

// RemoveFromIndex unstages files without touching the work tree. Paths that
// are not in the index are ignored.
func (s *GitService) RemoveFromIndex(ctx context.Context, files []string) error {
	if len(files) == 0 {
		return nil
	}
	args := append([]string{"rm", "--cached", "--quiet", "--ignore-unmatch", "--"}, files...)
	_, stderr, err := s.run(ctx, s.command(ctx, args...))
	if err != nil {
		return errors.ErrRollback.WithError(err).WithContext("stderr", stderr)
	}
	return nil
}

// CommitCount counts commits reachable from HEAD; 0 on an unborn branch.
func (s *GitService) CommitCount(ctx context.Context) (int, error) {
	head, err := s.HeadCommit(ctx)
	if err != nil || head == "" {
		return 0, err
	}

	out, _, err := s.run(ctx, s.command(ctx, "rev-list", "--count", "HEAD"))
	if err != nil {
		return 0, errors.ErrGetHead.WithError(err)
	}

	var count int
	if _, err := fmt.Sscanf(out, "%d", &count); err != nil {
		return 0, errors.ErrGetHead.WithError(err)
	}
	return count, nil
}

// ValidateGitConfig checks that commits can be authored.
func (s *GitService) ValidateGitConfig(ctx context.Context) error {
	name, _, err := s.run(ctx, s.command(ctx, "config", "user.name"))
	if err != nil || name == "" {
		return errors.ErrGitUserNotConfigured
	}

	email, _, err := s.run(ctx, s.command(ctx, "config", "user.email"))
	if err != nil || email == "" {
		return errors.ErrGitEmailNotConfigured
	}

	return nil
}

// gitDate renders when in git's internal "<unix seconds> <offset>" form.
func gitDate(when time.Time) string {
	return fmt.Sprintf("%d +0000", when.Unix())
}
