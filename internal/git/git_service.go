package git

import (
	"context"
	"os/exec"
	"strings"

	"github.com/thomas-vilte/commitsmith/internal/errors"
	"github.com/thomas-vilte/commitsmith/internal/models"
)

// GitService shells out to the git binary. Everything takes a context so
// long-running git invocations die with the command.
type GitService struct{}

func NewGitService() *GitService {
	return &GitService{}
}

// HasStagedChanges checks if there are changes in the staging area
func (s *GitService) HasStagedChanges(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--quiet")
	err := cmd.Run()

	// Exit status 1 means the staged tree differs from HEAD
	return err != nil && cmd.ProcessState != nil && cmd.ProcessState.ExitCode() == 1
}

// GetChangedFiles parses `git status --porcelain` into change entries.
func (s *GitService) GetChangedFiles(ctx context.Context) ([]models.GitChange, error) {
	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain")
	output, err := cmd.Output()
	if err != nil {
		return nil, errors.ErrGetRepoRoot.WithError(err)
	}

	changes := make([]models.GitChange, 0)
	for _, line := range strings.Split(string(output), "\n") {
		if len(line) <= 3 {
			continue
		}
		path := strings.TrimSpace(line[3:])
		if path == "" {
			continue
		}
		changes = append(changes, models.GitChange{
			Path:   path,
			Status: strings.TrimSpace(line[:2]),
		})
	}
	return changes, nil
}

// GetStagedDiff returns the diff of the staging area against HEAD.
func (s *GitService) GetStagedDiff(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--cached")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.ErrGetRepoRoot.WithError(err)
	}
	return string(output), nil
}

// GetCurrentBranch returns the checked-out branch name.
func (s *GitService) GetCurrentBranch(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.ErrGetBranch.WithError(err)
	}
	return strings.TrimSpace(string(output)), nil
}

// GetLastCommitMessage returns the full message of HEAD.
func (s *GitService) GetLastCommitMessage(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "log", "-1", "--pretty=%B")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.ErrGetLastCommit.WithError(err)
	}
	return strings.TrimRight(string(output), "\n"), nil
}

// CreateCommit commits the staged changes with the given message and
// returns the new commit hash.
func (s *GitService) CreateCommit(ctx context.Context, message string) (*models.CommitResult, error) {
	if !s.HasStagedChanges(ctx) {
		return nil, errors.ErrNoStagedChanges
	}

	var stderr strings.Builder
	cmd := exec.CommandContext(ctx, "git", "commit", "-m", message)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.ErrCreateCommit.
			WithError(err).
			WithContext("stderr", strings.TrimSpace(stderr.String()))
	}

	hashCmd := exec.CommandContext(ctx, "git", "rev-parse", "HEAD")
	output, err := hashCmd.Output()
	if err != nil {
		// The commit exists even if we can't read its hash back.
		return &models.CommitResult{Message: message}, nil
	}

	return &models.CommitResult{
		Hash:    strings.TrimSpace(string(output)),
		Message: message,
	}, nil
}

// GetRepoRoot returns the absolute path of the repository root.
func (s *GitService) GetRepoRoot(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.ErrGetRepoRoot.WithError(err)
	}
	return strings.TrimSpace(string(output)), nil
}
