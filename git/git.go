package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Client performs the git operations the tool needs. Every operation returns
// the command's combined output verbatim, whether or not git succeeded.
type Client struct {
	runner Runner
}

// New creates a Client backed by the git executable on PATH
func New() *Client {
	return &Client{runner: ExecRunner{}}
}

// NewWithRunner creates a Client with a custom runner
func NewWithRunner(r Runner) *Client {
	return &Client{runner: r}
}

// StageAll stages every pending change in the repository, including new,
// modified and deleted files
func (c *Client) StageAll(repoPath string) (string, error) {
	return c.runner.Run(repoPath, "add", "-A")
}

// Commit records the staged changes with the given message
func (c *Client) Commit(repoPath string, message string) (string, error) {
	return c.runner.Run(repoPath, "commit", "-m", message)
}

// Push sends local commits to the given remote and branch
func (c *Client) Push(repoPath string, remote string, branch string) (string, error) {
	return c.runner.Run(repoPath, "push", remote, branch)
}

// CurrentBranch gets the current branch name of the repository
func (c *Client) CurrentBranch(repoPath string) (string, error) {
	output, err := c.runner.Run(repoPath, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %v", err)
	}

	return strings.TrimSpace(output), nil
}

// ValidateRepository checks if a path is a valid git repository
func ValidateRepository(repoPath string) error {
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %v", err)
	}

	// Check if repository exists
	if _, err := os.Stat(filepath.Join(absPath, ".git")); os.IsNotExist(err) {
		return fmt.Errorf("not a git repository or directory does not exist")
	}

	return nil
}
