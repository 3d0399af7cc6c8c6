package git

import (
	"fmt"
	"strings"
)

// Status holds the working tree state of a repository
type Status struct {
	Branch          string
	HasChanges      bool
	UntrackedFiles  int
	StagedChanges   int
	UnstagedChanges int
	Ahead           int
	Behind          int
}

// Status inspects the working tree and its position relative to the
// upstream tracking branch
func (c *Client) Status(repoPath string) (Status, error) {
	var status Status

	branch, err := c.CurrentBranch(repoPath)
	if err != nil {
		return status, err
	}
	status.Branch = branch

	output, err := c.runner.Run(repoPath, "status", "--porcelain")
	if err != nil {
		return status, fmt.Errorf("failed to get git status: %v", err)
	}

	// Parse status output
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if len(line) < 2 {
			continue
		}
		status.HasChanges = true
		indexStatus := line[0]
		workTreeStatus := line[1]

		if indexStatus == '?' {
			status.UntrackedFiles++
		} else if indexStatus != ' ' {
			status.StagedChanges++
		}

		if workTreeStatus != ' ' && workTreeStatus != '?' {
			status.UnstagedChanges++
		}
	}

	// Get ahead/behind count
	revOutput, err := c.runner.Run(repoPath, "rev-list", "--left-right", "--count", "@{upstream}...HEAD")
	if err == nil {
		parts := strings.Fields(strings.TrimSpace(revOutput))
		if len(parts) == 2 {
			fmt.Sscanf(parts[0], "%d", &status.Behind)
			fmt.Sscanf(parts[1], "%d", &status.Ahead)
		}
	}
	// If error, it might not have an upstream - that's ok, leave ahead/behind as 0

	return status, nil
}
