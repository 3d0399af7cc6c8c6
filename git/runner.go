package git

import (
	"os/exec"
	"time"

	"gitmaj/log"
)

// Runner executes a git command and returns whatever it wrote, stdout and
// stderr interleaved, so callers can echo it exactly as git produced it.
type Runner interface {
	Run(repoPath string, args ...string) (string, error)
}

// ExecRunner runs the real git executable found on PATH.
type ExecRunner struct{}

// Run runs a git command in the specified repository path
func (ExecRunner) Run(repoPath string, args ...string) (string, error) {
	// The -C flag makes git operate on repoPath without changing directories
	cmdArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", cmdArgs...)

	start := time.Now()
	output, err := cmd.CombinedOutput()

	log.Debug().
		Str("repo", repoPath).
		Strs("args", args).
		Dur("took", time.Since(start)).
		Err(err).
		Msg("git command finished")

	return string(output), err
}
