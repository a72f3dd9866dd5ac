// Package exec runs external commands (git, pixi, make) for the use cases.
package exec

import (
	"context"
	"os/exec"

	"github.com/prefix-dev/pixi-testsuite/pkg/domain/interfaces"
)

// Runner implements interfaces.CommandRunner using os/exec.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes a command and returns combined stdout/stderr output. The
// working directory is set to workDir if non-empty.
func (r *Runner) Run(ctx context.Context, workDir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if workDir != "" {
		cmd.Dir = workDir
	}
	return cmd.CombinedOutput()
}

var _ interfaces.CommandRunner = (*Runner)(nil)
