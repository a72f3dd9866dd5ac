// Package git wraps the git CLI for repository management.
package git

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/interfaces"
)

// Client implements interfaces.GitClient on top of a CommandRunner.
type Client struct {
	runner interfaces.CommandRunner
}

// NewClient creates a git client using the given command runner.
func NewClient(runner interfaces.CommandRunner) *Client {
	return &Client{runner: runner}
}

// IsWorktree reports whether path is inside a git work tree
func (c *Client) IsWorktree(ctx context.Context, path string) bool {
	out, err := c.runner.Run(ctx, path, "git", "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.EqualFold(strings.TrimSpace(string(out)), "true")
}

// CurrentBranch returns the checked-out branch name, empty for detached HEAD
func (c *Client) CurrentBranch(ctx context.Context, path string) (string, error) {
	out, err := c.runner.Run(ctx, path, "git", "branch", "--show-current")
	if err != nil {
		return "", goerr.Wrap(err, "failed to determine current branch",
			goerr.V("path", path),
			goerr.V("output", string(out)),
		)
	}
	return strings.TrimSpace(string(out)), nil
}

// Pull fetches and merges the latest changes from the remote
func (c *Client) Pull(ctx context.Context, path string) (string, error) {
	out, err := c.runner.Run(ctx, path, "git", "pull")
	if err != nil {
		return "", goerr.Wrap(err, "failed to pull changes",
			goerr.V("path", path),
			goerr.V("output", string(out)),
		)
	}
	return strings.TrimSpace(string(out)), nil
}

var _ interfaces.GitClient = (*Client)(nil)
