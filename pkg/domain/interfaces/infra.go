package interfaces

import "context"

// CommandRunner abstracts external command execution so use cases can be
// tested without git or pixi installed.
type CommandRunner interface {
	// Run executes a command in workDir and returns combined stdout/stderr
	Run(ctx context.Context, workDir string, name string, args ...string) ([]byte, error)
}

// GitClient defines the git operations used by the repository build runner.
type GitClient interface {
	// IsWorktree reports whether path is inside a git work tree
	IsWorktree(ctx context.Context, path string) bool

	// CurrentBranch returns the checked-out branch name, empty for detached HEAD
	CurrentBranch(ctx context.Context, path string) (string, error)

	// Pull fetches and merges the latest changes from the remote
	Pull(ctx context.Context, path string) (string, error)
}

// Notifier delivers completion notifications, e.g. to a Slack webhook.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
