package interfaces

import (
	"context"

	"github.com/prefix-dev/pixi-testsuite/pkg/domain/model"
)

// DownloadUseCase fetches CI artifacts for one or more targets.
type DownloadUseCase interface {
	// Download fetches and extracts artifacts for every target. All targets
	// are attempted; the returned error aggregates the failures.
	Download(ctx context.Context, targets []model.ArtifactTarget, runID int64) error
}

// BuildUseCase builds local checkouts of the tested repositories.
type BuildUseCase interface {
	// BuildRepos processes every repository path: verify it is a git
	// worktree, pull when on main, and run the release build.
	BuildRepos(ctx context.Context, repos map[string]string) error
}

// LockfileUseCase refreshes pixi.lock files under the test data tree.
type LockfileUseCase interface {
	// UpdateLockfiles runs pixi lock in every directory containing a
	// pixi.lock below baseDir, stopping at the first failure.
	UpdateLockfiles(ctx context.Context, baseDir string) error
}

// OverrideUseCase enforces the CI merge gate for override files.
type OverrideUseCase interface {
	// CheckOverride returns an error if a .env.ci override file is present
	// in the project root.
	CheckOverride(ctx context.Context, projectRoot string) error
}
