package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/interfaces"
)

type buildUseCase struct {
	git      interfaces.GitClient
	runner   interfaces.CommandRunner
	notifier interfaces.Notifier
}

// NewBuild creates a new BuildUseCase.
func NewBuild(git interfaces.GitClient, runner interfaces.CommandRunner, notifier interfaces.Notifier) interfaces.BuildUseCase {
	return &buildUseCase{
		git:      git,
		runner:   runner,
		notifier: notifier,
	}
}

// BuildRepos processes every repository: verify it is a git worktree, pull
// when on main, and run the release build. All repositories are attempted;
// the returned error aggregates the failures.
func (uc *buildUseCase) BuildRepos(ctx context.Context, repos map[string]string) error {
	logger := ctxlog.From(ctx)

	// Deterministic processing order
	names := make([]string, 0, len(repos))
	for name := range repos {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		path := repos[name]
		logger.Info("Processing repository", "name", name, "path", path)

		if err := uc.buildRepo(ctx, path); err != nil {
			logger.Error("Failed to process repository", "name", name, "error", err)
			errs = append(errs, goerr.Wrap(err, "failed to process repository", goerr.V("name", name)))
		}
	}

	result := errors.Join(errs...)
	uc.notifyResult(ctx, names, result)

	return result
}

func (uc *buildUseCase) buildRepo(ctx context.Context, path string) error {
	logger := ctxlog.From(ctx)

	if !uc.git.IsWorktree(ctx, path) {
		return goerr.New("path is not a valid git worktree", goerr.V("path", path))
	}

	branch, err := uc.git.CurrentBranch(ctx, path)
	if err != nil {
		logger.Warn("Could not determine current branch", "path", path, "error", err)
	} else {
		logger.Info("Current branch", "path", path, "branch", branch)

		if branch == "main" {
			out, err := uc.git.Pull(ctx, path)
			if err != nil {
				return err
			}
			logger.Info("Pulled latest changes", "path", path, "output", out)
		} else {
			logger.Warn("Not on main branch, skipping git pull", "path", path, "branch", branch)
		}
	}

	logger.Info("Building release", "path", path)
	out, err := uc.runner.Run(ctx, path, "pixi", "run", "build-release")
	if err != nil {
		return goerr.Wrap(err, "failed to build release",
			goerr.V("path", path),
			goerr.V("output", strings.TrimSpace(string(out))),
		)
	}

	logger.Info("Successfully built release", "path", path)
	return nil
}

func (uc *buildUseCase) notifyResult(ctx context.Context, names []string, result error) {
	var text string
	if result != nil {
		text = fmt.Sprintf("build-repos failed for %s: %v", strings.Join(names, ", "), result)
	} else {
		text = fmt.Sprintf("build-repos succeeded for %s", strings.Join(names, ", "))
	}

	if err := uc.notifier.Notify(ctx, text); err != nil {
		ctxlog.From(ctx).Warn("Failed to send notification", "error", err)
	}
}
