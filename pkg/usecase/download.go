package usecase

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/interfaces"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/model"
	"github.com/prefix-dev/pixi-testsuite/pkg/utils/async"
	"github.com/schollz/progressbar/v3"
)

// runScanLimit is how many recent workflow runs are checked until a run with
// a matching artifact is found.
const runScanLimit = 3

type downloadUseCase struct {
	actions   interfaces.ActionsClient
	runner    interfaces.CommandRunner
	outputDir string
	clock     func() time.Time
	metadata  metadataStore
}

// NewDownload creates a new DownloadUseCase writing into outputDir. The
// runner is used to verify downloaded binaries.
func NewDownload(actions interfaces.ActionsClient, runner interfaces.CommandRunner, outputDir string) interfaces.DownloadUseCase {
	return &downloadUseCase{
		actions:   actions,
		runner:    runner,
		outputDir: outputDir,
		clock:     time.Now,
	}
}

// Download fetches and extracts artifacts for every target concurrently.
// All targets are attempted; the returned error aggregates the failures.
func (uc *downloadUseCase) Download(ctx context.Context, targets []model.ArtifactTarget, runID int64) error {
	if runID != 0 && len(targets) != 1 {
		return goerr.New("a run ID can only be used with a single repository")
	}

	tasks := make([]async.Task, 0, len(targets))
	for _, target := range targets {
		tasks = append(tasks, async.Task{
			Name: target.Repo.String(),
			Run: func(ctx context.Context) error {
				return uc.downloadTarget(ctx, target, runID)
			},
		})
	}

	var errs []error
	for i, err := range async.Parallel(ctx, tasks) {
		if err != nil {
			errs = append(errs, goerr.Wrap(err, "download failed", goerr.V("repo", targets[i].Repo.String())))
		}
	}

	return errors.Join(errs...)
}

func (uc *downloadUseCase) downloadTarget(ctx context.Context, target model.ArtifactTarget, runID int64) error {
	logger := ctxlog.From(ctx)

	platform, err := model.CurrentPlatform()
	if err != nil {
		return err
	}
	pattern := target.ArtifactPattern(platform)

	run, artifact, pr, err := uc.resolveArtifact(ctx, target, pattern, runID)
	if err != nil {
		return err
	}

	logger.Info("Selected workflow run",
		"run_id", run.ID,
		"created_at", run.CreatedAt,
		"artifact", artifact.Name,
	)

	if err := os.MkdirAll(uc.outputDir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", uc.outputDir))
	}

	archivePath, err := uc.fetchArchive(ctx, target, artifact)
	if err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(archivePath); err != nil {
			logger.Warn("Failed to remove temporary archive", "path", archivePath, "error", err)
		}
	}()

	extracted, err := extractExecutables(ctx, archivePath, target.Kind, uc.outputDir)
	if err != nil {
		return err
	}

	record := model.DownloadRecord{
		Artifact:     artifact.Name,
		DownloadedAt: uc.clock().UTC(),
		RunID:        run.ID,
		HeadSHA:      run.HeadSHA,
		Workflow:     target.Workflow,
	}
	if pr != nil {
		record.Source = model.SourcePR
		record.PRNumber = pr.Number
		record.PRTitle = pr.Title
		record.HeadRef = pr.HeadRef
		record.HeadLabel = pr.HeadLabel
	} else {
		record.Source = model.SourceBranch
		record.Branch = run.HeadBranch
		if record.Branch == "" {
			record.Branch = target.Branch
		}
		if record.Branch == "" {
			record.Branch = "main"
		}
	}

	if err := uc.metadata.Write(ctx, uc.outputDir, target.Repo, record); err != nil {
		return err
	}

	if target.Kind == model.KindPixi {
		uc.verifyBinary(ctx, extracted[0])
	}

	return nil
}

// resolveArtifact locates the workflow run and artifact to download. The
// pull request is non-nil when a PR override selected the run.
func (uc *downloadUseCase) resolveArtifact(ctx context.Context, target model.ArtifactTarget, pattern string, runID int64) (model.WorkflowRun, model.Artifact, *model.PullRequest, error) {
	logger := ctxlog.From(ctx)

	var none model.WorkflowRun

	if runID != 0 {
		logger.Info("Using specified run ID", "run_id", runID)

		run, err := uc.actions.GetRun(ctx, target.Repo, runID)
		if err != nil {
			return none, model.Artifact{}, nil, err
		}

		artifact, err := uc.findArtifact(ctx, target.Repo, run.ID, pattern)
		if err != nil {
			return none, model.Artifact{}, nil, err
		}
		return run, artifact, nil, nil
	}

	if target.PRNumber != 0 {
		logger.Info("Finding workflow run for pull request", "pr", target.PRNumber)

		pr, err := uc.actions.PullRequest(ctx, target.Repo, target.PRNumber)
		if err != nil {
			return none, model.Artifact{}, nil, err
		}

		logger.Info("Resolved pull request",
			"pr", pr.Number,
			"title", pr.Title,
			"head_sha", pr.HeadSHA,
		)

		run, artifact, err := uc.scanRuns(ctx, target, model.RunQuery{HeadSHA: pr.HeadSHA}, pattern)
		if err != nil {
			return none, model.Artifact{}, nil, err
		}
		return run, artifact, &pr, nil
	}

	branch := target.Branch
	if branch == "" {
		branch = "main"
	}
	logger.Info("Finding latest workflow run", "branch", branch)

	run, artifact, err := uc.scanRuns(ctx, target, model.RunQuery{Branch: branch, Event: "push"}, pattern)
	if err != nil {
		return none, model.Artifact{}, nil, err
	}
	return run, artifact, nil, nil
}

// scanRuns checks the most recent matching runs until one carries an
// artifact matching the pattern.
func (uc *downloadUseCase) scanRuns(ctx context.Context, target model.ArtifactTarget, query model.RunQuery, pattern string) (model.WorkflowRun, model.Artifact, error) {
	var none model.WorkflowRun

	workflowID, err := uc.actions.ResolveWorkflow(ctx, target.Repo, target.Workflow)
	if err != nil {
		return none, model.Artifact{}, err
	}

	runs, err := uc.actions.ListRuns(ctx, target.Repo, workflowID, query, runScanLimit)
	if err != nil {
		return none, model.Artifact{}, err
	}
	if len(runs) == 0 {
		return none, model.Artifact{}, goerr.New("could not find a suitable workflow run",
			goerr.V("repo", target.Repo.String()),
			goerr.V("workflow", target.Workflow),
		)
	}

	var available []string
	for _, run := range runs {
		artifacts, err := uc.actions.ListArtifacts(ctx, target.Repo, run.ID)
		if err != nil {
			return none, model.Artifact{}, err
		}

		for _, artifact := range artifacts {
			if strings.Contains(artifact.Name, pattern) {
				return run, artifact, nil
			}
			available = append(available, artifact.Name)
		}
	}

	return none, model.Artifact{}, goerr.New("could not find a matching artifact",
		goerr.V("pattern", pattern),
		goerr.V("available", available),
	)
}

// findArtifact returns the artifact of a specific run matching the pattern.
func (uc *downloadUseCase) findArtifact(ctx context.Context, repo model.RepoRef, runID int64, pattern string) (model.Artifact, error) {
	artifacts, err := uc.actions.ListArtifacts(ctx, repo, runID)
	if err != nil {
		return model.Artifact{}, err
	}

	var available []string
	for _, artifact := range artifacts {
		if strings.Contains(artifact.Name, pattern) {
			return artifact, nil
		}
		available = append(available, artifact.Name)
	}

	return model.Artifact{}, goerr.New("could not find a matching artifact",
		goerr.V("pattern", pattern),
		goerr.V("run_id", runID),
		goerr.V("available", available),
	)
}

// fetchArchive streams the artifact archive into a temporary zip file.
func (uc *downloadUseCase) fetchArchive(ctx context.Context, target model.ArtifactTarget, artifact model.Artifact) (string, error) {
	logger := ctxlog.From(ctx)
	logger.Info("Downloading artifact", "name", artifact.Name)

	body, size, err := uc.actions.DownloadArtifact(ctx, target.Repo, artifact.ID)
	if err != nil {
		return "", err
	}
	defer body.Close()

	tmpFile, err := os.CreateTemp("", "pixi-testsuite-*.zip")
	if err != nil {
		return "", goerr.Wrap(err, "failed to create temporary file")
	}
	defer tmpFile.Close()

	bar := newProgressBar(size, "Downloading "+artifact.Name)
	if _, err := io.Copy(io.MultiWriter(tmpFile, bar), body); err != nil {
		os.Remove(tmpFile.Name())
		return "", goerr.Wrap(err, "failed to download artifact archive", goerr.V("artifact", artifact.Name))
	}

	return tmpFile.Name(), nil
}

// verifyBinary runs the downloaded pixi binary once. Failures are logged,
// not fatal.
func (uc *downloadUseCase) verifyBinary(ctx context.Context, binaryPath string) {
	logger := ctxlog.From(ctx)

	out, err := uc.runner.Run(ctx, "", binaryPath, "--version")
	if err != nil {
		logger.Warn("Could not verify downloaded binary",
			"path", binaryPath,
			"error", err,
			"output", strings.TrimSpace(string(out)),
		)
		return
	}

	logger.Info("Verified downloaded binary",
		"path", binaryPath,
		"version", strings.TrimSpace(string(out)),
	)
}

// newProgressBar renders download progress. CI logs stay clean because the
// bar is invisible when CI=true.
func newProgressBar(length int64, desc string) *progressbar.ProgressBar {
	if os.Getenv("CI") == "true" {
		return progressbar.NewOptions64(length, progressbar.OptionSetVisibility(false))
	}
	return progressbar.DefaultBytes(length, desc)
}
