package interfaces

import (
	"context"
	"io"

	"github.com/prefix-dev/pixi-testsuite/pkg/domain/model"
)

// ActionsClient defines operations against the GitHub Actions API needed to
// locate and download CI artifacts.
type ActionsClient interface {
	// ResolveWorkflow returns the ID of the workflow with the given name
	ResolveWorkflow(ctx context.Context, repo model.RepoRef, name string) (int64, error)

	// ListRuns returns up to limit workflow runs matching the query, newest first
	ListRuns(ctx context.Context, repo model.RepoRef, workflowID int64, query model.RunQuery, limit int) ([]model.WorkflowRun, error)

	// GetRun returns a single workflow run by ID
	GetRun(ctx context.Context, repo model.RepoRef, runID int64) (model.WorkflowRun, error)

	// ListArtifacts returns the artifacts attached to a workflow run
	ListArtifacts(ctx context.Context, repo model.RepoRef, runID int64) ([]model.Artifact, error)

	// DownloadArtifact opens the artifact archive for streaming. The returned
	// size is -1 when the server does not report a content length. The caller
	// must close the reader.
	DownloadArtifact(ctx context.Context, repo model.RepoRef, artifactID int64) (io.ReadCloser, int64, error)

	// PullRequest returns head information for a pull request
	PullRequest(ctx context.Context, repo model.RepoRef, number int) (model.PullRequest, error)
}
