package github

import (
	"context"
	"io"
	"net/http"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/interfaces"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/model"
)

type client struct {
	githubClient *github.Client
}

// NewClient creates a GitHub Actions client authenticated with a personal
// access token.
func NewClient(token string) interfaces.ActionsClient {
	return &client{
		githubClient: github.NewClient(nil).WithAuthToken(token),
	}
}

// NewClientWith wraps an existing go-github client. Used by tests to point
// the client at a mock server.
func NewClientWith(gh *github.Client) interfaces.ActionsClient {
	return &client{githubClient: gh}
}

// ResolveWorkflow returns the ID of the workflow with the given name
func (c *client) ResolveWorkflow(ctx context.Context, repo model.RepoRef, name string) (int64, error) {
	opts := &github.ListOptions{PerPage: 100}
	for {
		workflows, resp, err := c.githubClient.Actions.ListWorkflows(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return 0, goerr.Wrap(err, "failed to list workflows", goerr.V("repo", repo.String()))
		}

		for _, wf := range workflows.Workflows {
			if wf.GetName() == name {
				return wf.GetID(), nil
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return 0, goerr.New("could not find workflow",
		goerr.V("repo", repo.String()),
		goerr.V("workflow", name),
	)
}

// ListRuns returns up to limit workflow runs matching the query, newest first
func (c *client) ListRuns(ctx context.Context, repo model.RepoRef, workflowID int64, query model.RunQuery, limit int) ([]model.WorkflowRun, error) {
	opts := &github.ListWorkflowRunsOptions{
		Branch:      query.Branch,
		Event:       query.Event,
		HeadSHA:     query.HeadSHA,
		ListOptions: github.ListOptions{PerPage: limit},
	}

	runs, _, err := c.githubClient.Actions.ListWorkflowRunsByID(ctx, repo.Owner, repo.Name, workflowID, opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list workflow runs",
			goerr.V("repo", repo.String()),
			goerr.V("workflow_id", workflowID),
		)
	}

	result := make([]model.WorkflowRun, 0, limit)
	for _, run := range runs.WorkflowRuns {
		if len(result) >= limit {
			break
		}
		result = append(result, convertRun(run))
	}

	return result, nil
}

// GetRun returns a single workflow run by ID
func (c *client) GetRun(ctx context.Context, repo model.RepoRef, runID int64) (model.WorkflowRun, error) {
	run, _, err := c.githubClient.Actions.GetWorkflowRunByID(ctx, repo.Owner, repo.Name, runID)
	if err != nil {
		return model.WorkflowRun{}, goerr.Wrap(err, "failed to get workflow run",
			goerr.V("repo", repo.String()),
			goerr.V("run_id", runID),
		)
	}

	return convertRun(run), nil
}

// ListArtifacts returns the artifacts attached to a workflow run
func (c *client) ListArtifacts(ctx context.Context, repo model.RepoRef, runID int64) ([]model.Artifact, error) {
	var result []model.Artifact

	opts := &github.ListOptions{PerPage: 100}
	for {
		artifacts, resp, err := c.githubClient.Actions.ListWorkflowRunArtifacts(ctx, repo.Owner, repo.Name, runID, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list artifacts",
				goerr.V("repo", repo.String()),
				goerr.V("run_id", runID),
			)
		}

		for _, a := range artifacts.Artifacts {
			result = append(result, model.Artifact{
				ID:   a.GetID(),
				Name: a.GetName(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return result, nil
}

// DownloadArtifact opens the artifact archive for streaming
func (c *client) DownloadArtifact(ctx context.Context, repo model.RepoRef, artifactID int64) (io.ReadCloser, int64, error) {
	// Resolve the signed archive URL, following API-level redirects
	url, _, err := c.githubClient.Actions.DownloadArtifact(ctx, repo.Owner, repo.Name, artifactID, 3)
	if err != nil {
		return nil, 0, goerr.Wrap(err, "failed to get artifact download URL",
			goerr.V("repo", repo.String()),
			goerr.V("artifact_id", artifactID),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url.String(), nil)
	if err != nil {
		return nil, 0, goerr.Wrap(err, "failed to create download request", goerr.V("url", url.String()))
	}

	// The signed URL carries its own credentials; fetch it with the default
	// transport so the API token does not leak to the storage host.
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, 0, goerr.Wrap(err, "failed to download artifact archive", goerr.V("url", url.String()))
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, goerr.New("unexpected status code downloading artifact",
			goerr.V("status", resp.StatusCode),
			goerr.V("url", url.String()),
		)
	}

	return resp.Body, resp.ContentLength, nil
}

// PullRequest returns head information for a pull request
func (c *client) PullRequest(ctx context.Context, repo model.RepoRef, number int) (model.PullRequest, error) {
	pr, _, err := c.githubClient.PullRequests.Get(ctx, repo.Owner, repo.Name, number)
	if err != nil {
		return model.PullRequest{}, goerr.Wrap(err, "failed to get pull request",
			goerr.V("repo", repo.String()),
			goerr.V("number", number),
		)
	}

	return model.PullRequest{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		HeadSHA:   pr.GetHead().GetSHA(),
		HeadRef:   pr.GetHead().GetRef(),
		HeadLabel: pr.GetHead().GetLabel(),
	}, nil
}

func convertRun(run *github.WorkflowRun) model.WorkflowRun {
	return model.WorkflowRun{
		ID:         run.GetID(),
		HeadSHA:    run.GetHeadSHA(),
		HeadBranch: run.GetHeadBranch(),
		CreatedAt:  run.GetCreatedAt().Time,
	}
}
