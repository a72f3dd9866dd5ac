package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/prefix-dev/pixi-testsuite/pkg/usecase"
)

// MockGitClient is a mock implementation of interfaces.GitClient
type MockGitClient struct {
	isWorktreeFunc    func(ctx context.Context, path string) bool
	currentBranchFunc func(ctx context.Context, path string) (string, error)
	pullFunc          func(ctx context.Context, path string) (string, error)

	pulled []string
}

func (m *MockGitClient) IsWorktree(ctx context.Context, path string) bool {
	if m.isWorktreeFunc != nil {
		return m.isWorktreeFunc(ctx, path)
	}
	return true
}

func (m *MockGitClient) CurrentBranch(ctx context.Context, path string) (string, error) {
	if m.currentBranchFunc != nil {
		return m.currentBranchFunc(ctx, path)
	}
	return "main", nil
}

func (m *MockGitClient) Pull(ctx context.Context, path string) (string, error) {
	m.pulled = append(m.pulled, path)
	if m.pullFunc != nil {
		return m.pullFunc(ctx, path)
	}
	return "Already up to date.", nil
}

// MockNotifier is a mock implementation of interfaces.Notifier
type MockNotifier struct {
	messages []string
}

func (m *MockNotifier) Notify(ctx context.Context, text string) error {
	m.messages = append(m.messages, text)
	return nil
}

func TestBuildRepos_PullsOnMain(t *testing.T) {
	git := &MockGitClient{}
	runner := &MockRunner{}
	notifier := &MockNotifier{}

	uc := usecase.NewBuild(git, runner, notifier)
	repos := map[string]string{"PIXI_REPO": "/work/pixi"}
	gt.NoError(t, uc.BuildRepos(context.Background(), repos))

	gt.Array(t, git.pulled).Equal([]string{"/work/pixi"})
	gt.Number(t, len(runner.calls)).Equal(1)
	gt.Array(t, runner.calls[0]).Equal([]string{"pixi", "run", "build-release"})
	gt.Number(t, len(notifier.messages)).Equal(1)
	gt.String(t, notifier.messages[0]).Contains("succeeded")
}

func TestBuildRepos_SkipsPullOffMain(t *testing.T) {
	git := &MockGitClient{
		currentBranchFunc: func(ctx context.Context, path string) (string, error) {
			return "feature/faster-solver", nil
		},
	}
	runner := &MockRunner{}

	uc := usecase.NewBuild(git, runner, &MockNotifier{})
	repos := map[string]string{"PIXI_REPO": "/work/pixi"}
	gt.NoError(t, uc.BuildRepos(context.Background(), repos))

	gt.Number(t, len(git.pulled)).Equal(0)
	gt.Number(t, len(runner.calls)).Equal(1)
}

func TestBuildRepos_NotAWorktree(t *testing.T) {
	git := &MockGitClient{
		isWorktreeFunc: func(ctx context.Context, path string) bool { return false },
	}
	runner := &MockRunner{}
	notifier := &MockNotifier{}

	uc := usecase.NewBuild(git, runner, notifier)
	repos := map[string]string{"PIXI_REPO": "/work/pixi"}
	gt.Error(t, uc.BuildRepos(context.Background(), repos))

	gt.Number(t, len(runner.calls)).Equal(0)
	gt.Number(t, len(notifier.messages)).Equal(1)
	gt.String(t, notifier.messages[0]).Contains("failed")
}

func TestBuildRepos_AllReposAttempted(t *testing.T) {
	git := &MockGitClient{
		isWorktreeFunc: func(ctx context.Context, path string) bool {
			return path != "/work/broken"
		},
	}
	runner := &MockRunner{}

	uc := usecase.NewBuild(git, runner, &MockNotifier{})
	repos := map[string]string{
		"BUILD_BACKENDS_REPO": "/work/broken",
		"PIXI_REPO":           "/work/pixi",
	}
	err := uc.BuildRepos(context.Background(), repos)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("BUILD_BACKENDS_REPO")

	// The healthy repository is still built
	gt.Number(t, len(runner.calls)).Equal(1)
}

func TestBuildRepos_PullFailureStopsBuild(t *testing.T) {
	git := &MockGitClient{
		pullFunc: func(ctx context.Context, path string) (string, error) {
			return "", goerr.New("remote unreachable")
		},
	}
	runner := &MockRunner{}

	uc := usecase.NewBuild(git, runner, &MockNotifier{})
	repos := map[string]string{"PIXI_REPO": "/work/pixi"}
	gt.Error(t, uc.BuildRepos(context.Background(), repos))
	gt.Number(t, len(runner.calls)).Equal(0)
}
