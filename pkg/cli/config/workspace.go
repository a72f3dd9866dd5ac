package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Default repositories and the workflows producing their artifacts.
const (
	defaultPixiRepo          = "prefix-dev/pixi"
	defaultBuildBackendsRepo = "prefix-dev/pixi-build-backends"

	pixiWorkflow          = "CI"
	buildBackendsWorkflow = "Testsuite"
)

// Workspace holds the cross-repository testsuite environment: local
// checkouts, binary directories, and PR/branch overrides from .env/.env.ci.
type Workspace struct {
	PixiRepo            string
	BuildBackendsRepo   string
	PixiBinDir          string
	BuildBackendsBinDir string

	PixiPRNumber          int
	BuildBackendsPRNumber int

	PixiCIRepoName            string
	PixiCIRepoBranch          string
	BuildBackendsCIRepoName   string
	BuildBackendsCIRepoBranch string
}

// Flags returns CLI flags for the workspace configuration. Every flag is
// env-sourced so .env/.env.ci files feed directly into it.
func (c *Workspace) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "pixi-repo",
			Usage:       "Path to the local pixi checkout",
			Destination: &c.PixiRepo,
			Sources:     cli.EnvVars("PIXI_REPO"),
		},
		&cli.StringFlag{
			Name:        "build-backends-repo",
			Usage:       "Path to the local pixi-build-backends checkout",
			Destination: &c.BuildBackendsRepo,
			Sources:     cli.EnvVars("BUILD_BACKENDS_REPO"),
		},
		&cli.StringFlag{
			Name:        "pixi-bin-dir",
			Usage:       "Directory containing the pixi executable",
			Destination: &c.PixiBinDir,
			Sources:     cli.EnvVars("PIXI_BIN_DIR"),
		},
		&cli.StringFlag{
			Name:        "build-backends-bin-dir",
			Usage:       "Directory containing the build backend executables",
			Destination: &c.BuildBackendsBinDir,
			Sources:     cli.EnvVars("BUILD_BACKENDS_BIN_DIR"),
		},
		&cli.IntFlag{
			Name:        "pixi-pr-number",
			Usage:       "Download pixi artifacts from this pull request",
			Destination: &c.PixiPRNumber,
			Sources:     cli.EnvVars("PIXI_PR_NUMBER"),
		},
		&cli.IntFlag{
			Name:        "build-backends-pr-number",
			Usage:       "Download build backend artifacts from this pull request",
			Destination: &c.BuildBackendsPRNumber,
			Sources:     cli.EnvVars("BUILD_BACKENDS_PR_NUMBER"),
		},
		&cli.StringFlag{
			Name:        "pixi-ci-repo-name",
			Usage:       "Override the repository pixi artifacts resolve from (owner/name)",
			Destination: &c.PixiCIRepoName,
			Sources:     cli.EnvVars("PIXI_CI_REPO_NAME"),
		},
		&cli.StringFlag{
			Name:        "pixi-ci-repo-branch",
			Usage:       "Override the branch pixi artifacts resolve from",
			Destination: &c.PixiCIRepoBranch,
			Sources:     cli.EnvVars("PIXI_CI_REPO_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "build-backends-ci-repo-name",
			Usage:       "Override the repository build backend artifacts resolve from (owner/name)",
			Destination: &c.BuildBackendsCIRepoName,
			Sources:     cli.EnvVars("BUILD_BACKENDS_CI_REPO_NAME"),
		},
		&cli.StringFlag{
			Name:        "build-backends-ci-repo-branch",
			Usage:       "Override the branch build backend artifacts resolve from",
			Destination: &c.BuildBackendsCIRepoBranch,
			Sources:     cli.EnvVars("BUILD_BACKENDS_CI_REPO_BRANCH"),
		},
	}
}

// PixiTarget returns the artifact download target for pixi, honoring
// PR/branch overrides.
func (c *Workspace) PixiTarget() (model.ArtifactTarget, error) {
	return c.target(defaultPixiRepo, c.PixiCIRepoName, pixiWorkflow, "pixi",
		model.KindPixi, c.PixiPRNumber, c.PixiCIRepoBranch)
}

// BuildBackendsTarget returns the artifact download target for
// pixi-build-backends, honoring PR/branch overrides.
func (c *Workspace) BuildBackendsTarget() (model.ArtifactTarget, error) {
	return c.target(defaultBuildBackendsRepo, c.BuildBackendsCIRepoName, buildBackendsWorkflow,
		"pixi-build-backends", model.KindBuildBackends, c.BuildBackendsPRNumber, c.BuildBackendsCIRepoBranch)
}

func (c *Workspace) target(defaultRepo, overrideRepo, workflow, prefix string, kind model.BinaryKind, prNumber int, branch string) (model.ArtifactTarget, error) {
	name := defaultRepo
	if overrideRepo != "" {
		name = overrideRepo
	}

	repo, err := model.ParseRepoRef(name)
	if err != nil {
		return model.ArtifactTarget{}, goerr.Wrap(err, "invalid repository override")
	}

	return model.ArtifactTarget{
		Repo:       repo,
		Workflow:   workflow,
		NamePrefix: prefix,
		Kind:       kind,
		PRNumber:   prNumber,
		Branch:     branch,
	}, nil
}
