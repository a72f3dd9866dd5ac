package model

import (
	"path"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// RepoRef identifies a GitHub repository
type RepoRef struct {
	Owner string
	Name  string
}

// ParseRepoRef parses an "owner/name" string into a RepoRef
func ParseRepoRef(s string) (RepoRef, error) {
	owner, name, ok := strings.Cut(s, "/")
	if !ok || owner == "" || name == "" {
		return RepoRef{}, goerr.New("invalid repository reference, expected owner/name", goerr.V("ref", s))
	}
	return RepoRef{Owner: owner, Name: name}, nil
}

func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// BinaryKind describes which executables should be extracted from an
// artifact archive.
type BinaryKind int

const (
	// KindPixi extracts the single pixi binary
	KindPixi BinaryKind = iota
	// KindBuildBackends extracts every pixi-build-* executable
	KindBuildBackends
)

// Matches reports whether a zip entry name is an executable this kind wants.
func (k BinaryKind) Matches(entry string, windows bool) bool {
	base := path.Base(entry)

	switch k {
	case KindPixi:
		if windows {
			return base == "pixi.exe"
		}
		return base == "pixi"
	case KindBuildBackends:
		if !strings.HasPrefix(base, "pixi-build-") {
			return false
		}
		// Windows builds carry .exe, other platforms ship extension-free
		// binaries. Anything with another extension is not an executable.
		if windows {
			return strings.HasSuffix(base, ".exe")
		}
		return !strings.Contains(base, ".")
	default:
		return false
	}
}

// ArtifactTarget describes a single repository whose CI artifacts should be
// downloaded.
type ArtifactTarget struct {
	// Repo is the repository the artifact is located in
	Repo RepoRef
	// Workflow is the workflow name used for downloading
	Workflow string
	// NamePrefix combined with the platform forms the artifact name pattern
	NamePrefix string
	// Kind selects the extraction rules for the archive
	Kind BinaryKind
	// PRNumber, if non-zero, downloads from that pull request instead of a branch
	PRNumber int
	// Branch to resolve artifacts from when no PR override is set
	Branch string
}

// ArtifactPattern returns the substring that identifies the artifact for the
// given platform.
func (t ArtifactTarget) ArtifactPattern(platform string) string {
	return t.NamePrefix + "-" + platform
}

// WorkflowRun is the subset of GitHub Actions run information the testsuite
// cares about.
type WorkflowRun struct {
	ID         int64
	HeadSHA    string
	HeadBranch string
	CreatedAt  time.Time
}

// Artifact is a CI-produced build output attached to a workflow run.
type Artifact struct {
	ID   int64
	Name string
}

// PullRequest carries the head information needed to locate PR artifacts.
type PullRequest struct {
	Number    int
	Title     string
	HeadSHA   string
	HeadRef   string
	HeadLabel string
}

// RunQuery filters workflow runs when searching for artifacts.
type RunQuery struct {
	Branch  string
	Event   string
	HeadSHA string
}
