package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prefix-dev/pixi-testsuite/pkg/domain/model"
)

// metadataFileName records which branch or PR each artifact originated from
const metadataFileName = "download-metadata.json"

// metadataStore merges per-repository download records into the metadata
// file in the output directory. Concurrent target downloads share a store.
type metadataStore struct {
	mu sync.Mutex
}

// Write upserts the record for repo, preserving entries of other
// repositories. An unreadable existing file is overwritten with a warning.
func (s *metadataStore) Write(ctx context.Context, outputDir string, repo model.RepoRef, record model.DownloadRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	metadataPath := filepath.Join(outputDir, metadataFileName)

	existing := map[string]model.DownloadRecord{}
	if data, err := os.ReadFile(metadataPath); err == nil {
		if err := json.Unmarshal(data, &existing); err != nil {
			ctxlog.From(ctx).Warn("Existing metadata file is invalid JSON, overwriting",
				"path", metadataPath,
				"error", err,
			)
			existing = map[string]model.DownloadRecord{}
		}
	}

	existing[repo.String()] = record

	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal download metadata")
	}

	if err := os.WriteFile(metadataPath, data, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write download metadata", goerr.V("path", metadataPath))
	}

	return nil
}
