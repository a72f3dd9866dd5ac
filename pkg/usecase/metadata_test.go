package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/prefix-dev/pixi-testsuite/pkg/domain/model"
)

func TestMetadataStore_MergesRepositories(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	var store metadataStore
	pixiRepo := model.RepoRef{Owner: "prefix-dev", Name: "pixi"}
	backendsRepo := model.RepoRef{Owner: "prefix-dev", Name: "pixi-build-backends"}

	gt.NoError(t, store.Write(ctx, dir, pixiRepo, model.DownloadRecord{
		Artifact:     "pixi-linux-x86_64",
		DownloadedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		RunID:        42,
		Workflow:     "CI",
		Source:       model.SourceBranch,
		Branch:       "main",
	}))
	gt.NoError(t, store.Write(ctx, dir, backendsRepo, model.DownloadRecord{
		Artifact: "pixi-build-backends-linux-x86_64",
		RunID:    7,
		Workflow: "Testsuite",
		Source:   model.SourcePR,
		PRNumber: 123,
	}))

	data, err := os.ReadFile(filepath.Join(dir, metadataFileName))
	gt.NoError(t, err)

	var records map[string]model.DownloadRecord
	gt.NoError(t, json.Unmarshal(data, &records))
	gt.Number(t, len(records)).Equal(2)
	gt.Value(t, records["prefix-dev/pixi"].RunID).Equal(int64(42))
	gt.Value(t, records["prefix-dev/pixi"].Branch).Equal("main")
	gt.Value(t, records["prefix-dev/pixi-build-backends"].PRNumber).Equal(123)
}

func TestMetadataStore_OverwritesInvalidFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	gt.NoError(t, os.WriteFile(filepath.Join(dir, metadataFileName), []byte("not json"), 0o644))

	var store metadataStore
	repo := model.RepoRef{Owner: "prefix-dev", Name: "pixi"}
	gt.NoError(t, store.Write(ctx, dir, repo, model.DownloadRecord{Artifact: "pixi-linux-x86_64"}))

	data, err := os.ReadFile(filepath.Join(dir, metadataFileName))
	gt.NoError(t, err)

	var records map[string]model.DownloadRecord
	gt.NoError(t, json.Unmarshal(data, &records))
	gt.Value(t, records["prefix-dev/pixi"].Artifact).Equal("pixi-linux-x86_64")
}
