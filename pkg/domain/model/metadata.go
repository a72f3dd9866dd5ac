package model

import "time"

// DownloadRecord documents which branch or PR an artifact originated from.
// It is persisted per repository in download-metadata.json next to the
// downloaded binaries.
type DownloadRecord struct {
	Artifact     string    `json:"artifact"`
	DownloadedAt time.Time `json:"downloaded_at"`
	RunID        int64     `json:"run_id"`
	HeadSHA      string    `json:"head_sha"`
	Workflow     string    `json:"workflow"`

	// Source is "pr" or "branch"
	Source string `json:"source"`

	// Branch source fields
	Branch string `json:"branch,omitempty"`

	// PR source fields
	PRNumber  int    `json:"pr_number,omitempty"`
	PRTitle   string `json:"pr_title,omitempty"`
	HeadRef   string `json:"head_ref,omitempty"`
	HeadLabel string `json:"head_label,omitempty"`
}

// SourcePR and SourceBranch are the valid DownloadRecord.Source values.
const (
	SourcePR     = "pr"
	SourceBranch = "branch"
)
