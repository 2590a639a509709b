package processor

import (
	"encoding/json"
	"os"

	"github.com/gabriel-briffe/openaip-airspace/internal/openair"
)

// BlockFailure records one dropped block and why.
type BlockFailure struct {
	Block  string `json:"block"`
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// FileReport collects per-file diagnostics: repairs applied, blocks
// dropped, warnings raised. Consumed by the orchestration to decide
// whether to proceed or abort the run.
type FileReport struct {
	File          string           `json:"file"`
	Blocks        int              `json:"blocks"`
	Features      int              `json:"features"`
	Repairs       []openair.Repair `json:"repairs,omitempty"`
	DroppedBlocks []BlockFailure   `json:"dropped_blocks,omitempty"`
	Warnings      []string         `json:"warnings,omitempty"`
	Error         string           `json:"error,omitempty"`
}

// Failed reports whether the whole file was rejected.
func (r *FileReport) Failed() bool {
	return r.Error != ""
}

// RunReport aggregates every file's diagnostics for one pipeline run.
type RunReport struct {
	Files         []FileReport `json:"files"`
	TotalFeatures int          `json:"total_features"`
	FailedFiles   int          `json:"failed_files"`
	Changed       bool         `json:"changed"`
	Checksum      string       `json:"checksum,omitempty"`
}

// Add folds a file report into the run totals.
func (r *RunReport) Add(fr FileReport) {
	r.Files = append(r.Files, fr)
	r.TotalFeatures += fr.Features
	if fr.Failed() {
		r.FailedFiles++
	}
}

// Write saves the report as indented JSON.
func (r *RunReport) Write(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
