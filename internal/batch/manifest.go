package batch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"spritecam/internal/rig"
)

// Manifest is the JSON document written for a batch run.
type Manifest struct {
	Record    rig.RecordParams `json:"record"`
	Overrides *rig.Overrides   `json:"overrides,omitempty"`
	Steps     int              `json:"steps"`
	Mirror    bool             `json:"mirror"`
	Models    []Result         `json:"models"`
}

// WriteManifest writes manifest JSON to path. Model paths are made relative
// to root when possible.
func WriteManifest(path, root string, cfg Config, results []Result) error {
	entries := make([]Result, len(results))
	for i, r := range results {
		if root != "" {
			if rel, err := filepath.Rel(root, r.Model); err == nil {
				r.Model = filepath.ToSlash(rel)
			}
		}
		entries[i] = r
	}

	m := Manifest{
		Record:    cfg.Record,
		Overrides: cfg.Overrides,
		Steps:     cfg.Steps,
		Mirror:    cfg.Mirror,
		Models:    entries,
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
