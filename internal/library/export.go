// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

// Export is a full snapshot of the library, suitable for backup or
// migration to another machine.
type Export struct {
	Bookmarks     []types.Bookmark           `json:"bookmarks" yaml:"bookmarks"`
	History       []types.HistoryEntry       `json:"history" yaml:"history"`
	SearchHistory []types.SearchHistoryEntry `json:"search_history" yaml:"search_history"`
	Collections   []types.Collection         `json:"collections" yaml:"collections"`
	DarkMode      bool                       `json:"dark_mode" yaml:"dark_mode"`
}

// Snapshot collects the current library contents.
func (l *Library) Snapshot(ctx context.Context) Export {
	return Export{
		Bookmarks:     l.Bookmarks(ctx),
		History:       l.History(ctx),
		SearchHistory: l.SearchHistory(ctx),
		Collections:   l.Collections(ctx),
		DarkMode:      l.DarkMode(ctx),
	}
}

// ExportYAML writes the library snapshot to path as YAML.
func (l *Library) ExportYAML(ctx context.Context, path string) error {
	data, err := yaml.Marshal(l.Snapshot(ctx))
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the library snapshot to path as indented JSON.
func (l *Library) ExportJSON(ctx context.Context, path string) error {
	data, err := json.MarshalIndent(l.Snapshot(ctx), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
