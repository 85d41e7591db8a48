// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"os"
	"strings"

	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

// BulkFileName is the default filename for multi-paper BibTeX exports.
const BulkFileName = "arxiv-papers.bib"

// FileName computes the export filename for a single paper,
// e.g. "arxiv-1706.03762.bib".
func FileName(p types.Paper) string {
	return "arxiv-" + ArxivID(p) + ".bib"
}

// GenerateBulkBibTeX concatenates per-paper BibTeX entries separated by
// a blank line. An empty input yields an empty string.
func GenerateBulkBibTeX(papers []types.Paper) string {
	if len(papers) == 0 {
		return ""
	}
	entries := make([]string, len(papers))
	for i, p := range papers {
		entries[i] = GenerateBibTeX(p)
	}
	return strings.Join(entries, "\n\n")
}

// ExportFile writes content to path. Used by the cite command to deliver
// .bib files.
func ExportFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
