// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation renders Paper records as citation strings in five
// styles: BibTeX, APA (7th ed.), MLA (9th ed.), IEEE, and Chicago
// (17th ed.). It is a formatting layer only; author names are split
// positionally and never validated against a bibliographic database.
package citation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

// Format identifies a citation style.
type Format string

const (
	BibTeX  Format = "bibtex"
	APA     Format = "apa"
	MLA     Format = "mla"
	IEEE    Format = "ieee"
	Chicago Format = "chicago"

	// CSL is machine-readable CSL-YAML rather than a prose style; it is
	// rendered by FormatCSL, not Generate.
	CSL Format = "csl"
)

// Info describes one available citation format.
type Info struct {
	ID          Format
	Name        string
	Description string
}

// Formats lists the available citation formats in display order.
func Formats() []Info {
	return []Info{
		{BibTeX, "BibTeX", "For LaTeX documents"},
		{APA, "APA", "APA 7th Edition"},
		{MLA, "MLA", "MLA 9th Edition"},
		{IEEE, "IEEE", "IEEE Style"},
		{Chicago, "Chicago", "Chicago 17th Edition"},
		{CSL, "CSL", "CSL-YAML for Pandoc and reference managers"},
	}
}

var (
	absIDPattern  = regexp.MustCompile(`(?i)arxiv\.org/abs/([\d.]+v?\d*)`)
	bareIDPattern = regexp.MustCompile(`([\d.]+v?\d*)`)
)

// ArxivID extracts the arXiv identifier from the paper's ID field,
// which is usually an abs-page URL. Falls back to "unknown".
func ArxivID(p types.Paper) string {
	if m := absIDPattern.FindStringSubmatch(p.ID); m != nil {
		return m[1]
	}
	if m := bareIDPattern.FindStringSubmatch(p.ID); m != nil {
		return m[1]
	}
	return "unknown"
}

// year returns the publication year, defaulting to the current year
// when the record carries no date.
func year(p types.Paper) int {
	if p.Published.IsZero() {
		return time.Now().Year()
	}
	return p.Published.Year()
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// cleanTitle collapses newlines and whitespace runs; feed titles often
// arrive wrapped across lines.
func cleanTitle(title string) string {
	title = strings.TrimSpace(whitespaceRun.ReplaceAllString(title, " "))
	if title == "" {
		return "Untitled"
	}
	return title
}

// abstractURL returns the abstract-page link, synthesizing one from the
// arXiv ID when the record has none.
func abstractURL(p types.Paper, arxivID string) string {
	if p.Links.Abstract != "" {
		return p.Links.Abstract
	}
	return "https://arxiv.org/abs/" + arxivID
}

func pdfURL(p types.Paper, arxivID string) string {
	if p.Links.PDF != "" {
		return p.Links.PDF
	}
	return "https://arxiv.org/pdf/" + arxivID + ".pdf"
}

// Generate renders p in the given format. Unknown formats fall back to
// BibTeX, matching the permissive dispatch the export surface expects.
func Generate(p types.Paper, format Format) string {
	switch Format(strings.ToLower(string(format))) {
	case APA:
		return generateAPA(p)
	case MLA:
		return generateMLA(p)
	case IEEE:
		return generateIEEE(p)
	case Chicago:
		return generateChicago(p)
	default:
		return GenerateBibTeX(p)
	}
}

// GenerateBibTeX renders a BibTeX @article entry keyed arxiv:<id>.
func GenerateBibTeX(p types.Paper) string {
	id := ArxivID(p)
	primaryClass := "cs"
	if len(p.Categories) > 0 {
		primaryClass = p.Categories[0]
	}

	return fmt.Sprintf(`@article{arxiv:%s,
  title     = {%s},
  author    = {%s},
  journal   = {arXiv preprint arXiv:%s},
  year      = {%d},
  eprint    = {%s},
  archivePrefix = {arXiv},
  primaryClass = {%s},
  url       = {%s},
  pdf       = {%s}
}`, id, cleanTitle(p.Title), authorsBibTeX(p.Authors), id, year(p), id,
		primaryClass, abstractURL(p, id), pdfURL(p, id))
}

func generateAPA(p types.Paper) string {
	id := ArxivID(p)
	return fmt.Sprintf("%s (%d). %s. arXiv. %s",
		authorsAPA(p.Authors), year(p), cleanTitle(p.Title), abstractURL(p, id))
}

func generateMLA(p types.Paper) string {
	id := ArxivID(p)
	return fmt.Sprintf("%s. \"%s.\" arXiv, %d, %s.",
		authorsMLA(p.Authors), cleanTitle(p.Title), year(p), abstractURL(p, id))
}

func generateIEEE(p types.Paper) string {
	return fmt.Sprintf("%s, \"%s,\" arXiv:%s, %d.",
		authorsIEEE(p.Authors), cleanTitle(p.Title), ArxivID(p), year(p))
}

func generateChicago(p types.Paper) string {
	id := ArxivID(p)
	return fmt.Sprintf("%s. \"%s.\" arXiv preprint arXiv:%s (%d). %s.",
		authorsChicago(p.Authors), cleanTitle(p.Title), id, year(p), abstractURL(p, id))
}
