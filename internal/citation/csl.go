package citation

import (
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID       string    `yaml:"id"`
	Type     string    `yaml:"type"`
	Title    string    `yaml:"title"`
	Author   []CSLName `yaml:"author,omitempty"`
	Abstract string    `yaml:"abstract,omitempty"`
	Issued   *CSLDate  `yaml:"issued,omitempty"`
	URL      string    `yaml:"URL,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes papers as a CSL-YAML list to w.
func FormatCSL(papers []types.Paper, w io.Writer) error {
	items := make([]CSLItem, len(papers))
	for i, p := range papers {
		items[i] = toCSLItem(p)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts a Paper to a CSLItem.
func toCSLItem(p types.Paper) CSLItem {
	id := ArxivID(p)
	item := CSLItem{
		ID:       "arxiv:" + id,
		Type:     "article",
		Title:    cleanTitle(p.Title),
		Abstract: p.Summary,
		URL:      abstractURL(p, id),
	}

	for _, a := range p.Authors {
		item.Author = append(item.Author, cslName(a))
	}

	if !p.Published.IsZero() {
		item.Issued = &CSLDate{
			DateParts: [][]int{{p.Published.Year(), int(p.Published.Month()), p.Published.Day()}},
		}
	}

	return item
}

// cslName splits a full name into CSL family/given parts. Single-token
// names use the literal field.
func cslName(name string) CSLName {
	given, family := splitName(name)
	if len(given) == 0 {
		return CSLName{Literal: family}
	}
	return CSLName{
		Given:  strings.Join(given, " "),
		Family: family,
	}
}
