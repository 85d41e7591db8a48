// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the arxiv-explorer CLI:
// the Paper record produced by the search client and the library entry
// types persisted by the local store.
package types

import "time"

// Paper is the normalized representation of one arXiv search result.
// It is immutable once parsed from the feed; library code copies it into
// entry types rather than annotating it in place.
type Paper struct {
	// ID is the canonical identifier from the feed, typically an
	// abs-page URL such as "http://arxiv.org/abs/1706.03762v1".
	ID string `json:"id" yaml:"id"`

	// Title is the paper title, whitespace-trimmed.
	Title string `json:"title" yaml:"title"`

	// Summary is the abstract, whitespace-trimmed.
	Summary string `json:"summary" yaml:"summary"`

	// Published is the first-submission timestamp. Zero when the entry
	// carried no parseable date.
	Published time.Time `json:"published" yaml:"published"`

	// Updated is the last-revision timestamp, optional.
	Updated time.Time `json:"updated,omitempty" yaml:"updated,omitempty"`

	// Authors lists author names in feed order.
	Authors []string `json:"authors" yaml:"authors"`

	// Categories lists category codes (e.g. "cs.LG") in feed order.
	Categories []string `json:"categories" yaml:"categories"`

	// Links holds the entry's resolved links.
	Links Links `json:"links" yaml:"links"`
}

// Links holds the at-most-one pdf and abstract-page URLs of an entry.
type Links struct {
	PDF      string `json:"pdf,omitempty" yaml:"pdf,omitempty"`
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
}

// Bookmark is a saved paper. At most one bookmark exists per paper ID.
type Bookmark struct {
	Paper   `yaml:",inline"`
	SavedAt time.Time `json:"saved_at" yaml:"saved_at"`
}

// HistoryEntry records one paper view. The history list is newest-first
// and capped; re-viewing a paper moves its entry to the front.
type HistoryEntry struct {
	Paper    `yaml:",inline"`
	ViewedAt time.Time `json:"viewed_at" yaml:"viewed_at"`
}

// SearchType enumerates the supported search modes.
type SearchType string

const (
	SearchAll      SearchType = "all"
	SearchTitle    SearchType = "title"
	SearchAuthor   SearchType = "author"
	SearchAbstract SearchType = "abstract"
	SearchCategory SearchType = "category"
	SearchAdvanced SearchType = "advanced"
)

// SearchTypes lists all search modes in display order.
var SearchTypes = []SearchType{
	SearchAll, SearchTitle, SearchAuthor, SearchAbstract, SearchCategory, SearchAdvanced,
}

// SearchHistoryEntry records one submitted search. Timestamp is epoch
// milliseconds and doubles as the entry's removal key.
type SearchHistoryEntry struct {
	Query       string     `json:"query" yaml:"query"`
	SearchType  SearchType `json:"search_type" yaml:"search_type"`
	ResultCount int        `json:"result_count" yaml:"result_count"`
	Timestamp   int64      `json:"timestamp" yaml:"timestamp"`
}

// Collection is a named, timestamped group of papers. Paper IDs are
// unique within a collection.
type Collection struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Papers    []Paper   `json:"papers" yaml:"papers"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Repository is one paper-to-code link from the Papers With Code dataset.
type Repository struct {
	URL               string `json:"url" yaml:"url"`
	IsOfficial        bool   `json:"is_official" yaml:"is_official"`
	MentionedInPaper  bool   `json:"mentioned_in_paper" yaml:"mentioned_in_paper"`
	MentionedInGithub bool   `json:"mentioned_in_github" yaml:"mentioned_in_github"`
	Framework         string `json:"framework" yaml:"framework"`
	PaperTitle        string `json:"paper_title" yaml:"paper_title"`
}
