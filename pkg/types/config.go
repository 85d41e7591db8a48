package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-explorer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the arXiv search client.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the default page size (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// ProxyURL is an optional relay endpoint. When set, requests are
	// rewritten to "<ProxyURL>?url=<escaped>" so the relay re-issues
	// them server-side. Empty means direct.
	ProxyURL string `json:"proxy_url,omitempty" yaml:"proxy_url,omitempty"`

	// RequestInterval is the minimum spacing between arXiv API calls.
	// The API asks clients to stay around one request every three seconds.
	RequestInterval time.Duration `json:"request_interval" yaml:"request_interval"`
}

// CodeLinksConfig holds settings for the paper-to-code dataset client.
type CodeLinksConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIToken is an optional HuggingFace token for higher rate limits.
	APIToken string `json:"api_token,omitempty" yaml:"api_token,omitempty"`
}

// LibraryConfig holds settings for the local persistence store.
type LibraryConfig struct {
	// Path is the SQLite database file (default
	// ~/.local/share/arxiv-explorer/library.db).
	Path string `json:"path" yaml:"path"`
}
