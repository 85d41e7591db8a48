// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package codelinks resolves code repositories for arXiv papers using the
// pwc-archive/links-between-paper-and-code dataset hosted on HuggingFace.
// Results are cached per arXiv ID for the lifetime of the client, and all
// lookups fail open: a paper with no resolvable links reports none rather
// than an error.
package codelinks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ashutosh-ps/arxiv-explorer/internal/httputil"
	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

// datasetAPIBase is the HuggingFace datasets-server filter endpoint.
// Variable rather than constant so tests can point it at a local server.
var datasetAPIBase = "https://datasets-server.huggingface.co/filter"

const (
	datasetName = "pwc-archive/links-between-paper-and-code"

	defaultTimeout = 30 * time.Second

	// rowLimit caps how many repository rows we request per paper.
	rowLimit = 50

	// batchSize bounds concurrent dataset lookups in BatchCheckCode.
	batchSize = 5
)

var idPattern = regexp.MustCompile(`(\d{4}\.\d{4,5})(v\d+)?`)

// ExtractArxivID pulls a bare arXiv identifier out of an ID string or
// abs-page URL, dropping any version suffix. Returns "" when no
// identifier is present.
func ExtractArxivID(idOrURL string) string {
	if m := idPattern.FindStringSubmatch(idOrURL); m != nil {
		return m[1]
	}
	return ""
}

// Client queries the paper-to-code dataset.
type Client struct {
	httpClient *http.Client
	cfg        types.CodeLinksConfig
	log        *zap.Logger

	mu    sync.Mutex
	cache map[string][]types.Repository
}

// NewClient creates a code-links client. A nil logger disables logging.
func NewClient(cfg types.CodeLinksConfig, log *zap.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		log:        log,
		cache:      make(map[string][]types.Repository),
	}
}

// datasetResponse mirrors the datasets-server /filter payload. Only the
// columns we consume are declared.
type datasetResponse struct {
	Rows []struct {
		Row struct {
			RepoURL           string `json:"repo_url"`
			IsOfficial        bool   `json:"is_official"`
			MentionedInPaper  bool   `json:"mentioned_in_paper"`
			MentionedInGithub bool   `json:"mentioned_in_github"`
			Framework         string `json:"framework"`
			PaperTitle        string `json:"paper_title"`
		} `json:"row"`
	} `json:"rows"`
}

// GetCodeLinks returns the repositories linked to the given paper,
// official repositories first. Invalid IDs and upstream failures yield
// an empty slice; the cause is logged, never surfaced.
func (c *Client) GetCodeLinks(ctx context.Context, arxivID string) []types.Repository {
	cleanID := ExtractArxivID(arxivID)
	if cleanID == "" {
		c.log.Warn("invalid arXiv ID", zap.String("id", arxivID))
		return nil
	}

	c.mu.Lock()
	cached, ok := c.cache[cleanID]
	c.mu.Unlock()
	if ok {
		return cached
	}

	repos, err := c.fetch(ctx, cleanID)
	if err != nil {
		c.log.Warn("code links lookup failed",
			zap.String("arxiv_id", cleanID), zap.Error(err))
		return nil
	}

	sort.SliceStable(repos, func(i, j int) bool {
		return repos[i].IsOfficial && !repos[j].IsOfficial
	})

	c.mu.Lock()
	c.cache[cleanID] = repos
	c.mu.Unlock()

	return repos
}

// HasCode reports whether at least one repository is linked to the paper.
func (c *Client) HasCode(ctx context.Context, arxivID string) bool {
	return len(c.GetCodeLinks(ctx, arxivID)) > 0
}

// BatchCheckCode resolves code availability for many papers at once.
// Cached IDs are answered immediately; the rest are fetched in groups
// of five concurrent requests. Keys in the result map are clean arXiv
// IDs; inputs without a recognizable ID are skipped.
func (c *Client) BatchCheckCode(ctx context.Context, arxivIDs []string) map[string]bool {
	results := make(map[string]bool)

	var uncached []string
	for _, id := range arxivIDs {
		cleanID := ExtractArxivID(id)
		if cleanID == "" {
			continue
		}
		c.mu.Lock()
		cached, ok := c.cache[cleanID]
		c.mu.Unlock()
		if ok {
			results[cleanID] = len(cached) > 0
		} else {
			uncached = append(uncached, cleanID)
		}
	}

	var resMu sync.Mutex
	for i := 0; i < len(uncached); i += batchSize {
		end := i + batchSize
		if end > len(uncached) {
			end = len(uncached)
		}

		var wg sync.WaitGroup
		for _, id := range uncached[i:end] {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				has := c.HasCode(ctx, id)
				resMu.Lock()
				results[id] = has
				resMu.Unlock()
			}(id)
		}
		wg.Wait()
	}

	return results
}

// ClearCache drops all cached lookups, forcing fresh fetches.
func (c *Client) ClearCache() {
	c.mu.Lock()
	c.cache = make(map[string][]types.Repository)
	c.mu.Unlock()
}

func (c *Client) fetch(ctx context.Context, cleanID string) ([]types.Repository, error) {
	query := url.Values{}
	query.Set("dataset", datasetName)
	query.Set("config", "default")
	query.Set("split", "train")
	query.Set("where", fmt.Sprintf("paper_arxiv_id='%s'", cleanID))
	query.Set("length", fmt.Sprintf("%d", rowLimit))
	reqURL := datasetAPIBase + "?" + query.Encode()

	var header http.Header
	if c.cfg.APIToken != "" {
		header = http.Header{"Authorization": {"Bearer " + c.cfg.APIToken}}
	}

	resp, err := httputil.Get(ctx, c.httpClient, nil, reqURL, c.cfg.UserAgent, header)
	if err != nil {
		return nil, fmt.Errorf("fetching code links: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("dataset API returned status %d: %s", resp.StatusCode, body)
	}

	var payload datasetResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding dataset response: %w", err)
	}

	repos := make([]types.Repository, 0, len(payload.Rows))
	for _, r := range payload.Rows {
		framework := r.Row.Framework
		if framework == "" {
			framework = "unknown"
		}
		repos = append(repos, types.Repository{
			URL:               r.Row.RepoURL,
			IsOfficial:        r.Row.IsOfficial,
			MentionedInPaper:  r.Row.MentionedInPaper,
			MentionedInGithub: r.Row.MentionedInGithub,
			Framework:         framework,
			PaperTitle:        r.Row.PaperTitle,
		})
	}
	return repos, nil
}

// FrameworkInfo is the display name for a machine-learning framework tag.
type FrameworkInfo struct {
	Name string
}

var frameworks = map[string]FrameworkInfo{
	"pytorch": {Name: "PyTorch"},
	"tf":      {Name: "TensorFlow"},
	"jax":     {Name: "JAX"},
	"keras":   {Name: "Keras"},
	"mxnet":   {Name: "MXNet"},
	"caffe":   {Name: "Caffe"},
	"paddle":  {Name: "PaddlePaddle"},
	"none":    {Name: "Other"},
	"unknown": {Name: "Unknown"},
}

// GetFrameworkInfo maps a dataset framework tag to display info,
// defaulting to Unknown for unrecognized tags.
func GetFrameworkInfo(framework string) FrameworkInfo {
	if info, ok := frameworks[strings.ToLower(framework)]; ok {
		return info
	}
	return frameworks["unknown"]
}

var githubPattern = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)`)

// GitHubRepo identifies a repository on GitHub.
type GitHubRepo struct {
	Owner    string
	Repo     string
	FullName string
}

// ParseGitHubURL extracts the owner and repository name from a GitHub
// URL. Returns nil for non-GitHub URLs.
func ParseGitHubURL(rawURL string) *GitHubRepo {
	m := githubPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return nil
	}
	repo := strings.TrimSuffix(m[2], ".git")
	return &GitHubRepo{
		Owner:    m[1],
		Repo:     repo,
		FullName: m[1] + "/" + repo,
	}
}
