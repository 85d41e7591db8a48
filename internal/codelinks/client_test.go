package codelinks

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

const sampleRowsJSON = `{
  "rows": [
    {"row": {"repo_url": "https://github.com/other/transformer-impl", "is_official": false, "mentioned_in_paper": false, "mentioned_in_github": true, "framework": "tf", "paper_title": "Attention Is All You Need"}},
    {"row": {"repo_url": "https://github.com/tensorflow/tensor2tensor", "is_official": true, "mentioned_in_paper": true, "mentioned_in_github": false, "framework": "", "paper_title": "Attention Is All You Need"}}
  ]
}`

// withDatasetServer points the package at a local server for the test.
func withDatasetServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(handler)
	orig := datasetAPIBase
	datasetAPIBase = ts.URL
	t.Cleanup(func() {
		datasetAPIBase = orig
		ts.Close()
	})
	return ts
}

func TestExtractArxivID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1706.03762", "1706.03762"},
		{"https://arxiv.org/abs/2301.00001", "2301.00001"},
		{"http://arxiv.org/abs/1706.03762v2", "1706.03762"},
		{"2301.12345v10", "2301.12345"},
		{"not an id", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractArxivID(tt.in), "input %q", tt.in)
	}
}

func TestGetCodeLinksSortsOfficialFirst(t *testing.T) {
	withDatasetServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pwc-archive/links-between-paper-and-code", r.URL.Query().Get("dataset"))
		assert.Equal(t, "paper_arxiv_id='1706.03762'", r.URL.Query().Get("where"))
		assert.Equal(t, "50", r.URL.Query().Get("length"))
		fmt.Fprint(w, sampleRowsJSON)
	})

	c := NewClient(types.CodeLinksConfig{}, nil)
	repos := c.GetCodeLinks(context.Background(), "https://arxiv.org/abs/1706.03762")

	require.Len(t, repos, 2)
	assert.True(t, repos[0].IsOfficial)
	assert.Equal(t, "https://github.com/tensorflow/tensor2tensor", repos[0].URL)
	assert.Equal(t, "unknown", repos[0].Framework, "empty framework should default")
	assert.Equal(t, "tf", repos[1].Framework)
}

func TestGetCodeLinksCachesResults(t *testing.T) {
	var calls atomic.Int32
	withDatasetServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, sampleRowsJSON)
	})

	c := NewClient(types.CodeLinksConfig{}, nil)
	ctx := context.Background()

	c.GetCodeLinks(ctx, "1706.03762")
	c.GetCodeLinks(ctx, "1706.03762")
	assert.Equal(t, int32(1), calls.Load(), "second lookup should hit the cache")

	c.ClearCache()
	c.GetCodeLinks(ctx, "1706.03762")
	assert.Equal(t, int32(2), calls.Load(), "ClearCache should force a refetch")
}

func TestGetCodeLinksFailsOpen(t *testing.T) {
	withDatasetServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	c := NewClient(types.CodeLinksConfig{}, nil)
	repos := c.GetCodeLinks(context.Background(), "1706.03762")
	assert.Empty(t, repos)

	// Failures are not cached; the invalid-ID path short-circuits too.
	assert.Empty(t, c.GetCodeLinks(context.Background(), "not an id"))
}

func TestGetCodeLinksMalformedJSONFailsOpen(t *testing.T) {
	withDatasetServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "{not json")
	})

	c := NewClient(types.CodeLinksConfig{}, nil)
	assert.Empty(t, c.GetCodeLinks(context.Background(), "1706.03762"))
}

func TestGetCodeLinksSendsToken(t *testing.T) {
	withDatasetServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"rows": []}`)
	})

	c := NewClient(types.CodeLinksConfig{APIToken: "hf_test"}, nil)
	c.GetCodeLinks(context.Background(), "1706.03762")
}

func TestHasCode(t *testing.T) {
	withDatasetServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("where") == "paper_arxiv_id='1706.03762'" {
			fmt.Fprint(w, sampleRowsJSON)
		} else {
			fmt.Fprint(w, `{"rows": []}`)
		}
	})

	c := NewClient(types.CodeLinksConfig{}, nil)
	assert.True(t, c.HasCode(context.Background(), "1706.03762"))
	assert.False(t, c.HasCode(context.Background(), "2301.00001"))
}

func TestBatchCheckCode(t *testing.T) {
	var calls atomic.Int32
	withDatasetServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Query().Get("where") == "paper_arxiv_id='1706.03762'" {
			fmt.Fprint(w, sampleRowsJSON)
		} else {
			fmt.Fprint(w, `{"rows": []}`)
		}
	})

	c := NewClient(types.CodeLinksConfig{}, nil)
	ctx := context.Background()

	// Warm the cache for one ID so the batch mixes cached and uncached.
	c.GetCodeLinks(ctx, "1706.03762")
	require.Equal(t, int32(1), calls.Load())

	ids := []string{
		"https://arxiv.org/abs/1706.03762",
		"2301.00001",
		"1810.04805",
		"garbage",
	}
	results := c.BatchCheckCode(ctx, ids)

	assert.Len(t, results, 3, "unparseable IDs are skipped")
	assert.True(t, results["1706.03762"])
	assert.False(t, results["2301.00001"])
	assert.False(t, results["1810.04805"])
	assert.Equal(t, int32(3), calls.Load(), "cached ID must not be refetched")
}

func TestGetFrameworkInfo(t *testing.T) {
	assert.Equal(t, "PyTorch", GetFrameworkInfo("pytorch").Name)
	assert.Equal(t, "TensorFlow", GetFrameworkInfo("TF").Name)
	assert.Equal(t, "Unknown", GetFrameworkInfo("").Name)
	assert.Equal(t, "Unknown", GetFrameworkInfo("cobol").Name)
}

func TestParseGitHubURL(t *testing.T) {
	repo := ParseGitHubURL("https://github.com/tensorflow/tensor2tensor")
	require.NotNil(t, repo)
	assert.Equal(t, "tensorflow", repo.Owner)
	assert.Equal(t, "tensor2tensor", repo.Repo)
	assert.Equal(t, "tensorflow/tensor2tensor", repo.FullName)

	repo = ParseGitHubURL("git clone https://github.com/foo/bar.git")
	require.NotNil(t, repo)
	assert.Equal(t, "foo/bar", repo.FullName)

	assert.Nil(t, ParseGitHubURL("https://gitlab.com/foo/bar"))
	assert.Nil(t, ParseGitHubURL(""))
}
