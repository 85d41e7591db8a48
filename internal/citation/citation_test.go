package citation

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

func attentionPaper() types.Paper {
	return types.Paper{
		ID:        "https://arxiv.org/abs/1706.03762",
		Title:     "Attention Is All You Need",
		Summary:   "We propose a new architecture.",
		Published: time.Date(2017, 6, 12, 0, 0, 0, 0, time.UTC),
		Authors:   []string{"Ashish Vaswani", "Noam Shazeer"},
		Categories: []string{
			"cs.CL",
			"cs.LG",
		},
		Links: types.Links{
			Abstract: "https://arxiv.org/abs/1706.03762",
			PDF:      "https://arxiv.org/pdf/1706.03762",
		},
	}
}

func TestArxivID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"https://arxiv.org/abs/1706.03762", "1706.03762"},
		{"http://arxiv.org/abs/2301.07041v2", "2301.07041v2"},
		{"1810.04805", "1810.04805"},
		{"no digits here", "unknown"},
		{"", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := ArxivID(types.Paper{ID: tt.id})
			if got != tt.want {
				t.Errorf("ArxivID(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestGenerateBibTeX(t *testing.T) {
	got := GenerateBibTeX(attentionPaper())

	for _, want := range []string{
		"@article{arxiv:1706.03762,",
		"author    = {Ashish Vaswani and Noam Shazeer}",
		"year      = {2017}",
		"title     = {Attention Is All You Need}",
		"eprint    = {1706.03762}",
		"primaryClass = {cs.CL}",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("BibTeX missing %q in:\n%s", want, got)
		}
	}
}

func TestGenerateBibTeXFallbacks(t *testing.T) {
	// No categories, no links, no authors: every field falls back.
	p := types.Paper{
		ID:        "https://arxiv.org/abs/2301.00001",
		Title:     "Some\nWrapped   Title",
		Published: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	got := GenerateBibTeX(p)

	for _, want := range []string{
		"title     = {Some Wrapped Title}",
		"author    = {Unknown Author}",
		"primaryClass = {cs}",
		"url       = {https://arxiv.org/abs/2301.00001}",
		"pdf       = {https://arxiv.org/pdf/2301.00001.pdf}",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("BibTeX missing %q in:\n%s", want, got)
		}
	}
}

func TestGenerateAPA(t *testing.T) {
	got := Generate(attentionPaper(), APA)
	want := "Vaswani, A., & Shazeer, N. (2017). Attention Is All You Need. arXiv. https://arxiv.org/abs/1706.03762"
	if got != want {
		t.Errorf("APA = %q, want %q", got, want)
	}
}

func TestGenerateMLA(t *testing.T) {
	got := Generate(attentionPaper(), MLA)
	want := `Vaswani, Ashish, and Noam Shazeer. "Attention Is All You Need." arXiv, 2017, https://arxiv.org/abs/1706.03762.`
	if got != want {
		t.Errorf("MLA = %q, want %q", got, want)
	}
}

func TestGenerateIEEE(t *testing.T) {
	got := Generate(attentionPaper(), IEEE)
	want := `A. Vaswani and N. Shazeer, "Attention Is All You Need," arXiv:1706.03762, 2017.`
	if got != want {
		t.Errorf("IEEE = %q, want %q", got, want)
	}
}

func TestGenerateChicago(t *testing.T) {
	got := Generate(attentionPaper(), Chicago)
	want := `Vaswani, Ashish, and Noam Shazeer. "Attention Is All You Need." arXiv preprint arXiv:1706.03762 (2017). https://arxiv.org/abs/1706.03762.`
	if got != want {
		t.Errorf("Chicago = %q, want %q", got, want)
	}
}

func TestGenerateUnknownFormatFallsBackToBibTeX(t *testing.T) {
	got := Generate(attentionPaper(), Format("ris"))
	if !strings.HasPrefix(got, "@article{arxiv:1706.03762,") {
		t.Errorf("unknown format should render BibTeX, got:\n%s", got)
	}
}

func TestGenerateIsCaseInsensitive(t *testing.T) {
	if Generate(attentionPaper(), Format("APA")) != Generate(attentionPaper(), APA) {
		t.Error("format dispatch should be case-insensitive")
	}
}

func TestYearFallsBackToCurrentYear(t *testing.T) {
	p := attentionPaper()
	p.Published = time.Time{}
	got := Generate(p, IEEE)
	want := fmt.Sprintf("%d.", time.Now().Year())
	if !strings.HasSuffix(got, want) {
		t.Errorf("IEEE citation without date = %q, want current-year suffix %q", got, want)
	}
}

func TestGenerateBulkBibTeX(t *testing.T) {
	p1 := attentionPaper()
	p2 := attentionPaper()
	p2.ID = "https://arxiv.org/abs/1810.04805"
	p2.Title = "BERT"

	got := GenerateBulkBibTeX([]types.Paper{p1, p2})
	blocks := strings.Split(got, "\n\n")
	if len(blocks) != 2 {
		t.Fatalf("bulk export has %d blocks, want 2", len(blocks))
	}
	if !strings.HasPrefix(blocks[1], "@article{arxiv:1810.04805,") {
		t.Errorf("second block = %q", blocks[1])
	}

	if GenerateBulkBibTeX(nil) != "" {
		t.Error("empty input should yield empty string")
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(attentionPaper()); got != "arxiv-1706.03762.bib" {
		t.Errorf("FileName = %q", got)
	}
}

func TestFormatsRegistry(t *testing.T) {
	formats := Formats()
	if len(formats) != 6 {
		t.Fatalf("len(Formats()) = %d, want 6", len(formats))
	}
	if formats[0].ID != BibTeX || formats[0].Name != "BibTeX" {
		t.Errorf("first format = %+v", formats[0])
	}
	if formats[5].ID != CSL {
		t.Errorf("last format = %+v, want CSL", formats[5])
	}
}

func TestFormatCSL(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatCSL([]types.Paper{attentionPaper()}, &buf); err != nil {
		t.Fatalf("FormatCSL: %v", err)
	}
	s := buf.String()

	for _, want := range []string{
		"id: arxiv:1706.03762",
		"family: Vaswani",
		"given: Ashish",
		"- 2017",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("CSL output missing %q in:\n%s", want, s)
		}
	}
}
