package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ashutosh-ps/arxiv-explorer/internal/citation"
	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// truncate shortens s to at most n runes, marking elision with "...".
// Rune-based so multi-byte titles and names never get cut mid-character.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// printPapers renders a paper list as a table keyed by arXiv ID.
func printPapers(papers []types.Paper) {
	if len(papers) == 0 {
		fmt.Println("No papers found.")
		return
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-14s  %-60s  %-30s  %s\n",
		"#", "ID", "Title", "Authors", "Published")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 125))

	for i, p := range papers {
		published := ""
		if !p.Published.IsZero() {
			published = p.Published.Format("2006-01-02")
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-14s  %-60s  %-30s  %s\n",
			i+1,
			truncate(citation.ArxivID(p), 14),
			truncate(p.Title, 60),
			truncate(strings.Join(p.Authors, ", "), 30),
			published)
	}
}

// printPaperDetail renders one paper in full.
func printPaperDetail(p types.Paper) {
	fmt.Println(p.Title)
	fmt.Println(strings.Repeat("=", len(p.Title)))
	fmt.Printf("arXiv ID:   %s\n", citation.ArxivID(p))
	if len(p.Authors) > 0 {
		fmt.Printf("Authors:    %s\n", strings.Join(p.Authors, ", "))
	}
	if len(p.Categories) > 0 {
		fmt.Printf("Categories: %s\n", strings.Join(p.Categories, ", "))
	}
	if !p.Published.IsZero() {
		fmt.Printf("Published:  %s\n", p.Published.Format("2006-01-02"))
	}
	if !p.Updated.IsZero() {
		fmt.Printf("Updated:    %s\n", p.Updated.Format("2006-01-02"))
	}
	if p.Links.Abstract != "" {
		fmt.Printf("Abstract:   %s\n", p.Links.Abstract)
	}
	if p.Links.PDF != "" {
		fmt.Printf("PDF:        %s\n", p.Links.PDF)
	}
	if p.Summary != "" {
		fmt.Println()
		fmt.Println(p.Summary)
	}
}
