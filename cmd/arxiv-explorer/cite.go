package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ashutosh-ps/arxiv-explorer/internal/arxiv"
	"github.com/ashutosh-ps/arxiv-explorer/internal/citation"
	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

var citeCmd = &cobra.Command{
	Use:   "cite [arxiv-id...]",
	Short: "Generate citations for papers",
	Long: `Cite generates citations in one of five styles: bibtex (default), apa,
mla, ieee, or chicago, or as a machine-readable CSL-YAML list with
--format csl. Papers are fetched by arXiv ID, or taken from the local
bookmarks with --bookmarks.

Citations print to stdout; --output writes them to a file instead, and
--save picks a conventional filename (arxiv-<id>.bib for one paper,
arxiv-papers.bib for several).`,
	RunE: runCite,
}

var citeFormatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available citation formats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s  %s\n", "ID", "Description")
		fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("-", 40))
		for _, f := range citation.Formats() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s  %s (%s)\n", f.ID, f.Name, f.Description)
		}
	},
}

func init() {
	citeCmd.Flags().String("format", "bibtex", "citation style: bibtex, apa, mla, ieee, chicago, csl")
	citeCmd.Flags().String("output", "", "write citations to this file instead of stdout")
	citeCmd.Flags().Bool("save", false, "write citations to a conventionally named .bib file")
	citeCmd.Flags().Bool("bookmarks", false, "cite all bookmarked papers")

	citeCmd.AddCommand(citeFormatsCmd)
	rootCmd.AddCommand(citeCmd)
}

func runCite(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	useBookmarks, _ := cmd.Flags().GetBool("bookmarks")
	ctx := context.Background()

	var papers []types.Paper
	switch {
	case useBookmarks:
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		for _, b := range lib.Bookmarks(ctx) {
			papers = append(papers, b.Paper)
		}
		lib.Close()
		if len(papers) == 0 {
			return fmt.Errorf("no bookmarked papers to cite")
		}
	case len(args) > 0:
		client := arxiv.NewClient(searchConfig())
		fetched, err := client.GetByIDs(ctx, args)
		if err != nil {
			return err
		}
		if len(fetched) == 0 {
			return fmt.Errorf("no papers found for %v", args)
		}
		papers = fetched
	default:
		return fmt.Errorf("provide arXiv IDs or --bookmarks")
	}

	content, err := renderCitations(papers, format)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if save, _ := cmd.Flags().GetBool("save"); save && output == "" {
		output = citation.BulkFileName
		if len(papers) == 1 {
			output = citation.FileName(papers[0])
		}
		if citation.Format(strings.ToLower(format)) == citation.CSL {
			output = strings.TrimSuffix(output, ".bib") + ".yaml"
		}
	}
	if output == "" {
		fmt.Println(content)
		return nil
	}
	if err := citation.ExportFile(output, content); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Printf("Wrote %d citation(s) to %s\n", len(papers), output)
	return nil
}

// renderCitations produces the cite output for one format: BibTeX as a
// bulk block, csl as one CSL-YAML list, and the prose styles joined
// with blank lines.
func renderCitations(papers []types.Paper, format string) (string, error) {
	switch citation.Format(strings.ToLower(format)) {
	case citation.CSL:
		var buf bytes.Buffer
		if err := citation.FormatCSL(papers, &buf); err != nil {
			return "", err
		}
		return buf.String(), nil
	case citation.BibTeX:
		return citation.GenerateBulkBibTeX(papers), nil
	default:
		entries := make([]string, len(papers))
		for i, p := range papers {
			entries[i] = citation.Generate(p, citation.Format(format))
		}
		return strings.Join(entries, "\n\n"), nil
	}
}
