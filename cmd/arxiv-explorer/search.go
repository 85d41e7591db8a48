package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ashutosh-ps/arxiv-explorer/internal/arxiv"
	"github.com/ashutosh-ps/arxiv-explorer/internal/citation"
	"github.com/ashutosh-ps/arxiv-explorer/internal/codelinks"
	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search arXiv for papers",
	Long: `Search queries the arXiv API. The --type flag selects the search mode:
all (default), title, author, abstract, category, or advanced. Advanced
mode passes the query through verbatim, so boolean operators and field
prefixes (ti:, au:, cat:) reach the API unchanged, and accepts explicit
sort parameters.

Providing --from and/or --to restricts results by submission date.
Date-range searches always cover all fields and cannot be combined with
--type. Successful searches are recorded in the local search history
unless --no-history is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("type", "all", "search mode: all, title, author, abstract, category, advanced")
	searchCmd.Flags().String("sort-by", "relevance", "advanced mode sort field: relevance, lastUpdatedDate, submittedDate")
	searchCmd.Flags().String("sort-order", "descending", "advanced mode sort direction: ascending, descending")
	searchCmd.Flags().String("from", "", "submission date range start (YYYY-MM-DD)")
	searchCmd.Flags().String("to", "", "submission date range end (YYYY-MM-DD)")
	searchCmd.Flags().Int("start", 0, "result offset for pagination")
	searchCmd.Flags().Int("max-results", 0, "maximum results per page (0 = configured default)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("check-code", false, "annotate results with code availability")
	searchCmd.Flags().Bool("no-history", false, "do not record this search in the search history")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	searchType, _ := cmd.Flags().GetString("type")
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")
	start, _ := cmd.Flags().GetInt("start")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	client := arxiv.NewClient(searchConfig())
	ctx := context.Background()

	var (
		papers []types.Paper
		err    error
	)

	switch {
	case fromStr != "" || toStr != "":
		// Date-range searches always run across all fields, so an
		// explicit --type would be silently ignored. Reject it instead.
		if cmd.Flags().Changed("type") {
			return fmt.Errorf("--type cannot be combined with --from/--to: date-range searches cover all fields")
		}
		from, to, perr := parseDateRange(fromStr, toStr)
		if perr != nil {
			return perr
		}
		papers, err = client.SearchByDateRange(ctx, query, from, to, start, maxResults)
	default:
		switch types.SearchType(searchType) {
		case types.SearchAll:
			papers, err = client.SearchAllFields(ctx, query, start, maxResults)
		case types.SearchTitle:
			papers, err = client.SearchByTitle(ctx, query, start, maxResults)
		case types.SearchAuthor:
			papers, err = client.SearchByAuthor(ctx, query, start, maxResults)
		case types.SearchAbstract:
			papers, err = client.SearchByAbstract(ctx, query, start, maxResults)
		case types.SearchCategory:
			papers, err = client.SearchByCategory(ctx, query, start, maxResults)
		case types.SearchAdvanced:
			sortBy, _ := cmd.Flags().GetString("sort-by")
			sortOrder, _ := cmd.Flags().GetString("sort-order")
			papers, err = client.AdvancedSearch(ctx, query,
				arxiv.SortBy(sortBy), arxiv.SortOrder(sortOrder), start, maxResults)
		default:
			return fmt.Errorf("unknown search type %q: use all, title, author, abstract, category, or advanced", searchType)
		}
	}
	if err != nil {
		return err
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		recordSearch(ctx, query, types.SearchType(searchType), len(papers))
	}

	var hasCode map[string]bool
	if checkCode, _ := cmd.Flags().GetBool("check-code"); checkCode {
		ids := make([]string, len(papers))
		for i, p := range papers {
			ids[i] = p.ID
		}
		hasCode = codelinks.NewClient(codeLinksConfig(), logger).BatchCheckCode(ctx, ids)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(papers)
	}

	printPapers(papers)
	if hasCode != nil {
		printCodeAvailability(papers, hasCode)
	}
	if client.HasMore(len(papers), maxResults) {
		next := start + len(papers)
		fmt.Printf("\nMore results may be available; rerun with --start %d\n", next)
	}
	return nil
}

// parseDateRange parses --from/--to, defaulting an omitted start to the
// epoch and an omitted end to now.
func parseDateRange(fromStr, toStr string) (from, to time.Time, err error) {
	if fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			return from, to, fmt.Errorf("invalid --from date %q: use YYYY-MM-DD", fromStr)
		}
	}
	to = time.Now()
	if toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			return from, to, fmt.Errorf("invalid --to date %q: use YYYY-MM-DD", toStr)
		}
	}
	return from, to, nil
}

// recordSearch stores the search in the local history. Library failures
// never fail the search itself.
func recordSearch(ctx context.Context, query string, searchType types.SearchType, resultCount int) {
	lib, err := openLibrary()
	if err != nil {
		logger.Warn("search history unavailable", zap.Error(err))
		return
	}
	defer lib.Close()
	lib.AddSearchToHistory(ctx, query, searchType, resultCount)
}

func printCodeAvailability(papers []types.Paper, hasCode map[string]bool) {
	var withCode []string
	for _, p := range papers {
		id := codelinks.ExtractArxivID(p.ID)
		if hasCode[id] {
			withCode = append(withCode, citation.ArxivID(p))
		}
	}
	if len(withCode) == 0 {
		fmt.Println("\nNo code implementations found for these papers.")
		return
	}
	fmt.Printf("\nCode available: %s\n", strings.Join(withCode, ", "))
}
