package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashutosh-ps/arxiv-explorer/internal/arxiv"
)

var getCmd = &cobra.Command{
	Use:   "get <arxiv-id>...",
	Short: "Fetch papers by arXiv ID",
	Long: `Get fetches one or more papers directly by arXiv ID (e.g. 1706.03762)
and prints them in full. Viewed papers are added to the reading history
unless --no-history is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().Bool("json", false, "output papers as JSON")
	getCmd.Flags().Bool("no-history", false, "do not record viewed papers in the reading history")

	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	client := arxiv.NewClient(searchConfig())
	ctx := context.Background()

	papers, err := client.GetByIDs(ctx, args)
	if err != nil {
		return err
	}
	if len(papers) == 0 {
		return fmt.Errorf("no papers found for %v", args)
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		if lib, err := openLibrary(); err == nil {
			for _, p := range papers {
				lib.AddToHistory(ctx, p)
			}
			lib.Close()
		}
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(papers)
	}

	for i, p := range papers {
		if i > 0 {
			fmt.Println()
		}
		printPaperDetail(p)
	}
	return nil
}
