package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently viewed papers",
	Long: `History lists the reading history, most recent first. Papers are added
when viewed with the get command; the list keeps the last 100 views.`,
	RunE: runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the reading history",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		if !lib.ClearHistory(context.Background()) {
			return fmt.Errorf("clearing history failed")
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	historyCmd.Flags().Bool("json", false, "output history as JSON")

	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	history := lib.History(context.Background())

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(history)
	}

	if len(history) == 0 {
		fmt.Println("No viewing history.")
		return nil
	}
	papers := make([]types.Paper, len(history))
	for i, h := range history {
		papers[i] = h.Paper
	}
	printPapers(papers)
	return nil
}
