package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var searchesCmd = &cobra.Command{
	Use:   "searches",
	Short: "Show recent searches",
	Long: `Searches lists the search history, most recent first. Repeating a search
refreshes its entry instead of duplicating it; the list keeps the last
20 searches. Remove an entry by its timestamp, shown in the listing.`,
	RunE: runSearchesList,
}

var searchesRemoveCmd = &cobra.Command{
	Use:   "remove <timestamp>",
	Short: "Remove one search history entry by timestamp",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchesRemove,
}

var searchesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the search history",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		if !lib.ClearSearchHistory(context.Background()) {
			return fmt.Errorf("clearing search history failed")
		}
		fmt.Println("Search history cleared.")
		return nil
	},
}

func init() {
	searchesCmd.Flags().Bool("json", false, "output search history as JSON")

	searchesCmd.AddCommand(searchesRemoveCmd)
	searchesCmd.AddCommand(searchesClearCmd)
	rootCmd.AddCommand(searchesCmd)
}

func runSearchesList(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	history := lib.SearchHistory(context.Background())

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(history)
	}

	if len(history) == 0 {
		fmt.Println("No search history.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-14s  %-40s  %-10s  %-8s  %s\n",
		"Timestamp", "Query", "Type", "Results", "When")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 95))
	for _, h := range history {
		when := time.UnixMilli(h.Timestamp).Format("2006-01-02 15:04")
		fmt.Fprintf(os.Stdout, "%-14d  %-40s  %-10s  %-8d  %s\n",
			h.Timestamp, truncate(h.Query, 40), h.SearchType, h.ResultCount, when)
	}
	return nil
}

func runSearchesRemove(cmd *cobra.Command, args []string) error {
	timestamp, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q", args[0])
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	if !lib.RemoveSearchFromHistory(context.Background(), timestamp) {
		return fmt.Errorf("removing search history entry failed")
	}
	fmt.Println("Removed.")
	return nil
}
