package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashutosh-ps/arxiv-explorer/internal/arxiv"
	"github.com/ashutosh-ps/arxiv-explorer/internal/citation"
	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Manage saved papers",
	Long: `Bookmarks lists, adds, and removes saved papers. Adding fetches the
paper from arXiv by ID; each paper can be bookmarked once.`,
	RunE: runBookmarksList,
}

var bookmarksAddCmd = &cobra.Command{
	Use:   "add <arxiv-id>...",
	Short: "Bookmark papers by arXiv ID",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBookmarksAdd,
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:   "remove <arxiv-id>...",
	Short: "Remove bookmarks by arXiv ID",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBookmarksRemove,
}

func init() {
	bookmarksCmd.Flags().Bool("json", false, "output bookmarks as JSON")

	bookmarksCmd.AddCommand(bookmarksAddCmd)
	bookmarksCmd.AddCommand(bookmarksRemoveCmd)
	rootCmd.AddCommand(bookmarksCmd)
}

func runBookmarksList(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	bookmarks := lib.Bookmarks(context.Background())

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(bookmarks)
	}

	if len(bookmarks) == 0 {
		fmt.Println("No bookmarks.")
		return nil
	}
	papers := make([]types.Paper, len(bookmarks))
	for i, b := range bookmarks {
		papers[i] = b.Paper
	}
	printPapers(papers)
	return nil
}

func runBookmarksAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client := arxiv.NewClient(searchConfig())
	papers, err := client.GetByIDs(ctx, args)
	if err != nil {
		return err
	}
	if len(papers) == 0 {
		return fmt.Errorf("no papers found for %v", args)
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	for _, p := range papers {
		if lib.AddBookmark(ctx, p) {
			fmt.Printf("Bookmarked %s: %s\n", citation.ArxivID(p), p.Title)
		} else {
			fmt.Printf("Already bookmarked: %s\n", citation.ArxivID(p))
		}
	}
	return nil
}

func runBookmarksRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	// Match by bare arXiv ID so users need not paste full abs URLs.
	for _, arg := range args {
		removed := false
		for _, b := range lib.Bookmarks(ctx) {
			if citation.ArxivID(b.Paper) == arg || b.ID == arg {
				lib.RemoveBookmark(ctx, b.ID)
				removed = true
				break
			}
		}
		if removed {
			fmt.Printf("Removed bookmark %s\n", arg)
		} else {
			fmt.Printf("No bookmark for %s\n", arg)
		}
	}
	return nil
}
