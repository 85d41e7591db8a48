package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ashutosh-ps/arxiv-explorer/internal/arxiv"
	"github.com/ashutosh-ps/arxiv-explorer/internal/citation"
	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Organize papers into named collections",
	Long: `Collections groups papers under user-chosen names. Papers are added by
arXiv ID and fetched on demand; a collection holds each paper once.
Collections are addressed by ID or, when unambiguous, by name.`,
	RunE: runCollectionsList,
}

var collectionsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an empty collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		c := lib.CreateCollection(context.Background(), args[0])
		if c == nil {
			return fmt.Errorf("creating collection failed")
		}
		fmt.Printf("Created collection %q (%s)\n", c.Name, c.ID)
		return nil
	},
}

var collectionsShowCmd = &cobra.Command{
	Use:   "show <collection>",
	Short: "Show the papers in a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionsShow,
}

var collectionsAddCmd = &cobra.Command{
	Use:   "add <collection> <arxiv-id>...",
	Short: "Add papers to a collection",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCollectionsAdd,
}

var collectionsRemoveCmd = &cobra.Command{
	Use:   "remove <collection> <arxiv-id>...",
	Short: "Remove papers from a collection",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCollectionsRemove,
}

var collectionsDeleteCmd = &cobra.Command{
	Use:   "delete <collection>",
	Short: "Delete a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		c, err := findCollection(lib.Collections(ctx), args[0])
		if err != nil {
			return err
		}
		if !lib.DeleteCollection(ctx, c.ID) {
			return fmt.Errorf("deleting collection failed")
		}
		fmt.Printf("Deleted collection %q\n", c.Name)
		return nil
	},
}

func init() {
	collectionsCmd.Flags().Bool("json", false, "output collections as JSON")

	collectionsCmd.AddCommand(collectionsCreateCmd)
	collectionsCmd.AddCommand(collectionsShowCmd)
	collectionsCmd.AddCommand(collectionsAddCmd)
	collectionsCmd.AddCommand(collectionsRemoveCmd)
	collectionsCmd.AddCommand(collectionsDeleteCmd)
	rootCmd.AddCommand(collectionsCmd)
}

func runCollectionsList(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	collections := lib.Collections(context.Background())

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(collections)
	}

	if len(collections) == 0 {
		fmt.Println("No collections.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-30s  %-8s  %s\n", "ID", "Name", "Papers", "Created")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, c := range collections {
		fmt.Fprintf(os.Stdout, "%-36s  %-30s  %-8d  %s\n",
			c.ID, truncate(c.Name, 30), len(c.Papers), c.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func runCollectionsShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	c, err := findCollection(lib.Collections(ctx), args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s (%d papers)\n\n", c.Name, len(c.Papers))
	printPapers(c.Papers)
	return nil
}

func runCollectionsAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	c, err := findCollection(lib.Collections(ctx), args[0])
	if err != nil {
		return err
	}

	client := arxiv.NewClient(searchConfig())
	papers, err := client.GetByIDs(ctx, args[1:])
	if err != nil {
		return err
	}
	if len(papers) == 0 {
		return fmt.Errorf("no papers found for %v", args[1:])
	}

	for _, p := range papers {
		if lib.AddToCollection(ctx, c.ID, p) {
			fmt.Printf("Added %s to %q\n", citation.ArxivID(p), c.Name)
		} else {
			fmt.Printf("Already in %q: %s\n", c.Name, citation.ArxivID(p))
		}
	}
	return nil
}

func runCollectionsRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	c, err := findCollection(lib.Collections(ctx), args[0])
	if err != nil {
		return err
	}

	for _, arg := range args[1:] {
		removed := false
		for _, p := range c.Papers {
			if citation.ArxivID(p) == arg || p.ID == arg {
				lib.RemoveFromCollection(ctx, c.ID, p.ID)
				removed = true
				break
			}
		}
		if removed {
			fmt.Printf("Removed %s from %q\n", arg, c.Name)
		} else {
			fmt.Printf("Not in %q: %s\n", c.Name, arg)
		}
	}
	return nil
}

// findCollection resolves a collection by ID, then by unique name.
func findCollection(collections []types.Collection, ref string) (types.Collection, error) {
	for _, c := range collections {
		if c.ID == ref {
			return c, nil
		}
	}
	var matches []types.Collection
	for _, c := range collections {
		if strings.EqualFold(c.Name, ref) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return types.Collection{}, fmt.Errorf("no collection %q", ref)
	default:
		return types.Collection{}, fmt.Errorf("collection name %q is ambiguous; use the ID", ref)
	}
}
