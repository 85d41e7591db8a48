package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ashutosh-ps/arxiv-explorer/internal/codelinks"
	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

var codeCmd = &cobra.Command{
	Use:   "code <arxiv-id>...",
	Short: "Find code implementations for papers",
	Long: `Code looks up repositories linked to papers in the Papers With Code
dataset on HuggingFace. One ID lists its repositories in full, official
implementations first; several IDs print a yes/no availability summary.

Lookups are anonymous by default. A huggingface-token secret raises the
rate limit.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCode,
}

func init() {
	codeCmd.Flags().Bool("json", false, "output repositories as JSON")

	rootCmd.AddCommand(codeCmd)
}

func runCode(cmd *cobra.Command, args []string) error {
	client := codelinks.NewClient(codeLinksConfig(), logger)
	ctx := context.Background()
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if len(args) == 1 {
		repos := client.GetCodeLinks(ctx, args[0])

		if jsonOutput {
			return printJSON(repos)
		}
		if len(repos) == 0 {
			fmt.Println("No code implementations found.")
			return nil
		}

		fmt.Fprintf(os.Stdout, "%-60s  %-12s  %s\n", "Repository", "Framework", "Official")
		fmt.Fprintln(os.Stdout, strings.Repeat("-", 85))
		for _, r := range repos {
			official := ""
			if r.IsOfficial {
				official = "yes"
			}
			fmt.Fprintf(os.Stdout, "%-60s  %-12s  %s\n",
				truncate(repoDisplay(r), 60), codelinks.GetFrameworkInfo(r.Framework).Name, official)
		}
		return nil
	}

	results := client.BatchCheckCode(ctx, args)
	if jsonOutput {
		return printJSON(results)
	}

	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		answer := "no"
		if results[id] {
			answer = "yes"
		}
		fmt.Printf("%-14s  %s\n", id, answer)
	}
	return nil
}

// repoDisplay shows GitHub repositories as owner/repo; other hosts keep
// their full URL.
func repoDisplay(r types.Repository) string {
	if gh := codelinks.ParseGitHubURL(r.URL); gh != nil {
		return gh.FullName
	}
	return r.URL
}
