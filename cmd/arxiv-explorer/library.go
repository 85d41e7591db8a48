package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Inspect and export the local library",
	Long: `Library operates on the local database as a whole. Export writes a
full snapshot (bookmarks, history, searches, collections, preferences)
to a YAML or JSON file for backup or migration.`,
}

var libraryExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library to YAML or JSON",
	RunE:  runLibraryExport,
}

func init() {
	libraryExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	libraryExportCmd.Flags().String("output", "", "output file (default library-export.yaml or .json)")

	libraryCmd.AddCommand(libraryExportCmd)
	rootCmd.AddCommand(libraryCmd)
}

func runLibraryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()
	ctx := context.Background()

	switch format {
	case "yaml", "":
		if output == "" {
			output = "library-export.yaml"
		}
		if err := lib.ExportYAML(ctx, output); err != nil {
			return err
		}
	case "json":
		if output == "" {
			output = "library-export.json"
		}
		if err := lib.ExportJSON(ctx, output); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	fmt.Printf("Exported library to %s\n", output)
	return nil
}
