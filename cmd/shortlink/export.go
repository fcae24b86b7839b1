// Export command for the shortlink CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your links to a file",
	Long:  `Export writes a snapshot of your links to a timestamped file in the data directory. Formats: json, sqlite.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			path  string
			count int
			err   error
		)
		switch exportFormat {
		case "json":
			path, count, err = appLinks.ExportMine()
		case "sqlite":
			path, count, err = appLinks.ExportMineSQLite()
		default:
			fmt.Fprintf(os.Stderr, "export: unknown format %q (valid: json, sqlite)\n", exportFormat)
			os.Exit(exitUserError)
		}
		if err != nil {
			fail("export", err)
		}

		if flagJSON {
			printJSON(map[string]any{"path": path, "links": count})
			return nil
		}
		fmt.Printf("Exported %d links to %s\n", count, path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "export format (json, sqlite)")
}
