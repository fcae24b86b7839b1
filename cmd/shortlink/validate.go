// Validate command for the shortlink CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the link store for inconsistencies",
	Long: `Validate scans links.json for duplicate IDs or short codes, missing
fields, unknown statuses and counters that disagree with the lifecycle
rules. The store is never modified. Exits non-zero when issues are found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		report := appLinks.ValidateStore()

		if flagJSON {
			printJSON(report)
		} else {
			fmt.Printf("Checked %d links, %d issues\n", report.TotalLinks, report.Issues)
			for _, msg := range report.Messages {
				fmt.Println(" -", msg)
			}
		}
		if !report.OK() {
			os.Exit(exitUserError)
		}
		return nil
	},
}
