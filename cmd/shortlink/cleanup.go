// Cleanup command for the shortlink CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cleanupMine bool

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Retire expired and quota-exhausted links",
	Long: `Cleanup sweeps the store for links past their TTL or click quota.
Depending on configuration the affected links are removed physically or
marked EXPIRED / LIMIT_REACHED. --mine restricts the sweep to your links.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var expired, limited int
		if cleanupMine {
			expired = appLinks.CleanupExpiredMine()
			limited = appLinks.CleanupLimitReachedMine()
		} else {
			expired = appLinks.CleanupExpired()
			limited = appLinks.CleanupLimitReached()
		}

		if flagJSON {
			printJSON(map[string]int{"expired": expired, "limitReached": limited})
			return nil
		}
		fmt.Printf("Cleanup done: %d expired, %d over the click limit\n", expired, limited)
		return nil
	},
}

func init() {
	cleanupCmd.Flags().BoolVar(&cleanupMine, "mine", false, "clean up your links only")
}
