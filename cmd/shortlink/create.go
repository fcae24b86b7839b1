// Create command for the shortlink CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createLimit int

var createCmd = &cobra.Command{
	Use:   "create <long-url>",
	Short: "Shorten a URL",
	Long: `Create validates the URL, generates a unique short code and stores the
link as ACTIVE. The click limit defaults to the configured value; pass
--limit to override it for this link.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var override *int
		if cmd.Flags().Changed("limit") {
			override = &createLimit
		}

		link, err := appLinks.Create(args[0], override)
		if err != nil {
			fail("create", err)
		}

		if flagJSON {
			printJSON(link)
			return nil
		}
		fmt.Printf("Short link: %s (expires %s, limit %s)\n",
			appLinks.ShortURL(link.ShortCode), link.ExpiresAt, fmtLimit(link.ClickLimit))
		return nil
	},
}

func init() {
	createCmd.Flags().IntVar(&createLimit, "limit", 0, "click limit for this link (overrides the configured default)")
}
