// List command for the shortlink CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your links",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		links := appLinks.ListMine()

		if flagJSON {
			printJSON(links)
			return nil
		}
		if len(links) == 0 {
			fmt.Println("No links yet. Try: shortlink create <url>")
			return nil
		}
		for _, link := range links {
			fmt.Println(fmtLink(link))
		}
		return nil
	},
}
