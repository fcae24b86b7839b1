// Open command for the shortlink CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <code-or-short-url>",
	Short: "Open a short link in the browser",
	Long: `Open resolves the short code, checks the TTL and the click quota,
counts the click and launches the browser. Anyone may open a link, not
just its owner.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := appLinks.Open(args[0])
		if err != nil {
			fail("open", err)
		}

		if flagJSON {
			printJSON(res.Link)
			return nil
		}
		fmt.Printf("Opening %s (click %d/%s)\n",
			res.Link.LongURL, res.Link.ClickCount, fmtLimit(res.Link.ClickLimit))
		if !res.Launched {
			fmt.Println("Could not start a browser; open the URL manually.")
		}
		return nil
	},
}
