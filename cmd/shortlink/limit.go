// Limit command for the shortlink CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	limitSet       int
	limitUnlimited bool
)

var limitCmd = &cobra.Command{
	Use:   "limit <code-or-short-url>",
	Short: "Change the click limit of one of your links",
	Long: `Limit sets a new click quota (--set) or removes it (--unlimited).
Lowering the limit below the clicks already counted is refused; setting it
exactly to the counted clicks retires the link immediately.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setChanged := cmd.Flags().Changed("set")
		if setChanged == limitUnlimited {
			fmt.Fprintln(os.Stderr, "limit: pass exactly one of --set or --unlimited")
			os.Exit(exitUserError)
		}

		var newLimit *int
		if setChanged {
			newLimit = &limitSet
		}

		link, err := appLinks.EditClickLimit(args[0], newLimit)
		if err != nil {
			fail("limit", err)
		}

		if flagJSON {
			printJSON(link)
			return nil
		}
		fmt.Printf("Limit of %s is now %s (clicks so far: %d, status %s)\n",
			appLinks.ShortURL(link.ShortCode), fmtLimit(link.ClickLimit),
			link.ClickCount, link.Status)
		return nil
	},
}

func init() {
	limitCmd.Flags().IntVar(&limitSet, "set", 0, "new click limit")
	limitCmd.Flags().BoolVar(&limitUnlimited, "unlimited", false, "remove the click limit")
}
