// Delete command for the shortlink CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <code-or-short-url>",
	Short: "Delete one of your links",
	Long:  `Delete removes the link record permanently. Only the owner may delete a link.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appLinks.Delete(args[0]); err != nil {
			fail("delete", err)
		}
		if flagJSON {
			printJSON(map[string]string{"deleted": args[0]})
			return nil
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}
