// User commands for the shortlink CLI.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vkuryndin/shortlinkapp/internal/localuser"
	"github.com/vkuryndin/shortlinkapp/internal/paths"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage local user identities",
	Long: `Every link belongs to an owner identified by a UUID stored in the data
directory. These commands list known owners, switch the current one, or
mint a fresh identity.`,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		users := appUsers.ListAll()

		if flagJSON {
			printJSON(users)
			return nil
		}
		current := appUsers.Current()
		for _, u := range users {
			marker := " "
			if u.UUID == current {
				marker = "*"
			}
			fmt.Printf("%s %s  created %s  last seen %s\n", marker, u.UUID, u.CreatedAt, u.LastSeenAt)
		}
		return nil
	},
}

var userSwitchCmd = &cobra.Command{
	Use:   "switch <uuid>",
	Short: "Switch to another user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if err := uuid.Validate(id); err != nil {
			fmt.Fprintf(os.Stderr, "switch: %q is not a valid UUID\n", id)
			os.Exit(exitUserError)
		}

		appUsers.SwitchCurrent(id)
		appLinks.SwitchOwner(id)
		localuser.SetCurrentUUID(appLog, paths.UserUUID(appDataDir), id)

		if flagJSON {
			printJSON(map[string]string{"current": id})
			return nil
		}
		fmt.Println("Current user is now", id)
		return nil
	},
}

var userNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a fresh user identity and switch to it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		id := appUsers.CreateNewAndSwitch()
		appLinks.SwitchOwner(id)
		localuser.SetCurrentUUID(appLog, paths.UserUUID(appDataDir), id)

		if flagJSON {
			printJSON(map[string]string{"current": id})
			return nil
		}
		fmt.Println("Current user is now", id)
		return nil
	},
}

func init() {
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userSwitchCmd)
	userCmd.AddCommand(userNewCmd)
}
