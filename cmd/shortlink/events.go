// Events command for the shortlink CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var eventsLimit int

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show recent events for your links",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		events := appEvents.RecentByOwner(appLinks.Owner(), eventsLimit)

		if flagJSON {
			printJSON(events)
			return nil
		}
		if len(events) == 0 {
			if !appCfg.EventsLogEnabled {
				fmt.Println("Event log is disabled in the configuration.")
			} else {
				fmt.Println("No events yet.")
			}
			return nil
		}
		for _, ev := range events {
			fmt.Printf("%s  %-13s %-10s %s\n", ev.TS, ev.Type, ev.ShortCode, ev.Message)
		}
		return nil
	},
}

func init() {
	eventsCmd.Flags().IntVar(&eventsLimit, "limit", 20, "number of events to show, newest first")
}
