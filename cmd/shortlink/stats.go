// Stats command for the shortlink CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	statsGlobal bool
	statsTop    int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show link statistics",
	Long:  `Stats aggregates your links by status and click totals. --global covers every owner's links.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var st = appLinks.StatsMine(statsTop)
		scope := "your links"
		if statsGlobal {
			st = appLinks.StatsGlobal(statsTop)
			scope = "all links"
		}

		if flagJSON {
			printJSON(st)
			return nil
		}
		fmt.Printf("Stats for %s:\n", scope)
		fmt.Printf("  total %d  active %d  expired %d  limit-reached %d\n",
			st.Total, st.Active, st.Expired, st.LimitReached)
		fmt.Printf("  total clicks: %d\n", st.TotalClicks)
		if len(st.TopByClicks) > 0 {
			fmt.Println("  most clicked:")
			for _, link := range st.TopByClicks {
				fmt.Printf("    %s  %d clicks\n", appLinks.ShortURL(link.ShortCode), link.ClickCount)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsGlobal, "global", false, "aggregate over all owners")
	statsCmd.Flags().IntVar(&statsTop, "top", 3, "number of most-clicked links to show")
}
