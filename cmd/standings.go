package cmd

import (
	"github.com/defactosf/nbafetch/core"
	"github.com/defactosf/nbafetch/internal/contract"
	"github.com/spf13/cobra"
)

// standingsCmd fetches the league standings.
var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Fetch the league standings for a season.",
	Long: `Fetch the current league standings, print them as a table, and
export the full standings as a data file.

Examples:
  nbafetch standings
  nbafetch standings --season 2023-24 --format csv`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStandings(rootCtx, cfg, newStatsClient()); err != nil {
			contract.LogFatal("Cannot fetch standings", err)
		}
	},
}
