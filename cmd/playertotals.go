package cmd

import (
	"github.com/defactosf/nbafetch/core"
	"github.com/defactosf/nbafetch/internal/contract"
	"github.com/spf13/cobra"
)

// playerTotalsCmd fetches season totals filtered by minutes played.
var playerTotalsCmd = &cobra.Command{
	Use:   "player-totals",
	Short: "Fetch season totals for players above a minutes threshold.",
	Long: `Fetch season total stats for every player, keep those with at least
the configured total minutes played, and export the filtered set sorted by
minutes in descending order.

Examples:
  # Default threshold
  nbafetch player-totals

  # Heavy rotation players only
  nbafetch player-totals --min-minutes 1500 --format csv`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePlayerTotals(rootCtx, cfg, newStatsClient()); err != nil {
			contract.LogFatal("Cannot fetch player totals", err)
		}
	},
}
