package cmd

import (
	"github.com/defactosf/nbafetch/core"
	"github.com/defactosf/nbafetch/internal/contract"
	"github.com/spf13/cobra"
)

// playersCmd fetches the season's full player list.
var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Fetch the full player list for a season.",
	Long: `Fetch every player of a season, including ids and team assignments,
and export the list as a data file.

Examples:
  nbafetch players
  nbafetch players --season 2023-24 --format parquet`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePlayers(rootCtx, cfg, newStatsClient()); err != nil {
			contract.LogFatal("Cannot fetch players", err)
		}
	},
}
