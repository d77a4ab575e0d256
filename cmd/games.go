package cmd

import (
	"github.com/defactosf/nbafetch/core"
	"github.com/defactosf/nbafetch/internal/contract"
	"github.com/spf13/cobra"
)

// gamesCmd fetches the season's games.
var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Fetch all games for a season.",
	Long: `Fetch every game of a season from the stats provider and export
the results as a data file.

Examples:
  # All games of the default season
  nbafetch games

  # One team's games as CSV
  nbafetch games --season 2023-24 --team-abbr LAL --format csv`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGames(rootCtx, cfg, newStatsClient()); err != nil {
			contract.LogFatal("Cannot fetch games", err)
		}
	},
}
