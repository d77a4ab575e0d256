package cmd

import (
	"fmt"

	"github.com/defactosf/nbafetch/core"
	"github.com/defactosf/nbafetch/internal/contract"
	"github.com/spf13/cobra"
)

// playerStatsCmd fetches one player's per-game log.
var playerStatsCmd = &cobra.Command{
	Use:   "player-stats",
	Short: "Fetch a player's game log for a season.",
	Long: `Fetch the per-game stat line of one player across a season, print
the most recent games, and export the full log as a data file.

Examples:
  # LeBron James
  nbafetch player-stats --player-id 2544

  # Find the id first
  nbafetch search-player --player-name lebron`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(cmd, args); err != nil {
			return err
		}
		if cfg.PlayerID == 0 {
			return fmt.Errorf("--player-id is required (use search-player to find one)")
		}
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePlayerStats(rootCtx, cfg, newStatsClient()); err != nil {
			contract.LogFatal("Cannot fetch player stats", err)
		}
	},
}
