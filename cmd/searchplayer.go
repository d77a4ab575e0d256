package cmd

import (
	"fmt"

	"github.com/defactosf/nbafetch/core"
	"github.com/defactosf/nbafetch/internal/contract"
	"github.com/spf13/cobra"
)

// searchPlayerCmd looks up players by name fragment.
var searchPlayerCmd = &cobra.Command{
	Use:   "search-player",
	Short: "Find players by name to get their numeric ids.",
	Long: `Search the season's player list by name fragment, case-insensitive,
and print the matches with their ids. Nothing is exported.

Examples:
  nbafetch search-player --player-name curry
  nbafetch search-player --player-name "james"`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(cmd, args); err != nil {
			return err
		}
		if cfg.PlayerName == "" {
			return fmt.Errorf("--player-name is required")
		}
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSearchPlayers(rootCtx, cfg, newStatsClient()); err != nil {
			contract.LogFatal("Cannot search players", err)
		}
	},
}
