package cmd

import (
	"fmt"

	"github.com/defactosf/nbafetch/core"
	"github.com/defactosf/nbafetch/internal/contract"
	"github.com/defactosf/nbafetch/schema"
	"github.com/spf13/cobra"
)

// teamStatsCmd fetches one team's per-game log.
var teamStatsCmd = &cobra.Command{
	Use:   "team-stats",
	Short: "Fetch a team's game log for a season.",
	Long: `Fetch the per-game stat line of one team across a season and export
the full log as a data file. The team may be given by numeric id or by
abbreviation.

Examples:
  nbafetch team-stats --team-id 1610612747
  nbafetch team-stats --team-abbr LAL --season 2023-24`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(cmd, args); err != nil {
			return err
		}
		if cfg.TeamID == 0 && cfg.TeamAbbr != "" {
			team, ok := schema.TeamByAbbreviation(cfg.TeamAbbr)
			if !ok {
				return fmt.Errorf("unknown team abbreviation %q (use list-teams)", cfg.TeamAbbr)
			}
			cfg.TeamID = team.ID
		}
		if cfg.TeamID == 0 {
			return fmt.Errorf("--team-id or --team-abbr is required (use list-teams to find one)")
		}
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTeamStats(rootCtx, cfg, newStatsClient()); err != nil {
			contract.LogFatal("Cannot fetch team stats", err)
		}
	},
}
