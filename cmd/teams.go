package cmd

import (
	"github.com/defactosf/nbafetch/core"
	"github.com/defactosf/nbafetch/internal/contract"
	"github.com/spf13/cobra"
)

// listTeamsCmd prints the static franchise registry.
var listTeamsCmd = &cobra.Command{
	Use:   "list-teams",
	Short: "List all franchises with their ids and abbreviations.",
	Long: `Print the franchise registry: abbreviation, full name and the
numeric id expected by team-stats. The registry is bundled, so this
command works offline.`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteListTeams(cfg); err != nil {
			contract.LogFatal("Cannot list teams", err)
		}
	},
}
