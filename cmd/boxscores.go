package cmd

import (
	"fmt"

	"github.com/defactosf/nbafetch/core"
	"github.com/defactosf/nbafetch/internal/contract"
	"github.com/spf13/cobra"
)

// boxscoresCmd fetches daily boxscore documents for a date or a date range.
var boxscoresCmd = &cobra.Command{
	Use:   "boxscores",
	Short: "Fetch daily boxscore documents for a date or date range.",
	Long: `Fetch the boxscore document for one date, or one document per day
across an inclusive date range, and export them verbatim as JSON.

The provider's endpoint paths are probed from a candidate list, so the
command keeps working when the provider shuffles its routes. A range
fetch records per-date failures inside the batch instead of aborting,
so one bad day never loses the rest.

An API key is required. Prefer the NBAFETCH_API_KEY environment variable
over the --api-key flag so the key stays out of shell history.

Examples:
  # One day
  nbafetch boxscores --date 2025-01-15

  # A week, sending the key as a header
  nbafetch boxscores --start-date 2025-01-13 --end-date 2025-01-19 --auth-mode header`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(cmd, args); err != nil {
			return err
		}
		if cfg.Date.IsZero() && cfg.StartDate.IsZero() {
			return fmt.Errorf("--date or --start-date/--end-date is required")
		}
		if !cfg.Date.IsZero() && !cfg.StartDate.IsZero() {
			return fmt.Errorf("--date and --start-date/--end-date are mutually exclusive")
		}
		if cfg.APIKey == "" {
			return fmt.Errorf("an API key is required (set NBAFETCH_API_KEY or --api-key)")
		}
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		client := newBoxscoreClient()
		if !cfg.Date.IsZero() {
			if err := core.ExecuteBoxscoreDate(rootCtx, cfg, client); err != nil {
				contract.LogFatal("Cannot fetch boxscores", err)
			}
			return
		}
		if err := core.ExecuteBoxscoreRange(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot fetch boxscore range", err)
		}
	},
}
