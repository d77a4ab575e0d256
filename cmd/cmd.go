// Package cmd defines the command-line interface for nbafetch.
package cmd

import (
	"github.com/defactosf/nbafetch/internal/contract"
	"github.com/defactosf/nbafetch/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(playerStatsCmd)
	rootCmd.AddCommand(teamStatsCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(playerTotalsCmd)
	rootCmd.AddCommand(listTeamsCmd)
	rootCmd.AddCommand(searchPlayerCmd)
	rootCmd.AddCommand(boxscoresCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("season", "s", contract.DefaultSeason, "Season in YYYY-YY form (e.g. 2024-25)")
	rootCmd.PersistentFlags().String("team-abbr", "", "Team abbreviation (e.g. LAL); filters games, resolves team-stats")
	rootCmd.PersistentFlags().StringP("format", "f", string(schema.JSONFormat), "Output format: json or csv or parquet")
	rootCmd.PersistentFlags().StringP("output-dir", "o", contract.DefaultOutputDir, "Directory where export files are written")
	rootCmd.PersistentFlags().Int("timeout", contract.DefaultTimeoutSeconds, "Per-request timeout in seconds")
	rootCmd.PersistentFlags().String("stats-base-url", "", "Stats provider base URL override")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of playerStatsCmd to Viper
	playerStatsCmd.Flags().Int("player-id", 0, "Numeric player id (find one with search-player)")
	if err := viper.BindPFlags(playerStatsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding player-stats flags", err)
	}

	// Bind all flags of teamStatsCmd to Viper
	teamStatsCmd.Flags().Int("team-id", 0, "Numeric team id (find one with list-teams)")
	if err := viper.BindPFlags(teamStatsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding team-stats flags", err)
	}

	// Bind all flags of playerTotalsCmd to Viper
	playerTotalsCmd.Flags().Float64("min-minutes", contract.DefaultMinMinutes, "Keep only players with at least this many total minutes")
	if err := viper.BindPFlags(playerTotalsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding player-totals flags", err)
	}

	// Bind all flags of searchPlayerCmd to Viper
	searchPlayerCmd.Flags().String("player-name", "", "Name fragment to search for (case-insensitive)")
	if err := viper.BindPFlags(searchPlayerCmd.Flags()); err != nil {
		contract.LogFatal("Error binding search-player flags", err)
	}

	// Bind all flags of boxscoresCmd to Viper
	boxscoresCmd.Flags().String("date", "", "Single date to fetch (YYYY-MM-DD)")
	boxscoresCmd.Flags().String("start-date", "", "Range start date (YYYY-MM-DD, inclusive)")
	boxscoresCmd.Flags().String("end-date", "", "Range end date (YYYY-MM-DD, inclusive)")
	boxscoresCmd.Flags().String("api-key", "", "Boxscore provider API key (prefer NBAFETCH_API_KEY)")
	boxscoresCmd.Flags().String("auth-mode", string(schema.QueryAuth), "Credential placement: query or header or both")
	boxscoresCmd.Flags().String("base-url", "", "Boxscore provider base URL override")
	boxscoresCmd.Flags().String("endpoints", "", "Comma-separated candidate path templates containing {date}")
	if err := viper.BindPFlags(boxscoresCmd.Flags()); err != nil {
		contract.LogFatal("Error binding boxscores flags", err)
	}
}
