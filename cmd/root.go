package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/defactosf/nbafetch/internal/boxscore"
	"github.com/defactosf/nbafetch/internal/contract"
	"github.com/defactosf/nbafetch/internal/statsapi"
	"github.com/defactosf/nbafetch/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "nbafetch",
	Short:              "Fetch NBA stats and daily boxscores into local data files.",
	Long:               `Nbafetch pulls games, player stats, standings and daily boxscores from NBA data providers and exports them as JSON, CSV or Parquet.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".nbafetch") // Name of config file (without extension)
		viper.SetConfigType("yaml")      // We'll use YAML format
		viper.AddConfigPath(".")         // Look in the current directory
		viper.AddConfigPath("$HOME")     // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("NBAFETCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("season", contract.DefaultSeason)
	viper.SetDefault("min-minutes", contract.DefaultMinMinutes)
	viper.SetDefault("format", schema.JSONFormat)
	viper.SetDefault("output-dir", contract.DefaultOutputDir)
	viper.SetDefault("timeout", contract.DefaultTimeoutSeconds)
	viper.SetDefault("auth-mode", schema.QueryAuth)
	viper.SetDefault("base-url", boxscore.BaseURL)
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and complex parsing.
	// This function populates the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// newStatsClient builds the stats-provider client from validated config.
func newStatsClient() contract.StatsProvider {
	return statsapi.New(cfg.StatsBaseURL, cfg.Timeout)
}

// newBoxscoreClient builds the boxscore-provider client from validated config.
func newBoxscoreClient() contract.BoxscoreProvider {
	return boxscore.New(boxscore.Options{
		BaseURL:   cfg.BoxscoreBaseURL,
		APIKey:    cfg.APIKey,
		AuthMode:  cfg.AuthMode,
		Endpoints: cfg.Endpoints,
		Timeout:   cfg.Timeout,
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
