package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/defactosf/nbafetch/schema"
)

// Default values for configuration.
const (
	DefaultSeason         = "2024-25"
	DefaultMinMinutes     = 15.0
	DefaultOutputDir      = "data"
	DefaultTimeoutSeconds = 30
)

// DateFormat is the calendar date representation used on flags, filenames
// and boxscore endpoint paths.
const DateFormat = "2006-01-02"

// TimestampFormat is the filename suffix that keeps repeated exports from
// overwriting each other.
const TimestampFormat = "20060102_150405"

// DatePlaceholder marks where the date goes in a candidate endpoint template.
const DatePlaceholder = "{date}"

// Config holds the runtime configuration for a fetch run.
// This struct remains the "final, validated" config.
type Config struct {
	Season     string
	TeamAbbr   string
	TeamID     int
	PlayerID   int
	PlayerName string
	MinMinutes float64

	Format    schema.OutputFormat
	OutputDir string
	Timeout   time.Duration

	StatsBaseURL string

	BoxscoreBaseURL string
	APIKey          string
	AuthMode        schema.AuthMode
	Endpoints       []string // Candidate path templates, in priority order

	Date      time.Time // Zero when not supplied
	StartDate time.Time
	EndDate   time.Time

	UseColors bool
	Width     int // Terminal width override (0 = auto-detect)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Season     string  `mapstructure:"season"`
	TeamAbbr   string  `mapstructure:"team-abbr"`
	TeamID     int     `mapstructure:"team-id"`
	PlayerID   int     `mapstructure:"player-id"`
	PlayerName string  `mapstructure:"player-name"`
	MinMinutes float64 `mapstructure:"min-minutes"`

	Format         string `mapstructure:"format"`
	OutputDir      string `mapstructure:"output-dir"`
	TimeoutSeconds int    `mapstructure:"timeout"`

	StatsBaseURL string `mapstructure:"stats-base-url"`

	BoxscoreBaseURL string `mapstructure:"base-url"`
	APIKey          string `mapstructure:"api-key"` // Please use env var as this is plaintext
	AuthMode        string `mapstructure:"auth-mode"`
	Endpoints       string `mapstructure:"endpoints"` // Comma-separated templates

	Date      string `mapstructure:"date"`
	StartDate string `mapstructure:"start-date"`
	EndDate   string `mapstructure:"end-date"`

	Color string `mapstructure:"color"`
	Width int    `mapstructure:"width"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processBoxscoreInputs(cfg, input); err != nil {
		return err
	}
	if err := processDates(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-boxscore fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.TeamAbbr = strings.ToUpper(strings.TrimSpace(input.TeamAbbr))
	cfg.TeamID = input.TeamID
	cfg.PlayerID = input.PlayerID
	cfg.PlayerName = strings.TrimSpace(input.PlayerName)
	cfg.OutputDir = input.OutputDir
	cfg.StatsBaseURL = input.StatsBaseURL
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Season Validation ---
	cfg.Season = strings.TrimSpace(input.Season)
	if cfg.Season == "" {
		return fmt.Errorf("season must not be empty (e.g. %q)", DefaultSeason)
	}

	// --- 2. Minutes Validation ---
	if input.MinMinutes < 0 {
		return fmt.Errorf("min-minutes must not be negative (received %.1f)", input.MinMinutes)
	}
	cfg.MinMinutes = input.MinMinutes

	// --- 3. Format Validation ---
	cfg.Format = schema.OutputFormat(strings.ToLower(input.Format))
	if _, ok := schema.ValidOutputFormats[cfg.Format]; !ok {
		return fmt.Errorf("unsupported format '%s'. must be json, csv, parquet", input.Format)
	}

	// --- 4. Output Directory Validation ---
	if cfg.OutputDir == "" {
		return fmt.Errorf("output-dir must not be empty")
	}

	// --- 5. Timeout Validation ---
	if input.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout must be greater than 0 seconds (received %d)", input.TimeoutSeconds)
	}
	cfg.Timeout = time.Duration(input.TimeoutSeconds) * time.Second

	return nil
}

// processBoxscoreInputs validates the boxscore auth mode and the candidate
// endpoint templates.
func processBoxscoreInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.BoxscoreBaseURL = strings.TrimRight(strings.TrimSpace(input.BoxscoreBaseURL), "/")
	cfg.APIKey = strings.TrimSpace(input.APIKey)

	cfg.AuthMode = schema.AuthMode(strings.ToLower(input.AuthMode))
	if _, ok := schema.ValidAuthModes[cfg.AuthMode]; !ok {
		return fmt.Errorf("invalid auth mode '%s'. must be query, header, both", input.AuthMode)
	}

	cfg.Endpoints = nil
	if input.Endpoints != "" {
		for part := range strings.SplitSeq(input.Endpoints, ",") {
			tmpl := strings.TrimSpace(part)
			if tmpl == "" {
				continue
			}
			if !strings.Contains(tmpl, DatePlaceholder) {
				return fmt.Errorf("endpoint template '%s' is missing the %s placeholder", tmpl, DatePlaceholder)
			}
			cfg.Endpoints = append(cfg.Endpoints, tmpl)
		}
	}

	return nil
}

// processDates parses the optional single date and date-range flags.
func processDates(cfg *Config, input *ConfigRawInput) error {
	parse := func(flag, s string) (time.Time, error) {
		t, err := time.Parse(DateFormat, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --%s value '%s'. Expected %s: %w", flag, s, DateFormat, err)
		}
		return t, nil
	}

	var err error
	if input.Date != "" {
		if cfg.Date, err = parse("date", input.Date); err != nil {
			return err
		}
	}
	if input.StartDate != "" {
		if cfg.StartDate, err = parse("start-date", input.StartDate); err != nil {
			return err
		}
	}
	if input.EndDate != "" {
		if cfg.EndDate, err = parse("end-date", input.EndDate); err != nil {
			return err
		}
	}

	if cfg.StartDate.IsZero() != cfg.EndDate.IsZero() {
		return fmt.Errorf("--start-date and --end-date must be supplied together")
	}
	if !cfg.StartDate.IsZero() && cfg.StartDate.After(cfg.EndDate) {
		return fmt.Errorf("start date (%s) cannot be after end date (%s)",
			cfg.StartDate.Format(DateFormat), cfg.EndDate.Format(DateFormat))
	}

	return nil
}
