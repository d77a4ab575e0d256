package contract

import (
	"testing"
	"time"

	"github.com/defactosf/nbafetch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Season:         DefaultSeason,
		MinMinutes:     DefaultMinMinutes,
		Format:         string(schema.JSONFormat),
		OutputDir:      DefaultOutputDir,
		TimeoutSeconds: DefaultTimeoutSeconds,
		AuthMode:       string(schema.QueryAuth),
		Color:          "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{
			name:        "valid minimal config",
			mutate:      func(_ *ConfigRawInput) {},
			expectError: false,
		},
		{
			name:        "empty season",
			mutate:      func(in *ConfigRawInput) { in.Season = "  " },
			expectError: true,
		},
		{
			name:        "negative min-minutes",
			mutate:      func(in *ConfigRawInput) { in.MinMinutes = -1 },
			expectError: true,
		},
		{
			name:        "unknown format",
			mutate:      func(in *ConfigRawInput) { in.Format = "xml" },
			expectError: true,
		},
		{
			name:        "uppercase format accepted",
			mutate:      func(in *ConfigRawInput) { in.Format = "JSON" },
			expectError: false,
		},
		{
			name:        "empty output dir",
			mutate:      func(in *ConfigRawInput) { in.OutputDir = "" },
			expectError: true,
		},
		{
			name:        "zero timeout",
			mutate:      func(in *ConfigRawInput) { in.TimeoutSeconds = 0 },
			expectError: true,
		},
		{
			name:        "unknown auth mode",
			mutate:      func(in *ConfigRawInput) { in.AuthMode = "bearer" },
			expectError: true,
		},
		{
			name:        "endpoint template missing placeholder",
			mutate:      func(in *ConfigRawInput) { in.Endpoints = "boxscores/daily.json" },
			expectError: true,
		},
		{
			name:        "bad color value",
			mutate:      func(in *ConfigRawInput) { in.Color = "maybe" },
			expectError: true,
		},
		{
			name:        "invalid date",
			mutate:      func(in *ConfigRawInput) { in.Date = "01/15/2025" },
			expectError: true,
		},
		{
			name:        "start date without end date",
			mutate:      func(in *ConfigRawInput) { in.StartDate = "2025-01-15" },
			expectError: true,
		},
		{
			name: "start date after end date",
			mutate: func(in *ConfigRawInput) {
				in.StartDate = "2025-01-20"
				in.EndDate = "2025-01-15"
			},
			expectError: true,
		},
		{
			name: "valid date range",
			mutate: func(in *ConfigRawInput) {
				in.StartDate = "2025-01-15"
				in.EndDate = "2025-01-20"
			},
			expectError: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(input)

			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestProcessAndValidateFields tests population of the final config.
func TestProcessAndValidateFields(t *testing.T) {
	input := validInput()
	input.TeamAbbr = " lal "
	input.PlayerName = " Curry "
	input.Endpoints = "a/{date}.json, b/{date}.json ,"
	input.BoxscoreBaseURL = "https://example.com/nba/v1/"
	input.Date = "2025-01-15"
	input.Format = "parquet"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "LAL", cfg.TeamAbbr)
	assert.Equal(t, "Curry", cfg.PlayerName)
	assert.Equal(t, []string{"a/{date}.json", "b/{date}.json"}, cfg.Endpoints)
	assert.Equal(t, "https://example.com/nba/v1", cfg.BoxscoreBaseURL)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), cfg.Date)
	assert.Equal(t, schema.ParquetFormat, cfg.Format)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.True(t, cfg.UseColors)
	assert.True(t, cfg.StartDate.IsZero())
}
