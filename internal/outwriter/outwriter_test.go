package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/defactosf/nbafetch/internal/contract"
	"github.com/defactosf/nbafetch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, format schema.OutputFormat) *contract.Config {
	t.Helper()
	return &contract.Config{
		Format:    format,
		OutputDir: t.TempDir(),
	}
}

func testRecordSet() *schema.RecordSet {
	return &schema.RecordSet{
		Name:    "Games",
		Columns: []string{"GAME_ID", "MATCHUP", "PTS"},
		Rows: [][]any{
			{"0022400001", "LAL vs. BOS", 110.0},
			{"0022400002", "GSW @ MIA", 98.0},
		},
	}
}

// TestBuildFilename tests the name/timestamp/extension composition.
func TestBuildFilename(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 30, 45, 0, time.UTC)

	assert.Equal(t, "games_2024-25_20250115_123045.json",
		BuildFilename("games_2024-25", schema.JSONFormat, now))
	assert.Equal(t, "standings_2024-25_20250115_123045.csv",
		BuildFilename("standings_2024-25", schema.CSVFormat, now))
	assert.Equal(t, "players_2024-25_20250115_123045.parquet",
		BuildFilename("players_2024-25", schema.ParquetFormat, now))
}

// TestWriteRecordSet tests format dispatch and file content.
func TestWriteRecordSet(t *testing.T) {
	t.Run("json round trip", func(t *testing.T) {
		cfg := testConfig(t, schema.JSONFormat)
		path, err := WriteRecordSet(testRecordSet(), "games", cfg)
		require.NoError(t, err)
		assert.Equal(t, ".json", filepath.Ext(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var records []map[string]any
		require.NoError(t, json.Unmarshal(data, &records))
		require.Equal(t, 2, len(records))
		assert.Equal(t, "LAL vs. BOS", records[0]["MATCHUP"])
	})

	t.Run("csv rows with header", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVFormat)
		path, err := WriteRecordSet(testRecordSet(), "games", cfg)
		require.NoError(t, err)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Equal(t, 3, len(rows))
		assert.Equal(t, []string{"GAME_ID", "MATCHUP", "PTS"}, rows[0])
		assert.Equal(t, "110", rows[1][2])
	})

	t.Run("empty set csv is header-only", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVFormat)
		empty := &schema.RecordSet{Columns: []string{"A", "B"}}
		path, err := WriteRecordSet(empty, "empty", cfg)
		require.NoError(t, err)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Equal(t, 1, len(rows))
		assert.Equal(t, []string{"A", "B"}, rows[0])
	})

	t.Run("unknown format", func(t *testing.T) {
		cfg := testConfig(t, schema.OutputFormat("xml"))
		_, err := WriteRecordSet(testRecordSet(), "games", cfg)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("output dir creation is repeatable", func(t *testing.T) {
		cfg := testConfig(t, schema.JSONFormat)
		cfg.OutputDir = filepath.Join(cfg.OutputDir, "nested", "deep")

		_, err := WriteRecordSet(testRecordSet(), "first", cfg)
		require.NoError(t, err)
		_, err = WriteRecordSet(testRecordSet(), "second", cfg)
		require.NoError(t, err)
	})
}

// TestWriteDocument tests verbatim raw document export.
func TestWriteDocument(t *testing.T) {
	doc := json.RawMessage(`{"games":[{"id":1}],"date":"2025-01-15"}`)

	t.Run("json only", func(t *testing.T) {
		cfg := testConfig(t, schema.JSONFormat)
		path, err := WriteDocument(doc, "boxscores_2025-01-15", cfg)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		// Whitespace may differ but the payload must survive untouched
		assert.JSONEq(t, string(doc), string(data))
	})

	t.Run("tabular formats rejected", func(t *testing.T) {
		for _, format := range []schema.OutputFormat{schema.CSVFormat, schema.ParquetFormat} {
			cfg := testConfig(t, format)
			_, err := WriteDocument(doc, "boxscores", cfg)
			assert.ErrorIs(t, err, ErrUnsupportedFormat)
		}
	})
}

// TestWriteDateResults tests the range batch export shape.
func TestWriteDateResults(t *testing.T) {
	day1 := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	results := []schema.DateResult{
		{Date: day1, Doc: json.RawMessage(`{"ok":true}`)},
		{Date: day2, Err: assert.AnError},
	}

	t.Run("one entry per day with failures recorded", func(t *testing.T) {
		cfg := testConfig(t, schema.JSONFormat)
		path, err := WriteDateResults(results, "boxscores_range", cfg)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var entries []dateEntry
		require.NoError(t, json.Unmarshal(data, &entries))
		require.Equal(t, 2, len(entries))

		assert.Equal(t, "2025-01-15", entries[0].Date)
		assert.JSONEq(t, `{"ok":true}`, string(entries[0].Data))
		assert.Empty(t, entries[0].Error)

		assert.Equal(t, "2025-01-16", entries[1].Date)
		assert.Empty(t, entries[1].Data)
		assert.Equal(t, assert.AnError.Error(), entries[1].Error)
	})

	t.Run("tabular formats rejected", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVFormat)
		_, err := WriteDateResults(results, "boxscores_range", cfg)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}
