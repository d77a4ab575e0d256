// Package outwriter has the export stage: serializing record sets and raw
// boxscore documents to timestamped files, plus the stdout summary tables.
package outwriter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/defactosf/nbafetch/internal/contract"
	"github.com/defactosf/nbafetch/internal/parquet"
	"github.com/defactosf/nbafetch/schema"
)

// ErrUnsupportedFormat reports an export request the target data cannot
// satisfy: an unrecognized format value, or a non-tabular document sent to
// a tabular format. It is a configuration error and always fatal.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// BuildFilename produces the deterministic export filename: logical name,
// timestamp suffix, format extension. The suffix keeps repeated runs from
// overwriting each other.
func BuildFilename(name string, format schema.OutputFormat, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", name, now.Format(contract.TimestampFormat), format.Extension())
}

// ensureOutputDir creates the output directory if absent. Safe to repeat.
func ensureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return nil
}

// WriteRecordSet serializes a record set in the configured format and
// returns the written path.
func WriteRecordSet(rs *schema.RecordSet, name string, cfg *contract.Config) (string, error) {
	if err := ensureOutputDir(cfg.OutputDir); err != nil {
		return "", err
	}
	path := filepath.Join(cfg.OutputDir, BuildFilename(name, cfg.Format, time.Now()))

	switch cfg.Format {
	case schema.JSONFormat:
		if err := writeJSONFile(path, rs.Records()); err != nil {
			return "", err
		}
	case schema.CSVFormat:
		if err := writeCSVFile(path, rs); err != nil {
			return "", err
		}
	case schema.ParquetFormat:
		if err := parquet.WriteRecordSet(rs, path); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, cfg.Format)
	}
	return path, nil
}

// WriteDocument persists a raw provider document verbatim, re-indented for
// readability. Raw documents are not tabular, so only JSON is accepted.
func WriteDocument(doc json.RawMessage, name string, cfg *contract.Config) (string, error) {
	if cfg.Format != schema.JSONFormat {
		return "", fmt.Errorf("%w: raw boxscore documents cannot be exported as %s", ErrUnsupportedFormat, cfg.Format)
	}
	if err := ensureOutputDir(cfg.OutputDir); err != nil {
		return "", err
	}
	path := filepath.Join(cfg.OutputDir, BuildFilename(name, cfg.Format, time.Now()))

	if err := writeIndentedJSONFile(path, doc); err != nil {
		return "", err
	}
	return path, nil
}

// dateEntry is the JSON shape of one day within an exported range batch.
// Successful days embed the provider document verbatim; failed days record
// the error text instead.
type dateEntry struct {
	Date  string          `json:"date"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// WriteDateResults persists a date-range batch as a JSON array with one
// entry per calendar day, in the order fetched.
func WriteDateResults(results []schema.DateResult, name string, cfg *contract.Config) (string, error) {
	if cfg.Format != schema.JSONFormat {
		return "", fmt.Errorf("%w: date-range batches cannot be exported as %s", ErrUnsupportedFormat, cfg.Format)
	}
	if err := ensureOutputDir(cfg.OutputDir); err != nil {
		return "", err
	}
	path := filepath.Join(cfg.OutputDir, BuildFilename(name, cfg.Format, time.Now()))

	entries := make([]dateEntry, len(results))
	for i, r := range results {
		entries[i] = dateEntry{Date: r.Date.Format(contract.DateFormat)}
		if r.Err != nil {
			entries[i].Error = r.Err.Error()
		} else {
			entries[i].Data = r.Doc
		}
	}

	if err := writeJSONFile(path, entries); err != nil {
		return "", err
	}
	return path, nil
}
