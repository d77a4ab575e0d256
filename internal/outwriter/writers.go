package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/defactosf/nbafetch/schema"
)

// writeJSONFile encodes data as a pretty-printed JSON document.
func writeJSONFile(path string, data any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()
	return writeJSON(file, data)
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeIndentedJSONFile re-indents a raw document without decoding it, so
// the provider's payload lands on disk byte-for-byte apart from whitespace.
func writeIndentedJSONFile(path string, doc json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return fmt.Errorf("failed to indent document: %w", err)
	}
	buf.WriteByte('\n')
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// writeCSVFile writes a record set with a header row. An empty record set
// produces a header-only file.
func writeCSVFile(path string, rs *schema.RecordSet) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(rs.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rs.Rows {
		rec := make([]string, len(rs.Columns))
		for j := range rs.Columns {
			if j < len(row) {
				rec[j] = schema.CellString(row[j])
			}
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
