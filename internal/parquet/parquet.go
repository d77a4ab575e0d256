// Package parquet provides structures and functions for exporting fetched
// record sets to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/defactosf/nbafetch/schema"
	"github.com/parquet-go/parquet-go"
)

// Row is the Parquet representation of one record-set row. Provider result
// sets differ per endpoint and their cell types are not known ahead of
// time, so cells are rendered to text and stored as a column-name keyed map.
type Row struct {
	// Index preserves the row's position in the fetched result set
	Index int64 `parquet:"index,snappy"`

	// Cells holds the row values keyed by column name
	Cells map[string]string `parquet:"cells"`
}

// ConvertRecordSet converts a schema.RecordSet into Parquet rows.
func ConvertRecordSet(rs *schema.RecordSet) []Row {
	rows := make([]Row, len(rs.Rows))
	for i, raw := range rs.Rows {
		cells := make(map[string]string, len(rs.Columns))
		for j, col := range rs.Columns {
			if j < len(raw) {
				cells[col] = schema.CellString(raw[j])
			}
		}
		rows[i] = Row{Index: int64(i), Cells: cells}
	}
	return rows
}

// WriteRecordSet writes a record set to a Parquet file.
func WriteRecordSet(rs *schema.RecordSet, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the Row struct tags
	writer := parquet.NewGenericWriter[Row](file)

	if _, err := writer.Write(ConvertRecordSet(rs)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return writer.Close()
}
