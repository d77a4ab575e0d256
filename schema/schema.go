// Package schema has configs, models and shared types for all parts of nbafetch.
package schema

import (
	"encoding/json"
	"time"
)

// RecordSet is an ordered collection of uniformly shaped rows with named
// columns, decoded from a single provider result set. It is the in-memory
// table that filtering, sorting and export operate on.
type RecordSet struct {
	Name    string   // Provider name of the result set (e.g. "LeagueGameFinderResults")
	Columns []string // Column headers, in provider order
	Rows    [][]any  // Row cells, aligned with Columns
}

// Len returns the number of rows.
func (rs *RecordSet) Len() int {
	return len(rs.Rows)
}

// ColumnIndex returns the position of a named column, or -1 if absent.
func (rs *RecordSet) ColumnIndex(name string) int {
	for i, c := range rs.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Records converts the rows into one map per row, keyed by column name.
// Used by the JSON export path.
func (rs *RecordSet) Records() []map[string]any {
	records := make([]map[string]any, len(rs.Rows))
	for i, row := range rs.Rows {
		record := make(map[string]any, len(rs.Columns))
		for j, col := range rs.Columns {
			if j < len(row) {
				record[col] = row[j]
			}
		}
		records[i] = record
	}
	return records
}

// DateResult is the outcome of one day's boxscore fetch within a date range.
// Exactly one of Doc and Err is set. Failed dates keep their slot so the
// range result always has one entry per calendar day.
type DateResult struct {
	Date time.Time
	Doc  json.RawMessage
	Err  error
}
