package core

import (
	"sort"

	"github.com/defactosf/nbafetch/schema"
)

// MinutesColumn is the provider column carrying minutes played.
const MinutesColumn = "MIN"

// FilterByMinutes returns the rows whose minutes column is at least min,
// sorted descending by minutes. The sort is stable so ties keep their
// original relative order. Rows with a missing or non-numeric minutes cell
// are treated as below threshold and excluded.
func FilterByMinutes(rs *schema.RecordSet, column string, min float64) *schema.RecordSet {
	out := &schema.RecordSet{Name: rs.Name, Columns: rs.Columns}

	idx := rs.ColumnIndex(column)
	if idx < 0 {
		return out
	}

	type scored struct {
		row     []any
		minutes float64
	}
	var kept []scored
	for _, row := range rs.Rows {
		if idx >= len(row) {
			continue
		}
		minutes, ok := schema.CellFloat(row[idx])
		if !ok || minutes < min {
			continue
		}
		kept = append(kept, scored{row: row, minutes: minutes})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].minutes > kept[j].minutes
	})

	for _, s := range kept {
		out.Rows = append(out.Rows, s.row)
	}
	return out
}

// FilterByColumn returns the rows whose named column renders to the given
// string value. Row order is preserved.
func FilterByColumn(rs *schema.RecordSet, column, value string) *schema.RecordSet {
	out := &schema.RecordSet{Name: rs.Name, Columns: rs.Columns}

	idx := rs.ColumnIndex(column)
	if idx < 0 {
		return out
	}

	for _, row := range rs.Rows {
		if idx < len(row) && schema.CellString(row[idx]) == value {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
