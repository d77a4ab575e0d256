package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
		ok       bool
	}{
		{name: "float64", input: 42.5, expected: 42.5, ok: true},
		{name: "int", input: 7, expected: 7, ok: true},
		{name: "numeric string", input: "123.4", expected: 123.4, ok: true},
		{name: "json number", input: json.Number("9.5"), expected: 9.5, ok: true},
		{name: "non-numeric string", input: "abc", ok: false},
		{name: "nil", input: nil, ok: false},
		{name: "bool", input: true, ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := CellFloat(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "nil", input: nil, expected: ""},
		{name: "string", input: "LAL", expected: "LAL"},
		{name: "whole float drops decimal", input: 110.0, expected: "110"},
		{name: "fractional float keeps decimal", input: 0.523, expected: "0.523"},
		{name: "bool", input: true, expected: "true"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CellString(tc.input))
		})
	}
}

func TestRecordSet(t *testing.T) {
	rs := &RecordSet{
		Columns: []string{"A", "B"},
		Rows: [][]any{
			{1.0, "x"},
			{2.0},
		},
	}

	t.Run("len and column index", func(t *testing.T) {
		assert.Equal(t, 2, rs.Len())
		assert.Equal(t, 1, rs.ColumnIndex("B"))
		assert.Equal(t, -1, rs.ColumnIndex("C"))
	})

	t.Run("records tolerates short rows", func(t *testing.T) {
		records := rs.Records()
		assert.Equal(t, "x", records[0]["B"])
		_, ok := records[1]["B"]
		assert.False(t, ok)
	})
}
