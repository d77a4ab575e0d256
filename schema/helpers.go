package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// CellFloat extracts a numeric value from a record-set cell. Cells arrive
// from JSON as float64 most of the time, but some providers ship numbers as
// strings (minutes columns in particular). Returns false for anything that
// cannot be read as a number.
func CellFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// CellString renders a record-set cell for CSV and table output. Numbers
// that are whole render without a decimal point, matching how the provider
// displays ids and counts.
func CellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
