package schema

// Custom string types for type safety.
type (
	// OutputFormat represents the file format used for exports.
	OutputFormat string

	// AuthMode represents how the boxscore provider API key is attached.
	AuthMode string
)

// All output formats supported.
const (
	JSONFormat    OutputFormat = "json" // default
	CSVFormat     OutputFormat = "csv"
	ParquetFormat OutputFormat = "parquet"
)

// All auth modes supported.
const (
	QueryAuth  AuthMode = "query" // default
	HeaderAuth AuthMode = "header"
	BothAuth   AuthMode = "both"
)

// ValidOutputFormats lists all valid output formats.
var ValidOutputFormats = map[OutputFormat]struct{}{
	JSONFormat:    {},
	CSVFormat:     {},
	ParquetFormat: {},
}

// ValidAuthModes lists all valid auth modes.
var ValidAuthModes = map[AuthMode]struct{}{
	QueryAuth:  {},
	HeaderAuth: {},
	BothAuth:   {},
}

// Extension returns the file extension for the format, without the dot.
func (f OutputFormat) Extension() string {
	return string(f)
}
