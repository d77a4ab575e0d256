package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Fetch outcome label constants.
const (
	OKValue     = "OK"     // The date fetched cleanly
	FailedValue = "FAILED" // The date was recorded as an error
)

// Color variables for console output.
var (
	OKColor     = color.New(color.FgGreen)           // okColor marks a clean fetch.
	FailedColor = color.New(color.FgRed, color.Bold) // failedColor marks a recorded failure.
	WinColor    = color.New(color.FgGreen)           // winColor marks a W cell.
	LossColor   = color.New(color.FgRed)             // lossColor marks an L cell.
	NoteColor   = color.New(color.FgYellow)          // noteColor marks advisory output.
)

// GetPlainOutcome returns the plain text label for a per-date fetch outcome.
// This is the core logic used for CSV, JSON and table printing.
func GetPlainOutcome(err error) string {
	if err != nil {
		return FailedValue
	}
	return OKValue
}

// GetColorOutcome returns a colored outcome label for console output (table).
// It uses GetPlainOutcome to determine the string, then applies the color.
func GetColorOutcome(err error, useColors bool) string {
	text := GetPlainOutcome(err)
	if !useColors {
		return text
	}
	if err != nil {
		return FailedColor.Sprint(text)
	}
	return OKColor.Sprint(text)
}

// GetColorWinLoss colors a W/L cell from a game log for console output.
func GetColorWinLoss(wl string, useColors bool) string {
	if !useColors {
		return wl
	}
	switch strings.ToUpper(strings.TrimSpace(wl)) {
	case "W":
		return WinColor.Sprint(wl)
	case "L":
		return LossColor.Sprint(wl)
	default:
		return wl
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
