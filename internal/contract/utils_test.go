package contract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPlainOutcome(t *testing.T) {
	assert.Equal(t, OKValue, GetPlainOutcome(nil))
	assert.Equal(t, FailedValue, GetPlainOutcome(errors.New("boom")))
}

func TestGetColorOutcome(t *testing.T) {
	// Without colors the plain labels come through unchanged
	assert.Equal(t, OKValue, GetColorOutcome(nil, false))
	assert.Equal(t, FailedValue, GetColorOutcome(errors.New("boom"), false))

	// With colors the label text is still embedded in the output
	assert.Contains(t, GetColorOutcome(nil, true), OKValue)
	assert.Contains(t, GetColorOutcome(errors.New("boom"), true), FailedValue)
}

func TestGetColorWinLoss(t *testing.T) {
	assert.Equal(t, "W", GetColorWinLoss("W", false))
	assert.Equal(t, "L", GetColorWinLoss("L", false))
	assert.Contains(t, GetColorWinLoss("W", true), "W")
	assert.Contains(t, GetColorWinLoss("L", true), "L")

	// Anything that is not a win/loss cell passes through untouched
	assert.Equal(t, "", GetColorWinLoss("", true))
	assert.Equal(t, "N/A", GetColorWinLoss("N/A", true))
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input       string
		expected    bool
		expectError bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseBoolString(tc.input)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
