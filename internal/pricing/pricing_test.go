package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerGram(t *testing.T) {
	testCases := []struct {
		name     string
		mesghal  int64
		expected int64
	}{
		{name: "reference buy price", mesghal: 10000, expected: 2308},
		{name: "reference sell price", mesghal: 12000, expected: 2770},
		{name: "zero", mesghal: 0, expected: 0},
		{name: "below one gram truncates to zero", mesghal: 4, expected: 0},
		{name: "exact multiple of the factor", mesghal: 43318, expected: 10000},
		{name: "large price", mesghal: 250_000_000, expected: 57_712_729},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PerGram(tc.mesghal))
		})
	}
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected int64
		wantErr  bool
	}{
		{name: "plain digits", text: "10000", expected: 10000},
		{name: "comma separated", text: "12,000", expected: 12000},
		{name: "arabic thousands separator", text: "12٬000", expected: 12000},
		{name: "surrounding whitespace", text: " 500 ", expected: 500},
		{name: "persian digits", text: "۱۲۰۰۰", expected: 12000},
		{name: "arabic-indic digits", text: "١٠٠", expected: 100},
		{name: "zero", text: "0", expected: 0},
		{name: "empty", text: "", wantErr: true},
		{name: "only separators", text: ",,,", wantErr: true},
		{name: "letters", text: "abc", wantErr: true},
		{name: "mixed digits and letters", text: "12a00", wantErr: true},
		{name: "negative sign rejected", text: "-100", wantErr: true},
		{name: "decimal point rejected", text: "10.5", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			value, err := ParseAmount(tc.text)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrNotNumeric)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}
