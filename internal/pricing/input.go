package pricing

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotNumeric indicates that price text is not a non-negative integer.
var ErrNotNumeric = errors.New("price text is not a non-negative integer")

// thousands separators admins actually type: ASCII comma and the Arabic
// thousands separator.
const separators = ",٬"

// ParseAmount sanitizes and validates price text. Thousands separators are
// stripped, Persian and Arabic-Indic digits are normalized to ASCII, and the
// remainder must be a non-negative base-10 integer.
func ParseAmount(text string) (int64, error) {
	text = strings.TrimSpace(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(separators, r) {
			continue
		}
		b.WriteRune(normalizeDigit(r))
	}

	sanitized := b.String()
	if sanitized == "" || !isASCIIDigits(sanitized) {
		return 0, ErrNotNumeric
	}

	value, err := strconv.ParseInt(sanitized, 10, 64)
	if err != nil {
		return 0, ErrNotNumeric
	}

	return value, nil
}

// normalizeDigit maps Persian (U+06F0..U+06F9) and Arabic-Indic
// (U+0660..U+0669) digits to their ASCII equivalents.
func normalizeDigit(r rune) rune {
	switch {
	case r >= '۰' && r <= '۹':
		return '0' + (r - '۰')
	case r >= '٠' && r <= '٩':
		return '0' + (r - '٠')
	default:
		return r
	}
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
