// Package pricing validates price input text and converts between the
// traditional mesghal unit and grams.
package pricing

import "github.com/shopspring/decimal"

// GramsPerMesghal is the fixed conversion factor between the traditional
// mesghal unit and grams.
const GramsPerMesghal = "4.3318"

var gramsPerMesghal = decimal.RequireFromString(GramsPerMesghal)

// PerGram converts a per-mesghal price to a per-gram price, truncating toward
// zero. floor(10000 / 4.3318) = 2308.
func PerGram(mesghalPrice int64) int64 {
	return decimal.NewFromInt(mesghalPrice).Div(gramsPerMesghal).IntPart()
}
