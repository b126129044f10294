// Package money holds the rounding rules shared by stock, quantity and
// amount columns.
package money

import "math"

// Round2 rounds v to two fractional digits. Every stock and quantity value
// is persisted at exactly this precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
