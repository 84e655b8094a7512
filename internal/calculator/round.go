package calculator

import "github.com/shopspring/decimal"

// Round2 rounds v to 2 decimal places, ties to even.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).RoundBank(2).InexactFloat64()
}
