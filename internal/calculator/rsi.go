package calculator

import (
	"errors"

	"github.com/markcheno/go-talib"
)

// CalculateRSI returns the latest Wilder RSI over the given period.
// Requires at least period+1 prices. Returns 50.0 if data is insufficient.
func CalculateRSI(prices []float64, period int) (float64, error) {
	if period <= 1 {
		return 0, errors.New("period must be greater than 1")
	}
	if len(prices) < period+1 {
		return 50.0, nil // default when data insufficient
	}
	flat := true
	for _, p := range prices[1:] {
		if p != prices[0] {
			flat = false
			break
		}
	}
	if flat {
		return 50.0, nil
	}
	rsi := talib.Rsi(prices, period)
	return rsi[len(rsi)-1], nil
}
