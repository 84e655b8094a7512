package generator

import (
	"strings"

	"AstroSentinel/internal/model"
)

// DefaultBasePrice is used for any symbol missing from BasePrices.
const DefaultBasePrice = 100.0

// BasePrices anchors the synthetic path of well-known symbols.
var BasePrices = map[string]float64{
	"AAPL":    180,
	"MSFT":    370,
	"GOOGL":   140,
	"AMZN":    150,
	"TSLA":    240,
	"NVDA":    480,
	"META":    350,
	"SPY":     470,
	"QQQ":     400,
	"BTC-USD": 42000,
}

// BasePrice looks up the anchor price for symbol. fallback is true when DefaultBasePrice was used.
func BasePrice(symbol string) (price float64, fallback bool) {
	if p, ok := BasePrices[strings.ToUpper(strings.TrimSpace(symbol))]; ok {
		return p, false
	}
	return DefaultBasePrice, true
}

// Volatility is the per-point standard deviation of the random walk for tf.
func Volatility(tf model.Timeframe) float64 {
	switch tf {
	case model.Intraday:
		return 0.002
	case model.Weekly:
		return 0.008
	default:
		return 0.015
	}
}
