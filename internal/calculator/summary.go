package calculator

import "AstroSentinel/internal/model"

// RSIPeriod is the lookback used for the summary RSI.
const RSIPeriod = 14

// Summarize computes the headline numbers shown next to a generated series.
func Summarize(series *model.PriceSeries) model.SeriesSummary {
	var sum model.SeriesSummary
	if series == nil || len(series.Points) == 0 {
		sum.Position = 0.5
		sum.RSI14 = 50
		sum.Trend = model.Neutral
		return sum
	}

	first := series.Points[0]
	last := series.Last()
	sum.First = first.Price
	sum.Last = last.Price
	if first.Price != 0 {
		sum.ChangePct = Round2((last.Price - first.Price) / first.Price * 100)
	}

	if h, l, err := CalculateRange(series.Points); err == nil {
		sum.High, sum.Low = h, l
	}
	if pos, err := CalculateRangePosition(last.Price, sum.High, sum.Low); err != nil {
		sum.Position = 0.5
	} else {
		sum.Position = pos
	}

	if rsi, err := CalculateRSI(series.Prices(), RSIPeriod); err != nil {
		sum.RSI14 = 50
	} else {
		sum.RSI14 = Round2(rsi)
	}

	switch {
	case last.EMAFast > last.EMASlow:
		sum.Trend = model.Bullish
	case last.EMAFast < last.EMASlow:
		sum.Trend = model.Bearish
	default:
		sum.Trend = model.Neutral
	}
	return sum
}
