package strategy

import (
	"fmt"

	"AstroSentinel/internal/model"
)

// influenceWeights converts a transit label into a signed score.
var influenceWeights = map[model.Influence]float64{
	model.Bullish:       1.0,
	model.MildlyBullish: 0.5,
	model.Neutral:       0,
	model.MildlyBearish: -0.5,
	model.Bearish:       -1.0,
}

// scoreTransits averages strength-weighted influence over the table.
// Weight: 0.6
func scoreTransits(table model.TransitTable) model.FactorScore {
	if len(table) == 0 {
		return model.FactorScore{Name: "Transits", Weight: 0.6, Commentary: "no transits"}
	}
	var sum float64
	var bullish, bearish int
	for _, row := range table {
		w := influenceWeights[row.Influence]
		sum += w * row.Strength
		switch {
		case w > 0:
			bullish++
		case w < 0:
			bearish++
		}
	}
	score := sum / float64(len(table))
	return model.FactorScore{
		Name:       "Transits",
		RawScore:   score,
		Weight:     0.6,
		Weighted:   score * 0.6,
		Commentary: fmt.Sprintf("%d bullish / %d bearish", bullish, bearish),
	}
}

// scoreTrend scores the EMA crossover of the series.
// Weight: 0.25
func scoreTrend(sum model.SeriesSummary) model.FactorScore {
	var score float64
	switch sum.Trend {
	case model.Bullish:
		score = 1.0
	case model.Bearish:
		score = -1.0
	}
	return model.FactorScore{
		Name:       "EMA trend",
		RawScore:   score,
		Weight:     0.25,
		Weighted:   score * 0.25,
		Commentary: string(sum.Trend),
	}
}

// scoreMomentum scores the RSI of the series, fading both extremes.
// Weight: 0.15
func scoreMomentum(sum model.SeriesSummary) model.FactorScore {
	rsi := sum.RSI14
	var score float64
	switch {
	case rsi <= 30:
		score = 1.0
	case rsi <= 45:
		score = 0.5
	case rsi <= 55:
		score = 0
	case rsi <= 70:
		score = -0.5
	default:
		score = -1.0
	}
	return model.FactorScore{
		Name:       "Momentum",
		RawScore:   score,
		Weight:     0.15,
		Weighted:   score * 0.15,
		Commentary: fmt.Sprintf("RSI=%.0f", rsi),
	}
}
