package generator

import (
	"math/rand/v2"
	"time"

	"AstroSentinel/internal/calculator"
	"AstroSentinel/internal/model"
	"AstroSentinel/internal/seed"
)

const (
	minStrength  = 0.5
	maxStrength  = 1.0
	minChangePct = 0.5
	maxChangePct = 5.0
)

// GenerateTransitTable fabricates the transit table for a reference date.
// The table is seeded from the date alone, so it is reproducible but independent of any price seed.
func GenerateTransitTable(ref time.Time) model.TransitTable {
	return TransitTableFromRand(seed.NewRand(seed.ForTransits(ref)))
}

// TransitTableFromRand draws a table from a caller-owned generator.
func TransitTableFromRand(r *rand.Rand) model.TransitTable {
	table := make(model.TransitTable, model.TransitRows)
	for i := range table {
		planet := model.Planets[r.IntN(len(model.Planets))]
		aspect := model.Aspects[r.IntN(len(model.Aspects))]
		strength := calculator.Round2(uniform(r, minStrength, maxStrength))
		direction := model.Directions[r.IntN(len(model.Directions))]
		change := calculator.Round2(uniform(r, minChangePct, maxChangePct))
		table[i] = model.TransitRow{
			Planet:            planet,
			Aspect:            aspect,
			Strength:          strength,
			Influence:         ClassifyInfluence(planet, aspect),
			ImpactDirection:   direction,
			ExpectedChangePct: change,
		}
	}
	return table
}

// ClassifyInfluence maps (planet, aspect) to its fixed qualitative label.
func ClassifyInfluence(p model.Planet, a model.Aspect) model.Influence {
	harmonious := a == model.Trine || a == model.Sextile
	tense := a == model.Square || a == model.Opposition
	switch p {
	case model.Jupiter, model.Venus:
		if harmonious {
			return model.Bullish
		}
		return model.MildlyBullish
	case model.Saturn, model.Mars:
		if tense {
			return model.Bearish
		}
		return model.MildlyBearish
	default:
		return model.Neutral
	}
}
