package strategy

import "AstroSentinel/internal/model"

// Disclaimer is attached to every outlook.
const Disclaimer = "Synthetic entertainment data. Not investment advice."

// Tiers maps a total score to an outlook label, highest first.
var Tiers = []struct {
	MinScore float64
	Label    string
}{
	{0.6, "Strongly Favourable"},
	{0.25, "Favourable"},
	{-0.25, "Mixed"},
	{-0.6, "Unfavourable"},
}

// DefaultLabel is the lowest tier for scores < -0.6.
const DefaultLabel = "Strongly Unfavourable"

// mapTier maps a total score to a label.
func mapTier(totalScore float64) string {
	for _, t := range Tiers {
		if totalScore >= t.MinScore {
			return t.Label
		}
	}
	return DefaultLabel
}

// Evaluate scores a generated series summary and its transit table.
func Evaluate(sum model.SeriesSummary, table model.TransitTable) *model.Outlook {
	factors := []model.FactorScore{
		scoreTransits(table),
		scoreTrend(sum),
		scoreMomentum(sum),
	}

	total := 0.0
	for _, f := range factors {
		total += f.Weighted
	}

	return &model.Outlook{
		Factors:    factors,
		TotalScore: total,
		Label:      mapTier(total),
		Disclaimer: Disclaimer,
	}
}
