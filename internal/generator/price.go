package generator

import (
	"math/rand/v2"
	"time"

	"AstroSentinel/internal/calculator"
	"AstroSentinel/internal/model"
	"AstroSentinel/internal/seed"
)

const (
	FastSpan = 20
	SlowSpan = 50

	cycleEvery     = 7
	cycleAmplitude = 0.01
	eventDay       = 15
	eventAmplitude = 0.02
)

// GeneratePriceSeries fabricates the price path for (symbol, start, tf).
// Identical inputs always produce identical series.
func GeneratePriceSeries(symbol string, start time.Time, tf model.Timeframe) (*model.PriceSeries, error) {
	in, err := model.NewSeedInput(symbol, start, tf)
	if err != nil {
		return nil, err
	}
	return PriceSeriesFor(in)
}

// PriceSeriesFor generates the series for an already validated SeedInput.
func PriceSeriesFor(in model.SeedInput) (*model.PriceSeries, error) {
	s := seed.Derive(in)
	base, fallback := BasePrice(in.Symbol)
	grid := Grid(in.StartDate, in.Timeframe)

	prices := pricePath(seed.NewRand(s), grid, Volatility(in.Timeframe), base)
	fast, slow, err := calculator.CalculateEMAs(prices, FastSpan, SlowSpan)
	if err != nil {
		return nil, err
	}

	points := make([]model.PricePoint, len(grid))
	for i, ts := range grid {
		points[i] = model.PricePoint{Timestamp: ts, Price: prices[i], EMAFast: fast[i], EMASlow: slow[i]}
	}
	return &model.PriceSeries{
		Symbol:    in.Symbol,
		StartDate: in.StartDate,
		Timeframe: in.Timeframe,
		Seed:      s,
		BasePrice: base,
		Fallback:  fallback,
		Points:    points,
	}, nil
}

// increments draws every base increment first, then layers the cycle and
// event perturbations on in index order.
func increments(r *rand.Rand, grid []time.Time, vol float64) []float64 {
	inc := make([]float64, len(grid))
	for i := range inc {
		inc[i] = r.NormFloat64() * vol
	}
	for i, ts := range grid {
		if i%cycleEvery == 0 {
			inc[i] += uniform(r, -cycleAmplitude, cycleAmplitude)
		}
		if ts.Day() == eventDay {
			inc[i] += uniform(r, -eventAmplitude, eventAmplitude)
		}
	}
	return inc
}

func pricePath(r *rand.Rand, grid []time.Time, vol, base float64) []float64 {
	inc := increments(r, grid, vol)
	prices := make([]float64, len(inc))
	cum := 0.0
	for i, d := range inc {
		cum += d
		prices[i] = calculator.Round2(base * (1 + cum))
	}
	return prices
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
