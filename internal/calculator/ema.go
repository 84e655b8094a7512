package calculator

import "errors"

// CalculateEMA computes the exponentially-weighted moving average of prices for the given span.
// Weights are adjusted for the warm-up period, so out[i] only depends on prices[0..i].
func CalculateEMA(prices []float64, span int) ([]float64, error) {
	if span <= 0 {
		return nil, errors.New("span must be positive")
	}
	out := make([]float64, len(prices))
	alpha := 2.0 / (float64(span) + 1.0)
	decay := 1 - alpha
	var num, den float64
	for i, p := range prices {
		num = p + decay*num
		den = 1 + decay*den
		out[i] = num / den
	}
	return out, nil
}

// CalculateEMAs returns the fast and slow averages, each rounded to 2 decimal places.
func CalculateEMAs(prices []float64, fastSpan, slowSpan int) (fast, slow []float64, err error) {
	if fast, err = CalculateEMA(prices, fastSpan); err != nil {
		return nil, nil, err
	}
	if slow, err = CalculateEMA(prices, slowSpan); err != nil {
		return nil, nil, err
	}
	for i := range prices {
		fast[i] = Round2(fast[i])
		slow[i] = Round2(slow[i])
	}
	return fast, slow, nil
}
