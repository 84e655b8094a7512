package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"AstroSentinel/internal/model"
)

func TestWeekStart(t *testing.T) {
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, monday, WeekStart(monday.AddDate(0, 0, i)), "offset %d", i)
	}
	assert.Equal(t, time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC), WeekStart(monday.AddDate(0, 0, -1)))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 29, DaysInMonth(time.Date(2000, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 28, DaysInMonth(time.Date(1900, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestBasePriceAndVolatility(t *testing.T) {
	p, fb := BasePrice(" aapl")
	assert.Equal(t, 180.0, p)
	assert.False(t, fb)

	p, fb = BasePrice("ZZZZ")
	assert.Equal(t, 100.0, p)
	assert.True(t, fb)

	assert.Equal(t, 0.002, Volatility(model.Intraday))
	assert.Equal(t, 0.008, Volatility(model.Weekly))
	assert.Equal(t, 0.015, Volatility(model.Monthly))
}
