package generator

import (
	"time"

	"AstroSentinel/internal/model"
)

const (
	intradayPoints = 390
	weeklyPoints   = 35
)

// marketOpen is the clock time of the first intraday point.
var marketOpen = struct{ hour, minute int }{9, 30}

// Grid returns the timestamps a series for (start, tf) is sampled on.
func Grid(start time.Time, tf model.Timeframe) []time.Time {
	day := model.CalendarDay(start)
	switch tf {
	case model.Intraday:
		first := day.Add(time.Duration(marketOpen.hour)*time.Hour + time.Duration(marketOpen.minute)*time.Minute)
		return stepped(first, intradayPoints, func(t time.Time) time.Time { return t.Add(time.Minute) })
	case model.Weekly:
		return stepped(WeekStart(day), weeklyPoints, nextDay)
	default:
		first := MonthStart(day)
		return stepped(first, DaysInMonth(day), nextDay)
	}
}

// WeekStart returns the Monday of t's week.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return model.CalendarDay(t).AddDate(0, 0, -offset)
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of calendar days in t's month.
func DaysInMonth(t time.Time) int {
	return MonthStart(t).AddDate(0, 1, -1).Day()
}

func nextDay(t time.Time) time.Time { return t.AddDate(0, 0, 1) }

func stepped(first time.Time, n int, next func(time.Time) time.Time) []time.Time {
	out := make([]time.Time, n)
	cur := first
	for i := range out {
		out[i] = cur
		cur = next(cur)
	}
	return out
}
