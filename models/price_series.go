package models

import (
	"fmt"
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"sort"
	"time"
)

// PricePoint is one daily close of a single instrument.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries is an ascending, de-duplicated list of daily closes.
// Build one through NewPriceSeries so the ordering and positivity
// invariants hold.
type PriceSeries []PricePoint

// NewPriceSeries normalizes the points to calendar days (UTC), sorts them
// ascending and drops duplicate dates keeping the last observation. Points
// with a non-positive close are rejected.
func NewPriceSeries(points []PricePoint) (PriceSeries, error) {
	normalized := make([]PricePoint, 0, len(points))
	for _, p := range points {
		if p.Close <= 0 {
			return nil, fmt.Errorf("non-positive close %f on %s", p.Close, p.Date.Format("2006-01-02"))
		}
		normalized = append(normalized, PricePoint{Date: Day(p.Date), Close: p.Close})
	}

	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].Date.Before(normalized[j].Date)
	})

	series := make(PriceSeries, 0, len(normalized))
	for _, p := range normalized {
		if len(series) > 0 && series[len(series)-1].Date.Equal(p.Date) {
			series[len(series)-1] = p
			continue
		}
		series = append(series, p)
	}
	return series, nil
}

// Day truncates a timestamp to its UTC calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Tail returns the last n points, or the whole series if it is shorter.
func (s PriceSeries) Tail(n int) PriceSeries {
	if n <= 0 || n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// At returns the close for a calendar day.
func (s PriceSeries) At(date time.Time) (float64, bool) {
	day := Day(date)
	i := sort.Search(len(s), func(i int) bool { return !s[i].Date.Before(day) })
	if i < len(s) && s[i].Date.Equal(day) {
		return s[i].Close, true
	}
	return 0, false
}

// Last returns the most recent point. ok is false on an empty series.
func (s PriceSeries) Last() (PricePoint, bool) {
	if len(s) == 0 {
		return PricePoint{}, false
	}
	return s[len(s)-1], true
}

// AlignDates returns the ascending list of days present in both series.
func AlignDates(a, b PriceSeries) []time.Time {
	inB := make(map[time.Time]bool, len(b))
	for _, p := range b {
		inB[p.Date] = true
	}

	var dates []time.Time
	for _, p := range a {
		if inB[p.Date] {
			dates = append(dates, p.Date)
		}
	}
	return dates
}

// ToTimeSeries converts the series to a techan time series of daily candles.
func (s PriceSeries) ToTimeSeries() *techan.TimeSeries {
	timeSeries := techan.NewTimeSeries()
	for _, p := range s {
		period := techan.NewTimePeriod(p.Date, 24*time.Hour)
		candle := techan.NewCandle(period)
		candle.OpenPrice = big.NewDecimal(p.Close)
		candle.ClosePrice = big.NewDecimal(p.Close)
		candle.MaxPrice = big.NewDecimal(p.Close)
		candle.MinPrice = big.NewDecimal(p.Close)
		timeSeries.AddCandle(candle)
	}
	return timeSeries
}
