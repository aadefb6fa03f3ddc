package models

import (
	"fmt"
	"github.com/sdcoffey/techan"
	"time"
)

// MovingAverageSeries holds the trailing simple moving average of one price
// series. A value exists for a day only once the window is full: the value
// on day i covers closes[i-window+1 .. i]. Days before that are undefined,
// not zero.
type MovingAverageSeries struct {
	window int
	values map[time.Time]float64
}

// MovingAverage computes the trailing simple moving average of the series.
func (s PriceSeries) MovingAverage(window int) (MovingAverageSeries, error) {
	if window < 1 {
		return MovingAverageSeries{}, fmt.Errorf("moving average window must be >= 1, got %d", window)
	}

	mas := MovingAverageSeries{
		window: window,
		values: make(map[time.Time]float64),
	}

	timeSeries := s.ToTimeSeries()
	sma := techan.NewSimpleMovingAverage(techan.NewClosePriceIndicator(timeSeries), window)
	for i := window - 1; i < len(s); i++ {
		mas.values[s[i].Date] = sma.Calculate(i).Float()
	}
	return mas, nil
}

// NewMovingAverageSeries wraps externally computed average values, for
// sources that supply the average directly instead of raw history.
func NewMovingAverageSeries(window int, points []PricePoint) MovingAverageSeries {
	mas := MovingAverageSeries{
		window: window,
		values: make(map[time.Time]float64, len(points)),
	}
	for _, p := range points {
		mas.values[Day(p.Date)] = p.Close
	}
	return mas
}

func (m MovingAverageSeries) Window() int {
	return m.window
}

// At returns the average for a day. ok is false while the window is still
// filling or when the day is absent.
func (m MovingAverageSeries) At(date time.Time) (float64, bool) {
	v, ok := m.values[Day(date)]
	return v, ok
}

// Defined reports how many days carry a defined average.
func (m MovingAverageSeries) Defined() int {
	return len(m.values)
}
