package models

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func closesSeries(closes ...float64) PriceSeries {
	points := make([]PricePoint, len(closes))
	for i, c := range closes {
		points[i] = PricePoint{Date: day(i), Close: c}
	}
	series, _ := NewPriceSeries(points)
	return series
}

func TestMovingAverageUndefinedUntilWindowFull(t *testing.T) {
	series := closesSeries(10, 10, 10, 12, 8, 8)
	mas, err := series.MovingAverage(3)
	assert.NoError(t, err)

	_, ok := mas.At(day(0))
	assert.False(t, ok)
	_, ok = mas.At(day(1))
	assert.False(t, ok)

	v, ok := mas.At(day(2))
	assert.True(t, ok)
	assert.InDelta(t, 10.0, v, 1e-9)

	assert.Equal(t, 4, mas.Defined())
}

func TestMovingAverageTrailingValues(t *testing.T) {
	series := closesSeries(10, 10, 10, 12, 8, 8)
	mas, _ := series.MovingAverage(3)

	v, _ := mas.At(day(3))
	assert.InDelta(t, (10.0+10+12)/3, v, 1e-9)

	v, _ = mas.At(day(4))
	assert.InDelta(t, (10.0+12+8)/3, v, 1e-9)

	v, _ = mas.At(day(5))
	assert.InDelta(t, (12.0+8+8)/3, v, 1e-9)
}

func TestMovingAverageRejectsBadWindow(t *testing.T) {
	series := closesSeries(10, 11)
	_, err := series.MovingAverage(0)
	assert.Error(t, err)
}

func TestExternallySuppliedMovingAverage(t *testing.T) {
	mas := NewMovingAverageSeries(200, []PricePoint{{Date: day(0), Close: 420.5}})

	v, ok := mas.At(day(0))
	assert.True(t, ok)
	assert.Equal(t, 420.5, v)
	assert.Equal(t, 200, mas.Window())

	_, ok = mas.At(day(1))
	assert.False(t, ok)
}
