package strategies

import (
	"github.com/StacyJ1201/LRSBacketest/models"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestDecideTable(t *testing.T) {
	tests := []struct {
		name       string
		current    models.Position
		close      float64
		average    float64
		buyBuffer  float64
		sellBuffer float64
		want       models.Position
	}{
		{"off stays inside dead zone", models.RiskOff, 100.9, 100, 0.01, 0.01, models.RiskOff},
		{"off enters exactly at buffer", models.RiskOff, 101, 100, 0.01, 0.01, models.RiskOn},
		{"off enters above buffer", models.RiskOff, 105, 100, 0.01, 0.01, models.RiskOn},
		{"off ignores downside", models.RiskOff, 90, 100, 0.01, 0.01, models.RiskOff},
		{"on stays inside dead zone", models.RiskOn, 99.1, 100, 0.01, 0.01, models.RiskOn},
		{"on exits exactly at buffer", models.RiskOn, 99, 100, 0.01, 0.01, models.RiskOff},
		{"on exits below buffer", models.RiskOn, 95, 100, 0.01, 0.01, models.RiskOff},
		{"on ignores upside", models.RiskOn, 110, 100, 0.01, 0.01, models.RiskOn},
		{"zero buffers enter at the average", models.RiskOff, 100, 100, 0, 0, models.RiskOn},
		{"zero buffers exit at the average", models.RiskOn, 100, 100, 0, 0, models.RiskOff},
		{"asymmetric entry respects buy side", models.RiskOff, 102, 100, 0.03, 0.01, models.RiskOff},
		{"asymmetric exit respects sell side", models.RiskOn, 99.5, 100, 0.03, 0.01, models.RiskOn},
		{"asymmetric exit triggers", models.RiskOn, 98.9, 100, 0.03, 0.01, models.RiskOff},
		{"undefined average keeps position", models.RiskOn, 100, 0, 0.01, 0.01, models.RiskOn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := NewLRSStrategy(200, tt.buyBuffer, tt.sellBuffer)
			assert.Equal(t, tt.want, strategy.Decide(tt.current, tt.close, tt.average))
		})
	}
}

func TestDeadZoneNeverFlipsEitherState(t *testing.T) {
	strategy := NewLRSStrategy(200, 0.03, 0.01)
	average := 100.0

	// Closes strictly between the sell and buy levels leave both states
	// unchanged.
	for _, close := range []float64{99.01, 99.5, 100, 101, 102.9} {
		assert.Equal(t, models.RiskOff, strategy.Decide(models.RiskOff, close, average))
		assert.Equal(t, models.RiskOn, strategy.Decide(models.RiskOn, close, average))
	}
}

func TestBuyAndSellLevels(t *testing.T) {
	strategy := NewLRSStrategy(200, 0.05, 0.03)
	assert.InDelta(t, 105, strategy.BuyLevel(100), 1e-9)
	assert.InDelta(t, 97, strategy.SellLevel(100), 1e-9)
}

func techanSeries(closes ...float64) *models.PriceSeries {
	points := make([]models.PricePoint, len(closes))
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		points[i] = models.PricePoint{Date: base.AddDate(0, 0, i), Close: c}
	}
	series, _ := models.NewPriceSeries(points)
	return &series
}

func TestShouldEnterOnTechanSeries(t *testing.T) {
	strategy := NewLRSStrategy(3, 0, 0)

	assert.True(t, strategy.ShouldEnter(techanSeries(10, 10, 10, 12).ToTimeSeries()))
	assert.False(t, strategy.ShouldEnter(techanSeries(10, 10).ToTimeSeries()))

	withBuffer := NewLRSStrategy(3, 0.01, 0.01)
	assert.False(t, withBuffer.ShouldEnter(techanSeries(10, 10, 10).ToTimeSeries()))
}

func TestShouldExitOnTechanSeries(t *testing.T) {
	strategy := NewLRSStrategy(3, 0, 0)

	assert.True(t, strategy.ShouldExit(techanSeries(10, 10, 12, 8).ToTimeSeries()))
	assert.False(t, strategy.ShouldExit(techanSeries(10, 10, 10, 12).ToTimeSeries()))
	assert.False(t, strategy.ShouldExit(techanSeries(10, 10).ToTimeSeries()))
}
