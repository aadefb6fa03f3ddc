package services

import (
	"github.com/StacyJ1201/LRSBacketest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func day(i int) time.Time {
	return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
}

func series(t *testing.T, closes ...float64) models.PriceSeries {
	t.Helper()
	points := make([]models.PricePoint, len(closes))
	for i, c := range closes {
		points[i] = models.PricePoint{Date: day(i), Close: c}
	}
	s, err := models.NewPriceSeries(points)
	require.NoError(t, err)
	return s
}

func seriesAt(t *testing.T, firstDay int, closes ...float64) models.PriceSeries {
	t.Helper()
	points := make([]models.PricePoint, len(closes))
	for i, c := range closes {
		points[i] = models.PricePoint{Date: day(firstDay + i), Close: c}
	}
	s, err := models.NewPriceSeries(points)
	require.NoError(t, err)
	return s
}

// A 3-day average over [10,10,10,12,8,8] with zero buffers. The first
// defined average only initializes the portfolio; the next close sits above
// its average and enters, the one after sits below and exits.
func TestRunWorkedExample(t *testing.T) {
	underlying := series(t, 10, 10, 10, 12, 8, 8)
	levered := series(t, 10, 10, 10, 12, 8, 8)

	result := NewBacktestService().Run(underlying, levered, BacktestConfig{
		Window:      3,
		InitialCash: 10000,
	})

	require.False(t, result.InsufficientData)
	require.Len(t, result.Trades, 2)

	assert.Equal(t, day(3), result.Trades[0].Date)
	assert.Equal(t, "BUY", result.Trades[0].Direction())
	assert.Equal(t, 12.0, result.Trades[0].Price)

	assert.Equal(t, day(4), result.Trades[1].Date)
	assert.Equal(t, "SELL", result.Trades[1].Direction())
	assert.Equal(t, 8.0, result.Trades[1].Price)

	assert.Equal(t, 1, result.Summary.RoundTrips)
	assert.Equal(t, 0.0, result.Summary.WinRate)
	assert.InDelta(t, 10000.0/12*8, result.Summary.FinalValue, 1e-6)
}

// One full round trip: buy the levered instrument at 20, sell at 25, no
// contributions. 10000 in, 12500 out, 25% total return.
func TestRunSingleRoundTripReturn(t *testing.T) {
	underlying := series(t, 100, 100, 120, 121, 90)
	levered := series(t, 5, 10, 20, 22, 25)

	result := NewBacktestService().Run(underlying, levered, BacktestConfig{
		Window:      2,
		InitialCash: 10000,
	})

	require.False(t, result.InsufficientData)
	require.Len(t, result.Trades, 2)
	assert.Equal(t, 20.0, result.Trades[0].Price)
	assert.Equal(t, 25.0, result.Trades[1].Price)

	assert.InDelta(t, 0.25, result.Summary.TotalReturn, 1e-9)
	assert.InDelta(t, 12500, result.Summary.FinalValue, 1e-9)
	assert.Equal(t, 1, result.Summary.RoundTrips)
	assert.Equal(t, 1.0, result.Summary.WinRate)
	assert.Equal(t, 0.0, result.Summary.MaxDrawdown)

	// Holding 500 shares, day 3 marks at 22.
	assert.InDelta(t, 11000, result.EquityCurve[2].Value, 1e-9)
}

func TestRunEmptyInputIsInsufficient(t *testing.T) {
	result := NewBacktestService().Run(models.PriceSeries{}, models.PriceSeries{}, BacktestConfig{
		Window:      3,
		InitialCash: 10000,
	})

	assert.True(t, result.InsufficientData)
	assert.Empty(t, result.EquityCurve)
	assert.Empty(t, result.Trades)
}

func TestRunWindowNeverFillsIsInsufficient(t *testing.T) {
	underlying := series(t, 10, 11)
	levered := series(t, 10, 11)

	result := NewBacktestService().Run(underlying, levered, BacktestConfig{
		Window:      200,
		InitialCash: 10000,
	})

	assert.True(t, result.InsufficientData)
}

func TestRunNonPositiveInitialCashIsInsufficient(t *testing.T) {
	underlying := series(t, 10, 10, 10, 12)
	levered := series(t, 10, 10, 10, 12)

	result := NewBacktestService().Run(underlying, levered, BacktestConfig{
		Window: 2,
	})

	assert.True(t, result.InsufficientData)
}

func TestRunIsIdempotent(t *testing.T) {
	underlying := series(t, 100, 100, 120, 121, 90, 95, 130, 131)
	levered := series(t, 5, 10, 20, 22, 25, 24, 30, 31)
	cfg := BacktestConfig{Window: 2, BuyBuffer: 0.01, SellBuffer: 0.01, InitialCash: 10000}

	backtest := NewBacktestService()
	first := backtest.Run(underlying, levered, cfg)
	second := backtest.Run(underlying, levered, cfg)

	assert.Equal(t, first, second)
}

func TestRunDoesNotMutateInputs(t *testing.T) {
	underlying := series(t, 100, 100, 120, 121, 90)
	levered := series(t, 5, 10, 20, 22, 25)
	underlyingBefore := append(models.PriceSeries{}, underlying...)
	leveredBefore := append(models.PriceSeries{}, levered...)

	NewBacktestService().Run(underlying, levered, BacktestConfig{Window: 2, InitialCash: 10000})

	assert.Equal(t, underlyingBefore, underlying)
	assert.Equal(t, leveredBefore, levered)
}

func TestRunEquityCurveMatchesDecidableDays(t *testing.T) {
	underlying := series(t, 10, 10, 10, 12, 8, 8)
	levered := series(t, 10, 10, 10, 12, 8, 8)

	result := NewBacktestService().Run(underlying, levered, BacktestConfig{Window: 3, InitialCash: 10000})

	require.Len(t, result.EquityCurve, 4)
	for i, want := range []time.Time{day(2), day(3), day(4), day(5)} {
		assert.Equal(t, want, result.EquityCurve[i].Date)
	}
	for i := 1; i < len(result.EquityCurve); i++ {
		assert.True(t, result.EquityCurve[i].Date.After(result.EquityCurve[i-1].Date))
	}
	assert.Len(t, result.BenchmarkCurve, len(result.EquityCurve))
}

func TestRunRestrictsToSharedDates(t *testing.T) {
	underlying := series(t, 10, 10, 10, 12, 8)
	levered := seriesAt(t, 2, 10, 12, 8, 8, 8)

	result := NewBacktestService().Run(underlying, levered, BacktestConfig{Window: 3, InitialCash: 10000})

	// Shared days are 2..4; the average exists from day 2 on.
	require.False(t, result.InsufficientData)
	require.Len(t, result.EquityCurve, 3)
	assert.Equal(t, day(2), result.EquityCurve[0].Date)
	assert.Equal(t, day(4), result.EquityCurve[2].Date)
}

func TestRunMonthlyContributionInCash(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
	}
	points := make([]models.PricePoint, len(dates))
	for i, d := range dates {
		points[i] = models.PricePoint{Date: d, Close: 100}
	}
	flat, err := models.NewPriceSeries(points)
	require.NoError(t, err)

	// A huge buy buffer keeps the whole run in cash.
	result := NewBacktestService().Run(flat, flat, BacktestConfig{
		Window:             1,
		BuyBuffer:          10,
		SellBuffer:         10,
		InitialCash:        10000,
		Contribution:       500,
		ContributionPolicy: models.MonthlyContribution{},
	})

	require.False(t, result.InsufficientData)
	assert.Empty(t, result.Trades)
	assert.InDelta(t, 10500, result.Summary.FinalValue, 1e-9)
	assert.InDelta(t, 10500, result.Summary.InvestedCapital, 1e-9)
	assert.InDelta(t, 0, result.Summary.TotalReturn, 1e-9)
}

func TestRunMonthlyContributionBuysShares(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
	}
	underlyingPoints := make([]models.PricePoint, len(dates))
	leveredPoints := make([]models.PricePoint, len(dates))
	for i, d := range dates {
		underlyingPoints[i] = models.PricePoint{Date: d, Close: 100}
		leveredPoints[i] = models.PricePoint{Date: d, Close: 10}
	}
	underlying, err := models.NewPriceSeries(underlyingPoints)
	require.NoError(t, err)
	levered, err := models.NewPriceSeries(leveredPoints)
	require.NoError(t, err)

	// Zero buffers on a flat series enter on the first decision day, so
	// the February contribution converts straight into shares.
	result := NewBacktestService().Run(underlying, levered, BacktestConfig{
		Window:             1,
		InitialCash:        10000,
		Contribution:       500,
		ContributionPolicy: models.MonthlyContribution{},
	})

	require.False(t, result.InsufficientData)
	require.Len(t, result.Trades, 1)
	assert.Equal(t, "BUY", result.Trades[0].Direction())

	assert.InDelta(t, 10500, result.Summary.FinalValue, 1e-9)
	assert.InDelta(t, 0, result.Summary.TotalReturn, 1e-9)
	// The open position has no exit and stays out of the win rate.
	assert.Equal(t, 0, result.Summary.RoundTrips)
	assert.Equal(t, 0.0, result.Summary.WinRate)
}

func TestRunCAGRUsesCalendarDays(t *testing.T) {
	// One year of spacing between the first and last decidable day with a
	// doubling equity should yield a CAGR close to 100%.
	dates := []time.Time{
		time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	underlyingPoints := []models.PricePoint{
		{Date: dates[0], Close: 100},
		{Date: dates[1], Close: 200},
		{Date: dates[2], Close: 210},
	}
	leveredPoints := []models.PricePoint{
		{Date: dates[0], Close: 10},
		{Date: dates[1], Close: 10},
		{Date: dates[2], Close: 20},
	}
	underlying, err := models.NewPriceSeries(underlyingPoints)
	require.NoError(t, err)
	levered, err := models.NewPriceSeries(leveredPoints)
	require.NoError(t, err)

	result := NewBacktestService().Run(underlying, levered, BacktestConfig{
		Window:      1,
		InitialCash: 10000,
	})

	require.False(t, result.InsufficientData)
	assert.InDelta(t, 20000, result.Summary.FinalValue, 1e-9)
	assert.InDelta(t, 1.0, result.Summary.Years, 0.01)
	assert.InDelta(t, 1.0, result.Summary.CAGR, 0.02)
}

func TestRunBenchmarkTracksLeveredBuyAndHold(t *testing.T) {
	underlying := series(t, 100, 100, 120, 121, 90)
	levered := series(t, 5, 10, 20, 22, 25)

	result := NewBacktestService().Run(underlying, levered, BacktestConfig{Window: 2, InitialCash: 10000})

	require.False(t, result.InsufficientData)
	// First decidable day holds levered at 10; the benchmark scales from
	// there.
	assert.InDelta(t, 10000, result.BenchmarkCurve[0].Value, 1e-9)
	assert.InDelta(t, 20000, result.BenchmarkCurve[1].Value, 1e-9)
	assert.InDelta(t, 25000, result.BenchmarkCurve[3].Value, 1e-9)
}
