package services

import (
	"fmt"
	"github.com/StacyJ1201/LRSBacketest/helpers"
	"github.com/StacyJ1201/LRSBacketest/interfaces"
	"github.com/StacyJ1201/LRSBacketest/models"
	"github.com/StacyJ1201/LRSBacketest/models/analytics"
	"github.com/StacyJ1201/LRSBacketest/strategies"
	"time"
)

// SignalReport is the live view of the strategy: where the signal stands on
// the latest trading day, plus the full backtest it was derived from.
type SignalReport struct {
	Date            time.Time
	Position        models.Position
	UnderlyingClose float64
	MovingAverage   float64
	BuyLevel        float64
	SellLevel       float64
	Delta           float64
	LastTrade       *models.Trade
	Result          analytics.RunResult
}

// SignalService derives the current signal by running the very same
// simulation contract as the historical backtest over freshly fetched
// series and reading its last step. There is no second signal
// implementation to drift from the backtest.
type SignalService struct {
	provider interfaces.MarketProvider
	backtest *BacktestService
}

func NewSignalService(provider interfaces.MarketProvider, backtest *BacktestService) *SignalService {
	return &SignalService{
		provider: provider,
		backtest: backtest,
	}
}

// CurrentSignal fetches both instruments and evaluates the signal. limit is
// the number of trading days of history to request; it must comfortably
// exceed the moving-average window.
func (ss *SignalService) CurrentSignal(underlyingSymbol string, leveredSymbol string,
	limit int, cfg BacktestConfig) (SignalReport, error) {

	underlying, err := ss.provider.GetDailySeries(underlyingSymbol, limit)
	if err != nil {
		return SignalReport{}, fmt.Errorf("fetching %s: %w", underlyingSymbol, err)
	}
	levered, err := ss.provider.GetDailySeries(leveredSymbol, limit)
	if err != nil {
		return SignalReport{}, fmt.Errorf("fetching %s: %w", leveredSymbol, err)
	}

	return ss.Evaluate(underlying, levered, cfg)
}

// Evaluate computes the report from pre-fetched series.
func (ss *SignalService) Evaluate(underlying models.PriceSeries, levered models.PriceSeries,
	cfg BacktestConfig) (SignalReport, error) {

	movingAverage, err := underlying.MovingAverage(cfg.Window)
	if err != nil {
		return SignalReport{}, err
	}

	result := ss.backtest.RunWithAverage(underlying, levered, movingAverage, cfg)
	if result.InsufficientData {
		return SignalReport{Result: result},
			fmt.Errorf("insufficient data: %d-day average needs more history (%d underlying closes)", cfg.Window, len(underlying))
	}

	lastDay := result.EquityCurve[len(result.EquityCurve)-1].Date
	close, _ := underlying.At(lastDay)
	average, _ := movingAverage.At(lastDay)
	strategy := strategies.NewLRSStrategy(cfg.Window, cfg.BuyBuffer, cfg.SellBuffer)

	report := SignalReport{
		Date:            lastDay,
		Position:        models.RiskOff,
		UnderlyingClose: close,
		MovingAverage:   average,
		BuyLevel:        strategy.BuyLevel(average),
		SellLevel:       strategy.SellLevel(average),
		Delta:           (close - average) / average,
		Result:          result,
	}
	if n := len(result.Trades); n > 0 {
		report.LastTrade = &result.Trades[n-1]
		report.Position = result.Trades[n-1].To
	}

	helpers.Logger.Infoln(fmt.Sprintf("signal %s: %s (close %.2f, %d-day avg %.2f, delta %.2f%%)",
		lastDay.Format("2006-01-02"), report.Position, close, cfg.Window, average, report.Delta*100))

	return report, nil
}
