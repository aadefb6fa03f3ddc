package strategies

import (
	"github.com/StacyJ1201/LRSBacketest/models"
	"github.com/sdcoffey/techan"
)

// LRSStrategy is the leveraged rotation signal: enter when the underlying
// close sits above its trailing moving average by at least BuyBuffer,
// leave when it sits below by at least SellBuffer. Between the two levels
// the current position is kept, which is what suppresses whipsaw flips.
// The two buffers may differ, supporting asymmetric configurations.
type LRSStrategy struct {
	Window     int
	BuyBuffer  float64
	SellBuffer float64
}

func NewLRSStrategy(window int, buyBuffer float64, sellBuffer float64) LRSStrategy {
	return LRSStrategy{
		Window:     window,
		BuyBuffer:  buyBuffer,
		SellBuffer: sellBuffer,
	}
}

// Decide maps the current position and the day's (close, moving average)
// pair to the new position. Callers must not invoke it for days without a
// defined average; there is no implicit hold for such days, they simply do
// not exist for the signal.
func (s LRSStrategy) Decide(current models.Position, close float64, movingAverage float64) models.Position {
	if movingAverage <= 0 {
		return current
	}

	delta := (close - movingAverage) / movingAverage
	switch current {
	case models.RiskOff:
		if delta >= s.BuyBuffer {
			return models.RiskOn
		}
	case models.RiskOn:
		if delta <= -s.SellBuffer {
			return models.RiskOff
		}
	}
	return current
}

// BuyLevel is the close at which a RiskOff position would enter.
func (s LRSStrategy) BuyLevel(movingAverage float64) float64 {
	return movingAverage * (1 + s.BuyBuffer)
}

// SellLevel is the close at which a RiskOn position would exit.
func (s LRSStrategy) SellLevel(movingAverage float64) float64 {
	return movingAverage * (1 - s.SellBuffer)
}

// ShouldEnter evaluates the entry rule on the last candle of a techan
// series. False while the window is still filling.
func (s LRSStrategy) ShouldEnter(timeSeries *techan.TimeSeries) bool {
	lastCandleIndex := len(timeSeries.Candles) - 1
	if lastCandleIndex < s.Window-1 {
		return false
	}

	closePrices := techan.NewClosePriceIndicator(timeSeries)
	sma := techan.NewSimpleMovingAverage(closePrices, s.Window)
	close := timeSeries.Candles[lastCandleIndex].ClosePrice.Float()
	return s.Decide(models.RiskOff, close, sma.Calculate(lastCandleIndex).Float()) == models.RiskOn
}

// ShouldExit evaluates the exit rule on the last candle of a techan series.
func (s LRSStrategy) ShouldExit(timeSeries *techan.TimeSeries) bool {
	lastCandleIndex := len(timeSeries.Candles) - 1
	if lastCandleIndex < s.Window-1 {
		return false
	}

	closePrices := techan.NewClosePriceIndicator(timeSeries)
	sma := techan.NewSimpleMovingAverage(closePrices, s.Window)
	close := timeSeries.Candles[lastCandleIndex].ClosePrice.Float()
	return s.Decide(models.RiskOn, close, sma.Calculate(lastCandleIndex).Float()) == models.RiskOff
}
