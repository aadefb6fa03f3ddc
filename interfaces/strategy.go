package interfaces

import (
	"github.com/StacyJ1201/LRSBacketest/models"
	"github.com/sdcoffey/techan"
)

type (
	// Strategy is a hysteresis position rule over one instrument's close
	// and its trailing moving average. Decide carries no state beyond the
	// current position, so one strategy value serves any number of runs.
	Strategy interface {
		Decide(current models.Position, close float64, movingAverage float64) models.Position
		BuyLevel(movingAverage float64) float64
		SellLevel(movingAverage float64) float64
		ShouldEnter(timeSeries *techan.TimeSeries) bool
		ShouldExit(timeSeries *techan.TimeSeries) bool
	}
)
