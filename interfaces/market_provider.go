package interfaces

import (
	"github.com/StacyJ1201/LRSBacketest/models"
)

type (
	// MarketProvider supplies daily close history for one symbol, already
	// ordered and de-duplicated. Providers own their transport concerns
	// (auth, pacing between requests); the core never blocks on I/O.
	MarketProvider interface {
		GetDailySeries(symbol string, limit int) (models.PriceSeries, error)
	}
)
