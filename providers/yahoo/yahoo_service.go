package yahoo

import (
	"fmt"
	"github.com/StacyJ1201/LRSBacketest/helpers"
	"github.com/StacyJ1201/LRSBacketest/models"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
	str2duration "github.com/xhit/go-str2duration/v2"
	"os"
	"time"
)

// YahooService fetches daily close history from Yahoo Finance. Requests are
// spaced by requestDelay to stay under the endpoint's request-rate ceiling;
// the delay sits here, in the integration layer, so the core never sleeps.
type YahooService struct {
	requestDelay time.Duration
}

func NewYahooService() *YahooService {
	requestDelay := 500 * time.Millisecond
	if delayString := os.Getenv("requestDelay"); delayString != "" {
		parsed, err := str2duration.ParseDuration(delayString)
		if err != nil {
			helpers.Logger.Warnln(fmt.Sprintf("yahoo: bad requestDelay %q, keeping %s", delayString, requestDelay))
		} else {
			requestDelay = parsed
		}
	}
	return &YahooService{requestDelay: requestDelay}
}

// GetDailySeries returns roughly the last limit trading days of adjusted
// closes for one symbol. The calendar range requested is padded because
// markets close on weekends and holidays.
func (ys *YahooService) GetDailySeries(symbol string, limit int) (models.PriceSeries, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("yahoo: history limit must be > 0, got %d", limit)
	}

	time.Sleep(ys.requestDelay)

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -(limit*3/2 + 7))

	params := &chart.Params{
		Symbol:   symbol,
		Interval: datetime.OneDay,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
	}

	var points []models.PricePoint
	iter := chart.Get(params)
	for iter.Next() {
		bar := iter.Bar()
		close := bar.AdjClose
		if close.Equal(decimal.Zero) {
			close = bar.Close
		}
		closeValue, _ := close.Float64()
		if closeValue <= 0 {
			continue
		}
		points = append(points, models.PricePoint{
			Date:  time.Unix(int64(bar.Timestamp), 0).UTC(),
			Close: closeValue,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("yahoo: fetching %s: %w", symbol, err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("yahoo: no history returned for %s", symbol)
	}

	series, err := models.NewPriceSeries(points)
	if err != nil {
		return nil, fmt.Errorf("yahoo: %s: %w", symbol, err)
	}

	helpers.Logger.Debugln(fmt.Sprintf("yahoo: fetched %d daily closes for %s", len(series), symbol))
	return series.Tail(limit), nil
}
