package binance

import (
	"context"
	"fmt"
	"github.com/StacyJ1201/LRSBacketest/helpers"
	"github.com/StacyJ1201/LRSBacketest/models"
	"github.com/adshao/go-binance/v2"
	"github.com/sdcoffey/big"
	"os"
	"time"
)

// BinanceService supplies daily closes for crypto pairs, for running the
// rotation against a spot index and a leveraged proxy token. Klines come
// back in chunks of at most 1000, so longer histories are fetched in
// slices, oldest first.
type BinanceService struct {
	binanceClient *binance.Client
}

func NewBinanceService() *BinanceService {
	apiKey := os.Getenv("binanceAPIKey")
	apiSecret := os.Getenv("binanceAPISecret")
	return &BinanceService{
		binanceClient: binance.NewClient(apiKey, apiSecret),
	}
}

func (bs *BinanceService) GetDailySeries(pair string, limit int) (models.PriceSeries, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("binance: history limit must be > 0, got %d", limit)
	}

	const daySeconds = 24 * 60 * 60

	var resultKlines []*binance.Kline
	remaining := limit
	chunk := remaining % 1000
	if chunk == 0 {
		chunk = 1000
	}
	for remaining != 0 {
		startTime := time.Now().Unix() - int64(daySeconds)*int64(remaining)
		klines, err := bs.binanceClient.NewKlinesService().Symbol(pair).
			Interval("1d").Limit(chunk).StartTime(startTime * 1000).Do(context.Background())
		if err != nil {
			return nil, fmt.Errorf("binance: fetching %s: %w", pair, err)
		}
		resultKlines = append(resultKlines, klines...)
		remaining -= chunk
		chunk = 1000
	}

	var points []models.PricePoint
	for _, kline := range resultKlines {
		points = append(points, models.PricePoint{
			Date:  time.Unix(kline.OpenTime/1000, 0).UTC(),
			Close: big.NewFromString(kline.Close).Float(),
		})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("binance: no klines returned for %s", pair)
	}

	series, err := models.NewPriceSeries(points)
	if err != nil {
		return nil, fmt.Errorf("binance: %s: %w", pair, err)
	}

	helpers.Logger.Debugln(fmt.Sprintf("binance: fetched %d daily closes for %s", len(series), pair))
	return series.Tail(limit), nil
}
