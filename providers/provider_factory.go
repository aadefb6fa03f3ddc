package providers

import (
	"fmt"
	"github.com/StacyJ1201/LRSBacketest/interfaces"
	"github.com/StacyJ1201/LRSBacketest/providers/binance"
	"github.com/StacyJ1201/LRSBacketest/providers/csvfile"
	"github.com/StacyJ1201/LRSBacketest/providers/yahoo"
	"os"
	"strings"
)

// ProviderFactory resolves a market provider by name. "csv" reads from the
// csvDir environment variable.
func ProviderFactory(providerName string) (interfaces.MarketProvider, error) {
	switch strings.ToLower(providerName) {
	case "", "yahoo":
		return yahoo.NewYahooService(), nil
	case "binance":
		return binance.NewBinanceService(), nil
	case "csv":
		dir := os.Getenv("csvDir")
		if dir == "" {
			dir = "."
		}
		return csvfile.NewCSVFileService(dir), nil
	default:
		return nil, fmt.Errorf("%s is not a known provider", providerName)
	}
}
