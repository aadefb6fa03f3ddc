package bot_backtest

import (
	"fmt"
	"github.com/StacyJ1201/LRSBacketest/helpers"
	"github.com/StacyJ1201/LRSBacketest/services"
	"github.com/urfave/cli/v2"
)

// RunSweep evaluates the buffer grid against one fetched history and
// prints a comparison table plus the winner.
func (b *Backtest) RunSweep(c *cli.Context) error {
	setup, err := setupFromContext(c)
	if err != nil {
		return err
	}

	helpers.Logger.Infoln(fmt.Sprintf("🔁 Sweep started: %s signal, %s capital", setup.underlyingSymbol, setup.leveredSymbol))

	underlying, levered, err := setup.fetchSeries()
	if err != nil {
		return err
	}

	backtestService := services.NewBacktestService()
	sweep := services.NewSweepService(backtestService).Run(underlying, levered, setup.config, services.DefaultSweepConfigs())

	fmt.Printf("%-30s %15s %12s %12s %8s %10s\n", "Strategy", "Total Return", "CAGR", "Max DD", "Trips", "Win Rate")
	for _, entry := range sweep.Entries {
		if entry.Result.InsufficientData {
			fmt.Printf("%-30s %15s\n", entry.Name, "insufficient")
			continue
		}
		summary := entry.Result.Summary
		fmt.Printf("%-30s %14.2f%% %11.2f%% %11.2f%% %8d %9.2f%%\n",
			entry.Name, summary.TotalReturn*100, summary.CAGR*100,
			summary.MaxDrawdown*100, summary.RoundTrips, summary.WinRate*100)
	}
	fmt.Printf("Mean return %.2f%%, stddev %.2f\n", sweep.Mean*100, sweep.StdDev)

	if best := sweep.BestEntry(); best != nil {
		fmt.Printf("Winner: %s with %.2f%% total return over %d round trips\n",
			best.Name, best.Result.Summary.TotalReturn*100, best.Result.Summary.RoundTrips)
	}

	return nil
}
