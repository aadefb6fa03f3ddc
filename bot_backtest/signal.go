package bot_backtest

import (
	"fmt"
	"github.com/StacyJ1201/LRSBacketest/models"
	"github.com/StacyJ1201/LRSBacketest/services"
	"github.com/urfave/cli/v2"
)

// RunSignal prints where the live signal stands today. It is the same
// simulation as the backtest command, read at its last step.
func (b *Backtest) RunSignal(c *cli.Context) error {
	setup, err := setupFromContext(c)
	if err != nil {
		return err
	}

	signalService := services.NewSignalService(setup.provider, services.NewBacktestService())
	report, err := signalService.CurrentSignal(setup.underlyingSymbol, setup.leveredSymbol, setup.historyDays, setup.config)
	if err != nil {
		return err
	}

	fmt.Printf("%s as of %s\n", setup.underlyingSymbol, report.Date.Format("2006-01-02"))
	fmt.Printf("Position:     %s (capital in %s)\n", report.Position, positionAsset(report, setup))
	fmt.Printf("Close:        %.2f\n", report.UnderlyingClose)
	fmt.Printf("%d-day avg:  %.2f (delta %+.2f%%)\n", setup.config.Window, report.MovingAverage, report.Delta*100)
	fmt.Printf("Buy level:    %.2f\n", report.BuyLevel)
	fmt.Printf("Sell level:   %.2f\n", report.SellLevel)
	if report.LastTrade != nil {
		fmt.Printf("Last trade:   %s %s @ %.2f\n", report.LastTrade.Date.Format("2006-01-02"),
			report.LastTrade.Direction(), report.LastTrade.Price)
	}
	return nil
}

func positionAsset(report services.SignalReport, setup runSetup) string {
	if report.Position == models.RiskOn {
		return setup.leveredSymbol
	}
	return "cash"
}
