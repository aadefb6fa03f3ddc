package bot_backtest

import (
	"fmt"
	"github.com/StacyJ1201/LRSBacketest/database"
	"github.com/StacyJ1201/LRSBacketest/helpers"
	"github.com/StacyJ1201/LRSBacketest/interfaces"
	"github.com/StacyJ1201/LRSBacketest/models"
	"github.com/StacyJ1201/LRSBacketest/models/analytics"
	"github.com/StacyJ1201/LRSBacketest/providers"
	"github.com/StacyJ1201/LRSBacketest/services"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"os"
)

type Backtest struct {
}

func init() {
	cwd, _ := os.Getwd()
	_ = godotenv.Load(cwd + "/conf.env")
}

type runSetup struct {
	provider         interfaces.MarketProvider
	underlyingSymbol string
	leveredSymbol    string
	historyDays      int
	config           services.BacktestConfig
}

func setupFromContext(c *cli.Context) (runSetup, error) {
	provider, err := providers.ProviderFactory(helpers.StringSetting(c, "provider", "provider", "yahoo"))
	if err != nil {
		return runSetup{}, err
	}

	policyName := helpers.StringSetting(c, "contribution-policy", "contributionPolicy", "none")
	policy, err := models.ContributionPolicyFactory(policyName)
	if err != nil {
		return runSetup{}, err
	}

	return runSetup{
		provider:         provider,
		underlyingSymbol: helpers.StringSetting(c, "underlying", "underlyingSymbol", "QQQ"),
		leveredSymbol:    helpers.StringSetting(c, "levered", "leveredSymbol", "TQQQ"),
		historyDays:      helpers.IntSetting(c, "history-days", "historyDays", 2500),
		config: services.BacktestConfig{
			Window:             helpers.IntSetting(c, "window", "smaWindow", 200),
			BuyBuffer:          helpers.FloatSetting(c, "buy-buffer", "buyBuffer", 0.01),
			SellBuffer:         helpers.FloatSetting(c, "sell-buffer", "sellBuffer", 0.01),
			InitialCash:        helpers.FloatSetting(c, "initial-cash", "initialCash", 10000),
			Contribution:       helpers.FloatSetting(c, "contribution", "contribution", 0),
			ContributionPolicy: policy,
		},
	}, nil
}

func (setup runSetup) fetchSeries() (models.PriceSeries, models.PriceSeries, error) {
	underlying, err := setup.provider.GetDailySeries(setup.underlyingSymbol, setup.historyDays)
	if err != nil {
		return nil, nil, err
	}
	levered, err := setup.provider.GetDailySeries(setup.leveredSymbol, setup.historyDays)
	if err != nil {
		return nil, nil, err
	}
	return underlying, levered, nil
}

// Run executes one backtest over fetched history, prints the report and
// optionally exports CSV files and records the run to the database.
func (b *Backtest) Run(c *cli.Context) error {
	setup, err := setupFromContext(c)
	if err != nil {
		return err
	}

	helpers.Logger.Infoln(fmt.Sprintf("📈 Backtest started: %s signal, %s capital, %d-day average",
		setup.underlyingSymbol, setup.leveredSymbol, setup.config.Window))

	underlying, levered, err := setup.fetchSeries()
	if err != nil {
		return err
	}

	result := services.NewBacktestService().Run(underlying, levered, setup.config)
	if result.InsufficientData {
		return fmt.Errorf("insufficient data: %d days of %s history cannot fill a %d-day average",
			len(underlying), setup.underlyingSymbol, setup.config.Window)
	}

	printSummary(setup, result)

	if exportDir := helpers.StringSetting(c, "export-dir", "exportDir", ""); exportDir != "" {
		name := fmt.Sprintf("%s_%s", setup.underlyingSymbol, setup.leveredSymbol)
		if err := services.NewExportService().ExportRun(exportDir, name, result); err != nil {
			return err
		}
		helpers.Logger.Infoln(fmt.Sprintf("exported %s trades and curve to %s", name, exportDir))
	}

	if helpers.BoolSetting(c, "record", "enableDatabaseRecording") {
		databaseService, err := database.NewDBService(os.Getenv("databaseHost"), os.Getenv("databasePort"),
			os.Getenv("databaseName"), os.Getenv("databaseUser"), os.Getenv("databasePassword"))
		if err != nil {
			return err
		}
		runID := databaseService.AddRun(setup.underlyingSymbol, setup.leveredSymbol, setup.config.Window,
			setup.config.BuyBuffer, setup.config.SellBuffer, setup.config.InitialCash,
			setup.config.Contribution, result)
		helpers.Logger.Infoln(fmt.Sprintf("recorded run %d", runID))
	}

	return nil
}

func printSummary(setup runSetup, result analytics.RunResult) {
	summary := result.Summary
	fmt.Printf("Backtest %s -> %s, %d-day average, buffers +%.2f%%/-%.2f%%\n",
		setup.underlyingSymbol, setup.leveredSymbol, setup.config.Window,
		setup.config.BuyBuffer*100, setup.config.SellBuffer*100)
	fmt.Printf("Period:              %s to %s (%.1f years)\n",
		result.EquityCurve[0].Date.Format("2006-01-02"),
		result.EquityCurve[len(result.EquityCurve)-1].Date.Format("2006-01-02"),
		summary.Years)
	fmt.Printf("Total Return:        %10.2f%%\n", summary.TotalReturn*100)
	fmt.Printf("CAGR:                %10.2f%%\n", summary.CAGR*100)
	fmt.Printf("Maximum Drawdown:    %10.2f%%\n", summary.MaxDrawdown*100)
	fmt.Printf("Trades:              %10d (%d round trips)\n", summary.Trades, summary.RoundTrips)
	fmt.Printf("Win Rate:            %10.2f%%\n", summary.WinRate*100)
	fmt.Printf("Average Win:         %10.2f%%\n", summary.AvgWin*100)
	fmt.Printf("Average Loss:        %10.2f%%\n", summary.AvgLoss*100)
	fmt.Printf("Final Portfolio:     %10.2f\n", summary.FinalValue)

	last := result.Trades
	if len(last) > 10 {
		last = last[len(last)-10:]
	}
	if len(last) > 0 {
		fmt.Println("Last trades:")
		for _, trade := range last {
			fmt.Printf("  %s %-4s %s @ %.2f\n", trade.Date.Format("2006-01-02"), trade.Direction(),
				setup.leveredSymbol, trade.Price)
		}
	}
}
