package main

import (
	"github.com/StacyJ1201/LRSBacketest/bot_backtest"
	"github.com/StacyJ1201/LRSBacketest/bot_dashboard"
	"github.com/StacyJ1201/LRSBacketest/helpers"
	"github.com/urfave/cli/v2"
	"os"
)

func main() {
	backtest := &bot_backtest.Backtest{}
	dashboard := &bot_dashboard.Dashboard{}

	commonFlags := []cli.Flag{
		&cli.StringFlag{Name: "provider", Usage: "price source: yahoo, binance or csv"},
		&cli.StringFlag{Name: "underlying", Usage: "signal instrument symbol"},
		&cli.StringFlag{Name: "levered", Usage: "capital instrument symbol"},
		&cli.StringFlag{Name: "window", Usage: "moving average window in trading days"},
		&cli.StringFlag{Name: "buy-buffer", Usage: "entry buffer fraction above the average"},
		&cli.StringFlag{Name: "sell-buffer", Usage: "exit buffer fraction below the average"},
		&cli.StringFlag{Name: "initial-cash", Usage: "starting capital"},
		&cli.StringFlag{Name: "contribution", Usage: "periodic contribution amount"},
		&cli.StringFlag{Name: "contribution-policy", Usage: "none, monthly, or an interval like 30d"},
		&cli.StringFlag{Name: "history-days", Usage: "trading days of history to fetch"},
	}

	app := &cli.App{
		Name:  "lrsbacktest",
		Usage: "moving-average rotation between a leveraged ETF and cash",
		Commands: []*cli.Command{
			{
				Name:   "backtest",
				Usage:  "run one backtest and print the report",
				Flags:  append([]cli.Flag{&cli.StringFlag{Name: "export-dir", Usage: "write trades and curve CSVs here"}, &cli.StringFlag{Name: "record", Usage: "persist the run to the database"}}, commonFlags...),
				Action: backtest.Run,
			},
			{
				Name:   "sweep",
				Usage:  "compare buffer configurations over the same history",
				Flags:  commonFlags,
				Action: backtest.RunSweep,
			},
			{
				Name:   "signal",
				Usage:  "print where the signal stands today",
				Flags:  commonFlags,
				Action: backtest.RunSignal,
			},
			{
				Name:   "dashboard",
				Usage:  "live terminal dashboard",
				Flags:  append([]cli.Flag{&cli.StringFlag{Name: "refresh", Usage: "dashboard refresh interval"}}, commonFlags...),
				Action: dashboard.Run,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		helpers.Logger.Fatalln(err)
	}
}
