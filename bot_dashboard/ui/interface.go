package ui

import (
	"fmt"
	"github.com/StacyJ1201/LRSBacketest/helpers"
	"github.com/StacyJ1201/LRSBacketest/models"
	"github.com/StacyJ1201/LRSBacketest/models/analytics"
	"github.com/StacyJ1201/LRSBacketest/services"
	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"time"
)

// UserInterface renders the live signal and its backing backtest in the
// terminal. Every refresh explicitly re-fetches and re-runs the simulation;
// there is no hidden reactive state.
type UserInterface struct {
	SignalService    *services.SignalService
	UnderlyingSymbol string
	LeveredSymbol    string
	HistoryDays      int
	Config           services.BacktestConfig
	Refresh          time.Duration

	report *services.SignalReport
}

func (ui *UserInterface) Run() error {
	if err := termui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	defer termui.Close()

	ui.refreshReport()
	ui.UpdateUI()

	uiEvents := termui.PollEvents()
	ticker := time.NewTicker(ui.Refresh).C
	for {
		select {
		case e := <-uiEvents:
			switch e.ID {
			case "q", "<C-c>":
				helpers.Logger.Infoln("Exited by keyboard interrupt")
				return nil
			case "r":
				ui.refreshReport()
				ui.UpdateUI()
			}
		case <-ticker:
			ui.refreshReport()
			ui.UpdateUI()
		}
	}
}

func (ui *UserInterface) refreshReport() {
	report, err := ui.SignalService.CurrentSignal(ui.UnderlyingSymbol, ui.LeveredSymbol, ui.HistoryDays, ui.Config)
	if err != nil {
		helpers.Logger.Errorln("dashboard: " + err.Error())
		return
	}
	ui.report = &report
}

func (ui *UserInterface) UpdateUI() {
	if ui.report == nil {
		waiting := widgets.NewParagraph()
		waiting.Block.Title = "Signal"
		waiting.Text = fmt.Sprintf("Waiting for %s/%s data...", ui.UnderlyingSymbol, ui.LeveredSymbol)
		waiting.SetRect(0, 0, 40, 3)
		termui.Render(waiting)
		return
	}
	report := ui.report

	signalParagraph := widgets.NewParagraph()
	signalParagraph.BorderStyle.Fg = termui.ColorYellow
	signalParagraph.TitleStyle.Fg = termui.ColorYellow
	signalParagraph.Block.Title = fmt.Sprintf("Signal %s -> %s (%s)", ui.UnderlyingSymbol, ui.LeveredSymbol,
		report.Date.Format("2006-01-02"))
	if report.Position == models.RiskOn {
		signalParagraph.Text = fmt.Sprintf("[Position: RISK_ON, holding %s](fg:green)\n", ui.LeveredSymbol)
	} else {
		signalParagraph.Text = "[Position: RISK_OFF, in cash](fg:red)\n"
	}
	signalParagraph.Text += fmt.Sprintf("Close: %.2f\n", report.UnderlyingClose)
	signalParagraph.Text += fmt.Sprintf("%d-day Avg: %.2f\n", ui.Config.Window, report.MovingAverage)
	signalParagraph.Text += fmt.Sprintf("Buy Level: %.2f\n", report.BuyLevel)
	signalParagraph.Text += fmt.Sprintf("Sell Level: %.2f\n", report.SellLevel)
	signalParagraph.Text += fmt.Sprintf("Delta: %+.2f%%\n", report.Delta*100)
	signalParagraph.SetRect(0, 0, 40, 9)

	summary := report.Result.Summary
	summaryParagraph := widgets.NewParagraph()
	summaryParagraph.Block.Title = "Backtest Summary"
	summaryParagraph.Text = fmt.Sprintf("Total Return: %.2f%%\n", summary.TotalReturn*100)
	summaryParagraph.Text += fmt.Sprintf("CAGR: %.2f%%\n", summary.CAGR*100)
	summaryParagraph.Text += fmt.Sprintf("Max Drawdown: %.2f%%\n", summary.MaxDrawdown*100)
	summaryParagraph.Text += fmt.Sprintf("Round Trips: %d\n", summary.RoundTrips)
	summaryParagraph.Text += fmt.Sprintf("Win Rate: %.2f%%\n", summary.WinRate*100)
	summaryParagraph.Text += fmt.Sprintf("Final Value: %.2f\n", summary.FinalValue)
	summaryParagraph.SetRect(40, 0, 80, 9)

	equityPlot := widgets.NewPlot()
	equityPlot.Block.Title = "Equity vs Buy & Hold"
	equityPlot.Data = curveTails(report.Result, 110)
	equityPlot.LineColors = []termui.Color{termui.ColorGreen, termui.ColorBlue}
	equityPlot.SetRect(0, 9, 80, 23)

	tradesList := widgets.NewList()
	tradesList.Block.Title = "Trades"
	tradesList.Rows = tradeRows(report.Result.Trades, 12)
	tradesList.SetRect(80, 0, 112, 23)

	termui.Render(signalParagraph, summaryParagraph, equityPlot, tradesList)
}

func curveTails(result analytics.RunResult, n int) [][]float64 {
	strategy := tailValues(result.EquityCurve, n)
	benchmark := tailValues(result.BenchmarkCurve, n)
	return [][]float64{strategy, benchmark}
}

func tailValues(curve []analytics.EquityPoint, n int) []float64 {
	if len(curve) > n {
		curve = curve[len(curve)-n:]
	}
	values := make([]float64, len(curve))
	for i, point := range curve {
		values[i] = point.Value
	}
	return values
}

func tradeRows(trades []models.Trade, limit int) []string {
	if len(trades) > limit {
		trades = trades[len(trades)-limit:]
	}
	rows := make([]string, 0, len(trades))
	for i := len(trades) - 1; i >= 0; i-- {
		rows = append(rows, fmt.Sprintf("%s %-4s @ %.2f", trades[i].Date.Format("2006-01-02"),
			trades[i].Direction(), trades[i].Price))
	}
	if len(rows) == 0 {
		rows = append(rows, "no trades yet")
	}
	return rows
}
