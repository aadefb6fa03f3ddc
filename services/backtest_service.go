package services

import (
	"fmt"
	"github.com/StacyJ1201/LRSBacketest/helpers"
	"github.com/StacyJ1201/LRSBacketest/models"
	"github.com/StacyJ1201/LRSBacketest/models/analytics"
	"github.com/StacyJ1201/LRSBacketest/strategies"
	"math"
	"time"
)

// BacktestConfig carries every knob of one run. Nothing here has a baked-in
// default; callers supply all of it.
type BacktestConfig struct {
	Window             int
	BuyBuffer          float64
	SellBuffer         float64
	InitialCash        float64
	Contribution       float64
	ContributionPolicy models.ContributionPolicy
}

// BacktestService replays the rotation signal against two aligned price
// series. The signal reads the underlying instrument against its own
// moving average while the capital rides the levered instrument; that
// asset/signal split is the point of the strategy.
//
// The simulation always starts in cash on the first decidable day. That is
// a fixed policy, not a knob.
type BacktestService struct{}

func NewBacktestService() *BacktestService {
	return &BacktestService{}
}

// Run computes the underlying's moving average and simulates. Inputs are
// never mutated, and repeated calls with the same inputs produce identical
// results.
func (bs *BacktestService) Run(underlying models.PriceSeries, levered models.PriceSeries, cfg BacktestConfig) analytics.RunResult {
	movingAverage, err := underlying.MovingAverage(cfg.Window)
	if err != nil {
		helpers.Logger.Errorln(fmt.Sprintf("backtest: %v", err))
		return analytics.InsufficientDataResult()
	}
	return bs.RunWithAverage(underlying, levered, movingAverage, cfg)
}

// RunWithAverage simulates against an already computed (possibly externally
// supplied) moving average series.
//
// Only days present in both price series and carrying a defined average
// take part. The first such day initializes the portfolio to all-cash;
// decisions start on the next one. Fewer than two such days is not an
// error, it is an insufficient-data result, so sweeps over many
// configurations never abort on one bad input.
func (bs *BacktestService) RunWithAverage(underlying models.PriceSeries, levered models.PriceSeries,
	movingAverage models.MovingAverageSeries, cfg BacktestConfig) analytics.RunResult {

	if cfg.InitialCash <= 0 {
		return analytics.InsufficientDataResult()
	}

	var dates []time.Time
	for _, d := range models.AlignDates(underlying, levered) {
		if _, ok := movingAverage.At(d); ok {
			dates = append(dates, d)
		}
	}
	if len(dates) < 2 {
		return analytics.InsufficientDataResult()
	}

	strategy := strategies.NewLRSStrategy(cfg.Window, cfg.BuyBuffer, cfg.SellBuffer)
	policy := cfg.ContributionPolicy
	if policy == nil {
		policy = models.NoContribution{}
	}

	state := models.PortfolioState{Cash: cfg.InitialCash, Position: models.RiskOff}
	leveredBase, _ := levered.At(dates[0])

	result := analytics.RunResult{}
	result.EquityCurve = append(result.EquityCurve, analytics.EquityPoint{Date: dates[0], Value: state.Cash})
	result.BenchmarkCurve = append(result.BenchmarkCurve, analytics.EquityPoint{Date: dates[0], Value: cfg.InitialCash})

	contributions := 0
	for i := 1; i < len(dates); i++ {
		date := dates[i]
		underlyingClose, _ := underlying.At(date)
		leveredClose, _ := levered.At(date)
		average, _ := movingAverage.At(date)

		// The swap is atomic within the day's step: cash and shares
		// never coexist outside this block.
		if next := strategy.Decide(state.Position, underlyingClose, average); next != state.Position {
			if next == models.RiskOn {
				state.Shares = state.Cash / leveredClose
				state.Cash = 0
			} else {
				state.Cash = state.Shares * leveredClose
				state.Shares = 0
			}
			result.Trades = append(result.Trades, models.Trade{
				Date:  date,
				From:  state.Position,
				To:    next,
				Price: leveredClose,
			})
			state.Position = next
		}

		if cfg.Contribution > 0 && policy.NewPeriod(dates[i-1], date) {
			if state.Position == models.RiskOn {
				state.Shares += cfg.Contribution / leveredClose
			} else {
				state.Cash += cfg.Contribution
			}
			contributions++
		}

		result.EquityCurve = append(result.EquityCurve, analytics.EquityPoint{Date: date, Value: state.Value(leveredClose)})
		result.BenchmarkCurve = append(result.BenchmarkCurve, analytics.EquityPoint{Date: date, Value: cfg.InitialCash * leveredClose / leveredBase})
	}

	result.Summary = summarize(&result, cfg, contributions, dates)
	return result
}

func summarize(result *analytics.RunResult, cfg BacktestConfig, contributions int, dates []time.Time) analytics.Summary {
	finalValue := result.EquityCurve[len(result.EquityCurve)-1].Value
	invested := cfg.InitialCash + float64(contributions)*cfg.Contribution

	summary := analytics.Summary{
		FinalValue:      finalValue,
		InvestedCapital: invested,
		Trades:          len(result.Trades),
		TotalReturn:     finalValue/invested - 1,
	}

	// CAGR over calendar days, against the initial cash only. Documented
	// policy: contributions inflate CAGR, the total return above accounts
	// for them instead.
	days := dates[len(dates)-1].Sub(dates[0]).Hours() / 24
	if days > 0 && finalValue > 0 {
		summary.Years = days / 365.25
		summary.CAGR = math.Pow(finalValue/cfg.InitialCash, 365.25/days) - 1
	}

	peak := 0.0
	for _, p := range result.EquityCurve {
		if p.Value > peak {
			peak = p.Value
		}
		if peak > 0 {
			if drawdown := (peak - p.Value) / peak; drawdown > summary.MaxDrawdown {
				summary.MaxDrawdown = drawdown
			}
		}
	}

	// Pair every entry with its following exit. An entry still open on the
	// last day has no pair and is excluded from the win rate.
	var entry *models.Trade
	var wins int
	var winReturns, lossReturns []float64
	for i := range result.Trades {
		trade := result.Trades[i]
		if trade.To == models.RiskOn {
			entry = &result.Trades[i]
			continue
		}
		if entry == nil {
			continue
		}
		tripReturn := trade.Price/entry.Price - 1
		summary.RoundTrips++
		if tripReturn >= 0 {
			wins++
			winReturns = append(winReturns, tripReturn)
		} else {
			lossReturns = append(lossReturns, tripReturn)
		}
		entry = nil
	}
	if summary.RoundTrips > 0 {
		summary.WinRate = float64(wins) / float64(summary.RoundTrips)
	}
	summary.AvgWin = helpers.Mean(winReturns)
	summary.AvgLoss = helpers.Mean(lossReturns)

	return summary
}
