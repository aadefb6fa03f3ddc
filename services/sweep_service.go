package services

import (
	"fmt"
	"github.com/StacyJ1201/LRSBacketest/helpers"
	"github.com/StacyJ1201/LRSBacketest/models"
	"github.com/StacyJ1201/LRSBacketest/models/analytics"
)

// SweepConfig is one buffer pair to evaluate.
type SweepConfig struct {
	Name       string
	BuyBuffer  float64
	SellBuffer float64
}

// DefaultSweepConfigs is the buffer grid from the original study,
// asymmetric entry included.
func DefaultSweepConfigs() []SweepConfig {
	return []SweepConfig{
		{Name: "5% Buy / 3% Sell", BuyBuffer: 0.05, SellBuffer: 0.03},
		{Name: "3% Buy / 3% Sell", BuyBuffer: 0.03, SellBuffer: 0.03},
		{Name: "2% Buy / 2% Sell", BuyBuffer: 0.02, SellBuffer: 0.02},
		{Name: "1% Buy / 1% Sell", BuyBuffer: 0.01, SellBuffer: 0.01},
		{Name: "0.5% Buy / 0.5% Sell", BuyBuffer: 0.005, SellBuffer: 0.005},
		{Name: "0% Buy / 0% Sell (No Buffer)", BuyBuffer: 0, SellBuffer: 0},
		{Name: "3% Buy / 1% Sell", BuyBuffer: 0.03, SellBuffer: 0.01},
	}
}

// SweepService evaluates a list of buffer configurations against the same
// input series. The moving average is computed once and shared; each run
// still owns its own portfolio state, so entries are independent.
type SweepService struct {
	backtest *BacktestService
}

func NewSweepService(backtest *BacktestService) *SweepService {
	return &SweepService{backtest: backtest}
}

func (ss *SweepService) Run(underlying models.PriceSeries, levered models.PriceSeries,
	cfg BacktestConfig, configs []SweepConfig) analytics.SweepResult {

	sweep := analytics.SweepResult{Best: -1}

	movingAverage, err := underlying.MovingAverage(cfg.Window)
	if err != nil {
		helpers.Logger.Errorln(fmt.Sprintf("sweep: %v", err))
		return sweep
	}

	var returns []float64
	for _, sweepConfig := range configs {
		runConfig := cfg
		runConfig.BuyBuffer = sweepConfig.BuyBuffer
		runConfig.SellBuffer = sweepConfig.SellBuffer

		runResult := ss.backtest.RunWithAverage(underlying, levered, movingAverage, runConfig)
		sweep.Entries = append(sweep.Entries, analytics.SweepEntry{
			Name:       sweepConfig.Name,
			BuyBuffer:  sweepConfig.BuyBuffer,
			SellBuffer: sweepConfig.SellBuffer,
			Result:     runResult,
		})

		if runResult.InsufficientData {
			helpers.Logger.Warnln(fmt.Sprintf("sweep: insufficient data for %s", sweepConfig.Name))
			continue
		}

		returns = append(returns, runResult.Summary.TotalReturn)
		if sweep.Best == -1 || runResult.Summary.TotalReturn > sweep.Entries[sweep.Best].Result.Summary.TotalReturn {
			sweep.Best = len(sweep.Entries) - 1
		}
	}

	sweep.Mean = helpers.Mean(returns)
	sweep.StdDev = helpers.StdDev(returns, sweep.Mean)

	if best := sweep.BestEntry(); best != nil {
		helpers.Logger.Debugln(fmt.Sprintf("sweep: best %s total return %.2f%% (mean %.2f%%, stddev %.2f, +/- ratio %f)",
			best.Name, best.Result.Summary.TotalReturn*100, sweep.Mean*100, sweep.StdDev,
			helpers.PositiveNegativeRatio(returns)))
		if helpers.AllValuesPositive(returns) {
			helpers.Logger.Debugln("sweep: no configuration lost money over this history")
		}
	}

	return sweep
}
