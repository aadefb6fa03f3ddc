package analytics

import (
	"github.com/StacyJ1201/LRSBacketest/models"
	"time"
)

// EquityPoint is one day of a value curve.
type EquityPoint struct {
	Date  time.Time
	Value float64
}

// Summary condenses one backtest run.
//
// Policy choices, preserved from the original study:
//   - CAGR uses calendar days over 365.25, against the initial cash only.
//   - TotalReturn divides by initial cash plus every contribution made.
//   - WinRate is computed over matched entry/exit pairs; a pair whose exit
//     price is at or above its entry price counts as a win. A position
//     still open on the last day is excluded, not counted as a loss.
type Summary struct {
	TotalReturn     float64
	CAGR            float64
	MaxDrawdown     float64
	Trades          int
	RoundTrips      int
	WinRate         float64
	AvgWin          float64
	AvgLoss         float64
	FinalValue      float64
	InvestedCapital float64
	Years           float64
}

// RunResult is the immutable output of one simulation run: the day-by-day
// equity curve, a levered buy-and-hold benchmark over the same days, the
// trade log and the summary. InsufficientData marks degenerate inputs
// (fewer than two decidable days); such results carry empty curves and
// zeroed statistics instead of NaN.
type RunResult struct {
	InsufficientData bool
	EquityCurve      []EquityPoint
	BenchmarkCurve   []EquityPoint
	Trades           []models.Trade
	Summary          Summary
}

func InsufficientDataResult() RunResult {
	return RunResult{InsufficientData: true}
}
