package database

import (
	"gorm.io/gorm"
	"time"
)

// BacktestRun is one persisted simulation with its configuration, summary
// statistics and trades.
type BacktestRun struct {
	gorm.Model
	UnderlyingSymbol string `json:"underlyingSymbol"`
	LeveredSymbol    string `json:"leveredSymbol"`
	Window           int
	BuyBuffer        float64
	SellBuffer       float64
	InitialCash      float64
	Contribution     float64
	TotalReturn      float64
	CAGR             float64
	MaxDrawdown      float64
	WinRate          float64
	RoundTrips       int
	FinalValue       float64
	Trades           []Trade `gorm:"foreignKey:RunID"`
}

// Trade is one position flip inside a persisted run.
type Trade struct {
	gorm.Model
	RunID     uint
	Date      time.Time
	Direction string
	Price     float64
}
