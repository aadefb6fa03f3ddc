package models

import "time"

// Trade records one position flip: the day it happened, the states on both
// sides and the levered close it executed at. Trades are append-only.
type Trade struct {
	Date  time.Time
	From  Position
	To    Position
	Price float64
}

// Direction renders the flip as an order side.
func (t Trade) Direction() string {
	if t.To == RiskOn {
		return "BUY"
	}
	return "SELL"
}
