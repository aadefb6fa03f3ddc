package models

// Position is the binary state of the strategy: capital is either deployed
// in the levered instrument (RiskOn) or parked in cash (RiskOff).
type Position int

const (
	RiskOff Position = iota
	RiskOn
)

func (p Position) String() string {
	if p == RiskOn {
		return "RISK_ON"
	}
	return "RISK_OFF"
}

// PortfolioState is the running cash/shares bookkeeping of one simulation.
// Exactly one of Cash and Shares is non-zero outside the instant of a swap,
// and Shares stays zero unless the position is RiskOn. Each run owns its
// own state; nothing is shared across runs.
type PortfolioState struct {
	Cash     float64
	Shares   float64
	Position Position
}

// Value is the mark-to-market worth of the portfolio at the given levered
// close.
func (s PortfolioState) Value(leveredClose float64) float64 {
	if s.Position == RiskOn {
		return s.Shares * leveredClose
	}
	return s.Cash
}
