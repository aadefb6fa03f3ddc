package analytics

// SweepEntry is one (buy buffer, sell buffer) configuration evaluated
// against the same input series.
type SweepEntry struct {
	Name       string
	BuyBuffer  float64
	SellBuffer float64
	Result     RunResult
}

// SweepResult aggregates a buffer sweep. Best indexes the entry with the
// highest total return; it is -1 when every entry was degenerate. Mean and
// StdDev are taken over the total returns of the usable entries.
type SweepResult struct {
	Entries []SweepEntry
	Best    int
	Mean    float64
	StdDev  float64
}

// BestEntry returns the winning entry, or nil when no entry was usable.
func (r SweepResult) BestEntry() *SweepEntry {
	if r.Best < 0 || r.Best >= len(r.Entries) {
		return nil
	}
	return &r.Entries[r.Best]
}
