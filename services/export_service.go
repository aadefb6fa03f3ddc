package services

import (
	"encoding/csv"
	"fmt"
	"github.com/StacyJ1201/LRSBacketest/models"
	"github.com/StacyJ1201/LRSBacketest/models/analytics"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// ExportService renders a run to CSV: one file of trades and one of the
// daily strategy/benchmark curve.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// WriteTrades writes one row per trade: date, direction, price.
func (es *ExportService) WriteTrades(w io.Writer, trades []models.Trade) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"date", "direction", "price"}); err != nil {
		return err
	}
	for _, trade := range trades {
		row := []string{
			trade.Date.Format("2006-01-02"),
			trade.Direction(),
			strconv.FormatFloat(trade.Price, 'f', 4, 64),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCurve writes one row per day: date, strategy value, benchmark value.
func (es *ExportService) WriteCurve(w io.Writer, result analytics.RunResult) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"date", "strategy", "benchmark"}); err != nil {
		return err
	}
	for i, point := range result.EquityCurve {
		benchmark := ""
		if i < len(result.BenchmarkCurve) {
			benchmark = strconv.FormatFloat(result.BenchmarkCurve[i].Value, 'f', 2, 64)
		}
		row := []string{
			point.Date.Format("2006-01-02"),
			strconv.FormatFloat(point.Value, 'f', 2, 64),
			benchmark,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportRun writes <name>_trades.csv and <name>_curve.csv under dir.
func (es *ExportService) ExportRun(dir string, name string, result analytics.RunResult) error {
	if result.InsufficientData {
		return fmt.Errorf("export %s: run has insufficient data", name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tradesFile, err := os.Create(filepath.Join(dir, name+"_trades.csv"))
	if err != nil {
		return err
	}
	defer tradesFile.Close()
	if err := es.WriteTrades(tradesFile, result.Trades); err != nil {
		return err
	}

	curveFile, err := os.Create(filepath.Join(dir, name+"_curve.csv"))
	if err != nil {
		return err
	}
	defer curveFile.Close()
	return es.WriteCurve(curveFile, result)
}
