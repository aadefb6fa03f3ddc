package csvfile

import (
	"encoding/csv"
	"fmt"
	"github.com/StacyJ1201/LRSBacketest/models"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// CSVFileService reads daily closes from <dir>/<symbol>.csv files with a
// "date,close" header. It stands in for the network providers in tests and
// offline runs.
type CSVFileService struct {
	dir string
}

func NewCSVFileService(dir string) *CSVFileService {
	return &CSVFileService{dir: dir}
}

func (cs *CSVFileService) GetDailySeries(symbol string, limit int) (models.PriceSeries, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("csvfile: history limit must be > 0, got %d", limit)
	}

	path := filepath.Join(cs.dir, symbol+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvfile: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvfile: reading %s: %w", path, err)
	}

	var points []models.PricePoint
	for i, record := range records {
		if i == 0 && len(record) > 0 && record[0] == "date" {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("csvfile: %s line %d: want date,close", path, i+1)
		}
		date, err := time.Parse("2006-01-02", record[0])
		if err != nil {
			return nil, fmt.Errorf("csvfile: %s line %d: %w", path, i+1, err)
		}
		close, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("csvfile: %s line %d: %w", path, i+1, err)
		}
		points = append(points, models.PricePoint{Date: date, Close: close})
	}

	series, err := models.NewPriceSeries(points)
	if err != nil {
		return nil, fmt.Errorf("csvfile: %s: %w", path, err)
	}
	return series.Tail(limit), nil
}
