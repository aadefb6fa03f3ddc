package database

import (
	"fmt"
	database "github.com/StacyJ1201/LRSBacketest/database/models"
	"github.com/StacyJ1201/LRSBacketest/helpers"
	"github.com/StacyJ1201/LRSBacketest/models/analytics"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type DBService struct {
	DB *gorm.DB
}

func NewDBService(dbHost string, dbPort string, dbName string, dbUser string, dbPass string) (*DBService, error) {
	dsn := dbUser + ":" + dbPass + "@tcp(" + dbHost + ":" + dbPort + ")/" + dbName + "?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	dbs := &DBService{
		DB: db,
	}

	err = dbs.DB.AutoMigrate(&database.BacktestRun{}, &database.Trade{})
	if err != nil {
		return nil, err
	}

	return dbs, nil
}

// AddRun persists one finished run and returns its id. Degenerate runs are
// skipped: there is nothing worth querying in them.
func (dbs *DBService) AddRun(underlyingSymbol string, leveredSymbol string, window int,
	buyBuffer float64, sellBuffer float64, initialCash float64, contribution float64,
	result analytics.RunResult) uint {

	if result.InsufficientData {
		helpers.Logger.Warnln(fmt.Sprintf("database: not recording insufficient-data run %s/%s", underlyingSymbol, leveredSymbol))
		return 0
	}

	var dbTrades []database.Trade
	for _, trade := range result.Trades {
		dbTrades = append(dbTrades, database.Trade{
			Date:      trade.Date,
			Direction: trade.Direction(),
			Price:     trade.Price,
		})
	}

	dbRun := database.BacktestRun{
		UnderlyingSymbol: underlyingSymbol,
		LeveredSymbol:    leveredSymbol,
		Window:           window,
		BuyBuffer:        buyBuffer,
		SellBuffer:       sellBuffer,
		InitialCash:      initialCash,
		Contribution:     contribution,
		TotalReturn:      result.Summary.TotalReturn,
		CAGR:             result.Summary.CAGR,
		MaxDrawdown:      result.Summary.MaxDrawdown,
		WinRate:          result.Summary.WinRate,
		RoundTrips:       result.Summary.RoundTrips,
		FinalValue:       result.Summary.FinalValue,
		Trades:           dbTrades,
	}

	dbs.DB.Create(&dbRun)
	return dbRun.ID
}

// LastRuns returns the most recent persisted runs, newest first, trades
// preloaded.
func (dbs *DBService) LastRuns(limit int) ([]database.BacktestRun, error) {
	var runs []database.BacktestRun
	result := dbs.DB.Preload("Trades").Order("created_at desc").Limit(limit).Find(&runs)
	return runs, result.Error
}
