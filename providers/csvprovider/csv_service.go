package csvprovider

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/enerlytics/persistbench/helpers"
)

// ReadingLayout is the timestamp format of the cleaned load CSV.
const ReadingLayout = "2006-01-02 15:04:05"

// CSVService reads cleaned hourly energy-load readings from disk and exposes
// them as a series of hourly candles. Expected header: time,load.
type CSVService struct {
	path string
}

func NewCSVService(path string) *CSVService {
	return &CSVService{path: path}
}

// GetSeries loads every reading within [start, stop] inclusive, one candle
// per hourly reading, in file order.
func (cs *CSVService) GetSeries(start time.Time, stop time.Time) (techan.TimeSeries, error) {
	timeSeries := techan.TimeSeries{}

	f, err := os.Open(cs.path)
	if err != nil {
		return timeSeries, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return timeSeries, err
	}
	if len(records) < 2 {
		return timeSeries, fmt.Errorf("%s holds no readings", cs.path)
	}

	skipped := 0
	for _, record := range records[1:] {
		if len(record) < 2 {
			skipped++
			continue
		}
		readingTime, err := time.ParseInLocation(ReadingLayout, record[0], time.UTC)
		if err != nil {
			return timeSeries, fmt.Errorf("unparseable reading time %q: %w", record[0], err)
		}
		if readingTime.Before(start) || readingTime.After(stop) {
			continue
		}
		load, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return timeSeries, fmt.Errorf("unparseable load value %q at %s: %w", record[1], record[0], err)
		}

		period := techan.NewTimePeriod(readingTime, time.Hour)
		candle := techan.NewCandle(period)
		candle.ClosePrice = big.NewDecimal(load)
		timeSeries.AddCandle(candle)
	}
	if skipped > 0 {
		helpers.Logger.Warnln(fmt.Sprintf("skipped %d malformed rows in %s", skipped, cs.path))
	}

	return timeSeries, nil
}
