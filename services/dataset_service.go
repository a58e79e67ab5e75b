package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/sdcoffey/techan"
	"gitlab.com/enerlytics/persistbench/helpers"
	"gitlab.com/enerlytics/persistbench/interfaces"
	"gitlab.com/enerlytics/persistbench/models"
)

// DatasetService turns a provider's raw hourly series into the day-by-hour
// windowed table the evaluation pipeline works on.
type DatasetService struct {
	provider interfaces.SeriesProvider
}

func NewDatasetService(provider interfaces.SeriesProvider) DatasetService {
	return DatasetService{provider: provider}
}

// GetWindowedDataset loads every reading from startYear through stopYear
// inclusive and reshapes the series into windows.
func (ds *DatasetService) GetWindowedDataset(startYear int, stopYear int) (*models.WindowedTable, error) {
	start := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	stop := time.Date(stopYear, time.December, 31, 23, 0, 0, 0, time.UTC)

	series, err := ds.provider.GetSeries(start, stop)
	if err != nil {
		return nil, err
	}

	return TransformToWindows(series)
}

// TransformToWindows groups hourly candles into one row per calendar day
// with 24 positional hour columns. Days missing any hour are dropped so the
// fixed column invariant holds; a duplicated hour within a day is an error.
func TransformToWindows(series techan.TimeSeries) (*models.WindowedTable, error) {
	type dayAccumulator struct {
		row   models.Window
		seen  [models.HoursPerDay]bool
		count int
	}

	days := make(map[time.Time]*dayAccumulator)
	for _, candle := range series.Candles {
		day := models.Day(candle.Period.Start)
		hour := candle.Period.Start.Hour()
		accumulator := days[day]
		if accumulator == nil {
			accumulator = &dayAccumulator{}
			days[day] = accumulator
		}
		if accumulator.seen[hour] {
			return nil, fmt.Errorf("duplicate reading for %s hour %d", day.Format(models.DateLayout), hour)
		}
		accumulator.seen[hour] = true
		accumulator.count++
		accumulator.row[hour] = candle.ClosePrice.Float()
	}

	dates := make([]time.Time, 0, len(days))
	for day := range days {
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	table := models.NewWindowedTable(len(dates))
	dropped := 0
	for _, day := range dates {
		if days[day].count < models.HoursPerDay {
			dropped++
			continue
		}
		if err := table.Append(day, days[day].row); err != nil {
			return nil, err
		}
	}
	if dropped > 0 {
		helpers.Logger.Warnln(fmt.Sprintf("dropped %d incomplete days while windowing", dropped))
	}
	if table.Len() == 0 {
		return nil, fmt.Errorf("series holds no complete days")
	}

	return table, nil
}

// TrainTestSplit partitions data at splitDate: train keeps every day up to
// and including the split, test keeps everything after. The split date must
// fall inside the table's date range (strictly before the last day) so
// neither side comes back empty; anything else is a configuration error
// surfaced here rather than deferred to evaluation.
func TrainTestSplit(data *models.WindowedTable, splitDate time.Time) (*models.WindowedTable, *models.WindowedTable, error) {
	if data == nil || data.Len() == 0 {
		return nil, nil, fmt.Errorf("cannot split an empty dataset")
	}
	splitDate = models.Day(splitDate)
	if splitDate.Before(data.FirstDate()) || !splitDate.Before(data.LastDate()) {
		return nil, nil, fmt.Errorf("split date %s outside data range %s..%s",
			splitDate.Format(models.DateLayout),
			data.FirstDate().Format(models.DateLayout),
			data.LastDate().Format(models.DateLayout))
	}

	train, test := data.Split(splitDate)
	return train, test, nil
}
