package services_test

import (
	"testing"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"github.com/stretchr/testify/assert"
	"gitlab.com/enerlytics/persistbench/models"
	"gitlab.com/enerlytics/persistbench/services"
)

func day(s string) time.Time {
	d, err := time.ParseInLocation(models.DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

func filled(v float64) models.Window {
	var w models.Window
	for h := range w {
		w[h] = v
	}
	return w
}

func tableFrom(start time.Time, rows ...models.Window) *models.WindowedTable {
	table := models.NewWindowedTable(len(rows))
	for i, row := range rows {
		if err := table.Append(start.AddDate(0, 0, i), row); err != nil {
			panic(err)
		}
	}
	return table
}

func hourlySeries(start time.Time, hours int, load func(i int) float64) techan.TimeSeries {
	series := techan.TimeSeries{}
	for i := 0; i < hours; i++ {
		period := techan.NewTimePeriod(start.Add(time.Duration(i)*time.Hour), time.Hour)
		candle := techan.NewCandle(period)
		candle.ClosePrice = big.NewDecimal(load(i))
		series.AddCandle(candle)
	}
	return series
}

func TestTransformToWindows(t *testing.T) {
	start := day("2015-03-01")
	series := hourlySeries(start, 3*models.HoursPerDay, func(i int) float64 {
		return float64(i)
	})

	table, err := services.TransformToWindows(series)
	assert.NoError(t, err)
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, day("2015-03-01"), table.FirstDate())
	assert.Equal(t, day("2015-03-03"), table.LastDate())

	secondDay := table.RowAt(1)
	for h := 0; h < models.HoursPerDay; h++ {
		assert.Equal(t, float64(models.HoursPerDay+h), secondDay[h])
	}
}

func TestTransformToWindowsDropsIncompleteDays(t *testing.T) {
	start := day("2015-03-01")
	// two full days plus a third with only 7 readings
	series := hourlySeries(start, 2*models.HoursPerDay+7, func(i int) float64 {
		return 1
	})

	table, err := services.TransformToWindows(series)
	assert.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, day("2015-03-02"), table.LastDate())
}

func TestTransformToWindowsRejectsDuplicateHours(t *testing.T) {
	start := day("2015-03-01")
	series := hourlySeries(start, models.HoursPerDay, func(i int) float64 { return 1 })

	duplicate := techan.NewCandle(techan.NewTimePeriod(start.Add(5*time.Hour), time.Hour))
	duplicate.ClosePrice = big.NewDecimal(2)
	series.AddCandle(duplicate)

	_, err := services.TransformToWindows(series)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate reading")
}

func TestTrainTestSplitBoundaries(t *testing.T) {
	data := tableFrom(day("2017-12-28"),
		filled(1), filled(2), filled(3), filled(4), filled(5), filled(6))

	train, test, err := services.TrainTestSplit(data, day("2017-12-31"))
	assert.NoError(t, err)
	assert.Equal(t, day("2017-12-31"), train.LastDate())
	assert.Equal(t, day("2018-01-01"), test.FirstDate())
	assert.Equal(t, data.Len(), train.Len()+test.Len())

	rebuilt := train.Copy(test.Len())
	for i := 0; i < test.Len(); i++ {
		assert.NoError(t, rebuilt.Append(test.DateAt(i), test.RowAt(i)))
	}
	assert.True(t, rebuilt.Equal(data))
}

func TestTrainTestSplitOutsideRange(t *testing.T) {
	data := tableFrom(day("2017-12-28"), filled(1), filled(2), filled(3))

	_, _, err := services.TrainTestSplit(data, day("2017-12-27"))
	assert.Error(t, err)

	// split on the last day would leave the test side empty
	_, _, err = services.TrainTestSplit(data, day("2017-12-30"))
	assert.Error(t, err)

	_, _, err = services.TrainTestSplit(models.NewWindowedTable(0), day("2017-12-29"))
	assert.Error(t, err)
}
