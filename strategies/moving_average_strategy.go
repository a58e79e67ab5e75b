package strategies

import (
	"fmt"

	"gitlab.com/enerlytics/persistbench/models"
)

// MovingAverageStrategy forecasts each hour as the mean of that hour column
// over the last Window days of history.
type MovingAverageStrategy struct {
	Window int
}

func NewMovingAverageStrategy(window int) MovingAverageStrategy {
	if window <= 0 {
		window = 3
	}
	return MovingAverageStrategy{Window: window}
}

func (s *MovingAverageStrategy) Name() string {
	return "ma_persistence"
}

func (s *MovingAverageStrategy) Forecast(history *models.WindowedTable) (models.Window, error) {
	if history.Len() < s.Window {
		return models.Window{}, fmt.Errorf("%w: need %d rows, have %d", ErrInsufficientHistory, s.Window, history.Len())
	}

	var forecast models.Window
	for i := history.Len() - s.Window; i < history.Len(); i++ {
		row := history.RowAt(i)
		for hour := 0; hour < models.HoursPerDay; hour++ {
			forecast[hour] += row[hour]
		}
	}
	for hour := 0; hour < models.HoursPerDay; hour++ {
		forecast[hour] /= float64(s.Window)
	}

	return forecast, nil
}
