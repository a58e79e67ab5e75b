package strategies

import (
	"errors"
	"fmt"

	"gitlab.com/enerlytics/persistbench/models"
)

// ErrInsufficientHistory is returned when a strategy needs more history rows
// than the walk-forward buffer currently holds.
var ErrInsufficientHistory = errors.New("insufficient history")

// PreviousDayStrategy forecasts the next day as a verbatim copy of the day
// Days back in history.
type PreviousDayStrategy struct {
	Days int
}

func NewPreviousDayStrategy(days int) PreviousDayStrategy {
	if days <= 0 {
		days = 1
	}
	return PreviousDayStrategy{Days: days}
}

func (s *PreviousDayStrategy) Name() string {
	return "prev_day_persistence"
}

func (s *PreviousDayStrategy) Forecast(history *models.WindowedTable) (models.Window, error) {
	if history.Len() < s.Days {
		return models.Window{}, fmt.Errorf("%w: need %d rows, have %d", ErrInsufficientHistory, s.Days, history.Len())
	}
	return history.RowAt(history.Len() - s.Days), nil
}
