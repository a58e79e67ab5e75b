package strategies

import (
	"errors"
	"fmt"

	"gitlab.com/enerlytics/persistbench/models"
)

// ErrNoHistoryRow is returned when an exact-date lookup finds no row.
var ErrNoHistoryRow = errors.New("no history row for date")

// SameDayLastYearStrategy forecasts the next day as a copy of the day exactly
// OffsetDays before the most recent history date. The offset is a fixed day
// count, not calendar-year aware, so the copied day drifts by one across
// leap-year boundaries.
type SameDayLastYearStrategy struct {
	OffsetDays int
}

func NewSameDayLastYearStrategy(offsetDays int) SameDayLastYearStrategy {
	if offsetDays <= 0 {
		offsetDays = 365
	}
	return SameDayLastYearStrategy{OffsetDays: offsetDays}
}

func (s *SameDayLastYearStrategy) Name() string {
	return "same_day_oya_persistence"
}

func (s *SameDayLastYearStrategy) Forecast(history *models.WindowedTable) (models.Window, error) {
	if history.Len() == 0 {
		return models.Window{}, fmt.Errorf("%w: history is empty", ErrInsufficientHistory)
	}

	target := history.LastDate().AddDate(0, 0, -s.OffsetDays)
	row, ok := history.RowByDate(target)
	if !ok {
		return models.Window{}, fmt.Errorf("%w: %s", ErrNoHistoryRow, target.Format(models.DateLayout))
	}

	return row, nil
}
