package services

import (
	"fmt"
	"time"

	"gitlab.com/enerlytics/persistbench/interfaces"
	"gitlab.com/enerlytics/persistbench/models"
)

// StepError marks a strategy failure at one walk-forward step. The run halts
// there: skipping the day would silently misalign the predictions table
// against the test index.
type StepError struct {
	Model string
	Step  int
	Date  time.Time
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed at step %d (%s): %v",
		e.Model, e.Step, e.Date.Format(models.DateLayout), e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// WalkForwardService runs the expanding-window backtest: one forecast per
// test day, with the revealed true day folded into history before the next
// step.
type WalkForwardService struct{}

func NewWalkForwardService() WalkForwardService {
	return WalkForwardService{}
}

// Evaluate replays the test span against strategy and returns the predictions
// table, aligned row for row with test. The forecast for step i only ever
// sees train plus the first i test days, never anything later.
func (wf *WalkForwardService) Evaluate(strategy interfaces.Strategy, train *models.WindowedTable, test *models.WindowedTable) (*models.WindowedTable, error) {
	history := train.Copy(test.Len())
	predictions := models.NewWindowedTable(test.Len())

	for i := 0; i < test.Len(); i++ {
		forecast, err := strategy.Forecast(history)
		if err != nil {
			return nil, &StepError{Model: strategy.Name(), Step: i, Date: test.DateAt(i), Err: err}
		}
		if err := predictions.Append(test.DateAt(i), forecast); err != nil {
			return nil, err
		}
		if err := history.Append(test.DateAt(i), test.RowAt(i)); err != nil {
			return nil, err
		}
	}

	return predictions, nil
}
