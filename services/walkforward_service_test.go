package services_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gitlab.com/enerlytics/persistbench/models"
	"gitlab.com/enerlytics/persistbench/services"
	"gitlab.com/enerlytics/persistbench/strategies"
)

// probeStrategy records the history state it was handed at every step so the
// no-leakage and alignment invariants can be asserted after the run.
type probeStrategy struct {
	seenLengths   []int
	seenLastDates []time.Time
	failAtLength  int
}

func (p *probeStrategy) Name() string {
	return "probe"
}

func (p *probeStrategy) Forecast(history *models.WindowedTable) (models.Window, error) {
	if p.failAtLength > 0 && history.Len() == p.failAtLength {
		return models.Window{}, fmt.Errorf("%w: probe tripwire", strategies.ErrNoHistoryRow)
	}
	p.seenLengths = append(p.seenLengths, history.Len())
	p.seenLastDates = append(p.seenLastDates, history.LastDate())
	return history.RowAt(history.Len() - 1), nil
}

func TestWalkForwardNoLeakage(t *testing.T) {
	data := tableFrom(day("2017-12-25"),
		filled(1), filled(2), filled(3), filled(4), filled(5), filled(6), filled(7))
	train, test, err := services.TrainTestSplit(data, day("2017-12-28"))
	assert.NoError(t, err)

	probe := &probeStrategy{}
	walkForward := services.NewWalkForwardService()
	_, err = walkForward.Evaluate(probe, train, test)
	assert.NoError(t, err)

	assert.Equal(t, test.Len(), len(probe.seenLengths))
	for i := 0; i < test.Len(); i++ {
		// step i sees train plus exactly the first i revealed test days
		assert.Equal(t, train.Len()+i, probe.seenLengths[i])
		if i == 0 {
			assert.Equal(t, train.LastDate(), probe.seenLastDates[i])
		} else {
			assert.Equal(t, test.DateAt(i-1), probe.seenLastDates[i])
		}
	}
}

func TestWalkForwardAlignment(t *testing.T) {
	data := tableFrom(day("2017-12-25"),
		filled(1), filled(2), filled(3), filled(4), filled(5))
	train, test, err := services.TrainTestSplit(data, day("2017-12-27"))
	assert.NoError(t, err)

	strategy := strategies.NewPreviousDayStrategy(1)
	walkForward := services.NewWalkForwardService()
	predictions, err := walkForward.Evaluate(&strategy, train, test)
	assert.NoError(t, err)

	assert.Equal(t, test.Len(), predictions.Len())
	for i := 0; i < test.Len(); i++ {
		assert.Equal(t, test.DateAt(i), predictions.DateAt(i))
	}
	// previous-day persistence shifts the series one day forward
	assert.Equal(t, train.RowAt(train.Len()-1), predictions.RowAt(0))
	assert.Equal(t, test.RowAt(0), predictions.RowAt(1))
}

func TestWalkForwardTrainUntouched(t *testing.T) {
	data := tableFrom(day("2017-12-25"),
		filled(1), filled(2), filled(3), filled(4))
	train, test, err := services.TrainTestSplit(data, day("2017-12-26"))
	assert.NoError(t, err)
	snapshot := train.Copy(0)

	strategy := strategies.NewPreviousDayStrategy(1)
	walkForward := services.NewWalkForwardService()
	_, err = walkForward.Evaluate(&strategy, train, test)
	assert.NoError(t, err)
	assert.True(t, train.Equal(snapshot))
}

func TestWalkForwardFailurePropagatesStepContext(t *testing.T) {
	data := tableFrom(day("2017-12-25"),
		filled(1), filled(2), filled(3), filled(4), filled(5), filled(6))
	train, test, err := services.TrainTestSplit(data, day("2017-12-27"))
	assert.NoError(t, err)

	// trips once history has grown by two revealed days, i.e. at step 2
	probe := &probeStrategy{failAtLength: train.Len() + 2}
	walkForward := services.NewWalkForwardService()
	predictions, err := walkForward.Evaluate(probe, train, test)
	assert.Nil(t, predictions)

	var stepErr *services.StepError
	assert.True(t, errors.As(err, &stepErr))
	assert.Equal(t, "probe", stepErr.Model)
	assert.Equal(t, 2, stepErr.Step)
	assert.Equal(t, test.DateAt(2), stepErr.Date)
	assert.True(t, errors.Is(err, strategies.ErrNoHistoryRow))
}
