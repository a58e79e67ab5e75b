package services

import (
	"errors"

	"gitlab.com/enerlytics/persistbench/helpers"
	"gitlab.com/enerlytics/persistbench/interfaces"
	"gitlab.com/enerlytics/persistbench/models"
	"gitlab.com/enerlytics/persistbench/models/analytics"
)

var logger = helpers.Logger

// BenchmarkService evaluates every registered strategy over the same
// train/test split and assembles the side-by-side error comparison.
type BenchmarkService struct {
	strategies  []interfaces.Strategy
	walkForward WalkForwardService
	evaluation  EvaluationService
}

func NewBenchmarkService(strategies []interfaces.Strategy) BenchmarkService {
	return BenchmarkService{
		strategies:  strategies,
		walkForward: NewWalkForwardService(),
		evaluation:  NewEvaluationService(),
	}
}

// Run evaluates the strategies in registration order. A model that fails
// mid-run is recorded as a failure and the remaining models still run; the
// report carries both completed results and failure diagnostics.
func (bs *BenchmarkService) Run(train *models.WindowedTable, test *models.WindowedTable) analytics.EvaluationReport {
	report := analytics.EvaluationReport{}

	for _, strategy := range bs.strategies {
		predictions, err := bs.walkForward.Evaluate(strategy, train, test)
		if err != nil {
			logger.Errorln(err.Error())
			report.Failures = append(report.Failures, failureFor(strategy.Name(), err))
			continue
		}

		modelErrors, err := bs.evaluation.CalculateErrors(predictions, test, strategy.Name())
		if err != nil {
			logger.Errorln(strategy.Name() + ": " + err.Error())
			report.Failures = append(report.Failures, failureFor(strategy.Name(), err))
			continue
		}

		report.Results = append(report.Results, modelErrors)
	}

	return report
}

func failureFor(model string, err error) analytics.ModelFailure {
	failure := analytics.ModelFailure{Model: model, Step: -1, Reason: err.Error()}
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		failure.Step = stepErr.Step
		failure.Date = stepErr.Date
	}
	return failure
}
