package services

import (
	"fmt"
	"math"

	"gitlab.com/enerlytics/persistbench/models"
	"gitlab.com/enerlytics/persistbench/models/analytics"
	"gonum.org/v1/gonum/stat"
)

// EvaluationService scores a predictions table against revealed truth.
type EvaluationService struct{}

func NewEvaluationService() EvaluationService {
	return EvaluationService{}
}

// CalculateErrors computes the RMSE of predictions against truth per hour
// column across all days, plus the unweighted mean of the 24 hourly values,
// labeled resultSet. Predictions and truth must share shape and dates; a
// mismatch is a contract violation, never silently reindexed.
func (es *EvaluationService) CalculateErrors(predictions *models.WindowedTable, truth *models.WindowedTable, resultSet string) (analytics.ModelErrors, error) {
	result := analytics.ModelErrors{Model: resultSet}

	if predictions.Len() != truth.Len() {
		return result, fmt.Errorf("shape mismatch: %d predicted days vs %d truth days", predictions.Len(), truth.Len())
	}
	if predictions.Len() == 0 {
		return result, fmt.Errorf("nothing to evaluate: empty prediction set")
	}
	for i := 0; i < predictions.Len(); i++ {
		if !predictions.DateAt(i).Equal(truth.DateAt(i)) {
			return result, fmt.Errorf("date mismatch at row %d: predicted %s, truth %s",
				i, predictions.DateAt(i).Format(models.DateLayout), truth.DateAt(i).Format(models.DateLayout))
		}
	}

	squaredResiduals := make([]float64, predictions.Len())
	for hour := 0; hour < models.HoursPerDay; hour++ {
		for i := 0; i < predictions.Len(); i++ {
			diff := predictions.RowAt(i)[hour] - truth.RowAt(i)[hour]
			squaredResiduals[i] = diff * diff
		}
		result.ByHour[hour] = math.Sqrt(stat.Mean(squaredResiduals, nil))
	}
	result.Mean = stat.Mean(result.ByHour[:], nil)

	return result, nil
}
