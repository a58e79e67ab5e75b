package analytics

import (
	"strconv"
	"time"

	"gitlab.com/enerlytics/persistbench/models"
)

// ModelFailure records a model whose evaluation could not complete. Step and
// Date point at the offending walk-forward step when the failure happened
// mid-run; Step is -1 when it did not.
type ModelFailure struct {
	Model  string
	Step   int
	Date   time.Time
	Reason string
}

// EvaluationReport collects per-model results in registration order together
// with the failures of models that did not complete.
type EvaluationReport struct {
	Results  []ModelErrors
	Failures []ModelFailure
}

// ErrorTable is the hour-indexed side-by-side comparison of every model that
// completed evaluation: row labels "0".."23", one column per model.
type ErrorTable struct {
	Index   []string
	Columns []string
	Values  [][]float64
}

// ErrorTable assembles the comparison table, columns in registration order.
func (r *EvaluationReport) ErrorTable() ErrorTable {
	table := ErrorTable{
		Index:   make([]string, models.HoursPerDay),
		Columns: make([]string, len(r.Results)),
		Values:  make([][]float64, models.HoursPerDay),
	}
	for hour := 0; hour < models.HoursPerDay; hour++ {
		table.Index[hour] = strconv.Itoa(hour)
		table.Values[hour] = make([]float64, len(r.Results))
	}
	for j, result := range r.Results {
		table.Columns[j] = result.Model
		for hour := 0; hour < models.HoursPerDay; hour++ {
			table.Values[hour][j] = result.ByHour[hour]
		}
	}
	return table
}

// ErrorMeans returns each completed model's scalar mean error, in the same
// order as Results.
func (r *EvaluationReport) ErrorMeans() []float64 {
	means := make([]float64, len(r.Results))
	for i, result := range r.Results {
		means[i] = result.Mean
	}
	return means
}
