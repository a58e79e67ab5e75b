package analytics

import (
	"gitlab.com/enerlytics/persistbench/models"
)

// ModelErrors is one evaluated model's error profile: the RMSE of its
// predictions against truth at each hour-of-day across all test days, plus
// the unweighted mean of those 24 values.
type ModelErrors struct {
	Model  string
	ByHour [models.HoursPerDay]float64
	Mean   float64
}
