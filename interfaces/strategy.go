package interfaces

import (
	"gitlab.com/enerlytics/persistbench/models"
)

type (
	// Strategy produces the next day's 24 hourly values from the history
	// accumulated so far. Implementations must be pure functions of their
	// input: no state may survive between calls, so the walk-forward loop
	// can invoke them once per step safely.
	Strategy interface {
		Name() string
		Forecast(history *models.WindowedTable) (models.Window, error)
	}
)
