package interfaces

import (
	"time"

	"github.com/sdcoffey/techan"
)

type (
	// SeriesProvider supplies raw hourly load readings as a time series of
	// hourly candles, restricted to [start, stop] inclusive.
	SeriesProvider interface {
		GetSeries(start time.Time, stop time.Time) (techan.TimeSeries, error)
	}
)
