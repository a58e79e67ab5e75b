package strategies

import (
	"fmt"

	"gitlab.com/enerlytics/persistbench/interfaces"
)

// Params carries the per-strategy knobs recognized by the factory. Zero
// values fall back to each strategy's default.
type Params struct {
	PreviousDayOffset   int
	MovingAverageWindow int
	YearAgoOffset       int
}

func StrategyFactory(strategyName string, params Params) (interfaces.Strategy, error) {

	switch strategyName {
	case "previousDay":
		previousDayStrategy := NewPreviousDayStrategy(params.PreviousDayOffset)
		return interfaces.Strategy(&previousDayStrategy), nil
	case "movingAverage":
		movingAverageStrategy := NewMovingAverageStrategy(params.MovingAverageWindow)
		return interfaces.Strategy(&movingAverageStrategy), nil
	case "sameDayLastYear":
		sameDayLastYearStrategy := NewSameDayLastYearStrategy(params.YearAgoOffset)
		return interfaces.Strategy(&sameDayLastYearStrategy), nil
	default:
		return nil, fmt.Errorf("%s is not a known strategy", strategyName)
	}

}
