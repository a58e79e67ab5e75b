package bench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/enerlytics/persistbench/bench"
)

func TestParseDayOffset(t *testing.T) {
	days, err := bench.ParseDayOffset("", 365)
	assert.NoError(t, err)
	assert.Equal(t, 365, days)

	days, err = bench.ParseDayOffset("1d", 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, days)

	days, err = bench.ParseDayOffset("365d", 0)
	assert.NoError(t, err)
	assert.Equal(t, 365, days)

	days, err = bench.ParseDayOffset("72h", 0)
	assert.NoError(t, err)
	assert.Equal(t, 3, days)
}

func TestParseDayOffsetRejectsPartialDays(t *testing.T) {
	_, err := bench.ParseDayOffset("36h", 0)
	assert.Error(t, err)

	_, err = bench.ParseDayOffset("0d", 0)
	assert.Error(t, err)

	_, err = bench.ParseDayOffset("soon", 0)
	assert.Error(t, err)
}
