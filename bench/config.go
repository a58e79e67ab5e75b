package bench

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	str2duration "github.com/xhit/go-str2duration/v2"
	"gitlab.com/enerlytics/persistbench/models"
)

// Config is the explicit configuration surface of one benchmark run. Nothing
// downstream of LoadConfig reads the environment.
type Config struct {
	DataFile            string
	StartYear           int
	StopYear            int
	SplitDate           time.Time
	Strategies          []string
	PreviousDayOffset   int
	MovingAverageWindow int
	YearAgoOffset       int
	PlotErrors          bool
}

const (
	defaultStartYear = 2015
	defaultStopYear  = 2018
	defaultSplitDate = "2017-12-31"
)

var defaultStrategies = []string{"previousDay", "movingAverage", "sameDayLastYear"}

// LoadConfig merges conf.env values with CLI flag overrides and validates
// everything that can be validated before any data is touched.
func LoadConfig(c *cli.Context) (Config, error) {
	cfg := Config{
		DataFile:   stringOption(c, "data-file", "dataFile"),
		Strategies: defaultStrategies,
		StartYear:  defaultStartYear,
		StopYear:   defaultStopYear,
		PlotErrors: c.Bool("plot"),
	}

	if cfg.DataFile == "" {
		return cfg, fmt.Errorf("no data file set: pass --data-file or set dataFile")
	}

	strategiesString := stringOption(c, "strategies", "strategies")
	if strategiesString != "" {
		cfg.Strategies = strings.Split(strategiesString, ",")
	}

	var err error
	if cfg.StartYear, err = yearOption("startYear", defaultStartYear); err != nil {
		return cfg, err
	}
	if cfg.StopYear, err = yearOption("stopYear", defaultStopYear); err != nil {
		return cfg, err
	}
	if cfg.StartYear > cfg.StopYear {
		return cfg, fmt.Errorf("startYear %d is after stopYear %d", cfg.StartYear, cfg.StopYear)
	}

	splitDateString := stringOption(c, "split-date", "splitDate")
	if splitDateString == "" {
		splitDateString = defaultSplitDate
	}
	cfg.SplitDate, err = time.ParseInLocation(models.DateLayout, splitDateString, time.UTC)
	if err != nil {
		return cfg, fmt.Errorf("malformed split date %q: %w", splitDateString, err)
	}

	if cfg.PreviousDayOffset, err = ParseDayOffset(os.Getenv("previousDayOffset"), 1); err != nil {
		return cfg, err
	}
	if cfg.MovingAverageWindow, err = ParseDayOffset(os.Getenv("movingAverageWindow"), 3); err != nil {
		return cfg, err
	}
	if cfg.YearAgoOffset, err = ParseDayOffset(os.Getenv("yearAgoOffset"), 365); err != nil {
		return cfg, err
	}

	if !cfg.PlotErrors {
		plotErrors, _ := strconv.ParseBool(os.Getenv("plotErrors"))
		cfg.PlotErrors = plotErrors
	}

	return cfg, nil
}

// ParseDayOffset reads a day-count option written as a duration string
// ("1d", "3d", "365d"). Empty means fallback; fractional days are rejected.
func ParseDayOffset(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := str2duration.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("unparseable day offset %q: %w", value, err)
	}
	days := int(d.Hours() / 24)
	if days < 1 || d != time.Duration(days)*24*time.Hour {
		return 0, fmt.Errorf("day offset %q must be a whole positive number of days", value)
	}
	return days, nil
}

func stringOption(c *cli.Context, flagName string, envName string) string {
	if value := c.String(flagName); value != "" {
		return value
	}
	return os.Getenv(envName)
}

func yearOption(envName string, fallback int) (int, error) {
	value := os.Getenv(envName)
	if value == "" {
		return fallback, nil
	}
	year, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("malformed %s %q: %w", envName, value, err)
	}
	return year, nil
}
