package bench

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"gitlab.com/enerlytics/persistbench/helpers"
	"gitlab.com/enerlytics/persistbench/interfaces"
	"gitlab.com/enerlytics/persistbench/models"
	"gitlab.com/enerlytics/persistbench/models/analytics"
	"gitlab.com/enerlytics/persistbench/providers/csvprovider"
	"gitlab.com/enerlytics/persistbench/services"
	strategies2 "gitlab.com/enerlytics/persistbench/strategies"
	"gitlab.com/enerlytics/persistbench/ui"
)

type Bench struct {
}

func init() {
	cwd, _ := os.Getwd()
	if err := godotenv.Load(cwd + "/conf.env"); err != nil {
		helpers.Logger.Warnln("no conf.env found, relying on flags and environment")
	}
}

func (b *Bench) Run(c *cli.Context) error {
	helpers.Logger.Infoln("⚡ Persistence benchmark started")

	cfg, err := LoadConfig(c)
	if err != nil {
		return err
	}

	provider := csvprovider.NewCSVService(cfg.DataFile)
	datasetService := services.NewDatasetService(provider)

	data, err := datasetService.GetWindowedDataset(cfg.StartYear, cfg.StopYear)
	if err != nil {
		return err
	}

	train, test, err := services.TrainTestSplit(data, cfg.SplitDate)
	if err != nil {
		return err
	}
	helpers.Logger.Infoln(fmt.Sprintf("Train set start %s and stop %s",
		train.FirstDate().Format(models.DateLayout), train.LastDate().Format(models.DateLayout)))
	helpers.Logger.Infoln(fmt.Sprintf("Test set start %s and stop %s",
		test.FirstDate().Format(models.DateLayout), test.LastDate().Format(models.DateLayout)))

	params := strategies2.Params{
		PreviousDayOffset:   cfg.PreviousDayOffset,
		MovingAverageWindow: cfg.MovingAverageWindow,
		YearAgoOffset:       cfg.YearAgoOffset,
	}

	var strategies []interfaces.Strategy
	for _, strategyName := range cfg.Strategies {
		generatedStrategy, err := strategies2.StrategyFactory(strategyName, params)
		if err != nil {
			return err
		}
		strategies = append(strategies, generatedStrategy)
	}

	benchmarkService := services.NewBenchmarkService(strategies)
	report := benchmarkService.Run(train, test)
	logReport(&report)

	if cfg.PlotErrors {
		plotter := ui.NewErrorPlotter(&report, "Persistence Model Forecasts")
		plotter.Run()
	}

	return nil
}

func logReport(report *analytics.EvaluationReport) {
	for _, result := range report.Results {
		mean := helpers.Sum(result.ByHour[:]) / float64(len(result.ByHour))
		spread := helpers.StdDev(result.ByHour[:], mean)
		helpers.Logger.Infoln(fmt.Sprintf("%s: mean RMSE %.2f MW (hourly spread %.2f)",
			result.Model, result.Mean, spread))
	}
	for _, failure := range report.Failures {
		helpers.Logger.Errorln(fmt.Sprintf("%s did not complete: %s", failure.Model, failure.Reason))
	}
}
