package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gitlab.com/enerlytics/persistbench/bench"
)

func main() {
	b := bench.Bench{}

	app := &cli.App{
		Name:  "persistbench",
		Usage: "benchmark naive persistence forecasts against hourly energy demand",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the walk-forward benchmark",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "data-file", Usage: "cleaned hourly load CSV"},
					&cli.StringFlag{Name: "split-date", Usage: "train/test boundary (YYYY-MM-DD)"},
					&cli.StringFlag{Name: "strategies", Usage: "comma separated strategy names"},
					&cli.BoolFlag{Name: "plot", Usage: "render the error comparison in the terminal"},
				},
				Action: b.Run,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}
