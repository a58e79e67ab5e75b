package ui

import (
	"fmt"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"gitlab.com/enerlytics/persistbench/helpers"
	"gitlab.com/enerlytics/persistbench/models/analytics"
)

// ErrorPlotter renders the per-hour RMSE comparison in the terminal, one
// line per completed model over hour-of-day 0..23.
type ErrorPlotter struct {
	report *analytics.EvaluationReport
	title  string
}

func NewErrorPlotter(report *analytics.EvaluationReport, title string) ErrorPlotter {
	return ErrorPlotter{report: report, title: title}
}

// Run opens the terminal UI and blocks until q or Ctrl-C.
func (ep *ErrorPlotter) Run() {
	if len(ep.report.Results) == 0 {
		helpers.Logger.Warnln("nothing to plot: no model completed evaluation")
		return
	}
	if err := termui.Init(); err != nil {
		helpers.Logger.Errorln(fmt.Sprintf("failed to initialize termui: %v", err))
		return
	}
	defer termui.Close()

	errorPlot := widgets.NewPlot()
	errorPlot.Block.Title = ep.title
	errorPlot.TitleStyle.Fg = termui.ColorYellow
	errorPlot.BorderStyle.Fg = termui.ColorYellow
	errorPlot.AxesColor = termui.ColorWhite
	errorPlot.Data = make([][]float64, len(ep.report.Results))
	errorPlot.LineColors = make([]termui.Color, len(ep.report.Results))
	for i, result := range ep.report.Results {
		errorPlot.Data[i] = append([]float64(nil), result.ByHour[:]...)
		errorPlot.LineColors[i] = lineColor(i)
	}
	errorPlot.SetRect(0, 0, 90, 25)

	legendParagraph := widgets.NewParagraph()
	legendParagraph.Block.Title = "RMSE Error (MW) by hour of day"
	legendParagraph.BorderStyle.Fg = termui.ColorYellow
	legendParagraph.TitleStyle.Fg = termui.ColorYellow
	for i, result := range ep.report.Results {
		legendParagraph.Text += fmt.Sprintf("[%s](fg:%s) mean %.2f\n", result.Model, colorName(i), result.Mean)
	}
	for _, failure := range ep.report.Failures {
		legendParagraph.Text += fmt.Sprintf("[%s](fg:red) failed: %s\n", failure.Model, failure.Reason)
	}
	legendParagraph.SetRect(0, 25, 90, 28+len(ep.report.Results)+len(ep.report.Failures))

	termui.Render(errorPlot, legendParagraph)

	uiEvents := termui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "q", "<C-c>":
			helpers.Logger.Infoln("Exited by keyboard interrupt")
			return
		}
	}
}

var palette = []termui.Color{
	termui.ColorGreen,
	termui.ColorBlue,
	termui.ColorMagenta,
	termui.ColorCyan,
	termui.ColorRed,
	termui.ColorWhite,
}

var paletteNames = []string{"green", "blue", "magenta", "cyan", "red", "white"}

func lineColor(i int) termui.Color {
	return palette[i%len(palette)]
}

func colorName(i int) string {
	return paletteNames[i%len(paletteNames)]
}
