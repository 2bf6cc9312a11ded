package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"district-server/models/crowd"
)

const (
	chartWidth  = "800px"
	chartHeight = "400px"

	colorAverage   = "#3498db"
	colorPredicted = "#2ecc71"
	colorToday     = "#4bb6e8"
	colorYesterday = "#3498db"
	colorLastWeek  = "#b2d6f5"
)

// NewHourlyTrendChart builds the average vs predicted crowd line chart.
func NewHourlyTrendChart(title string, points []crowd.HourlyTrendPoint) *charts.Line {
	hours := make([]string, 0, len(points))
	average := make([]opts.LineData, 0, len(points))
	predicted := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		hours = append(hours, p.Hour)
		average = append(average, opts.LineData{Value: p.Average})
		predicted = append(predicted, opts.LineData{Value: p.Predicted})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithYAxisOpts(opts.YAxis{
			Min:       0,
			AxisLabel: &opts.AxisLabel{Formatter: "{value}%"},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	line.SetXAxis(hours).
		AddSeries("平均", average,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorAverage}),
		).
		AddSeries("予測", predicted,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorPredicted}),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}),
		)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	return line
}

// NewDailyComparisonChart builds the today / yesterday / last week bar chart.
func NewDailyComparisonChart(title string, points []crowd.DailyComparisonPoint) *charts.Bar {
	names := make([]string, 0, len(points))
	today := make([]opts.BarData, 0, len(points))
	yesterday := make([]opts.BarData, 0, len(points))
	lastWeek := make([]opts.BarData, 0, len(points))
	for _, p := range points {
		names = append(names, p.Name)
		today = append(today, opts.BarData{Value: p.Today})
		yesterday = append(yesterday, opts.BarData{Value: p.Yesterday})
		lastWeek = append(lastWeek, opts.BarData{Value: p.LastWeek})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithYAxisOpts(opts.YAxis{
			Min:       0,
			AxisLabel: &opts.AxisLabel{Formatter: "{value}%"},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	bar.SetXAxis(names).
		AddSeries("今日", today, charts.WithItemStyleOpts(opts.ItemStyle{Color: colorToday})).
		AddSeries("昨日", yesterday, charts.WithItemStyleOpts(opts.ItemStyle{Color: colorYesterday})).
		AddSeries("先週", lastWeek, charts.WithItemStyleOpts(opts.ItemStyle{Color: colorLastWeek}))

	return bar
}

// RenderHourlyTrendChart writes the hourly trend chart page to w.
func RenderHourlyTrendChart(w io.Writer, title string, points []crowd.HourlyTrendPoint) error {
	if err := NewHourlyTrendChart(title, points).Render(w); err != nil {
		return fmt.Errorf("failed to render hourly trend chart: %w", err)
	}
	return nil
}

// RenderDailyComparisonChart writes the daily comparison chart page to w.
func RenderDailyComparisonChart(w io.Writer, title string, points []crowd.DailyComparisonPoint) error {
	if err := NewDailyComparisonChart(title, points).Render(w); err != nil {
		return fmt.Errorf("failed to render daily comparison chart: %w", err)
	}
	return nil
}
