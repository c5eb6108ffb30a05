package trackers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Series is a named sequence of per-episode values
type Series struct {
	Name string
	Data []float64
}

// SeriesOf returns the data of t as a Series called name
func SeriesOf(name string, t Tracker) Series {
	return Series{Name: name, Data: t.Data()}
}

// Plot renders each series as a line over episodes and writes the chart
// as an HTML page to filename. Series may differ in length, the x axis
// spans the longest one.
func Plot(filename, title string, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("plot: no series to plot")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	numEpisodes := 0
	for _, s := range series {
		if len(s.Data) > numEpisodes {
			numEpisodes = len(s.Data)
		}
	}

	episodes := make([]string, numEpisodes)
	for i := range episodes {
		episodes[i] = fmt.Sprintf("%d", i)
	}
	line = line.SetXAxis(episodes)

	for _, s := range series {
		items := make([]opts.LineData, 0, len(s.Data))
		for _, v := range s.Data {
			items = append(items, opts.LineData{Value: v})
		}
		line.AddSeries(s.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	return nil
}
