// Package render draws chart images server-side for clients that want
// a ready image instead of a JSON payload.
package render

import (
	"errors"
	"io"
	"sort"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

// SeriesPoint is one (timestamp, value) sample of a station series.
type SeriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// ErrNoData means no series had any points to draw.
var ErrNoData = errors.New("render: no data points")

// LineChartPNG renders one time series per station as a PNG. Series are
// drawn in station-name order so output is deterministic. Single-point
// series are padded to two points, which go-chart requires.
func LineChartPNG(w io.Writer, title string, series map[string][]SeriesPoint) error {
	names := make([]string, 0, len(series))
	for name, points := range series {
		if len(points) > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ErrNoData
	}
	sort.Strings(names)

	chartSeries := make([]chart.Series, 0, len(names))
	for _, name := range names {
		points := series[name]
		xs := make([]time.Time, 0, len(points))
		ys := make([]float64, 0, len(points))
		for _, p := range points {
			xs = append(xs, p.Timestamp)
			ys = append(ys, p.Value)
		}
		if len(xs) == 1 {
			xs = append(xs, xs[0].Add(time.Second))
			ys = append(ys, ys[0])
		}
		chartSeries = append(chartSeries, chart.TimeSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
		})
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1024,
		Height: 420,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02 15:04"),
		},
		Series: chartSeries,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
