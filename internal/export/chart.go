package export

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/wagnandr/hemoview/internal/dataset"
)

// WriteChart renders one component at one frame across all vessels as a
// still figure, one series per vessel over its grid. Vessels lacking the
// component are skipped; format is "png" or "svg".
func WriteChart(w io.Writer, sets []*dataset.Dataset, times []float64, component string, frame int, format string) error {
	if frame < 0 || frame >= len(times) {
		return fmt.Errorf("frame %d outside playback window of %d", frame, len(times))
	}

	series := make([]chart.Series, 0, len(sets))
	for i, ds := range sets {
		m := ds.Component(component)
		if m == nil {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("vessel %d", ds.ID),
			XValues: ds.Grid,
			YValues: m[frame],
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(i),
				StrokeWidth: 2.0,
			},
		})
	}
	if len(series) == 0 {
		return fmt.Errorf("component %q not present in any selected vessel", component)
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s at t = %.4f", component, times[frame]),
		Width:  900,
		Height: 500,
		XAxis:  chart.XAxis{Name: "vessel axis"},
		YAxis:  chart.YAxis{Name: component},
		Series: series,
	}
	if component == dataset.CompRatio {
		graph.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: 1.05}
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	switch format {
	case "png":
		return graph.Render(chart.PNG, w)
	case "svg":
		return graph.Render(chart.SVG, w)
	}
	return fmt.Errorf("unknown chart format %q", format)
}
