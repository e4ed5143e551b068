package render

import (
	"github.com/wcharczuk/go-chart/v2"

	"simviz/loader"
	"simviz/metrics"
)

// PageTableChart plots each process's final page table as page→frame
// points, one colored series per process. Pages without a resident frame
// are omitted.
type PageTableChart struct{}

func (PageTableChart) Name() string { return "page tables" }

func (PageTableChart) Render(log *loader.Log, dir string) error {
	tables := metrics.PageTables(log.Events)
	if len(tables) == 0 {
		return ErrNoData
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	loader.SortProcessNames(names)

	var series []chart.Series
	maxPage, maxFrame := 0, 0

	for _, name := range names {
		var xs, ys []float64
		for _, entry := range tables[name].Pages {
			if entry.Frame < 0 {
				continue
			}
			xs = append(xs, float64(entry.Page))
			ys = append(ys, float64(entry.Frame))
			if entry.Page > maxPage {
				maxPage = entry.Page
			}
			if entry.Frame > maxFrame {
				maxFrame = entry.Frame
			}
		}
		if len(xs) == 0 {
			continue
		}
		if len(xs) == 1 {
			xs = append(xs, xs[0])
			ys = append(ys, ys[0])
		}
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    6,
				DotColor:    processColor(name),
			},
		})
	}
	if len(series) == 0 {
		return ErrNoData
	}

	ch := chart.Chart{
		Title:  "Final Page Tables (page → frame)",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Virtual page",
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(maxPage) + 0.5},
		},
		YAxis: chart.YAxis{
			Name:  "Physical frame",
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(maxFrame) + 0.5},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return writeChart(dir, "04_page_tables.png", ch)
}
