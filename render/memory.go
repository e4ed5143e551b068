package render

import (
	"github.com/wcharczuk/go-chart/v2"

	"simviz/loader"
	"simviz/metrics"
)

// MemoryUsage draws occupied frame counts over time, with the cumulative
// page-fault counter on a secondary axis.
type MemoryUsage struct{}

func (MemoryUsage) Name() string { return "memory usage" }

func (MemoryUsage) Render(log *loader.Log, dir string) error {
	frames := metrics.FrameSeries(log.Events)
	faults := metrics.FaultSeries(log.Events)
	if len(frames) == 0 && len(faults) == 0 {
		return ErrNoData
	}

	var series []chart.Series
	maxFrames, maxFaults := 0, 0

	if len(frames) > 0 {
		ticks := make([]int, len(frames))
		used := make([]int, len(frames))
		for i, p := range frames {
			ticks[i] = p.Tick
			used[i] = p.UsedFrames
			if p.UsedFrames > maxFrames {
				maxFrames = p.UsedFrames
			}
		}
		xs, ys := stepPoints(ticks, used)
		c := colorFromHex("3498DB")
		series = append(series, chart.ContinuousSeries{
			Name:    "Frames in use",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: c,
				StrokeWidth: 2.5,
				FillColor:   c.WithAlpha(50),
			},
		})
	}

	if len(faults) > 0 {
		ticks := make([]int, len(faults))
		totals := make([]int, len(faults))
		for i, p := range faults {
			ticks[i] = p.Tick
			totals[i] = p.Total
			if p.Total > maxFaults {
				maxFaults = p.Total
			}
		}
		xs, ys := stepPoints(ticks, totals)
		// Secondary axis only when frames occupy the primary one.
		axis := chart.YAxisPrimary
		if len(frames) > 0 {
			axis = chart.YAxisSecondary
		}
		series = append(series, chart.ContinuousSeries{
			Name:    "Page faults (cumulative)",
			XValues: xs,
			YValues: ys,
			YAxis:   axis,
			Style: chart.Style{
				StrokeColor: colorFromHex("E74C3C"),
				StrokeWidth: 2.5,
			},
		})
	}

	primaryMax := maxFrames
	if len(frames) == 0 {
		primaryMax = maxFaults
	}

	ch := chart.Chart{
		Title:  "Memory Frame Usage and Page Faults",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: "Time (ticks)", Range: tickRange(metrics.MaxTick(log.Events))},
		YAxis: chart.YAxis{
			Name:  "Frames",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(primaryMax + 1)},
		},
		YAxisSecondary: chart.YAxis{
			Name:  "Faults",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxFaults + 1)},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return writeChart(dir, "03_memory_usage.png", ch)
}
