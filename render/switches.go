package render

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"simviz/loader"
	"simviz/metrics"
)

// ContextSwitchChart scatters context-switch events over time, one row
// per process, with a faint line tracing the switch order.
type ContextSwitchChart struct{}

func (ContextSwitchChart) Name() string { return "context switches" }

func (ContextSwitchChart) Render(log *loader.Log, dir string) error {
	switches := metrics.ContextSwitches(log.Events)
	if len(switches) == 0 {
		return ErrNoData
	}

	procs := make([]string, 0)
	rows := make(map[string]int)
	for _, cs := range switches {
		if _, ok := rows[cs.Process]; !ok {
			rows[cs.Process] = 0
			procs = append(procs, cs.Process)
		}
	}
	loader.SortProcessNames(procs)
	for i, p := range procs {
		rows[p] = i
	}

	// Faint dashed line through the switch sequence.
	lineXs := make([]float64, len(switches))
	lineYs := make([]float64, len(switches))
	for i, cs := range switches {
		lineXs[i] = float64(cs.Tick)
		lineYs[i] = float64(rows[cs.Process])
	}
	if len(lineXs) == 1 {
		lineXs = append(lineXs, lineXs[0])
		lineYs = append(lineYs, lineYs[0])
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			XValues: lineXs,
			YValues: lineYs,
			Style: chart.Style{
				StrokeColor:     neutralGray.WithAlpha(110),
				StrokeWidth:     1,
				StrokeDashArray: []float64{4, 3},
			},
		},
	}

	// One dot series per process so each keeps its palette color.
	for _, proc := range procs {
		var xs, ys []float64
		for _, cs := range switches {
			if cs.Process != proc {
				continue
			}
			xs = append(xs, float64(cs.Tick))
			ys = append(ys, float64(rows[proc]))
		}
		if len(xs) == 1 {
			xs = append(xs, xs[0])
			ys = append(ys, ys[0])
		}
		series = append(series, chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    5,
				DotColor:    processColor(proc),
			},
		})
	}

	ch := chart.Chart{
		Title:  fmt.Sprintf("Context Switches (total: %d)", len(switches)),
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: "Time (ticks)", Range: tickRange(metrics.MaxTick(log.Events))},
		YAxis: chart.YAxis{
			Name:  "Process",
			Ticks: rowTicks(procs),
			Range: rowRange(len(procs)),
		},
		Series: series,
	}

	return writeChart(dir, "08_context_switches.png", ch)
}
