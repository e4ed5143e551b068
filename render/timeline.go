package render

import (
	"github.com/wcharczuk/go-chart/v2"

	"simviz/loader"
	"simviz/metrics"
	"simviz/model"
)

// StateTimeline draws each process's state as a step line over a shared
// state axis, so concurrent lifecycles can be compared directly.
type StateTimeline struct{}

func (StateTimeline) Name() string { return "state timeline" }

// timelineStates fixes the Y ordering from birth to death.
var timelineStates = []string{
	model.StateNew,
	model.StateReady,
	model.StateRunning,
	model.StateWaiting,
	model.StateMemoryWaiting,
	model.StateTerminated,
}

func (StateTimeline) Render(log *loader.Log, dir string) error {
	if len(log.Processes) == 0 {
		return ErrNoData
	}

	states := metrics.StateTransitions(log.Events, log.Processes)
	maxTick := metrics.MaxTick(log.Events)

	levels := make(map[string]int, len(timelineStates))
	for i, s := range timelineStates {
		levels[s] = i
	}

	var series []chart.Series
	for _, proc := range log.Processes {
		points := states[proc]
		var xs, ys []float64
		for i, p := range points {
			level, ok := levels[p.State]
			if !ok {
				continue
			}
			xs = append(xs, float64(p.Tick))
			ys = append(ys, float64(level))
			// Hold the level until the next transition.
			next := maxTick + 1
			if i < len(points)-1 {
				next = points[i+1].Tick
			}
			xs = append(xs, float64(next))
			ys = append(ys, float64(level))
		}
		if len(xs) < 2 {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    proc,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: processColor(proc),
				StrokeWidth: 2.5,
			},
		})
	}
	if len(series) == 0 {
		return ErrNoData
	}

	ch := chart.Chart{
		Title:  "Process State Timeline",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: "Time (ticks)", Range: tickRange(maxTick)},
		YAxis: chart.YAxis{
			Name:  "State",
			Ticks: rowTicks(timelineStates),
			Range: rowRange(len(timelineStates)),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return writeChart(dir, "11_state_timeline.png", ch)
}
