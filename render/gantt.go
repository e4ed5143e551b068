package render

import (
	"github.com/wcharczuk/go-chart/v2"

	"simviz/loader"
	"simviz/metrics"
	"simviz/model"
)

// GanttChart draws each process's state history as horizontal bars, one
// row per process, colored by state.
type GanttChart struct{}

func (GanttChart) Name() string { return "gantt chart" }

// legend labels per state, added once each.
var ganttLabels = map[string]string{
	model.StateRunning:       "CPU burst",
	model.StateWaiting:       "I/O wait",
	model.StateReady:         "Ready",
	model.StateMemoryWaiting: "Memory wait",
	model.StateTerminated:    "Terminated",
	model.StateNew:           "New",
}

func (GanttChart) Render(log *loader.Log, dir string) error {
	if len(log.Processes) == 0 {
		return ErrNoData
	}

	states := metrics.StateTransitions(log.Events, log.Processes)
	maxTick := metrics.MaxTick(log.Events)

	var series []chart.Series
	labelled := make(map[string]bool)

	for row, proc := range log.Processes {
		for _, iv := range metrics.StateIntervals(states[proc], maxTick) {
			name := ""
			if !labelled[iv.State] {
				name = ganttLabels[iv.State]
				labelled[iv.State] = true
			}
			series = append(series, barSegment(name, iv.Start, iv.End, float64(row), stateColor(iv.State), 18))
		}
	}
	if len(series) == 0 {
		return ErrNoData
	}

	ch := chart.Chart{
		Title:  "Process Execution Gantt",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: "Time (ticks)", Range: tickRange(maxTick)},
		YAxis: chart.YAxis{
			Name:  "Process",
			Ticks: rowTicks(log.Processes),
			Range: rowRange(len(log.Processes)),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return writeChart(dir, "01_gantt_chart.png", ch)
}
