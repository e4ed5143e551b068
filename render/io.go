package render

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"simviz/loader"
	"simviz/metrics"
	"simviz/model"
)

// IOOperations draws each process's blocked I/O intervals as horizontal
// bars, one row per process.
type IOOperations struct{}

func (IOOperations) Name() string { return "io operations" }

func (IOOperations) Render(log *loader.Log, dir string) error {
	intervals := metrics.IOIntervals(log.Events)
	if len(intervals) == 0 {
		return ErrNoData
	}

	procs := ioProcesses(intervals)
	maxTick := metrics.MaxTick(log.Events)

	var series []chart.Series
	labels := make([]string, len(procs))
	for row, proc := range procs {
		for _, iv := range intervals[proc] {
			if iv.Duration() <= 0 {
				continue
			}
			series = append(series, barSegment("", iv.Start, iv.End, float64(row), processColor(proc), 14))
		}
		labels[row] = fmt.Sprintf("%s (%d ops)", proc, len(intervals[proc]))
	}
	if len(series) == 0 {
		return ErrNoData
	}

	ch := chart.Chart{
		Title:  "I/O Operations Timeline (blocked intervals)",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: "Time (ticks)", Range: tickRange(maxTick)},
		YAxis: chart.YAxis{
			Name:  "Process",
			Ticks: rowTicks(labels),
			Range: rowRange(len(procs)),
		},
		Series: series,
	}

	return writeChart(dir, "06_io_operations.png", ch)
}

// IOGanttChart is the device-aware variant: within each blocked interval
// it separates ticks where the device was actively serving the process
// (solid) from ticks spent waiting in the device queue (faded).
type IOGanttChart struct{}

func (IOGanttChart) Name() string { return "io gantt chart" }

func (IOGanttChart) Render(log *loader.Log, dir string) error {
	intervals := metrics.IOIntervals(log.Events)
	if len(intervals) == 0 {
		return ErrNoData
	}

	active := metrics.ActiveServiceTicks(metrics.IODeviceEvents(log.Events))
	procs := ioProcesses(intervals)
	maxTick := metrics.MaxTick(log.Events)

	var series []chart.Series
	labels := make([]string, len(procs))
	labelledActive, labelledQueued := false, false

	for row, proc := range procs {
		color := processColor(proc)
		for _, iv := range intervals[proc] {
			if iv.Duration() <= 0 {
				continue
			}
			for _, seg := range metrics.SplitServiceSegments(iv.Start, iv.End, active[proc]) {
				if seg.End <= seg.Start {
					continue
				}
				name := ""
				if seg.Active {
					if !labelledActive {
						name = "Serviced"
						labelledActive = true
					}
					series = append(series, barSegment(name, seg.Start, seg.End, float64(row), color, 14))
				} else {
					if !labelledQueued {
						name = "Queued"
						labelledQueued = true
					}
					series = append(series, barSegment(name, seg.Start, seg.End, float64(row), color.WithAlpha(90), 14))
				}
			}
		}
		labels[row] = fmt.Sprintf("%s (%d ops)", proc, len(intervals[proc]))
	}
	if len(series) == 0 {
		return ErrNoData
	}

	ch := chart.Chart{
		Title:  "I/O Device Gantt (solid=serviced, faded=queued)",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: "Time (ticks)", Range: tickRange(maxTick)},
		YAxis: chart.YAxis{
			Name:  "Process",
			Ticks: rowTicks(labels),
			Range: rowRange(len(procs)),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return writeChart(dir, "07_io_gantt_chart.png", ch)
}

// ioProcesses returns the interval map's keys in numeric order.
func ioProcesses(intervals map[string][]model.IOInterval) []string {
	procs := make([]string, 0, len(intervals))
	for name := range intervals {
		procs = append(procs, name)
	}
	loader.SortProcessNames(procs)
	return procs
}
