package render

import (
	"github.com/wcharczuk/go-chart/v2"

	"simviz/loader"
	"simviz/metrics"
)

// QueueEvolution draws the ready, blocked-memory and blocked-I/O queue
// lengths over time as step lines.
type QueueEvolution struct{}

func (QueueEvolution) Name() string { return "queue evolution" }

func (QueueEvolution) Render(log *loader.Log, dir string) error {
	points := metrics.QueueSeries(log.Events)
	if len(points) == 0 {
		return ErrNoData
	}

	ticks := make([]int, len(points))
	ready := make([]int, len(points))
	blockedMem := make([]int, len(points))
	blockedIO := make([]int, len(points))
	maxLen := 0
	for i, p := range points {
		ticks[i] = p.Tick
		ready[i] = p.Ready
		blockedMem[i] = p.BlockedMemory
		blockedIO[i] = p.BlockedIO
		for _, n := range []int{p.Ready, p.BlockedMemory, p.BlockedIO} {
			if n > maxLen {
				maxLen = n
			}
		}
	}

	queueSeries := func(name string, values []int, hex string) chart.ContinuousSeries {
		xs, ys := stepPoints(ticks, values)
		c := colorFromHex(hex)
		return chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: c,
				StrokeWidth: 2.5,
				FillColor:   c.WithAlpha(50),
			},
		}
	}

	ch := chart.Chart{
		Title:  "Scheduler Queue Evolution",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: "Time (ticks)", Range: tickRange(metrics.MaxTick(log.Events))},
		YAxis: chart.YAxis{
			Name:  "Queue length",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxLen + 1)},
		},
		Series: []chart.Series{
			queueSeries("Ready", ready, "3498DB"),
			queueSeries("Blocked (memory)", blockedMem, "F39C12"),
			queueSeries("Blocked (I/O)", blockedIO, "E74C3C"),
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return writeChart(dir, "02_queue_evolution.png", ch)
}
