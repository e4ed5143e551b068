package render

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"simviz/loader"
	"simviz/metrics"
)

// FrameAllocation draws the final ownership of physical frames as a pie:
// one slice per owning process plus a slice for free frames.
type FrameAllocation struct{}

func (FrameAllocation) Name() string { return "frame allocation" }

func (FrameAllocation) Render(log *loader.Log, dir string) error {
	frames := metrics.FinalFrameStatus(log.Events)
	if len(frames) == 0 {
		return ErrNoData
	}

	counts := make(map[string]int)
	free := 0
	for _, fr := range frames {
		if fr.Occupied {
			counts[fmt.Sprintf("P%d", fr.PID)]++
		} else {
			free++
		}
	}

	owners := make([]string, 0, len(counts))
	for name := range counts {
		owners = append(owners, name)
	}
	loader.SortProcessNames(owners)

	var values []chart.Value
	for _, name := range owners {
		values = append(values, chart.Value{
			Value: float64(counts[name]),
			Label: fmt.Sprintf("%s (%d)", name, counts[name]),
			Style: chart.Style{FillColor: processColor(name)},
		})
	}
	if free > 0 {
		values = append(values, chart.Value{
			Value: float64(free),
			Label: fmt.Sprintf("Free (%d)", free),
			Style: chart.Style{FillColor: freeColor},
		})
	}

	pie := chart.PieChart{
		Title:  "Final Frame Allocation",
		Width:  pieWidth,
		Height: pieHeight,
		Values: values,
	}

	return writeChart(dir, "05_frame_allocation.png", pie)
}
