package render

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Chart dimensions. Wide canvases keep dense tick axes readable.
const (
	chartWidth  = 1400
	chartHeight = 600
	pieWidth    = 900
	pieHeight   = 700
)

// stateColors maps process states to their fixed palette entry.
var stateColors = map[string]drawing.Color{
	"RUNNING":        drawing.ColorFromHex("2ECC71"),
	"READY":          drawing.ColorFromHex("3498DB"),
	"WAITING":        drawing.ColorFromHex("E74C3C"),
	"MEMORY_WAITING": drawing.ColorFromHex("F39C12"),
	"TERMINATED":     drawing.ColorFromHex("95A5A6"),
	"NEW":            drawing.ColorFromHex("9B59B6"),
}

// processColors maps well-known process names to their fixed palette
// entry; further processes fall back to defaultColor.
var processColors = map[string]drawing.Color{
	"P1": drawing.ColorFromHex("FF6B6B"),
	"P2": drawing.ColorFromHex("4ECDC4"),
	"P3": drawing.ColorFromHex("45B7D1"),
	"P4": drawing.ColorFromHex("FFA07A"),
	"P5": drawing.ColorFromHex("98D8C8"),
}

var (
	defaultColor = drawing.ColorFromHex("95A5A6")
	freeColor    = drawing.ColorFromHex("D5DBDB")
	neutralGray  = drawing.ColorFromHex("6B7280")
)

func colorFromHex(hex string) drawing.Color {
	return drawing.ColorFromHex(hex)
}

func stateColor(state string) drawing.Color {
	if c, ok := stateColors[state]; ok {
		return c
	}
	return defaultColor
}

func processColor(name string) drawing.Color {
	if c, ok := processColors[name]; ok {
		return c
	}
	return defaultColor
}

// stepPoints converts a sparse series into post-step coordinates: each
// value holds until the next sample's tick.
func stepPoints(ticks []int, values []int) (xs, ys []float64) {
	for i := range ticks {
		if i > 0 {
			xs = append(xs, float64(ticks[i]))
			ys = append(ys, float64(values[i-1]))
		}
		xs = append(xs, float64(ticks[i]))
		ys = append(ys, float64(values[i]))
	}
	// go-chart refuses a series with fewer than two points.
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}
	return xs, ys
}

// barSegment draws a horizontal bar from start to end at row y.
func barSegment(name string, start, end int, y float64, color drawing.Color, width float64) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    name,
		XValues: []float64{float64(start), float64(end)},
		YValues: []float64{y, y},
		Style: chart.Style{
			StrokeColor: color,
			StrokeWidth: width,
		},
	}
}

// rowTicks builds Y-axis ticks labelling integer rows with names.
func rowTicks(labels []string) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(labels))
	for i, l := range labels {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: l})
	}
	return ticks
}

// rowRange pads the Y range so top and bottom rows are not clipped.
func rowRange(rows int) *chart.ContinuousRange {
	return &chart.ContinuousRange{Min: -0.6, Max: float64(rows-1) + 0.6}
}

// tickRange spans the X axis from 0 to maxTick+1.
func tickRange(maxTick int) *chart.ContinuousRange {
	return &chart.ContinuousRange{Min: 0, Max: float64(maxTick + 1)}
}
