package render

import (
	"github.com/wcharczuk/go-chart/v2"

	"simviz/loader"
	"simviz/metrics"
	"simviz/model"
)

// SummaryDashboard draws the run's rollup metrics as labelled bars.
type SummaryDashboard struct{}

func (SummaryDashboard) Name() string { return "summary dashboard" }

func (SummaryDashboard) Render(log *loader.Log, dir string) error {
	if len(log.Events) == 0 {
		return ErrNoData
	}
	s := metrics.Summarize(log.Events, log.Processes)

	bars := []chart.Value{
		{Value: float64(s.TotalTicks), Label: "Total ticks", Style: chart.Style{FillColor: colorFromHex("3498DB")}},
		{Value: float64(s.NumProcesses), Label: "Processes", Style: chart.Style{FillColor: colorFromHex("9B59B6")}},
		{Value: float64(s.ContextSwitches), Label: "Ctx switches", Style: chart.Style{FillColor: colorFromHex("2ECC71")}},
		{Value: float64(s.PageFaults), Label: "Page faults", Style: chart.Style{FillColor: colorFromHex("E74C3C")}},
		{Value: float64(s.Replacements), Label: "Replacements", Style: chart.Style{FillColor: colorFromHex("F39C12")}},
	}

	maxVal := 0.0
	for _, b := range bars {
		if b.Value > maxVal {
			maxVal = b.Value
		}
	}

	bc := chart.BarChart{
		Title:    "Simulation Summary",
		Width:    1000,
		Height:   600,
		BarWidth: 90,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.Style{},
		YAxis: chart.YAxis{
			Name:  "Count",
			Range: &chart.ContinuousRange{Min: 0, Max: maxVal + 1},
		},
		Bars: bars,
	}

	return writeChart(dir, "09_summary_dashboard.png", bc)
}

// StateDistribution draws the histogram of transition destination states
// as a pie. NEW is excluded; every process passes through it exactly once
// and it would only dilute the slices that matter.
type StateDistribution struct{}

func (StateDistribution) Name() string { return "state distribution" }

func (StateDistribution) Render(log *loader.Log, dir string) error {
	s := metrics.Summarize(log.Events, log.Processes)
	if len(s.StateCounts) == 0 {
		return ErrNoData
	}

	var values []chart.Value
	for _, state := range []string{
		model.StateReady,
		model.StateRunning,
		model.StateWaiting,
		model.StateMemoryWaiting,
		model.StateTerminated,
	} {
		if n := s.StateCounts[state]; n > 0 {
			values = append(values, chart.Value{
				Value: float64(n),
				Label: state,
				Style: chart.Style{FillColor: stateColor(state)},
			})
		}
	}
	// States outside the fixed set still get a slice.
	for state, n := range s.StateCounts {
		if state == model.StateNew || n <= 0 {
			continue
		}
		if _, known := stateColors[state]; !known {
			values = append(values, chart.Value{
				Value: float64(n),
				Label: state,
				Style: chart.Style{FillColor: defaultColor},
			})
		}
	}
	if len(values) == 0 {
		return ErrNoData
	}

	pie := chart.PieChart{
		Title:  "State Transition Distribution",
		Width:  pieWidth,
		Height: pieHeight,
		Values: values,
	}

	return writeChart(dir, "10_state_distribution.png", pie)
}
