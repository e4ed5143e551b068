// Package render turns extracted metric series into PNG charts. Each
// generator produces one numbered image; the orchestrator runs them in
// sequence and tolerates individual failures.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/wcharczuk/go-chart/v2"

	"simviz/loader"
)

// ErrNoData marks a chart that has nothing to draw for this run. The
// orchestrator reports it as a skip, not a failure.
var ErrNoData = errors.New("no data to visualize")

// Generator renders one chart from a loaded log into the output directory.
type Generator interface {
	Name() string
	Render(log *loader.Log, dir string) error
}

// Generators returns every chart generator in output order.
func Generators() []Generator {
	return []Generator{
		GanttChart{},
		QueueEvolution{},
		MemoryUsage{},
		PageTableChart{},
		FrameAllocation{},
		IOOperations{},
		IOGanttChart{},
		ContextSwitchChart{},
		SummaryDashboard{},
		StateDistribution{},
		StateTimeline{},
	}
}

// Result tallies one orchestrator run.
type Result struct {
	Rendered int
	Skipped  int
	Failed   int
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B"))
	skipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true)
)

// RunAll wipes and recreates dir, then runs every generator in order.
// A failing generator is reported on w and skipped; the rest still run.
func RunAll(log *loader.Log, dir string, w io.Writer) (Result, error) {
	if err := os.RemoveAll(dir); err != nil {
		return Result{}, fmt.Errorf("clear output dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	var res Result
	for _, gen := range Generators() {
		err := gen.Render(log, dir)
		switch {
		case err == nil:
			res.Rendered++
			fmt.Fprintf(w, "  %s %s\n", okStyle.Render("✓"), gen.Name())
		case errors.Is(err, ErrNoData):
			res.Skipped++
			fmt.Fprintf(w, "  %s %s: %v\n", skipStyle.Render("-"), gen.Name(), err)
		default:
			res.Failed++
			fmt.Fprintf(w, "  %s %s: %v\n", failStyle.Render("✗"), gen.Name(), err)
		}
	}
	return res, nil
}

// renderable is satisfied by chart.Chart, chart.BarChart and
// chart.PieChart alike.
type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// writeChart renders c as PNG into dir/filename.
func writeChart(dir, filename string, c renderable) error {
	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	defer f.Close()

	if err := c.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render %s: %w", filename, err)
	}
	return nil
}
