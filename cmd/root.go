// Package cmd wires the command-line surface: single-file mode by
// default, batch mode behind a flag.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"simviz/batch"
	"simviz/loader"
	"simviz/render"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

// Default locations, matching the simulator's output conventions.
const (
	defaultMetricsFile = "data/resultados/metrics.jsonl"
	defaultOutputDir   = "data/diagramas"
)

var (
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `simviz v%s — chart generator for OS simulator metrics logs

Usage:
  simviz [OPTIONS] [METRICS_FILE] [OUTPUT_DIR]

Modes:
  (default)         Render all charts for one JSONL metrics file
  --batch DIR       Render charts for every *.jsonl under DIR, one
                    output subdirectory per file
  --version         Print version and exit

Options:
  --out DIR         Output directory for --batch mode (default: %s)
  -h, --help        Show this help message

Positional (single-file mode):
  METRICS_FILE      Metrics log to read (default: %s)
  OUTPUT_DIR        Directory for the generated PNGs (default: %s)
                    The directory is wiped and recreated on every run.

Examples:
  simviz
  simviz run42.jsonl
  simviz run42.jsonl out/run42
  simviz --batch data/resultados
  simviz --batch data/resultados --out out/diagrams
`, Version, defaultOutputDir, defaultMetricsFile, defaultOutputDir)
}

// Run parses flags and executes the selected mode.
func Run() error {
	batchDir := pflag.String("batch", "", "Process every *.jsonl under this directory")
	outDir := pflag.String("out", defaultOutputDir, "Output directory for --batch mode")
	showVersion := pflag.Bool("version", false, "Print version and exit")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")

	pflag.Usage = printUsage
	pflag.Parse()

	if *helpFlag {
		printUsage()
		return nil
	}
	if *showVersion {
		fmt.Printf("simviz v%s\n", Version)
		return nil
	}

	if *batchDir != "" {
		return runBatch(*batchDir, *outDir)
	}

	metricsFile := defaultMetricsFile
	output := defaultOutputDir
	if args := pflag.Args(); len(args) > 0 {
		metricsFile = args[0]
		if len(args) > 1 {
			output = args[1]
		}
	}
	return runSingle(metricsFile, output)
}

func runSingle(metricsFile, outDir string) error {
	log, err := loader.Load(metricsFile)
	if err != nil {
		return err
	}
	fmt.Printf("%s %d events, %d processes\n",
		infoStyle.Render("loaded"), len(log.Events), len(log.Processes))

	res, err := render.RunAll(log, outDir, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("%s %d rendered, %d skipped, %d failed → %s\n",
		infoStyle.Render("done"), res.Rendered, res.Skipped, res.Failed,
		dimStyle.Render(outDir))
	return nil
}

func runBatch(inputDir, outDir string) error {
	p := &batch.Processor{InputDir: inputDir, OutputDir: outDir}
	if err := p.ProcessAll(os.Stdout); err != nil {
		return err
	}
	if n := len(p.Failed); n > 0 {
		fmt.Printf("%s %d file(s) failed\n", dimStyle.Render("warning:"), n)
	}
	return nil
}
