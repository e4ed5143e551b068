// Package batch runs the single-file visualization pipeline over every
// metrics log found under a directory tree.
package batch

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"simviz/loader"
	"simviz/render"
)

// logExt is the recognized metrics-log extension.
const logExt = ".jsonl"

// Processor discovers metrics files under InputDir and renders each one
// into a subdirectory of OutputDir mirroring its relative path.
type Processor struct {
	InputDir  string
	OutputDir string

	Processed []string
	Failed    []string
}

// FindMetricsFiles returns every *.jsonl under the input directory,
// sorted. A missing input directory yields an empty list.
func (p *Processor) FindMetricsFiles() ([]string, error) {
	if _, err := os.Stat(p.InputDir); os.IsNotExist(err) {
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(p.InputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), logExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", p.InputDir, err)
	}
	sort.Strings(files)
	return files, nil
}

// ProcessFile runs the full pipeline for one metrics file. The output
// subdirectory is the file's input-relative path with the extension
// stripped.
func (p *Processor) ProcessFile(path string, w io.Writer) error {
	rel, err := filepath.Rel(p.InputDir, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	outDir := filepath.Join(p.OutputDir, strings.TrimSuffix(rel, filepath.Ext(rel)))

	log, err := loader.Load(path)
	if err != nil {
		return err
	}
	if _, err := render.RunAll(log, outDir, w); err != nil {
		return err
	}
	return nil
}

// ProcessAll runs every discovered file, isolating failures: one broken
// log never stops the rest. Progress and per-file errors go to w.
func (p *Processor) ProcessAll(w io.Writer) error {
	files, err := p.FindMetricsFiles()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(w, "no %s files found under %s\n", logExt, p.InputDir)
		return nil
	}

	fmt.Fprintf(w, "found %d metrics files\n", len(files))
	for i, path := range files {
		fmt.Fprintf(w, "[%d/%d] %s\n", i+1, len(files), path)
		if err := p.ProcessFile(path, w); err != nil {
			fmt.Fprintf(w, "  error: %v\n", err)
			p.Failed = append(p.Failed, path)
			continue
		}
		p.Processed = append(p.Processed, path)
	}

	fmt.Fprintf(w, "processed %d files, %d failed\n", len(p.Processed), len(p.Failed))
	return nil
}
