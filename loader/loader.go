// Package loader reads simulator metrics logs (JSONL, one event per
// non-blank line) into memory and discovers the set of processes the run
// mentions.
package loader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"simviz/model"
	"simviz/util"
)

// Log is a fully loaded metrics file. Events preserve file order; the
// event slice is treated as immutable by every consumer.
type Log struct {
	Events    []model.Event
	Processes []string
}

// Load reads path and parses every non-blank line as one JSON event.
// A malformed line is a fatal error carrying the line number.
func Load(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open metrics file: %w", err)
	}
	defer f.Close()

	var events []model.Event
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var ev model.Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			return nil, fmt.Errorf("%s:%d: parse event: %w", path, lineNo, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &Log{
		Events:    events,
		Processes: DiscoverProcesses(events),
	}, nil
}

// DiscoverProcesses scans the event list for every process mentioned in a
// CPU record (pid > 0) or a state transition, and returns the names in
// numeric order.
func DiscoverProcesses(events []model.Event) []string {
	seen := make(map[string]bool)
	for _, ev := range events {
		if ev.CPU != nil && ev.CPU.PID > 0 {
			seen[ev.CPU.Name] = true
		}
		for _, tr := range ev.StateTransitions {
			seen[tr.Name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	SortProcessNames(names)
	return names
}

// SortProcessNames orders names numerically by their trailing integer, so
// P2 sorts before P10. Names without a parseable number sort last, among
// themselves lexicographically.
func SortProcessNames(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		ni, oki := util.TrailingInt(names[i])
		nj, okj := util.TrailingInt(names[j])
		switch {
		case oki && okj:
			return ni < nj
		case oki:
			return true
		case okj:
			return false
		default:
			return names[i] < names[j]
		}
	})
}
