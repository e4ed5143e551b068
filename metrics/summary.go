package metrics

import "simviz/model"

// Summarize computes the rollup metrics for a run. The page-fault and
// replacement counters are cumulative in the stream, so the rollup takes
// the maximum observed value, not a sum.
func Summarize(events []model.Event, processes []string) model.Summary {
	s := model.Summary{
		TotalTicks:   MaxTick(events),
		NumProcesses: len(processes),
		StateCounts:  make(map[string]int),
	}

	for _, ev := range events {
		if ev.CPU != nil && ev.CPU.ContextSwitch {
			s.ContextSwitches++
		}
		if ev.Memory != nil {
			if ev.Memory.TotalPageFaults > s.PageFaults {
				s.PageFaults = ev.Memory.TotalPageFaults
			}
			if ev.Memory.TotalReplacements > s.Replacements {
				s.Replacements = ev.Memory.TotalReplacements
			}
		}
		for _, tr := range ev.StateTransitions {
			s.StateCounts[tr.To]++
		}
	}
	return s
}
