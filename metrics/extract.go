// Package metrics derives chart-ready series from a loaded event list.
// Every function is a pure projection: it scans the events, allocates its
// result, and never mutates its input. Events without the relevant key
// contribute nothing, so most series are sparser than the tick axis.
package metrics

import "simviz/model"

// StateTransitions returns each process's ordered (tick, to-state)
// sequence. Arrival order within a tick is preserved. Transitions naming
// a process outside the given set are ignored.
func StateTransitions(events []model.Event, processes []string) map[string][]model.StatePoint {
	states := make(map[string][]model.StatePoint, len(processes))
	for _, name := range processes {
		states[name] = nil
	}
	for _, ev := range events {
		for _, tr := range ev.StateTransitions {
			if _, ok := states[tr.Name]; !ok {
				continue
			}
			states[tr.Name] = append(states[tr.Name], model.StatePoint{
				Tick:  ev.Tick,
				State: tr.To,
			})
		}
	}
	return states
}

// StateIntervals converts a state history into bounded intervals by
// pairing each sample with the next one. The final state has no closing
// transition and extends to maxTick+1.
func StateIntervals(points []model.StatePoint, maxTick int) []model.StateInterval {
	var out []model.StateInterval
	for i, p := range points {
		end := maxTick + 1
		if i < len(points)-1 {
			end = points[i+1].Tick
		}
		if end <= p.Tick {
			continue
		}
		out = append(out, model.StateInterval{State: p.State, Start: p.Tick, End: end})
	}
	return out
}

// QueueSeries emits one point per event that carries a queues record.
// There is no interpolation for ticks without one.
func QueueSeries(events []model.Event) []model.QueuePoint {
	var out []model.QueuePoint
	for _, ev := range events {
		if ev.Queues == nil {
			continue
		}
		out = append(out, model.QueuePoint{
			Tick:          ev.Tick,
			Ready:         len(ev.Queues.Ready),
			BlockedMemory: len(ev.Queues.BlockedMemory),
			BlockedIO:     len(ev.Queues.BlockedIO),
		})
	}
	return out
}

// FrameSeries counts occupied frames per frame_status event.
func FrameSeries(events []model.Event) []model.FramePoint {
	var out []model.FramePoint
	for _, ev := range events {
		if ev.FrameStatus == nil {
			continue
		}
		used := 0
		for _, fr := range ev.FrameStatus {
			if fr.Occupied {
				used++
			}
		}
		out = append(out, model.FramePoint{Tick: ev.Tick, UsedFrames: used})
	}
	return out
}

// FaultSeries records the cumulative page-fault counter wherever it is
// positive. Zero or absent counts are skipped.
func FaultSeries(events []model.Event) []model.FaultPoint {
	var out []model.FaultPoint
	for _, ev := range events {
		if ev.Memory == nil || ev.Memory.TotalPageFaults <= 0 {
			continue
		}
		out = append(out, model.FaultPoint{Tick: ev.Tick, Total: ev.Memory.TotalPageFaults})
	}
	return out
}

// PageTables returns the last-seen page table per process. Earlier
// snapshots are overwritten; no history is kept.
func PageTables(events []model.Event) map[string]model.PageTable {
	tables := make(map[string]model.PageTable)
	for _, ev := range events {
		if ev.PageTable == nil || ev.PageTable.Name == "" {
			continue
		}
		tables[ev.PageTable.Name] = *ev.PageTable
	}
	return tables
}

// FinalFrameStatus returns the last frame_status list in the log, or nil
// when the run never reported one.
func FinalFrameStatus(events []model.Event) []model.FrameInfo {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].FrameStatus != nil {
			return events[i].FrameStatus
		}
	}
	return nil
}

// ContextSwitches lists CPU records with the context-switch flag set and
// a real process on the CPU.
func ContextSwitches(events []model.Event) []model.ContextSwitch {
	var out []model.ContextSwitch
	for _, ev := range events {
		if ev.CPU == nil || !ev.CPU.ContextSwitch || ev.CPU.PID <= 0 {
			continue
		}
		out = append(out, model.ContextSwitch{
			Tick:    ev.Tick,
			Process: ev.CPU.Name,
			Event:   ev.CPU.Event,
		})
	}
	return out
}

// MaxTick returns the highest tick observed, or 0 for an empty log.
func MaxTick(events []model.Event) int {
	max := 0
	for _, ev := range events {
		if ev.Tick > max {
			max = ev.Tick
		}
	}
	return max
}
