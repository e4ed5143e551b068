package metrics

import "simviz/model"

// ioMarker is a raw I/O start or end marker pulled from the transition
// stream before matching.
type ioMarker struct {
	tick  int
	name  string
	start bool
}

// ioMarkers extracts I/O wait markers from the transition records: a
// process entering WAITING for an io_request starts an operation, and
// leaving WAITING on io_completed ends one.
func ioMarkers(events []model.Event) []ioMarker {
	var out []ioMarker
	for _, ev := range events {
		for _, tr := range ev.StateTransitions {
			switch {
			case tr.To == model.StateWaiting && tr.Reason == model.ReasonIORequest:
				out = append(out, ioMarker{tick: ev.Tick, name: tr.Name, start: true})
			case tr.From == model.StateWaiting && tr.Reason == model.ReasonIOCompleted:
				out = append(out, ioMarker{tick: ev.Tick, name: tr.Name, start: false})
			}
		}
	}
	return out
}

// IOIntervals pairs I/O start and end markers per process, FIFO: the
// oldest unmatched start takes the next end for that process. A process
// may issue a second request before the first completion arrives, as long
// as completions arrive in order too. Starts without a later end are
// dropped; an end with no pending start is discarded.
func IOIntervals(events []model.Event) map[string][]model.IOInterval {
	intervals := make(map[string][]model.IOInterval)
	pending := make(map[string][]int)

	for _, m := range ioMarkers(events) {
		if m.start {
			pending[m.name] = append(pending[m.name], m.tick)
			continue
		}
		starts := pending[m.name]
		if len(starts) == 0 {
			continue
		}
		pending[m.name] = starts[1:]
		intervals[m.name] = append(intervals[m.name], model.IOInterval{
			Process: m.name,
			Start:   starts[0],
			End:     m.tick,
		})
	}
	return intervals
}

// IODeviceEvents flattens the io records into per-tick samples.
func IODeviceEvents(events []model.Event) []model.IOSample {
	var out []model.IOSample
	for _, ev := range events {
		if ev.IO == nil {
			continue
		}
		out = append(out, model.IOSample{
			Tick:      ev.Tick,
			Device:    ev.IO.Device,
			Event:     ev.IO.Event,
			PID:       ev.IO.PID,
			Name:      ev.IO.Name,
			Remaining: ev.IO.Remaining,
			QueueSize: ev.IO.Queue,
		})
	}
	return out
}

// ActiveServiceTicks returns, per process, the set of ticks where the
// device reported STEP or COMPLETED for it, i.e. where the process was
// actively served rather than queued.
func ActiveServiceTicks(samples []model.IOSample) map[string]map[int]bool {
	active := make(map[string]map[int]bool)
	for _, s := range samples {
		if s.Name == "" {
			continue
		}
		if s.Event != model.IOEventStep && s.Event != model.IOEventCompleted {
			continue
		}
		if active[s.Name] == nil {
			active[s.Name] = make(map[int]bool)
		}
		active[s.Name][s.Tick] = true
	}
	return active
}

// IOSegment is a run of ticks within an I/O interval that is either
// actively served or waiting in queue.
type IOSegment struct {
	Start  int
	End    int
	Active bool
}

// SplitServiceSegments divides [start, end) into alternating active and
// queued segments based on the process's active tick set. With no device
// data the whole span counts as queued.
func SplitServiceSegments(start, end int, active map[int]bool) []IOSegment {
	if len(active) == 0 {
		return []IOSegment{{Start: start, End: end, Active: false}}
	}

	var segments []IOSegment
	segStart := start
	segActive := active[start]
	for tick := start + 1; tick <= end; tick++ {
		if active[tick] == segActive {
			continue
		}
		segments = append(segments, IOSegment{Start: segStart, End: tick, Active: segActive})
		segStart = tick
		segActive = active[tick]
	}
	if segStart < end {
		segments = append(segments, IOSegment{Start: segStart, End: end, Active: segActive})
	}
	return segments
}
