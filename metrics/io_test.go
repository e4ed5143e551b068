package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"simviz/model"
)

func ioStart(tick int, name string) model.Event {
	return model.Event{Tick: tick, StateTransitions: []model.StateTransition{
		{Name: name, From: "RUNNING", To: "WAITING", Reason: "io_request"},
	}}
}

func ioEnd(tick int, name string) model.Event {
	return model.Event{Tick: tick, StateTransitions: []model.StateTransition{
		{Name: name, From: "WAITING", To: "READY", Reason: "io_completed"},
	}}
}

func TestIOIntervalsFIFO(t *testing.T) {
	// A second request before the first completion: oldest start pairs
	// with the next end, never (2,9)/(5,6).
	events := []model.Event{
		ioStart(2, "P1"),
		ioStart(5, "P1"),
		ioEnd(6, "P1"),
		ioEnd(9, "P1"),
	}
	got := IOIntervals(events)
	assert.Equal(t, []model.IOInterval{
		{Process: "P1", Start: 2, End: 6},
		{Process: "P1", Start: 5, End: 9},
	}, got["P1"])
}

func TestIOIntervalsUnmatchedStart(t *testing.T) {
	events := []model.Event{
		ioStart(2, "P1"),
		ioEnd(4, "P1"),
		ioStart(7, "P1"), // never completes
	}
	got := IOIntervals(events)
	assert.Equal(t, []model.IOInterval{{Process: "P1", Start: 2, End: 4}}, got["P1"])
}

func TestIOIntervalsOrphanEndDiscarded(t *testing.T) {
	events := []model.Event{
		ioEnd(1, "P1"), // no pending start
		ioStart(2, "P2"),
		ioEnd(5, "P2"),
	}
	got := IOIntervals(events)
	assert.NotContains(t, got, "P1")
	assert.Equal(t, []model.IOInterval{{Process: "P2", Start: 2, End: 5}}, got["P2"])
}

func TestIOIntervalsPerProcessIsolation(t *testing.T) {
	events := []model.Event{
		ioStart(1, "P1"),
		ioStart(2, "P2"),
		ioEnd(3, "P2"),
		ioEnd(6, "P1"),
	}
	got := IOIntervals(events)
	assert.Equal(t, []model.IOInterval{{Process: "P1", Start: 1, End: 6}}, got["P1"])
	assert.Equal(t, []model.IOInterval{{Process: "P2", Start: 2, End: 3}}, got["P2"])
}

func TestIODeviceEvents(t *testing.T) {
	events := []model.Event{
		{Tick: 3, IO: &model.IODeviceEvent{Device: "disk0", Event: "STEP", PID: 1, Name: "P1", Remaining: 2, Queue: 1}},
		{Tick: 4},
	}
	got := IODeviceEvents(events)
	assert.Equal(t, []model.IOSample{
		{Tick: 3, Device: "disk0", Event: "STEP", PID: 1, Name: "P1", Remaining: 2, QueueSize: 1},
	}, got)
}

func TestActiveServiceTicks(t *testing.T) {
	samples := []model.IOSample{
		{Tick: 3, Event: "STEP", Name: "P1"},
		{Tick: 4, Event: "COMPLETED", Name: "P1"},
		{Tick: 5, Event: "ENQUEUED", Name: "P2"},
		{Tick: 6, Event: "STEP", Name: ""},
	}
	active := ActiveServiceTicks(samples)
	assert.True(t, active["P1"][3])
	assert.True(t, active["P1"][4])
	assert.NotContains(t, active, "P2")
	assert.Len(t, active, 1)
}

func TestSplitServiceSegments(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		end    int
		active map[int]bool
		want   []IOSegment
	}{
		{
			"no device data means fully queued",
			2, 6, nil,
			[]IOSegment{{Start: 2, End: 6, Active: false}},
		},
		{
			"queued then serviced",
			2, 6, map[int]bool{4: true, 5: true},
			[]IOSegment{
				{Start: 2, End: 4, Active: false},
				{Start: 4, End: 6, Active: true},
			},
		},
		{
			"fully serviced",
			2, 4, map[int]bool{2: true, 3: true},
			[]IOSegment{{Start: 2, End: 4, Active: true}},
		},
		{
			"alternating",
			0, 4, map[int]bool{1: true},
			[]IOSegment{
				{Start: 0, End: 1, Active: false},
				{Start: 1, End: 2, Active: true},
				{Start: 2, End: 4, Active: false},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitServiceSegments(tt.start, tt.end, tt.active)
			assert.Equal(t, tt.want, got)
		})
	}
}
