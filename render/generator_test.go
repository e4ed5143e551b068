package render

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simviz/loader"
	"simviz/model"
)

// fullLog builds a log exercising every extractor at least once.
func fullLog() *loader.Log {
	events := []model.Event{
		{Tick: 0, StateTransitions: []model.StateTransition{
			{Name: "P1", To: "NEW"},
			{Name: "P2", To: "NEW"},
		}},
		{Tick: 0, StateTransitions: []model.StateTransition{
			{Name: "P1", From: "NEW", To: "READY"},
			{Name: "P2", From: "NEW", To: "READY"},
		}},
		{
			Tick:   1,
			CPU:    &model.CPUInfo{PID: 1, Name: "P1", ContextSwitch: true, Event: "dispatch"},
			Queues: &model.QueueSnapshot{Ready: []string{"P2"}, BlockedMemory: []string{}, BlockedIO: []string{}},
			StateTransitions: []model.StateTransition{
				{Name: "P1", From: "READY", To: "RUNNING"},
			},
		},
		{
			Tick: 2,
			StateTransitions: []model.StateTransition{
				{Name: "P1", From: "RUNNING", To: "WAITING", Reason: "io_request"},
				{Name: "P2", From: "READY", To: "RUNNING"},
			},
			CPU:    &model.CPUInfo{PID: 2, Name: "P2", ContextSwitch: true, Event: "dispatch"},
			IO:     &model.IODeviceEvent{Device: "disk0", Event: "ENQUEUED", PID: 1, Name: "P1", Remaining: 2, Queue: 1},
			Memory: &model.MemoryCounters{TotalPageFaults: 1},
			FrameStatus: []model.FrameInfo{
				{Occupied: true, PID: 1}, {Occupied: true, PID: 2}, {Occupied: false},
			},
		},
		{
			Tick: 3,
			IO:   &model.IODeviceEvent{Device: "disk0", Event: "STEP", PID: 1, Name: "P1", Remaining: 1, Queue: 0},
			PageTable: &model.PageTable{Name: "P1", Pages: []model.PageEntry{
				{Page: 0, Frame: 0, Valid: true}, {Page: 1, Frame: -1},
			}},
		},
		{
			Tick: 4,
			IO:   &model.IODeviceEvent{Device: "disk0", Event: "COMPLETED", PID: 1, Name: "P1", Remaining: 0, Queue: 0},
			StateTransitions: []model.StateTransition{
				{Name: "P1", From: "WAITING", To: "READY", Reason: "io_completed"},
			},
			Memory: &model.MemoryCounters{TotalPageFaults: 2, TotalReplacements: 1},
			PageTable: &model.PageTable{Name: "P2", Pages: []model.PageEntry{
				{Page: 0, Frame: 1, Valid: true},
			}},
		},
		{Tick: 6, StateTransitions: []model.StateTransition{
			{Name: "P2", From: "RUNNING", To: "TERMINATED"},
			{Name: "P1", From: "READY", To: "TERMINATED"},
		}},
	}
	return &loader.Log{
		Events:    events,
		Processes: loader.DiscoverProcesses(events),
	}
}

func TestRunAllRendersEveryChart(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	res, err := RunAll(fullLog(), dir, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, len(Generators()), res.Rendered)
	assert.Zero(t, res.Skipped)
	assert.Zero(t, res.Failed)

	want := []string{
		"01_gantt_chart.png",
		"02_queue_evolution.png",
		"03_memory_usage.png",
		"04_page_tables.png",
		"05_frame_allocation.png",
		"06_io_operations.png",
		"07_io_gantt_chart.png",
		"08_context_switches.png",
		"09_summary_dashboard.png",
		"10_state_distribution.png",
		"11_state_timeline.png",
	}
	for _, name := range want {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestRunAllSkipsEmptyLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	res, err := RunAll(&loader.Log{}, dir, io.Discard)
	require.NoError(t, err)

	assert.Zero(t, res.Rendered)
	assert.Zero(t, res.Failed)
	assert.Equal(t, len(Generators()), res.Skipped)

	// The output directory still gets created.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunAllWipesPreviousOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	stale := filepath.Join(dir, "stale.png")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	_, err := RunAll(&loader.Log{}, dir, io.Discard)
	require.NoError(t, err)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
}

func TestGeneratorNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, gen := range Generators() {
		assert.False(t, seen[gen.Name()], gen.Name())
		seen[gen.Name()] = true
	}
}
