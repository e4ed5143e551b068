package model

// StatePoint is one (tick, state) sample in a process's state history.
type StatePoint struct {
	Tick  int
	State string
}

// StateInterval is a bounded span a process spent in one state.
type StateInterval struct {
	State string
	Start int
	End   int
}

// Duration returns the interval length in ticks.
func (s StateInterval) Duration() int { return s.End - s.Start }

// QueuePoint is the scheduler queue lengths at one tick.
type QueuePoint struct {
	Tick          int
	Ready         int
	BlockedMemory int
	BlockedIO     int
}

// FramePoint is the number of occupied memory frames at one tick.
type FramePoint struct {
	Tick       int
	UsedFrames int
}

// FaultPoint is the cumulative page-fault counter at one tick. Only
// positive counts are recorded, so fault series are sparse.
type FaultPoint struct {
	Tick  int
	Total int
}

// IOInterval is a matched I/O request/completion pair for a process.
type IOInterval struct {
	Process string
	Start   int
	End     int
}

// Duration returns the blocked span in ticks.
func (i IOInterval) Duration() int { return i.End - i.Start }

// IOSample is one flattened I/O device record with its tick.
type IOSample struct {
	Tick      int
	Device    string
	Event     string
	PID       int
	Name      string
	Remaining int
	QueueSize int
}

// ContextSwitch is one CPU context-switch occurrence.
type ContextSwitch struct {
	Tick    int
	Process string
	Event   string
}

// Summary holds the rollup metrics for a whole run. PageFaults and
// Replacements are the maximum observed counter values, not sums; the
// simulator's counters are cumulative.
type Summary struct {
	TotalTicks      int
	ContextSwitches int
	PageFaults      int
	Replacements    int
	NumProcesses    int
	StateCounts     map[string]int
}
