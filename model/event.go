package model

// Event is one line of the simulator's JSONL metrics stream. Every field
// is optional; a nil/empty field means the simulator emitted no information
// of that kind at this tick.
type Event struct {
	Tick             int               `json:"tick"`
	CPU              *CPUInfo          `json:"cpu,omitempty"`
	StateTransitions []StateTransition `json:"state_transitions,omitempty"`
	Queues           *QueueSnapshot    `json:"queues,omitempty"`
	FrameStatus      []FrameInfo       `json:"frame_status,omitempty"`
	Memory           *MemoryCounters   `json:"memory,omitempty"`
	PageTable        *PageTable        `json:"page_table,omitempty"`
	IO               *IODeviceEvent    `json:"io,omitempty"`
}

// CPUInfo describes what the CPU was doing at a tick.
type CPUInfo struct {
	PID           int    `json:"pid"`
	Name          string `json:"name"`
	ContextSwitch bool   `json:"context_switch"`
	Event         string `json:"event"`
}

// StateTransition records one process lifecycle transition. From and
// Reason may be empty (the initial NEW transition has no source).
type StateTransition struct {
	Name   string `json:"name"`
	From   string `json:"from,omitempty"`
	To     string `json:"to"`
	Reason string `json:"reason,omitempty"`
}

// QueueSnapshot lists the scheduler queues at a tick. Only the lengths
// matter downstream, but the simulator emits the full member lists.
type QueueSnapshot struct {
	Ready         []string `json:"ready"`
	BlockedMemory []string `json:"blocked_memory"`
	BlockedIO     []string `json:"blocked_io"`
}

// FrameInfo is the status of one physical memory frame.
type FrameInfo struct {
	Occupied bool `json:"occupied"`
	PID      int  `json:"pid"`
}

// MemoryCounters holds the memory manager's cumulative counters. Both
// counters are monotonic across the run.
type MemoryCounters struct {
	TotalPageFaults   int `json:"total_page_faults"`
	TotalReplacements int `json:"total_replacements"`
}

// PageTable is a snapshot of one process's page table.
type PageTable struct {
	Name  string      `json:"name"`
	Pages []PageEntry `json:"pages"`
}

// PageEntry maps one virtual page to a frame. Frame is -1 when the page
// is not resident.
type PageEntry struct {
	Page       int  `json:"page"`
	Frame      int  `json:"frame"`
	Valid      bool `json:"valid"`
	Referenced bool `json:"referenced"`
}

// IODeviceEvent describes one I/O device activity record.
type IODeviceEvent struct {
	Device    string `json:"device"`
	Event     string `json:"event"`
	PID       int    `json:"pid"`
	Name      string `json:"name"`
	Remaining int    `json:"remaining"`
	Queue     int    `json:"queue"`
}

// Process states emitted by the simulator.
const (
	StateNew           = "NEW"
	StateReady         = "READY"
	StateRunning       = "RUNNING"
	StateWaiting       = "WAITING"
	StateMemoryWaiting = "MEMORY_WAITING"
	StateTerminated    = "TERMINATED"
)

// Transition reasons relevant to I/O interval matching.
const (
	ReasonIORequest   = "io_request"
	ReasonIOCompleted = "io_completed"
)

// I/O device event types that mean a request is actively being served.
const (
	IOEventStep      = "STEP"
	IOEventCompleted = "COMPLETED"
)
