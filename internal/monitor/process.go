package monitor

import (
	"os"
	"sync"

	"github.com/shirou/gopsutil/v4/process"
)

// ProcessMonitor reports usage of the running server process.
type ProcessMonitor struct {
	mu   sync.Mutex
	pid  int32
	proc *process.Process
}

func NewProcessMonitor() *ProcessMonitor {
	return &ProcessMonitor{pid: int32(os.Getpid())}
}

func (m *ProcessMonitor) Name() string {
	return "process"
}

func (m *ProcessMonitor) Collect() (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// The handle is kept so CPUPercent measures since the previous call.
	if m.proc == nil {
		p, err := process.NewProcess(m.pid)
		if err != nil {
			return nil, err
		}
		m.proc = p
	}

	state := &ProcessState{PID: m.pid}

	mem, err := m.proc.MemoryInfo()
	if err != nil {
		return nil, err
	}
	state.RSSBytes = mem.RSS

	if threads, err := m.proc.NumThreads(); err == nil {
		state.Threads = threads
	}
	if pct, err := m.proc.Percent(0); err == nil {
		state.CPUPercent = pct
	}

	return state, nil
}
