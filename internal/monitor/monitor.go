// Package monitor reports host and process resource usage for the debug
// status endpoint.
package monitor

import (
	"log/slog"
	"runtime"
	"time"
)

type Monitor interface {
	Name() string
	Collect() (any, error)
}

type MemoryState struct {
	UsedBytes      uint64  `json:"used_bytes"`
	AvailableBytes uint64  `json:"available_bytes"`
	TotalBytes     uint64  `json:"total_bytes"`
	UsagePercent   float64 `json:"usage_percent"`
}

type ProcessState struct {
	PID        int32   `json:"pid"`
	RSSBytes   uint64  `json:"rss_bytes"`
	Threads    int32   `json:"threads"`
	CPUPercent float64 `json:"cpu_percent"`
	Goroutines int     `json:"goroutines"`
}

// Snapshot is one collection pass. Sections whose monitor failed are nil.
type Snapshot struct {
	Memory    *MemoryState  `json:"memory,omitempty"`
	Process   *ProcessState `json:"process,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// Collector runs a fixed set of monitors on demand.
type Collector struct {
	monitors []Monitor
	logger   *slog.Logger
}

func NewCollector(logger *slog.Logger, monitors ...Monitor) *Collector {
	return &Collector{monitors: monitors, logger: logger}
}

// DefaultCollector watches host memory and the current process.
func DefaultCollector(logger *slog.Logger) *Collector {
	return NewCollector(logger, NewMemoryMonitor(), NewProcessMonitor())
}

// Collect runs every monitor once. Failures are logged and reported in the
// snapshot rather than returned.
func (c *Collector) Collect() *Snapshot {
	snap := &Snapshot{Timestamp: time.Now()}

	for _, m := range c.monitors {
		data, err := m.Collect()
		if err != nil {
			c.logger.Warn("monitor collect failed", "monitor", m.Name(), "error", err)
			snap.Errors = append(snap.Errors, m.Name()+": "+err.Error())
			continue
		}

		switch v := data.(type) {
		case *MemoryState:
			snap.Memory = v
		case *ProcessState:
			v.Goroutines = runtime.NumGoroutine()
			snap.Process = v
		}
	}

	return snap
}
