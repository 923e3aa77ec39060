// Package sysmon samples system-wide CPU and memory usage for the
// dashboard's resource sparklines.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects one system-wide CPU and memory snapshot.
//
// CPU usage is measured with interval=0, so each call reports the
// delta since the previous one. Sampling errors yield zero values
// rather than an error: a blank sparkline is preferable to a dead
// dashboard.
func Sample() Stats {
	var s Stats

	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}

	return s
}
