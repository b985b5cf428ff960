package main

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/jamesmstone/ghostclaw/internal/format"
)

// hostSnapshot is a best-effort picture of the machine running the checks,
// printed before the network sequence so failures can be read in context
// (wrong box, stale container, full disk).
type hostSnapshot struct {
	Hostname    string
	Platform    string
	Uptime      uint64
	CPUCount    int
	RAMUsedPct  float64
	DiskUsedPct float64
	DiskFree    uint64
}

// collectHostSnapshot gathers local host facts. Every probe is optional;
// fields stay zero when a collector fails.
func collectHostSnapshot() hostSnapshot {
	var s hostSnapshot
	if h, err := host.Info(); err == nil {
		s.Hostname = h.Hostname
		s.Platform = h.Platform
		s.Uptime = h.Uptime
	}
	if n, err := cpu.Counts(true); err == nil {
		s.CPUCount = n
	}
	if v, err := mem.VirtualMemory(); err == nil {
		s.RAMUsedPct = v.UsedPercent
	}
	if d, err := disk.Usage("/"); err == nil {
		s.DiskUsedPct = d.UsedPercent
		s.DiskFree = d.Free
	}
	return s
}

// lines renders the snapshot as console lines, omitting sections whose
// collectors produced nothing.
func (s hostSnapshot) lines() []string {
	var out []string
	if s.Hostname != "" {
		out = append(out, fmt.Sprintf("Host: %s (%s), up %s", s.Hostname, s.Platform, format.FormatUptime(s.Uptime)))
	}
	if s.CPUCount > 0 {
		out = append(out, fmt.Sprintf("CPU: %d cores, RAM used: %.1f%%", s.CPUCount, s.RAMUsedPct))
	}
	if s.DiskFree > 0 {
		out = append(out, fmt.Sprintf("Disk /: %.1f%% used, %s free", s.DiskUsedPct, format.FormatBytes(s.DiskFree)))
	}
	return out
}
