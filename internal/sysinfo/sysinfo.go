// Package sysinfo collects host metadata for report headers.
package sysinfo

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/clangcat/clangcat/internal/types"
)

// Collect gathers hostname, OS, kernel version, and architecture.
// Best-effort: detection failures degrade to the runtime constants and
// never fail a catalog query.
func Collect() types.SystemInfo {
	info := types.SystemInfo{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}

	if h, err := host.Info(); err == nil {
		info.OSVersion = h.KernelVersion
		info.Platform = h.Platform
	}

	return info
}
