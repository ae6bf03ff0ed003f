package output

import (
	"time"

	"github.com/clangcat/clangcat/internal/types"
)

// newTestReport builds a small, fully populated report used across the
// formatter tests.
func newTestReport() *types.CatalogReport {
	return &types.CatalogReport{
		Version:   "1.2.3",
		Timestamp: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Compiler: types.CompilerInfo{
			Path:    "/usr/bin/clang",
			Version: "clang version 17.0.6",
		},
		System: types.SystemInfo{
			Hostname:  "buildbox",
			OS:        "linux",
			OSVersion: "6.5.0",
			Arch:      "amd64",
			Platform:  "fedora",
		},
		Plugins: []string{"/opt/llvm/lib/alpha.so"},
		Summary: types.Summary{
			Total:      3,
			Active:     2,
			Inactive:   1,
			DurationMS: 42,
		},
		Checkers: []types.Entry{
			{Name: "core.CallAndMessage", Description: "Check for logical errors", Active: true},
			{Name: "unix.API", Description: "Check calls to various UNIX/POSIX functions", Active: true},
			{Name: "alpha.security.ArrayBound", Description: "Warn about buffer overflows", Active: false},
		},
	}
}
