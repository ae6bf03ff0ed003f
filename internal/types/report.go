package types

import "time"

// CatalogReport is the top-level structure for a complete catalog query.
// It is serialized directly to JSON for the --format=json output.
type CatalogReport struct {
	// Version is the clangcat version that produced this report.
	Version string `json:"version"`

	// Timestamp is when the query started.
	Timestamp time.Time `json:"timestamp"`

	// Compiler describes the toolchain that was queried.
	Compiler CompilerInfo `json:"compiler"`

	// System describes the host the query ran on.
	System SystemInfo `json:"system"`

	// Plugins lists the analyzer plugins loaded, in load order.
	Plugins []string `json:"plugins,omitempty"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	// Checkers is the list of catalog entries, sorted by name.
	Checkers []Entry `json:"checkers"`
}

// CompilerInfo identifies the compiler binary behind a report.
type CompilerInfo struct {
	// Path is the resolved path of the compiler executable.
	Path string `json:"path"`

	// Version is the first line of `<compiler> -v` output.
	Version string `json:"version,omitempty"`
}

// SystemInfo describes the host system a report was produced on.
type SystemInfo struct {
	// Hostname is the system hostname.
	Hostname string `json:"hostname,omitempty"`

	// OS is the operating system name.
	OS string `json:"os"`

	// OSVersion is the kernel version.
	OSVersion string `json:"os_version,omitempty"`

	// Arch is the CPU architecture.
	Arch string `json:"arch"`

	// Platform is the distribution or platform identifier, when known.
	Platform string `json:"platform,omitempty"`
}

// Summary provides aggregate statistics for a catalog query.
type Summary struct {
	// Total is the number of checkers in the catalog.
	Total int `json:"total"`

	// Active is the number of checkers enabled by default.
	Active int `json:"active"`

	// Inactive is the number of checkers requiring explicit opt-in.
	Inactive int `json:"inactive"`

	// DurationMS is the total query duration in milliseconds.
	DurationMS int64 `json:"duration_ms"`
}
