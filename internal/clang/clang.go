// Package clang speaks the compiler's command-line wire protocol: it
// reconstructs low-level invocations from driver commands, probes which
// analyzer checkers a toolchain enables by default, and parses the
// checker help text into a catalog.
//
// The compiler's interface is rich; only the small subset this tool needs
// is wrapped here, and the exact flag spellings and output patterns are
// treated as a compatibility contract.
package clang

import (
	"github.com/clangcat/clangcat/internal/runner"
)

// Toolchain binds one compiler executable to a process runner. All methods
// are side-effect-free beyond spawning child processes; a Toolchain is safe
// for reuse across queries.
type Toolchain struct {
	runner runner.Runner
	path   string
}

// New returns a Toolchain for the compiler at path, executing children
// through r.
func New(r runner.Runner, path string) *Toolchain {
	return &Toolchain{runner: r, path: path}
}

// Path returns the compiler executable path this Toolchain wraps.
func (t *Toolchain) Path() string {
	return t.path
}
