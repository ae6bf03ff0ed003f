package clang

import (
	"errors"
	"fmt"
)

// ErrEmptyOutput is returned when the compiler emitted no output line
// where one was expected.
var ErrEmptyOutput = errors.New("compiler produced no output")

// ErrCatalogUnavailable is returned when the checker help query exits
// non-zero or yields an empty catalog.
var ErrCatalogUnavailable = errors.New("could not query compiler for available checkers")

// ExecutionError reports a child process that exited non-zero. Line is the
// last output line, kept as diagnostic text.
type ExecutionError struct {
	ExitCode int
	Line     string
}

func (e *ExecutionError) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("compiler exited with status %d", e.ExitCode)
	}
	return fmt.Sprintf("compiler exited with status %d: %s", e.ExitCode, e.Line)
}

// CompilerError reports a compiler-side failure signaled in the output
// even though the process exited zero.
type CompilerError struct {
	Line string
}

func (e *CompilerError) Error() string {
	return e.Line
}
