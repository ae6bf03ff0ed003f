// Package runner executes external programs and captures their combined
// output and exit status. It is the process boundary everything above the
// compiler wire protocol goes through, which keeps the protocol layer
// testable without spawning real compilers.
package runner

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// Result holds the observable outcome of one child process.
type Result struct {
	// Lines is the combined stdout+stderr output split into lines,
	// with a trailing empty line from the final newline dropped.
	Lines []string

	// ExitCode is the process exit status.
	ExitCode int
}

// Runner runs a program with arguments and an optional working directory,
// blocking until it exits and its output is fully read.
//
// The returned error is non-nil only when the process could not be started
// (missing binary, bad working directory, canceled context). A process that
// started and exited non-zero yields a nil error with the status in Result.
type Runner interface {
	Run(ctx context.Context, argv []string, cwd string) (Result, error)
}

// ExecRunner is the production Runner backed by os/exec. Exactly one child
// is spawned per call; stdout and stderr are merged, read to completion,
// and the process is waited on before Run returns.
type ExecRunner struct{}

// Run executes argv[0] with the remaining arguments in cwd (empty means the
// current directory). No timeout is imposed here; callers that need one
// attach a deadline to ctx.
func (ExecRunner) Run(ctx context.Context, argv []string, cwd string) (Result, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = cwd
	// Keep compiler diagnostics stable for parsing
	cmd.Env = append(os.Environ(), "LC_ALL=C", "NO_COLOR=1")

	out, err := cmd.CombinedOutput()
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	res := Result{Lines: splitLines(string(out))}
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return Result{}, err
		}
		res.ExitCode = exitErr.ExitCode()
	}
	return res, nil
}

// splitLines splits combined output into lines, dropping the empty tail
// produced by a terminating newline. Empty output yields no lines.
func splitLines(out string) []string {
	if out == "" {
		return nil
	}
	lines := strings.Split(out, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
