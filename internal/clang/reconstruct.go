package clang

import (
	"context"
	"regexp"
	"strings"

	"github.com/clangcat/clangcat/internal/logging"
	"github.com/clangcat/clangcat/internal/runner"
)

// errorLine matches the marker the compiler prints when it fails but
// still exits zero in -### mode.
var errorLine = regexp.MustCompile(`^clang: error:`)

// Reconstruct recovers the single low-level command the compiler would run
// internally for a direct invocation. It inserts -### after the executable
// name, runs the modified command in cwd, and tokenizes the last line of
// combined output (the driver may print version and target preamble first).
//
// Token 0 of the result is the executable the compiler would actually
// invoke. Errors: ErrEmptyOutput when nothing was printed, *ExecutionError
// on a non-zero exit, *CompilerError when a zero-exit run still reports
// "clang: error:" on the last line.
func Reconstruct(ctx context.Context, r runner.Runner, cwd string, command []string) ([]string, error) {
	argv := make([]string, 0, len(command)+1)
	argv = append(argv, command[0], "-###")
	argv = append(argv, command[1:]...)

	logging.Logger.Debug("exec", "cwd", cwd, "cmd", strings.Join(argv, " "))

	res, err := r.Run(ctx, argv, cwd)
	if err != nil {
		return nil, err
	}
	if len(res.Lines) == 0 {
		return nil, ErrEmptyOutput
	}

	last := res.Lines[len(res.Lines)-1]
	if res.ExitCode != 0 {
		return nil, &ExecutionError{ExitCode: res.ExitCode, Line: last}
	}
	if errorLine.MatchString(last) {
		return nil, &CompilerError{Line: last}
	}

	raw := splitTokens(last)
	tokens := make([]string, len(raw))
	for i, tok := range raw {
		tokens[i] = stripQuotes(tok)
	}
	return tokens, nil
}
