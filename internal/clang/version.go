package clang

import (
	"context"

	"github.com/clangcat/clangcat/internal/logging"
)

// Version returns the compiler's version banner: the first line of
// `<compiler> -v` combined output.
func (t *Toolchain) Version(ctx context.Context) (string, error) {
	logging.Logger.Debug("exec", "cmd", t.path+" -v")

	res, err := t.runner.Run(ctx, []string{t.path, "-v"}, "")
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		line := ""
		if len(res.Lines) > 0 {
			line = res.Lines[len(res.Lines)-1]
		}
		return "", &ExecutionError{ExitCode: res.ExitCode, Line: line}
	}
	if len(res.Lines) == 0 {
		return "", ErrEmptyOutput
	}
	return res.Lines[0], nil
}
