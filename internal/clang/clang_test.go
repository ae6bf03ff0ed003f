package clang

import (
	"context"
	"strings"
	"testing"

	"github.com/clangcat/clangcat/internal/runner"
)

// scriptRunner is a Runner scripted with canned results per command line.
// It records every invocation for assertions on argv and cwd.
type scriptRunner struct {
	t         *testing.T
	responses map[string]runner.Result
	errs      map[string]error
	calls     []string
	cwds      []string
}

func newScriptRunner(t *testing.T) *scriptRunner {
	return &scriptRunner{
		t:         t,
		responses: make(map[string]runner.Result),
		errs:      make(map[string]error),
	}
}

// on registers a canned result for the given command line.
func (s *scriptRunner) on(cmdline string, lines []string, exitCode int) {
	s.responses[cmdline] = runner.Result{Lines: lines, ExitCode: exitCode}
}

// onErr registers a spawn failure for the given command line.
func (s *scriptRunner) onErr(cmdline string, err error) {
	s.errs[cmdline] = err
}

func (s *scriptRunner) Run(_ context.Context, argv []string, cwd string) (runner.Result, error) {
	key := strings.Join(argv, " ")
	s.calls = append(s.calls, key)
	s.cwds = append(s.cwds, cwd)

	if err, ok := s.errs[key]; ok {
		return runner.Result{}, err
	}
	res, ok := s.responses[key]
	if !ok {
		s.t.Fatalf("unexpected command: %s", key)
	}
	return res, nil
}
