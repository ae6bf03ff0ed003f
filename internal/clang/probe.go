package clang

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// languages are the input languages probed for default checkers. The order
// is fixed: probes run sequentially and the first failure aborts the whole
// probe, so iteration order is part of the observable error behavior.
var languages = []string{"c", "c++", "objective-c", "objective-c++"}

// checkerFlag extracts the value of an -analyzer-checker= token.
var checkerFlag = regexp.MustCompile(`^-analyzer-checker=(.*)$`)

// ActiveSet holds checker names or name prefixes reported active by the
// compiler.
type ActiveSet map[string]struct{}

// Matches reports whether name equals, or is a dotted descendant of, any
// member of the set: "unix" matches "unix" and "unix.API" but not "unixy".
func (s ActiveSet) Matches(name string) bool {
	for prefix := range s {
		if name == prefix || strings.HasPrefix(name, prefix+".") {
			return true
		}
	}
	return false
}

// ProbeActive asks the compiler which checkers it would enable by default
// for each supported input language, with the given plugins loaded, and
// unions the results.
//
// The compiler is never asked to actually analyze anything: for each
// language a synthetic invocation reading from stdin is reconstructed via
// -### and the -analyzer-checker= flags are read off the recovered command
// line. Plugin order is preserved in the load directives.
func (t *Toolchain) ProbeActive(ctx context.Context, plugins []string) (ActiveSet, error) {
	var load []string
	for _, plugin := range plugins {
		load = append(load, "-Xclang", "-load", "-Xclang", plugin)
	}

	active := make(ActiveSet)
	for _, lang := range languages {
		command := append([]string{t.path, "--analyze"}, load...)
		command = append(command, "-x", lang, "-")

		args, err := Reconstruct(ctx, t.runner, ".", command)
		if err != nil {
			return nil, fmt.Errorf("probing %s defaults: %w", lang, err)
		}
		for _, arg := range args {
			if m := checkerFlag.FindStringSubmatch(arg); m != nil {
				active[m[1]] = struct{}{}
			}
		}
	}
	return active, nil
}
