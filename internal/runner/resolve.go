package runner

import (
	"fmt"
	"os/exec"
	"strings"
)

// compilerCandidates are fallback binary names tried when the user-given
// name is not on PATH. Falling back to the unversioned "clang" covers a
// request for clang-<N> on a system that ships a different version.
var compilerCandidates = []string{"clang"}

// ResolveCompiler turns a user-supplied compiler specification into an
// executable path. A spec containing a path separator is returned verbatim
// after a PATH-independent lookup; a bare name is resolved via exec.LookPath,
// falling back through the candidate list.
func ResolveCompiler(spec string) (string, error) {
	if strings.ContainsRune(spec, '/') {
		if _, err := exec.LookPath(spec); err != nil {
			return "", fmt.Errorf("compiler %q not usable: %w", spec, err)
		}
		return spec, nil
	}

	names := append([]string{spec}, compilerCandidates...)
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no usable compiler found (tried %s)", strings.Join(names, ", "))
}
