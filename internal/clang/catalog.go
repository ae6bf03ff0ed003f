package clang

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/clangcat/clangcat/internal/logging"
	"github.com/clangcat/clangcat/internal/types"
)

// Help-text patterns. Checker entries sit below a "CHECKERS:" header,
// indented by exactly two spaces. Short entries carry the description on
// the same line; long names push the description to the following line.
var (
	checkersHeader = regexp.MustCompile(`^CHECKERS:`)
	entryIndent    = regexp.MustCompile(`^\s\s\S`)
	entryNameOnly  = regexp.MustCompile(`^\s\s\S+$`)
	entryInline    = regexp.MustCompile(`^\s\s(\S*)\s*(.*)`)
)

// BuildCatalog returns every checker the compiler knows about, from its
// built-in set and from the given plugins, each marked active or not
// according to the default-enablement probe.
//
// The help text comes from a direct -cc1 invocation (note the two-token
// -load form; the probe's driver invocation uses the four-token -Xclang
// form). Fails with ErrCatalogUnavailable when the help query exits
// non-zero or no entries could be parsed.
func (t *Toolchain) BuildCatalog(ctx context.Context, plugins []string) (types.Catalog, error) {
	active, err := t.ProbeActive(ctx, plugins)
	if err != nil {
		return nil, err
	}

	argv := []string{t.path, "-cc1"}
	for _, plugin := range plugins {
		argv = append(argv, "-load", plugin)
	}
	argv = append(argv, "-analyzer-checker-help")

	logging.Logger.Debug("exec", "cmd", strings.Join(argv, " "))

	res, err := t.runner.Run(ctx, argv, "")
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("%w (exit status %d)", ErrCatalogUnavailable, res.ExitCode)
	}

	catalog := make(types.Catalog)
	for _, pair := range parseHelp(res.Lines) {
		name, description := pair[0], pair[1]
		catalog[name] = types.Entry{
			Name:        name,
			Description: description,
			Active:      active.Matches(name),
		}
	}
	if len(catalog) == 0 {
		return nil, ErrCatalogUnavailable
	}
	return catalog, nil
}

// parseHelp extracts (name, description) pairs from -analyzer-checker-help
// output. Everything up to and including the CHECKERS: header is skipped.
// A single pending-name register handles entries whose name is too long to
// share a line with its description: the bare name is held until the next
// line, which is then consumed as the description.
func parseHelp(lines []string) [][2]string {
	var pairs [][2]string

	i := 0
	for ; i < len(lines); i++ {
		if checkersHeader.MatchString(lines[i]) {
			i++
			break
		}
	}

	pending := ""
	for ; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimRight(line, " \t\r")
		switch {
		case pending != "" && !entryIndent.MatchString(line):
			pairs = append(pairs, [2]string{pending, strings.TrimSpace(line)})
			pending = ""
		case entryNameOnly.MatchString(trimmed):
			pending = strings.TrimSpace(line)
		default:
			if m := entryInline.FindStringSubmatch(trimmed); m != nil {
				pairs = append(pairs, [2]string{m[1], m[2]})
			}
		}
	}
	return pairs
}
