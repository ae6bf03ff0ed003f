package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderText renders the report with colors disabled so assertions see
// plain text.
func renderText(t *testing.T, f *TextFormatter) string {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf, newTestReport()))
	return buf.String()
}

func TestTextFormatter_Header(t *testing.T) {
	out := renderText(t, &TextFormatter{})

	assert.Contains(t, out, "clangcat v1.2.3")
	assert.Contains(t, out, "Compiler: /usr/bin/clang")
	assert.Contains(t, out, "Version:  clang version 17.0.6")
	assert.Contains(t, out, "System:   linux 6.5.0 amd64")
	assert.Contains(t, out, "Plugins:  /opt/llvm/lib/alpha.so")
}

func TestTextFormatter_ShowsAllByDefault(t *testing.T) {
	out := renderText(t, &TextFormatter{})

	assert.Contains(t, out, "core.CallAndMessage")
	assert.Contains(t, out, "unix.API")
	assert.Contains(t, out, "alpha.security.ArrayBound")
}

func TestTextFormatter_ShowActive(t *testing.T) {
	out := renderText(t, &TextFormatter{Show: "active"})

	assert.Contains(t, out, "core.CallAndMessage")
	assert.NotContains(t, out, "alpha.security.ArrayBound")
}

func TestTextFormatter_ShowInactive(t *testing.T) {
	out := renderText(t, &TextFormatter{Show: "inactive"})

	assert.NotContains(t, out, "core.CallAndMessage")
	assert.Contains(t, out, "alpha.security.ArrayBound")
}

func TestTextFormatter_Summary(t *testing.T) {
	out := renderText(t, &TextFormatter{})

	assert.Contains(t, out, "3 checkers · 2 active · 1 opt-in · 42 ms")
}

func TestTextFormatter_DumbIcons(t *testing.T) {
	out := renderText(t, &TextFormatter{Dumb: true})

	assert.Contains(t, out, "* core.CallAndMessage")
	assert.Contains(t, out, "- alpha.security.ArrayBound")
	assert.NotContains(t, out, "●")
	assert.NotContains(t, out, "─")
}

func TestTextFormatter_WrapsLongDescriptions(t *testing.T) {
	out := renderText(t, &TextFormatter{Width: 60})

	// The unix.API description exceeds a 60-column line and must wrap
	// onto a continuation line aligned with the description column.
	lines := strings.Split(out, "\n")
	var found bool
	for i, line := range lines {
		if strings.Contains(line, "unix.API") && i+1 < len(lines) {
			if strings.HasPrefix(lines[i+1], strings.Repeat(" ", 10)) &&
				strings.TrimSpace(lines[i+1]) != "" {
				found = true
			}
		}
	}
	assert.True(t, found, "expected a wrapped continuation line after unix.API:\n%s", out)
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 40, nil},
		{"fits", "short text", 40, []string{"short text"}},
		{"wraps at word boundary", "alpha beta gamma delta", 16,
			[]string{"alpha beta gamma", "delta"}},
		{"narrow width clamps to 16", "aaa bbb ccc ddd", 7,
			[]string{"aaa bbb ccc ddd"}},
		{"oversized word overflows", "supercalifragilisticexpialidocious ok", 16,
			[]string{"supercalifragilisticexpialidocious", "ok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.text, tt.width))
		})
	}
}
