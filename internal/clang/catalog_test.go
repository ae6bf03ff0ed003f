package clang

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clangcat/clangcat/internal/types"
)

// probeScripts registers reconstruction responses that make every language
// probe report the given active checker flags.
func probeScripts(r *scriptRunner, flags string) {
	for _, lang := range languages {
		r.on("clang -### --analyze -x "+lang+" -", []string{flags}, 0)
	}
}

func TestBuildCatalog_MarksActiveByPrefix(t *testing.T) {
	r := newScriptRunner(t)
	probeScripts(r, `"-analyzer-checker=core"`)
	r.on("clang -cc1 -analyzer-checker-help", []string{
		"OVERVIEW: Clang Compiler",
		"CHECKERS:",
		"  core.CallAndMessage",
		"   Check for logical errors",
		"  unix.API",
		"   Check API usage",
	}, 0)

	tc := New(r, "clang")
	catalog, err := tc.BuildCatalog(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, types.Catalog{
		"core.CallAndMessage": {
			Name:        "core.CallAndMessage",
			Description: "Check for logical errors",
			Active:      true,
		},
		"unix.API": {
			Name:        "unix.API",
			Description: "Check API usage",
			Active:      false,
		},
	}, catalog)
}

func TestBuildCatalog_MixedInlineAndSplitEntries(t *testing.T) {
	r := newScriptRunner(t)
	probeScripts(r, `"-analyzer-checker=unix"`)
	r.on("clang -cc1 -analyzer-checker-help", []string{
		"CHECKERS:",
		"  core.DivideZero        Check for division by zero",
		"  alpha.security.MallocOverflow",
		"      Check for overflows in the arguments to malloc()",
		"  unix.Malloc            Check for memory leaks",
	}, 0)

	tc := New(r, "clang")
	catalog, err := tc.BuildCatalog(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, catalog, 3)
	assert.Equal(t, "Check for division by zero", catalog["core.DivideZero"].Description)
	assert.Equal(t, "Check for overflows in the arguments to malloc()",
		catalog["alpha.security.MallocOverflow"].Description)
	assert.True(t, catalog["unix.Malloc"].Active)
	assert.False(t, catalog["core.DivideZero"].Active)
}

func TestBuildCatalog_PluginsUseTwoTokenLoadForm(t *testing.T) {
	r := newScriptRunner(t)
	for _, lang := range languages {
		r.on("clang -### --analyze -Xclang -load -Xclang /p/ext.so -x "+lang+" -",
			[]string{`"-analyzer-checker=example"`}, 0)
	}
	r.on("clang -cc1 -load /p/ext.so -analyzer-checker-help", []string{
		"CHECKERS:",
		"  example.Checker        A plugin-provided checker",
	}, 0)

	tc := New(r, "clang")
	catalog, err := tc.BuildCatalog(context.Background(), []string{"/p/ext.so"})
	require.NoError(t, err)
	assert.True(t, catalog["example.Checker"].Active)
}

func TestBuildCatalog_HelpQueryExitFailure(t *testing.T) {
	r := newScriptRunner(t)
	probeScripts(r, `"-analyzer-checker=core"`)
	r.on("clang -cc1 -analyzer-checker-help", []string{
		"CHECKERS:",
		"  core.DivideZero        Check for division by zero",
	}, 1)

	tc := New(r, "clang")
	_, err := tc.BuildCatalog(context.Background(), nil)
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestBuildCatalog_EmptyCatalog(t *testing.T) {
	r := newScriptRunner(t)
	probeScripts(r, `"-analyzer-checker=core"`)
	r.on("clang -cc1 -analyzer-checker-help", []string{
		"CHECKERS:",
	}, 0)

	tc := New(r, "clang")
	_, err := tc.BuildCatalog(context.Background(), nil)
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestBuildCatalog_ProbeFailurePropagates(t *testing.T) {
	r := newScriptRunner(t)
	r.on("clang -### --analyze -x c -", nil, 0)

	tc := New(r, "clang")
	_, err := tc.BuildCatalog(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyOutput)
}

func TestParseHelp(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  [][2]string
	}{
		{
			name: "nothing before header is parsed",
			lines: []string{
				"  fake.Entry           Looks like an entry but precedes the header",
				"CHECKERS:",
				"  real.Entry           The only real one",
			},
			want: [][2]string{{"real.Entry", "The only real one"}},
		},
		{
			name:  "no header yields nothing",
			lines: []string{"  core.DivideZero      Check for division by zero"},
			want:  nil,
		},
		{
			name: "interleaved split and inline forms",
			lines: []string{
				"CHECKERS:",
				"  a.b                  first",
				"  really.long.checker.name.that.wraps",
				"      wrapped description",
				"  c.d                  second",
			},
			want: [][2]string{
				{"a.b", "first"},
				{"really.long.checker.name.that.wraps", "wrapped description"},
				{"c.d", "second"},
			},
		},
		{
			name: "unindented trailing lines are ignored",
			lines: []string{
				"CHECKERS:",
				"  a.b                  first",
				"",
				"Use -analyzer-checker=<name> to enable a checker.",
			},
			want: [][2]string{{"a.b", "first"}},
		},
		{
			name: "pending name without description line is dropped",
			lines: []string{
				"CHECKERS:",
				"  trailing.bare.name",
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseHelp(tt.lines))
		})
	}
}
