package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/clangcat/clangcat/internal/types"
)

// Layout constants. Checker lines follow a simple grid:
//
//	  ● <name padded to name column> <description, wrapped>
//	  │
//	margin
const (
	colMargin  = 2   // left margin for all lines
	nameColMin = 24  // minimum width of the name column
	nameColMax = 44  // name column stops growing here; longer names overflow
	maxLine    = 110 // hard wrap cap, even on ultra-wide terminals
	ruleWidth  = 56  // width of the summary divider rule
	labelWidth = 10  // header label field: "Compiler: " etc.
)

// TextFormatter writes a colored, human-readable catalog report.
type TextFormatter struct {
	Show  string // "all" (default), "active", "inactive"
	Width int    // terminal width for wrapping; 0 = unknown
	Dumb  bool   // TERM=dumb — ASCII fallback icons
}

// Color helpers — each returns a sprint function.
var (
	cBold  = color.New(color.Bold).SprintFunc()
	cGreen = color.New(color.FgGreen).SprintFunc()
	cDim   = color.New(color.Faint).SprintFunc()
	cCyan  = color.New(color.FgCyan).SprintFunc()
)

// IsDumbTerm returns true when the terminal doesn't support Unicode.
func IsDumbTerm() bool {
	t := os.Getenv("TERM")
	return t == "dumb" || t == ""
}

// wrapWidth returns the effective line width: min(terminal, maxLine).
func (f *TextFormatter) wrapWidth() int {
	if f.Width > 0 && f.Width < maxLine {
		return f.Width
	}
	return maxLine
}

func (f *TextFormatter) icons() (active, inactive string) {
	if f.Dumb {
		return "*", "-"
	}
	return "●", "○"
}

// Write renders the full text report.
func (f *TextFormatter) Write(w io.Writer, report *types.CatalogReport) error {
	f.writeHeader(w, report)
	f.writeCheckers(w, report)
	f.writeSummary(w, report)
	return nil
}

func (f *TextFormatter) writeHeader(w io.Writer, report *types.CatalogReport) {
	margin := strings.Repeat(" ", colMargin)

	fmt.Fprintf(w, "\n%s%s\n\n", margin, cBold("clangcat v"+report.Version))
	f.writeLabeled(w, "Compiler", report.Compiler.Path)
	f.writeLabeled(w, "Version", report.Compiler.Version)

	system := strings.TrimSpace(fmt.Sprintf("%s %s %s",
		report.System.OS, report.System.OSVersion, report.System.Arch))
	f.writeLabeled(w, "System", system)

	for i, plugin := range report.Plugins {
		label := ""
		if i == 0 {
			label = "Plugins"
		}
		f.writeLabeled(w, label, plugin)
	}
	fmt.Fprintln(w)
}

// writeLabeled prints one "Label:    value" header line. An empty label
// keeps the value column for continuation lines; empty values are skipped.
func (f *TextFormatter) writeLabeled(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	margin := strings.Repeat(" ", colMargin)
	field := strings.Repeat(" ", labelWidth)
	if label != "" {
		field = label + ":" + strings.Repeat(" ", labelWidth-len(label)-1)
	}
	fmt.Fprintf(w, "%s%s%s\n", margin, cDim(field), value)
}

func (f *TextFormatter) writeCheckers(w io.Writer, report *types.CatalogReport) {
	entries := f.visible(report.Checkers)
	activeIcon, inactiveIcon := f.icons()
	nameCol := nameColumn(entries)
	margin := strings.Repeat(" ", colMargin)

	for _, e := range entries {
		icon, name := cDim(inactiveIcon), cDim(e.Name)
		if e.Active {
			icon, name = cGreen(activeIcon), cBold(e.Name)
		}

		pad := ""
		if n := nameCol - len(e.Name); n > 0 {
			pad = strings.Repeat(" ", n)
		}

		descWidth := f.wrapWidth() - colMargin - 2 - nameCol - 1
		lines := wrapText(e.Description, descWidth)
		if len(lines) == 0 {
			lines = []string{""}
		}

		fmt.Fprintf(w, "%s%s %s%s %s\n", margin, icon, name, pad, lines[0])
		for _, cont := range lines[1:] {
			fmt.Fprintf(w, "%s%s %s\n", margin,
				strings.Repeat(" ", 1+nameCol), cont)
		}
	}
}

func (f *TextFormatter) writeSummary(w io.Writer, report *types.CatalogReport) {
	margin := strings.Repeat(" ", colMargin)
	rule := "─"
	if f.Dumb {
		rule = "-"
	}

	fmt.Fprintf(w, "\n%s%s\n", margin, cDim(strings.Repeat(rule, ruleWidth)))
	fmt.Fprintf(w, "%s%d checkers · %s active · %d opt-in · %d ms\n\n",
		margin,
		report.Summary.Total,
		cCyan(fmt.Sprintf("%d", report.Summary.Active)),
		report.Summary.Inactive,
		report.Summary.DurationMS)
}

// visible filters entries according to the Show mode.
func (f *TextFormatter) visible(entries []types.Entry) []types.Entry {
	switch f.Show {
	case "active":
		var out []types.Entry
		for _, e := range entries {
			if e.Active {
				out = append(out, e)
			}
		}
		return out
	case "inactive":
		var out []types.Entry
		for _, e := range entries {
			if !e.Active {
				out = append(out, e)
			}
		}
		return out
	default:
		return entries
	}
}

// nameColumn picks the name column width for this catalog: the longest
// visible name, clamped to [nameColMin, nameColMax].
func nameColumn(entries []types.Entry) int {
	col := nameColMin
	for _, e := range entries {
		if n := len(e.Name); n > col {
			col = n
		}
	}
	if col > nameColMax {
		col = nameColMax
	}
	return col
}

// wrapText greedily wraps text into lines of at most width runes.
// Widths below 16 are clamped up to 16 so a narrow terminal still gets
// readable lines; oversized single words overflow rather than break.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width < 16 {
		width = 16
	}

	var lines []string
	cur := words[0]
	for _, word := range words[1:] {
		if len(cur)+1+len(word) > width {
			lines = append(lines, cur)
			cur = word
			continue
		}
		cur += " " + word
	}
	return append(lines, cur)
}
