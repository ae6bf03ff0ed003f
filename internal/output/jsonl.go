package output

import (
	"encoding/json"
	"io"

	"github.com/clangcat/clangcat/internal/types"
)

// JSONLFormatter writes a catalog as newline-delimited JSON (one object
// per line). The first line is a header with compiler, system, and summary
// information. Subsequent lines are individual checker entries.
type JSONLFormatter struct{}

// Write renders the report as JSONL: header line + one line per checker.
func (f *JSONLFormatter) Write(w io.Writer, report *types.CatalogReport) error {
	enc := json.NewEncoder(w)

	header := struct {
		Type      string             `json:"type"`
		Version   string             `json:"version"`
		Timestamp string             `json:"timestamp"`
		Compiler  types.CompilerInfo `json:"compiler"`
		System    types.SystemInfo   `json:"system"`
		Plugins   []string           `json:"plugins,omitempty"`
		Summary   types.Summary      `json:"summary"`
	}{
		Type:      "header",
		Version:   report.Version,
		Timestamp: report.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		Compiler:  report.Compiler,
		System:    report.System,
		Plugins:   report.Plugins,
		Summary:   report.Summary,
	}
	if err := enc.Encode(header); err != nil {
		return err
	}

	for _, entry := range report.Checkers {
		line := struct {
			Type    string      `json:"type"`
			Checker types.Entry `json:"checker"`
		}{
			Type:    "checker",
			Checker: entry,
		}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}

	return nil
}
