// Package logging holds the shared application logger.
package logging

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger prints diagnostics to stderr. Informational output stays on
// stdout via the formatters; this logger carries debug traces only.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: false,
})

// SetDebug raises the logger level so command traces become visible.
// Wired to the --debug flag.
func SetDebug(enabled bool) {
	if enabled {
		Logger.SetLevel(clog.DebugLevel)
	}
}
