// Package output provides formatters that render catalog reports in
// different formats.
package output

import (
	"io"

	"github.com/clangcat/clangcat/internal/types"
)

// Formatter writes a catalog report to the given writer.
type Formatter interface {
	Write(w io.Writer, report *types.CatalogReport) error
}
